package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTencentCanonicalRequestShape(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"SourceText":"cat","Source":"en","Target":"de","ProjectId":0}`)
	hashedPayload := sha256.Sum256(payload)

	want := "POST\n" +
		"/\n" +
		"\n" +
		"content-type:application/json\n" +
		"host:tmt.tencentcloudapi.com\n" +
		"\n" +
		"content-type;host\n" +
		hex.EncodeToString(hashedPayload[:])

	got := tencentCanonicalRequest("tmt.tencentcloudapi.com", payload)
	if got != want {
		t.Fatalf("canonical request drift:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTencentStringToSignScope(t *testing.T) {
	t.Parallel()

	timestamp := time.Unix(1000, 0)
	canonical := tencentCanonicalRequest("tmt.tencentcloudapi.com", []byte(`{"a":"1","b":"2"}`))
	hashedCanonical := sha256.Sum256([]byte(canonical))

	want := "TC3-HMAC-SHA256\n" +
		"1000\n" +
		"1970-01-01/tmt/tc3_request\n" +
		hex.EncodeToString(hashedCanonical[:])

	got := tencentStringToSign(canonical, timestamp)
	if got != want {
		t.Fatalf("string-to-sign drift:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTencentSignatureRegression(t *testing.T) {
	t.Parallel()

	// Independent recomputation of the documented HMAC derivation chain
	// for secret="s3cr3t" at timestamp 1000.
	timestamp := time.Unix(1000, 0)
	stringToSign := tencentStringToSign(
		tencentCanonicalRequest("tmt.tencentcloudapi.com", []byte(`{"a":"1","b":"2"}`)),
		timestamp,
	)

	secretDate := hmacSHA256([]byte("TC3"+"s3cr3t"), "1970-01-01")
	secretService := hmacSHA256(secretDate, "tmt")
	secretSigning := hmacSHA256(secretService, "tc3_request")
	want := hex.EncodeToString(hmacSHA256(secretSigning, stringToSign))

	got := tencentSignature("s3cr3t", stringToSign, timestamp)
	if got != want {
		t.Fatalf("signature mismatch: got %q want %q", got, want)
	}
}

func TestTencentTranslateSignedRequest(t *testing.T) {
	t.Parallel()

	var authorization, action string
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		action = r.Header.Get("X-TC-Action")
		w.Write([]byte(`{"Response":{"TargetText":"Katze","Source":"en","Target":"de","RequestId":"r-1"}}`))
	}))
	defer vendor.Close()

	translator, err := NewTencentTranslator(Config{
		Source:    "english",
		Target:    "german",
		SecretID:  "id-1",
		SecretKey: "key-1",
		BaseURL:   vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}
	translator.now = func() time.Time { return time.Unix(1700000000, 0) }

	got, err := translator.Translate(context.Background(), "cat")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Katze" {
		t.Fatalf("unexpected translation: %q", got)
	}

	if action != "TextTranslate" {
		t.Fatalf("unexpected action header: %q", action)
	}
	if !strings.HasPrefix(authorization, "TC3-HMAC-SHA256 Credential=id-1/") {
		t.Fatalf("unexpected authorization header: %q", authorization)
	}
	if !strings.Contains(authorization, "SignedHeaders=content-type;host") {
		t.Fatalf("authorization must pin signed headers: %q", authorization)
	}
}

func TestTencentVendorError(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":{"Error":{"Code":"AuthFailure.SignatureFailure","Message":"signature mismatch"},"RequestId":"r-2"}}`))
	}))
	defer vendor.Close()

	translator, err := NewTencentTranslator(Config{
		Source:    "english",
		Target:    "german",
		SecretID:  "id-1",
		SecretKey: "key-1",
		BaseURL:   vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	_, err = translator.Translate(context.Background(), "cat")
	if err == nil || !strings.Contains(err.Error(), "AuthFailure.SignatureFailure") {
		t.Fatalf("expected the vendor error code to surface, got %v", err)
	}
}
