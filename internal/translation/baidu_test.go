package translation

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBaiduSignCanonicalOrdering(t *testing.T) {
	t.Parallel()

	// Independent computation of the documented concatenation
	// appid + q + salt + secret. Pins the parameter ordering.
	appID, query, salt, secret := "20240101000000001", "cat", "1000", "s3cr3t"
	want := md5.Sum([]byte("20240101000000001" + "cat" + "1000" + "s3cr3t"))

	got := baiduSign(appID, query, salt, secret)
	if got != hex.EncodeToString(want[:]) {
		t.Fatalf("signature mismatch: got %q want %q", got, hex.EncodeToString(want[:]))
	}

	// Any reordering must change the signature.
	reordered := md5.Sum([]byte(query + appID + salt + secret))
	if got == hex.EncodeToString(reordered[:]) {
		t.Fatal("signature must depend on parameter order")
	}
}

func TestBaiduSignDeterministic(t *testing.T) {
	t.Parallel()

	first := baiduSign("app", "hello world", "42", "secret")
	second := baiduSign("app", "hello world", "42", "secret")
	if first != second {
		t.Fatalf("signing must be deterministic: %q vs %q", first, second)
	}
	if first == baiduSign("app", "hello world", "43", "secret") {
		t.Fatal("signature must change with the salt")
	}
}

func TestBaiduTranslateSendsSignedForm(t *testing.T) {
	t.Parallel()

	var seen struct {
		q, from, to, appid, salt, sign string
	}
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		seen.q = r.PostFormValue("q")
		seen.from = r.PostFormValue("from")
		seen.to = r.PostFormValue("to")
		seen.appid = r.PostFormValue("appid")
		seen.salt = r.PostFormValue("salt")
		seen.sign = r.PostFormValue("sign")
		w.Write([]byte(`{"from":"en","to":"jp","trans_result":[{"src":"cat","dst":"猫"}]}`))
	}))
	defer vendor.Close()

	translator, err := NewBaiduTranslator(Config{
		Source:  "english",
		Target:  "japanese",
		AppID:   "app-1",
		AppKey:  "key-1",
		BaseURL: vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}
	translator.salt = func() string { return "77777" }

	got, err := translator.Translate(context.Background(), "cat")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "猫" {
		t.Fatalf("unexpected translation: %q", got)
	}

	if seen.q != "cat" || seen.from != "en" || seen.to != "jp" {
		t.Fatalf("unexpected form values: %+v", seen)
	}
	if seen.salt != "77777" {
		t.Fatalf("unexpected salt: %q", seen.salt)
	}
	if seen.sign != baiduSign("app-1", "cat", "77777", "key-1") {
		t.Fatalf("request signature does not match canonical computation: %q", seen.sign)
	}
}

func TestBaiduVendorErrorCode(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error_code":"54001","error_msg":"Invalid Sign"}`))
	}))
	defer vendor.Close()

	translator, err := NewBaiduTranslator(Config{
		Source:  "english",
		Target:  "chinese",
		AppID:   "app-1",
		AppKey:  "key-1",
		BaseURL: vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	if _, err := translator.Translate(context.Background(), "cat"); err == nil {
		t.Fatal("expected a vendor error for error_code payloads")
	}
}
