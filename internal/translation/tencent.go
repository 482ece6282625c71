package translation

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"horse.fit/polyglot/internal/language"
)

const (
	// TencentSecretIDEnvVar and TencentSecretKeyEnvVar supply the cloud
	// API credentials.
	TencentSecretIDEnvVar  = "TENCENT_SECRET_ID"
	TencentSecretKeyEnvVar = "TENCENT_SECRET_KEY"

	tencentBaseURL = "https://tmt.tencentcloudapi.com"
	tencentService = "tmt"
	tencentAction  = "TextTranslate"
	tencentVersion = "2018-03-21"
	tencentRegion  = "ap-guangzhou"
)

// TencentTranslator calls the TMT TextTranslate API. Requests carry a
// TC3-HMAC-SHA256 signature over a canonical request; the canonicalization
// (header ordering, hashed payload, date-scoped key derivation) must be
// byte-stable or the vendor rejects the call.
type TencentTranslator struct {
	languagePair
	secretID  string
	secretKey string
	region    string
	baseURL   string
	client    *http.Client
	now       func() time.Time
}

func NewTencentTranslator(cfg Config) (*TencentTranslator, error) {
	pair, err := newLanguagePair("tencent", language.TencentTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	secretID, err := credentialFromEnv("tencent", cfg.SecretID, TencentSecretIDEnvVar, "secret id")
	if err != nil {
		return nil, err
	}
	secretKey, err := credentialFromEnv("tencent", cfg.SecretKey, TencentSecretKeyEnvVar, "secret key")
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "tencent", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = tencentBaseURL
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = tencentRegion
	}

	return &TencentTranslator{
		languagePair: pair,
		secretID:     secretID,
		secretKey:    secretKey,
		region:       region,
		baseURL:      baseURL,
		client:       client,
		now:          time.Now,
	}, nil
}

func (t *TencentTranslator) Translate(ctx context.Context, text string) (string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(map[string]any{
		"SourceText": trimmed,
		"Source":     t.source,
		"Target":     t.target,
		"ProjectId":  0,
	})
	if err != nil {
		return "", &ConfigError{Vendor: t.Name(), Detail: "encode request body", Err: err}
	}

	parsedBase, err := url.Parse(t.baseURL)
	if err != nil || parsedBase.Host == "" {
		return "", configErrorf(t.Name(), "invalid base url %q", t.baseURL)
	}
	host := parsedBase.Host

	timestamp := t.now().UTC()
	authorization := tencentAuthorization(t.secretID, t.secretKey, host, payload, timestamp)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/", bytes.NewReader(payload))
	if err != nil {
		return "", &NetworkError{Vendor: t.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authorization)
	req.Header.Set("X-TC-Action", tencentAction)
	req.Header.Set("X-TC-Version", tencentVersion)
	req.Header.Set("X-TC-Region", t.region)
	req.Header.Set("X-TC-Timestamp", strconv.FormatInt(timestamp.Unix(), 10))
	req.Host = host

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return "", err
	}

	if vendorErr := gjson.GetBytes(body, "Response.Error"); vendorErr.Exists() {
		return "", &NetworkError{
			Vendor: t.Name(),
			Status: http.StatusOK,
			Body:   vendorErr.Get("Code").String() + ": " + vendorErr.Get("Message").String(),
		}
	}

	translated := strings.TrimSpace(gjson.GetBytes(body, "Response.TargetText").String())
	if translated == "" {
		return "", &ParseError{Vendor: t.Name(), Detail: "missing Response.TargetText"}
	}
	return translated, nil
}

func (t *TencentTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}

// tencentCanonicalRequest builds the TC3 canonical request: method, path,
// empty query, lowercase sorted signed headers, and the hex SHA-256 of the
// payload, newline-joined.
func tencentCanonicalRequest(host string, payload []byte) string {
	hashedPayload := sha256.Sum256(payload)
	return strings.Join([]string{
		http.MethodPost,
		"/",
		"",
		"content-type:application/json\nhost:" + host + "\n",
		"content-type;host",
		hex.EncodeToString(hashedPayload[:]),
	}, "\n")
}

// tencentStringToSign scopes the hashed canonical request to the request
// date and the tmt service.
func tencentStringToSign(canonicalRequest string, timestamp time.Time) string {
	hashedRequest := sha256.Sum256([]byte(canonicalRequest))
	date := timestamp.UTC().Format("2006-01-02")
	return strings.Join([]string{
		"TC3-HMAC-SHA256",
		strconv.FormatInt(timestamp.Unix(), 10),
		date + "/" + tencentService + "/tc3_request",
		hex.EncodeToString(hashedRequest[:]),
	}, "\n")
}

// tencentSignature derives the signing key through the documented HMAC
// chain (date, service, "tc3_request") and signs the string-to-sign.
func tencentSignature(secretKey, stringToSign string, timestamp time.Time) string {
	date := timestamp.UTC().Format("2006-01-02")
	secretDate := hmacSHA256([]byte("TC3"+secretKey), date)
	secretService := hmacSHA256(secretDate, tencentService)
	secretSigning := hmacSHA256(secretService, "tc3_request")
	return hex.EncodeToString(hmacSHA256(secretSigning, stringToSign))
}

func tencentAuthorization(secretID, secretKey, host string, payload []byte, timestamp time.Time) string {
	canonicalRequest := tencentCanonicalRequest(host, payload)
	stringToSign := tencentStringToSign(canonicalRequest, timestamp)
	signature := tencentSignature(secretKey, stringToSign, timestamp)
	date := timestamp.UTC().Format("2006-01-02")

	return "TC3-HMAC-SHA256 Credential=" + secretID + "/" + date + "/" + tencentService +
		"/tc3_request, SignedHeaders=content-type;host, Signature=" + signature
}

func hmacSHA256(key []byte, message string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}
