package translation

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"horse.fit/polyglot/internal/language"
)

const (
	// BaiduAppIDEnvVar and BaiduAppKeyEnvVar supply the Fanyi credentials.
	BaiduAppIDEnvVar  = "BAIDU_APP_ID"
	BaiduAppKeyEnvVar = "BAIDU_APP_KEY"

	baiduBaseURL = "https://fanyi-api.baidu.com/api/trans/vip"
)

// BaiduTranslator calls the Baidu Fanyi API. Requests are signed with
// MD5 over the documented concatenation appid + q + salt + secret; any
// deviation in that ordering breaks authentication.
type BaiduTranslator struct {
	languagePair
	appID   string
	appKey  string
	baseURL string
	client  *http.Client
	salt    func() string
}

func NewBaiduTranslator(cfg Config) (*BaiduTranslator, error) {
	pair, err := newLanguagePair("baidu", language.BaiduTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	appID, err := credentialFromEnv("baidu", cfg.AppID, BaiduAppIDEnvVar, "app id")
	if err != nil {
		return nil, err
	}
	appKey, err := credentialFromEnv("baidu", cfg.AppKey, BaiduAppKeyEnvVar, "app key")
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "baidu", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = baiduBaseURL
	}

	return &BaiduTranslator{
		languagePair: pair,
		appID:        appID,
		appKey:       appKey,
		baseURL:      baseURL,
		client:       client,
		salt: func() string {
			return strconv.Itoa(rand.Intn(90000) + 10000)
		},
	}, nil
}

// baiduSign computes the request signature: lowercase hex MD5 of
// appid + q + salt + secret, in exactly that order.
func baiduSign(appID, query, salt, secret string) string {
	sum := md5.Sum([]byte(appID + query + salt + secret))
	return hex.EncodeToString(sum[:])
}

func (t *BaiduTranslator) Translate(ctx context.Context, text string) (string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return "", err
	}

	salt := t.salt()
	form := url.Values{}
	form.Set("q", trimmed)
	form.Set("from", t.source)
	form.Set("to", t.target)
	form.Set("appid", t.appID)
	form.Set("salt", salt)
	form.Set("sign", baiduSign(t.appID, trimmed, salt, t.appKey))

	endpoint := t.baseURL + "/translate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &NetworkError{Vendor: t.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return "", err
	}

	if errCode := gjson.GetBytes(body, "error_code").String(); errCode != "" && errCode != "52000" {
		return "", &NetworkError{
			Vendor: t.Name(),
			Status: http.StatusOK,
			Body:   "error_code " + errCode + ": " + gjson.GetBytes(body, "error_msg").String(),
		}
	}

	results := gjson.GetBytes(body, "trans_result.#.dst").Array()
	if len(results) == 0 {
		return "", &ParseError{Vendor: t.Name(), Detail: "missing trans_result"}
	}

	parts := make([]string, 0, len(results))
	for _, result := range results {
		parts = append(parts, result.String())
	}
	translated := strings.TrimSpace(strings.Join(parts, "\n"))
	if translated == "" {
		return "", &ParseError{Vendor: t.Name(), Detail: "empty translation"}
	}
	return translated, nil
}

func (t *BaiduTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
