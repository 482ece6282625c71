package translation

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// newHTTPClient builds the per-adapter HTTP client. The proxy map keys are
// URL schemes ("http", "https"); requests for other schemes go direct.
func newHTTPClient(timeout time.Duration, proxies map[string]string) (*http.Client, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	if len(proxies) == 0 {
		return client, nil
	}

	parsed := make(map[string]*url.URL, len(proxies))
	for scheme, addr := range proxies {
		scheme = strings.ToLower(strings.TrimSpace(scheme))
		proxyURL, err := url.Parse(strings.TrimSpace(addr))
		if err != nil || proxyURL.Host == "" {
			return nil, fmt.Errorf("invalid %s proxy address %q", scheme, addr)
		}
		parsed[scheme] = proxyURL
	}

	client.Transport = &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			if proxyURL, ok := parsed[strings.ToLower(req.URL.Scheme)]; ok {
				return proxyURL, nil
			}
			return nil, nil
		},
	}
	return client, nil
}

// send executes a vendor request and applies the shared status check:
// transport errors and non-2xx statuses become NetworkError, the body is
// returned raw for vendor-specific parsing.
func send(vendor string, client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{Vendor: vendor, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Vendor: vendor, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &NetworkError{
			Vendor: vendor,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}
