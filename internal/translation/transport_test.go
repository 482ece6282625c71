package translation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSendReturnsBody(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer vendor.Close()

	client, err := newHTTPClient(0, nil)
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, vendor.URL, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	body, err := send("vendor", client, req)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestSendNonSuccessStatusIsNetworkError(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	}))
	defer vendor.Close()

	client, err := newHTTPClient(0, nil)
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, vendor.URL, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	_, err = send("vendor", client, req)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Status != http.StatusTooManyRequests || netErr.Body != "slow down" {
		t.Fatalf("unexpected network error: %+v", netErr)
	}
}

func TestSendTransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	vendor.Close()

	client, err := newHTTPClient(time.Second, nil)
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, vendor.URL, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	_, err = send("vendor", client, req)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Err == nil {
		t.Fatalf("transport failure must carry the underlying error: %+v", netErr)
	}
}
