package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSend(t *testing.T) {
	var gotMethod, gotPath, gotHeader, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.RequestURI()
		gotHeader = r.Header.Get("X-Api-Key")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New()
	data, err := c.Send("POST", srv.URL+"/things?page=2",
		map[string]string{"X-Api-Key": "k"}, []byte(`{"name":"x"}`), 0)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("response = %q", data)
	}
	if gotMethod != "POST" || gotPath != "/things?page=2" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotHeader != "k" {
		t.Errorf("X-Api-Key = %q", gotHeader)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if string(gotBody) != `{"name":"x"}` {
		t.Errorf("body = %q", gotBody)
	}
}

func TestSendNoBodyNoContentType(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
	}))
	defer srv.Close()

	if _, err := New().Send("GET", srv.URL, nil, nil, 0); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotContentType != "" {
		t.Errorf("Content-Type = %q, want unset", gotContentType)
	}
}

func TestSendStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"no such user"}`))
	}))
	defer srv.Close()

	_, err := New().Send("GET", srv.URL, nil, nil, 0)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", se.StatusCode)
	}
	if string(se.Body) != `{"error":"no such user"}` {
		t.Errorf("body = %q", se.Body)
	}
}

func TestSendContextCancel(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := New().SendContext(ctx, "GET", srv.URL, nil, nil, 0)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v", err)
	}
}

func TestSendTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	_, err := New().Send("GET", srv.URL, nil, nil, 30*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v", err)
	}
}

func TestWithClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	custom := &http.Client{Timeout: time.Second}
	data, err := WithClient(custom).Send("GET", srv.URL, nil, nil, 0)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if string(data) != "ok" {
		t.Errorf("response = %q", data)
	}
}
