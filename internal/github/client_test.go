package github

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), "secret-token")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	resp, err := c.HTTP.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if !strings.Contains(gotAuth, "secret-token") {
		t.Fatalf("Authorization header: got %q", gotAuth)
	}
}

func TestClientVerboseLogging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var log bytes.Buffer
	c, err := NewClient(context.Background(), "", WithVerbose(true, &log))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	resp, err := c.HTTP.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	got := log.String()
	if !strings.Contains(got, "GET "+srv.URL) {
		t.Fatalf("missing request line:\n%s", got)
	}
	if !strings.Contains(got, "204 No Content") {
		t.Fatalf("missing response line:\n%s", got)
	}
}
