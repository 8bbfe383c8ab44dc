package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pokespeare/pokespeare"
)

func newTranslatorServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request, *string) {
	t.Helper()
	var gotReq http.Request
	var gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = *r
		gotText = r.FormValue("text")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotReq, &gotText
}

func TestShakespeareClient_Success(t *testing.T) {
	body := `{"success":{"total":1},"contents":{"translated":"Thou art translated","text":"Hello world"}}`
	srv, gotReq, gotText := newTranslatorServer(t, http.StatusOK, body)
	c := NewShakespeareClient(ShakespeareConfig{BaseURL: srv.URL})

	translated, err := c.Translate(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if translated != "Thou art translated" {
		t.Errorf("Translate returned %q", translated)
	}
	if gotReq.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", gotReq.Method)
	}
	if gotReq.URL.Path != "/translate/shakespeare.json" {
		t.Errorf("path = %q", gotReq.URL.Path)
	}
	if *gotText != "Hello world" {
		t.Errorf("form text = %q, want the original input", *gotText)
	}
	if ct := gotReq.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		t.Errorf("content type = %q", ct)
	}
}

func TestShakespeareClient_DomainError(t *testing.T) {
	// Funtranslations reports rate limits as a 429 with an error body.
	body := `{"error":{"code":429,"message":"Too Many Requests: Rate limit of 5 requests per hour exceeded."}}`
	srv, _, _ := newTranslatorServer(t, http.StatusTooManyRequests, body)
	c := NewShakespeareClient(ShakespeareConfig{BaseURL: srv.URL})

	_, err := c.Translate(context.Background(), "Hello world")
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := pokespeare.KindOf(err); kind != pokespeare.KindTranslationRejected {
		t.Errorf("error kind = %q, want %q", kind, pokespeare.KindTranslationRejected)
	}

	var ue *pokespeare.UpstreamError
	if !errors.As(err, &ue) || !strings.Contains(ue.Message, "Rate limit") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShakespeareClient_ServerError(t *testing.T) {
	srv, _, _ := newTranslatorServer(t, http.StatusInternalServerError, "Internal server error")
	c := NewShakespeareClient(ShakespeareConfig{BaseURL: srv.URL})

	_, err := c.Translate(context.Background(), "Hello world")
	if kind := pokespeare.KindOf(err); kind != pokespeare.KindServerError {
		t.Errorf("error kind = %q, want %q", kind, pokespeare.KindServerError)
	}
}

func TestShakespeareClient_MalformedBody(t *testing.T) {
	srv, _, _ := newTranslatorServer(t, http.StatusOK, "{not json")
	c := NewShakespeareClient(ShakespeareConfig{BaseURL: srv.URL})

	_, err := c.Translate(context.Background(), "Hello world")
	if kind := pokespeare.KindOf(err); kind != pokespeare.KindDataError {
		t.Errorf("error kind = %q, want %q", kind, pokespeare.KindDataError)
	}
}

func TestShakespeareClient_NeitherBranch(t *testing.T) {
	srv, _, _ := newTranslatorServer(t, http.StatusOK, `{"something":"else"}`)
	c := NewShakespeareClient(ShakespeareConfig{BaseURL: srv.URL})

	_, err := c.Translate(context.Background(), "Hello world")
	if kind := pokespeare.KindOf(err); kind != pokespeare.KindDataError {
		t.Errorf("error kind = %q, want %q", kind, pokespeare.KindDataError)
	}
}

func TestShakespeareClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewShakespeareClient(ShakespeareConfig{BaseURL: url})

	_, err := c.Translate(context.Background(), "Hello world")
	if kind := pokespeare.KindOf(err); kind != pokespeare.KindUnavailable {
		t.Errorf("error kind = %q, want %q", kind, pokespeare.KindUnavailable)
	}
}

func TestShakespeareClient_RequestHook(t *testing.T) {
	body := `{"contents":{"translated":"Aye","text":"yes"}}`
	srv, _, _ := newTranslatorServer(t, http.StatusOK, body)

	requests := 0
	c := NewShakespeareClient(ShakespeareConfig{
		BaseURL:     srv.URL,
		RequestHook: func() { requests++ },
	})

	c.Translate(context.Background(), "yes")

	if requests != 1 {
		t.Errorf("request hook fired %d times, want 1", requests)
	}
}
