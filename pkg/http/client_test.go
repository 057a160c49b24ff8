package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type echoPayload struct {
	Text string `json:"text"`
}

type apiError struct {
	Message string `json:"message"`
}

func TestRequestDecodesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.URL.Query().Get("q"); got != "São Paulo" {
			t.Errorf("query not escaped properly, got %q", got)
		}
		if got := r.Header.Get("x-api-key"); got != "secret" {
			t.Errorf("header missing, got %q", got)
		}
		var in echoPayload
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(echoPayload{Text: "echo " + in.Text})
	}))
	defer server.Close()

	client := NewHttpClient(server.URL+"/", ClientOptions{DefaultHeaders: map[string]string{"x-api-key": "secret"}})
	success, errResp, status, err := client.Request().
		WithMethod(POST).
		WithPath("v1/echo").
		WithQueryParams(map[string]string{"q": "São Paulo"}).
		WithBody(echoPayload{Text: "hi"}).
		WithSuccessResp(&echoPayload{}).
		WithErrorResp(&apiError{}).
		Execute()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errResp != nil {
		t.Errorf("unexpected error response: %v", errResp)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if got := success.(*echoPayload).Text; got != "echo hi" {
		t.Errorf("decoded text = %q", got)
	}
}

func TestRequestDecodesErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API key not valid"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, errResp, status, err := client.Request().
		WithPath("/x").
		WithSuccessResp(&echoPayload{}).
		WithErrorResp(&apiError{}).
		Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected StatusError 403, got %v", err)
	}
	if status != http.StatusForbidden {
		t.Errorf("status = %d", status)
	}
	if got := errResp.(*apiError).Message; got != "API key not valid" {
		t.Errorf("error message = %q", got)
	}
}

func TestRequestRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"ok"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	success, _, _, err := client.Request().
		WithSuccessResp(&echoPayload{}).
		WithBackoff(&BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond}).
		Execute()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := success.(*echoPayload).Text; got != "ok" {
		t.Errorf("text = %q", got)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestRequestWithoutBackoffMakesOneAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, status, err := client.Request().WithBackoff(NoRetry).Execute()

	if err == nil || status != http.StatusInternalServerError {
		t.Fatalf("expected a 500 error, got status %d err %v", status, err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestRequestHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, _, err := client.Request().WithContext(ctx).Execute()
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
