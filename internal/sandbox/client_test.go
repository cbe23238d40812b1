package sandbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestExecuteSuccess(t *testing.T) {
	var got executeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(executeResponse{Output: "Hello, World!"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	res, err := c.Execute(context.Background(), "def greet(self, name):\n    return f'Hello, {name}!'\n",
		"greet", map[string]any{"name": "root"}, []any{"World"}, nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Output != "Hello, World!" {
		t.Fatalf("unexpected output %v", res.Output)
	}
	if res.StateChanged {
		t.Fatal("state_changed should be false")
	}
	if res.Err != "" {
		t.Fatalf("unexpected body fault %q", res.Err)
	}

	if got.MethodName != "greet" {
		t.Fatalf("wire method = %q", got.MethodName)
	}
	if got.ObjectState["name"] != "root" {
		t.Fatalf("wire snapshot = %v", got.ObjectState)
	}
	if len(got.Args) != 1 || got.Args[0] != "World" {
		t.Fatalf("wire args = %v", got.Args)
	}
	if got.Kwargs == nil {
		t.Fatal("nil kwargs should be sent as an empty object")
	}
}

func TestExecuteMutationRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(executeResponse{
			Output:       nil,
			StateChanged: true,
			FinalState:   map[string]any{"name": "Eve", "visits": float64(3)},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	res, err := c.Execute(context.Background(), "body", "set_name", map[string]any{"name": "Adam"}, nil, map[string]any{"new_name": "Eve"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !res.StateChanged {
		t.Fatal("expected state_changed")
	}
	if res.FinalAttributes["name"] != "Eve" {
		t.Fatalf("final attributes = %v", res.FinalAttributes)
	}
}

func TestExecuteBodyFaultIsNotATransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(executeResponse{Error: "ZeroDivisionError: division by zero"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	res, err := c.Execute(context.Background(), "def m(self):\n    return 1 / 0\n", "m", nil, nil, nil)
	if err != nil {
		t.Fatalf("a fault raised by the body must not be a client error, got %v", err)
	}
	if res.Err != "ZeroDivisionError: division by zero" {
		t.Fatalf("fault = %q", res.Err)
	}
}

func TestExecuteNon200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sandbox overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Execute(context.Background(), "body", "m", nil, nil, nil)
	if err == nil {
		t.Fatal("expected error on 503")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("error should carry the status code: %v", err)
	}
}

func TestExecuteMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Execute(context.Background(), "body", "m", nil, nil, nil)
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestExecuteCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClient(srv.URL, 5*time.Second)
	if _, err := c.Execute(ctx, "body", "m", nil, nil, nil); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
