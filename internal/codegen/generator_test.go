package codegen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type fakeLLM struct {
	reply  json.RawMessage
	err    error
	system string
	user   string
	closed bool
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) Close() error {
	f.closed = true
	return nil
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error) {
	f.system = systemPrompt
	f.user = userPrompt
	return f.reply, f.err
}

func TestGenerateExtractsCode(t *testing.T) {
	llm := &fakeLLM{reply: json.RawMessage(`{"python_code": "def greet(self, name):\n    return f'Hello, {name}!'\n"}`)}
	g := New(llm)

	code, err := g.Generate(context.Background(), "Implement method \"greet\"", "greet")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(code, "def greet(self, name):") {
		t.Fatalf("unexpected code: %q", code)
	}
	if llm.user != "Implement method \"greet\"" {
		t.Fatalf("mandate not forwarded: %q", llm.user)
	}
}

func TestGeneratePromptCarriesContract(t *testing.T) {
	llm := &fakeLLM{reply: json.RawMessage(`{"python_code": "def m(self):\n    return 1\n"}`)}
	g := New(llm)

	if _, err := g.Generate(context.Background(), "mandate", "set_name"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, want := range []string{`"set_name"`, "python_code", "self._p_changed = True", "no imports"} {
		if !strings.Contains(llm.system, want) {
			t.Fatalf("system prompt missing %q", want)
		}
	}
}

func TestGenerateLLMErrorPropagates(t *testing.T) {
	sentinel := errors.New("model unavailable")
	g := New(&fakeLLM{err: sentinel})

	_, err := g.Generate(context.Background(), "mandate", "m")
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped llm error, got %v", err)
	}
}

func TestGenerateRejectsMalformedReply(t *testing.T) {
	cases := map[string]json.RawMessage{
		"not json":    json.RawMessage(`def m(self): pass`),
		"missing key": json.RawMessage(`{"code": "def m(self): pass"}`),
		"empty code":  json.RawMessage(`{"python_code": ""}`),
		"blank code":  json.RawMessage(`{"python_code": "   \n  "}`),
		"wrong type":  json.RawMessage(`{"python_code": 42}`),
	}
	for name, reply := range cases {
		g := New(&fakeLLM{reply: reply})
		if _, err := g.Generate(context.Background(), "mandate", "m"); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestCloseClosesClient(t *testing.T) {
	llm := &fakeLLM{}
	g := New(llm)
	if err := g.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !llm.closed {
		t.Fatal("underlying client not closed")
	}
}
