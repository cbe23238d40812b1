// Package codegen turns a missing-method mandate into candidate source by
// prompting an LLM for a structured JSON response and extracting the code
// from it. The generator never vets what it produces; that is the
// guardian's job.
package codegen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"aura/internal/llmclient"
)

// Generator implements the code-generation oracle on top of an LLMClient.
type Generator struct {
	llm llmclient.LLMClient
}

func New(llm llmclient.LLMClient) *Generator {
	return &Generator{llm: llm}
}

func (g *Generator) Close() error {
	if g.llm == nil {
		return nil
	}
	return g.llm.Close()
}

// codeResponse is the structured reply the prompt demands: a single JSON
// object with one key.
type codeResponse struct {
	PythonCode string `json:"python_code"`
}

// Generate asks the model for an implementation of method and returns the
// extracted source. An empty or undecodable reply is an error; the caller
// treats it as a generation failure and does not retry.
func (g *Generator) Generate(ctx context.Context, mandate, method string) (string, error) {
	prompt := buildPrompt(method)

	log.Printf("codegen: dispatching %q to %s", method, g.llm.Name())
	raw, err := g.llm.GenerateJSON(ctx, prompt, mandate)
	if err != nil {
		return "", fmt.Errorf("codegen: %s: %w", g.llm.Name(), err)
	}

	var resp codeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("codegen: decode response: %w", err)
	}
	code := strings.TrimSpace(resp.PythonCode)
	if code == "" {
		return "", fmt.Errorf("codegen: response carried no python_code")
	}
	return code, nil
}

// buildPrompt produces the steward system prompt. The constraints restate
// what the auditor enforces so well-behaved models pass on the first try,
// and spell out the persistence covenant for mutating methods.
func buildPrompt(method string) string {
	return fmt.Sprintf(`You are the System Steward of a prototype-object runtime. Your task is to generate a Python implementation for a missing method: %q.

CONSTRAINTS:
1. Output format: respond with a single JSON object and nothing else.
2. JSON structure: one key, "python_code", whose value is the complete, well-formatted Python source for the method.
3. Security: no imports, no file I/O (open), no eval/exec/compile, no access to os, sys, subprocess, shutil or socket, no dunder attributes, no del statements.
4. Persistence covenant: if the method modifies the object's state (writes into self.attributes), its LAST line MUST be "self._p_changed = True".
5. Signature: the method is an instance method; its first parameter must be "self". Attribute state is available as the dict self.attributes.
6. Simplicity: be simple and robust, and address the mandate directly.

Example response for a method greet(self, name):
{"python_code": "def greet(self, name):\n    return f'Hello, {name}!'\n"}

Example response for a state-modifying method set_name(self, new_name):
{"python_code": "def set_name(self, new_name):\n    self.attributes['name'] = new_name\n    self._p_changed = True\n"}

Generate the JSON response for the method %q now.`, method, method)
}
