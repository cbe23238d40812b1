// Package sandbox is the client side of the execution-sandbox protocol.
// The sandbox itself runs out of process; this package only speaks its
// wire format and maps responses onto the core's execution result.
package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"aura/internal/uvm"
)

// executeRequest is the sandbox wire request. The snapshot is the
// executing object's attribute mapping only: no methods, no other objects.
type executeRequest struct {
	Code        string         `json:"code"`
	MethodName  string         `json:"method_name"`
	ObjectState map[string]any `json:"object_state"`
	Args        []any          `json:"args"`
	Kwargs      map[string]any `json:"kwargs"`
}

type executeResponse struct {
	Output       any            `json:"output"`
	StateChanged bool           `json:"state_changed"`
	FinalState   map[string]any `json:"final_state"`
	Error        string         `json:"error"`
}

// Client posts method bodies to the sandbox endpoint. Stateless per call
// and safe for concurrent use.
type Client struct {
	http     *http.Client
	endpoint string
}

// NewClient creates a sandbox client. timeout bounds the whole call,
// including the body's own runtime inside the sandbox.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:     &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
}

// Execute runs one method body against an attribute snapshot. A fault
// raised by the body comes back in ExecResult.Err; transport and protocol
// problems are returned as errors.
func (c *Client) Execute(ctx context.Context, body, method string, snapshot map[string]any, args []any, kwargs map[string]any) (uvm.ExecResult, error) {
	if args == nil {
		args = []any{}
	}
	if kwargs == nil {
		kwargs = map[string]any{}
	}
	payload, err := json.Marshal(executeRequest{
		Code:        body,
		MethodName:  method,
		ObjectState: snapshot,
		Args:        args,
		Kwargs:      kwargs,
	})
	if err != nil {
		return uvm.ExecResult{}, fmt.Errorf("sandbox: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return uvm.ExecResult{}, fmt.Errorf("sandbox: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return uvm.ExecResult{}, fmt.Errorf("sandbox: call %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return uvm.ExecResult{}, fmt.Errorf("sandbox: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return uvm.ExecResult{}, fmt.Errorf("sandbox: status %d: %s", resp.StatusCode, truncate(raw, 512))
	}

	var out executeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return uvm.ExecResult{}, fmt.Errorf("sandbox: decode response: %w", err)
	}

	return uvm.ExecResult{
		Output:          out.Output,
		StateChanged:    out.StateChanged,
		FinalAttributes: out.FinalState,
		Err:             out.Error,
	}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
