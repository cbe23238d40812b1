// Command auracli is an interactive test client for the dispatch gateway.
//
// Messages have the form: <target_id> <method_name> [arg ...] [key=value ...]
// Arguments are parsed as JSON where possible and fall back to strings.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	aurav1 "aura/gen/go/aura/v1"
	"aura/gen/go/aura/v1/aurav1connect"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "gateway base URL")
	flag.Parse()

	client := aurav1connect.NewDispatchServiceClient(
		&http.Client{Timeout: 180 * time.Second},
		*baseURL,
	)

	fmt.Println("AURA command line interface")
	fmt.Println("Commands: health | get <object_id> | exit")
	fmt.Println("Messages: <target_id> <method_name> [arg ...] [key=value ...]")
	fmt.Println(strings.Repeat("-", 50))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "exit", "quit":
			return
		case "health":
			printHealth(*baseURL)
			continue
		}

		parts := strings.Fields(line)
		if parts[0] == "get" && len(parts) == 2 {
			printObject(client, parts[1])
			continue
		}
		if len(parts) < 2 {
			fmt.Println("invalid format, use: <target_id> <method_name> ...")
			continue
		}

		sendMessage(client, parts[0], parts[1], parts[2:])
	}
}

func sendMessage(client aurav1connect.DispatchServiceClient, targetID, method string, rest []string) {
	args, kwargs := parseArgs(rest)

	req := &aurav1.DispatchRequest{
		TargetObjectId: targetID,
		MethodName:     method,
	}
	for _, a := range args {
		val, err := structpb.NewValue(a)
		if err != nil {
			fmt.Printf("bad argument %v: %v\n", a, err)
			return
		}
		req.Args = append(req.Args, val)
	}
	if len(kwargs) > 0 {
		kw, err := structpb.NewStruct(kwargs)
		if err != nil {
			fmt.Printf("bad kwargs: %v\n", err)
			return
		}
		req.Kwargs = kw
	}

	resp, err := client.Dispatch(context.Background(), connect.NewRequest(req))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("output: %v\nstate_changed: %v\n",
		resp.Msg.GetOutput().AsInterface(), resp.Msg.GetStateChanged())
}

func printObject(client aurav1connect.DispatchServiceClient, id string) {
	resp, err := client.GetObject(context.Background(),
		connect.NewRequest(&aurav1.GetObjectRequest{ObjectId: id}))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	doc := map[string]any{
		"object_id":  resp.Msg.GetObjectId(),
		"attributes": resp.Msg.GetAttributes().AsMap(),
		"methods":    resp.Msg.GetMethods(),
		"prototypes": resp.Msg.GetPrototypeIds(),
	}
	out, _ := json.MarshalIndent(doc, "", "  ")
	fmt.Println(string(out))
}

func printHealth(baseURL string) {
	resp, err := http.Get(strings.TrimRight(baseURL, "/") + "/healthz")
	if err != nil {
		log.Printf("health check failed: %v", err)
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s\n", resp.Status, strings.TrimSpace(string(body)))
}

// parseArgs splits trailing tokens into positional args and key=value
// kwargs, decoding each value as JSON when possible.
func parseArgs(tokens []string) ([]any, map[string]any) {
	var args []any
	kwargs := map[string]any{}
	for _, tok := range tokens {
		if key, value, ok := strings.Cut(tok, "="); ok && key != "" {
			kwargs[key] = parseValue(value)
			continue
		}
		args = append(args, parseValue(tok))
	}
	return args, kwargs
}

func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}
