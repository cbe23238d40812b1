package uvm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeExecutor struct {
	mu    sync.Mutex
	calls []execCall
	fn    func(call execCall) (ExecResult, error)
}

type execCall struct {
	Body     string
	Method   string
	Snapshot map[string]any
	Args     []any
	Kwargs   map[string]any
}

func (e *fakeExecutor) Execute(ctx context.Context, body, method string, snapshot map[string]any, args []any, kwargs map[string]any) (ExecResult, error) {
	call := execCall{Body: body, Method: method, Snapshot: snapshot, Args: args, Kwargs: kwargs}
	e.mu.Lock()
	e.calls = append(e.calls, call)
	e.mu.Unlock()
	if e.fn == nil {
		return ExecResult{Output: "ok"}, nil
	}
	return e.fn(call)
}

func (e *fakeExecutor) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

type fakeGenerator struct {
	mu     sync.Mutex
	calls  int
	source string
	err    error
}

func (g *fakeGenerator) Generate(_ context.Context, mandate, method string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return g.source, g.err
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type fakeAuditor struct {
	reject error
	seen   []string
}

func (a *fakeAuditor) Audit(source string) error {
	a.seen = append(a.seen, source)
	return a.reject
}

type recordingPublisher struct {
	mu      sync.Mutex
	updates []ObjectUpdate
}

func (p *recordingPublisher) Publish(update ObjectUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, update)
}

type recordingArchiver struct {
	mu      sync.Mutex
	records []string
}

func (a *recordingArchiver) ArchiveCandidate(_ context.Context, targetID, method, source, verdict, reason string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, verdict+":"+targetID+"."+method)
}

func newTestOrchestrator(t *testing.T, store *fakeStore, exec *fakeExecutor, gen *fakeGenerator, aud Auditor, pub Publisher, arch Archiver) *Orchestrator {
	t.Helper()
	if aud == nil {
		aud = &fakeAuditor{}
	}
	orch, err := New(Deps{
		Store:     store,
		Executor:  exec,
		Generator: gen,
		Auditor:   aud,
		Publisher: pub,
		Archiver:  arch,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return orch
}

func TestDispatchExecutesAgainstDeclaringObject(t *testing.T) {
	// A delegates to B delegates to nil; only B declares greet. The body
	// must run against B's attributes, not A's.
	objs := chain("a", "b", "nil")
	objs[0].Attributes = map[string]any{"who": "a"}
	objs[1].Attributes = map[string]any{"who": "b"}
	objs[1].Methods = map[string]string{"greet": "def greet(self): ..."}
	store := newFakeStore(objs...)

	exec := &fakeExecutor{fn: func(call execCall) (ExecResult, error) {
		return ExecResult{Output: "hello from " + call.Snapshot["who"].(string)}, nil
	}}
	orch := newTestOrchestrator(t, store, exec, &fakeGenerator{}, nil, nil, nil)

	result, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "a", Method: "greet"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Output != "hello from b" {
		t.Fatalf("expected execution against declaring object, got %v", result.Output)
	}
	if result.StateChanged {
		t.Fatal("expected no state change")
	}
}

func TestDispatchPersistsMutationAndPublishes(t *testing.T) {
	objs := chain("a", "b", "nil")
	objs[1].Attributes = map[string]any{"n": 0}
	objs[1].Methods = map[string]string{"bump": "def bump(self): ..."}
	store := newFakeStore(objs...)

	final := map[string]any{"n": 1}
	exec := &fakeExecutor{fn: func(call execCall) (ExecResult, error) {
		return ExecResult{Output: nil, StateChanged: true, FinalAttributes: final}, nil
	}}
	pub := &recordingPublisher{}
	orch := newTestOrchestrator(t, store, exec, &fakeGenerator{}, nil, pub, nil)

	result, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "a", Method: "bump"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !result.StateChanged {
		t.Fatal("expected state change")
	}

	// Round trip: the stored mapping equals what the executor reported,
	// on the declaring object.
	if got := store.attributes("b"); !AttributesEqual(got, final) {
		t.Fatalf("stored attributes = %v, want %v", got, final)
	}
	if got := store.attributes("a"); len(got) != 0 {
		t.Fatalf("target attributes should be untouched, got %v", got)
	}

	if len(pub.updates) != 1 {
		t.Fatalf("expected one published update, got %d", len(pub.updates))
	}
	if pub.updates[0].ObjectID != "b" || !AttributesEqual(pub.updates[0].Attributes, final) {
		t.Fatalf("unexpected update: %+v", pub.updates[0])
	}
}

func TestDispatchStateChangedFlagWithoutValueChange(t *testing.T) {
	// A body that sets the committed flag but leaves the attributes
	// value-equal must not persist, publish, or report a state change.
	objs := chain("a", "nil")
	objs[0].Attributes = map[string]any{"name": "Adam", "n": float64(1)}
	objs[0].Methods = map[string]string{"touch": "def touch(self): ..."}
	store := newFakeStore(objs...)

	exec := &fakeExecutor{fn: func(call execCall) (ExecResult, error) {
		return ExecResult{
			Output:          "noop",
			StateChanged:    true,
			FinalAttributes: map[string]any{"name": "Adam", "n": float64(1)},
		}, nil
	}}
	pub := &recordingPublisher{}
	orch := newTestOrchestrator(t, store, exec, &fakeGenerator{}, nil, pub, nil)

	result, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "a", Method: "touch"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.StateChanged {
		t.Fatal("value-equal attributes must not report a state change")
	}
	if result.Output != "noop" {
		t.Fatalf("unexpected output %v", result.Output)
	}
	if store.putCalls != 0 {
		t.Fatalf("expected no attribute write, got %d", store.putCalls)
	}
	if len(pub.updates) != 0 {
		t.Fatalf("expected no published update, got %d", len(pub.updates))
	}
}

func TestDispatchStateChangedWithoutFinalState(t *testing.T) {
	// state_changed=true with a missing final mapping is a protocol fault;
	// persisting it would wipe the declaring object's attributes.
	objs := chain("a", "nil")
	objs[0].Attributes = map[string]any{"name": "Adam"}
	objs[0].Methods = map[string]string{"wipe": "def wipe(self): ..."}
	store := newFakeStore(objs...)

	exec := &fakeExecutor{fn: func(call execCall) (ExecResult, error) {
		return ExecResult{StateChanged: true, FinalAttributes: nil}, nil
	}}
	orch := newTestOrchestrator(t, store, exec, &fakeGenerator{}, nil, nil, nil)

	_, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "a", Method: "wipe"})
	if f, ok := AsFailure(err); !ok || f.Kind != FailureTransport {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if got := store.attributes("a"); !AttributesEqual(got, map[string]any{"name": "Adam"}) {
		t.Fatalf("attributes must be untouched, got %v", got)
	}
}

func TestDispatchAutopoiesisInstallsAndRetries(t *testing.T) {
	store := newFakeStore(chain("system", "nil")...)
	generated := "def greet(self, name):\n    return f'Hello, {name}!'\n"

	exec := &fakeExecutor{fn: func(call execCall) (ExecResult, error) {
		return ExecResult{Output: "Hello, Architect!"}, nil
	}}
	gen := &fakeGenerator{source: generated}
	arch := &recordingArchiver{}
	orch := newTestOrchestrator(t, store, exec, gen, nil, nil, arch)

	result, err := orch.Dispatch(context.Background(), DispatchRequest{
		TargetID: "system",
		Method:   "greet",
		Args:     []any{"Architect"},
	})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Output != "Hello, Architect!" || result.StateChanged {
		t.Fatalf("unexpected result: %+v", result)
	}

	// Self-installation on the original target, then a depth-0 retry.
	if got := store.methods("system")["greet"]; got != generated {
		t.Fatalf("method not installed on target: %q", got)
	}
	if gen.callCount() != 1 {
		t.Fatalf("generator called %d times, want 1", gen.callCount())
	}
	if exec.callCount() != 1 {
		t.Fatalf("executor called %d times, want 1", exec.callCount())
	}
	if len(arch.records) != 1 || arch.records[0] != "installed:system.greet" {
		t.Fatalf("unexpected archive records: %v", arch.records)
	}
}

func TestDispatchAuditRejectionNeverInstalls(t *testing.T) {
	store := newFakeStore(chain("system", "nil")...)
	gen := &fakeGenerator{source: "def steal(self):\n    open('/etc/passwd')\n"}
	aud := &fakeAuditor{reject: errors.New("forbidden name \"open\"")}
	exec := &fakeExecutor{}
	arch := &recordingArchiver{}
	orch := newTestOrchestrator(t, store, exec, gen, aud, nil, arch)

	_, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "system", Method: "steal"})
	f, ok := AsFailure(err)
	if !ok || f.Kind != FailureAudit {
		t.Fatalf("expected audit rejection, got %v", err)
	}
	if store.installCalls != 0 {
		t.Fatal("install must never be called for rejected code")
	}
	if exec.callCount() != 0 {
		t.Fatal("rejected code must never reach the executor")
	}
	if len(arch.records) != 1 || !strings.HasPrefix(arch.records[0], "rejected:") {
		t.Fatalf("unexpected archive records: %v", arch.records)
	}

	// A second identical dispatch still misses: nothing was installed.
	_, err = orch.Dispatch(context.Background(), DispatchRequest{TargetID: "system", Method: "steal"})
	if f, ok := AsFailure(err); !ok || f.Kind != FailureAudit {
		t.Fatalf("expected second audit rejection, got %v", err)
	}
	if gen.callCount() != 2 {
		t.Fatalf("generator called %d times, want 2", gen.callCount())
	}
}

func TestDispatchGenerationFailure(t *testing.T) {
	store := newFakeStore(chain("system", "nil")...)
	orch := newTestOrchestrator(t, store, &fakeExecutor{}, &fakeGenerator{source: ""}, nil, nil, nil)

	_, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "system", Method: "dream"})
	if f, ok := AsFailure(err); !ok || f.Kind != FailureGeneration {
		t.Fatalf("expected generation failure, got %v", err)
	}
}

func TestDispatchExecutionFaultSurfacedVerbatim(t *testing.T) {
	objs := chain("a", "nil")
	objs[0].Methods = map[string]string{"boom": "def boom(self): ..."}
	store := newFakeStore(objs...)
	exec := &fakeExecutor{fn: func(call execCall) (ExecResult, error) {
		return ExecResult{Err: "ZeroDivisionError: division by zero"}, nil
	}}
	orch := newTestOrchestrator(t, store, exec, &fakeGenerator{}, nil, nil, nil)

	_, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "a", Method: "boom"})
	f, ok := AsFailure(err)
	if !ok || f.Kind != FailureExecution {
		t.Fatalf("expected execution fault, got %v", err)
	}
	if !strings.Contains(f.Detail, "ZeroDivisionError") {
		t.Fatalf("fault detail not surfaced verbatim: %q", f.Detail)
	}
	if exec.callCount() != 1 {
		t.Fatal("execution faults must not be retried")
	}
}

func TestDispatchPersistenceFailureLosesMutation(t *testing.T) {
	objs := chain("a", "nil")
	objs[0].Attributes = map[string]any{"n": 0}
	objs[0].Methods = map[string]string{"bump": "def bump(self): ..."}
	store := newFakeStore(objs...)
	store.putHook = func(string, map[string]any) error {
		return errors.New("connection reset")
	}
	exec := &fakeExecutor{fn: func(call execCall) (ExecResult, error) {
		return ExecResult{StateChanged: true, FinalAttributes: map[string]any{"n": 1}}, nil
	}}
	orch := newTestOrchestrator(t, store, exec, &fakeGenerator{}, nil, nil, nil)

	_, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "a", Method: "bump"})
	if f, ok := AsFailure(err); !ok || f.Kind != FailurePersistence {
		t.Fatalf("expected persistence failure, got %v", err)
	}
	if got := store.attributes("a"); !AttributesEqual(got, map[string]any{"n": 0}) {
		t.Fatalf("object must stay at pre-mutation state, got %v", got)
	}
}

func TestDispatchInstallInconsistencyDoesNotLoop(t *testing.T) {
	// InstallMethod reports success but never lands; the retried
	// resolution must surface a failure instead of generating again.
	store := newFakeStore(chain("system", "nil")...)
	store.installHook = func(string, string, string) error { return nil }
	gen := &fakeGenerator{source: "def m(self):\n    return 1\n"}
	orch := newTestOrchestrator(t, store, &fakeExecutor{}, gen, nil, nil, nil)

	_, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "system", Method: "m"})
	f, ok := AsFailure(err)
	if !ok || f.Kind != FailurePersistence {
		t.Fatalf("expected persistence failure, got %v", err)
	}
	if gen.callCount() != 1 {
		t.Fatalf("generator called %d times, want exactly 1", gen.callCount())
	}
}

func TestDispatchExecutorTimeout(t *testing.T) {
	objs := chain("a", "nil")
	objs[0].Methods = map[string]string{"slow": "def slow(self): ..."}
	store := newFakeStore(objs...)
	exec := &fakeExecutor{fn: func(call execCall) (ExecResult, error) {
		return ExecResult{}, context.DeadlineExceeded
	}}
	orch, err := New(Deps{
		Store:     store,
		Executor:  exec,
		Generator: &fakeGenerator{},
		Auditor:   &fakeAuditor{},
		Timeouts:  Timeouts{Executor: 10 * time.Millisecond},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = orch.Dispatch(context.Background(), DispatchRequest{TargetID: "a", Method: "slow"})
	if f, ok := AsFailure(err); !ok || f.Kind != FailureTransport {
		t.Fatalf("expected transport failure on timeout, got %v", err)
	}
}

func TestDispatchCanceledContext(t *testing.T) {
	store := newFakeStore(chain("a", "nil")...)
	orch := newTestOrchestrator(t, store, &fakeExecutor{}, &fakeGenerator{}, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := orch.Dispatch(ctx, DispatchRequest{TargetID: "a", Method: "m"})
	if f, ok := AsFailure(err); !ok || f.Kind != FailureTransport {
		t.Fatalf("expected transport failure on cancellation, got %v", err)
	}
}

func TestDispatchUnknownTarget(t *testing.T) {
	store := newFakeStore()
	orch := newTestOrchestrator(t, store, &fakeExecutor{}, &fakeGenerator{}, nil, nil, nil)

	_, err := orch.Dispatch(context.Background(), DispatchRequest{TargetID: "ghost", Method: "m"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConcurrentMutatingDispatchesLastWriteWins(t *testing.T) {
	// Documented weak-consistency property: two concurrent dispatches
	// both read {n:0}, both compute {n:1}; one update is silently lost
	// and the final state is {n:1}, not {n:2}.
	objs := chain("a", "nil")
	objs[0].Attributes = map[string]any{"n": float64(0)}
	objs[0].Methods = map[string]string{"bump": "def bump(self): ..."}
	store := newFakeStore(objs...)

	var barrier sync.WaitGroup
	barrier.Add(2)
	exec := &fakeExecutor{fn: func(call execCall) (ExecResult, error) {
		// Hold both executions until each has its pre-mutation snapshot.
		barrier.Done()
		barrier.Wait()
		n := call.Snapshot["n"].(float64)
		return ExecResult{
			StateChanged:    true,
			FinalAttributes: map[string]any{"n": n + 1},
		}, nil
	}}
	orch := newTestOrchestrator(t, store, exec, &fakeGenerator{}, nil, nil, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = orch.Dispatch(context.Background(), DispatchRequest{TargetID: "a", Method: "bump"})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("dispatch %d: %v", i, err)
		}
	}
	if got := store.attributes("a"); !AttributesEqual(got, map[string]any{"n": float64(1)}) {
		t.Fatalf("expected documented lost update {n:1}, got %v", got)
	}
}

func TestFailureErrorFormat(t *testing.T) {
	f := newFailure(FailureAudit, "security auditor", "forbidden name", nil)
	want := fmt.Sprintf("%s (%s): %s", FailureAudit, "security auditor", "forbidden name")
	if f.Error() != want {
		t.Fatalf("Error() = %q, want %q", f.Error(), want)
	}
}
