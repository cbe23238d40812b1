package uvm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// Store is the full object-store surface the orchestrator coordinates.
// All persistent state lives behind it; the orchestrator itself holds only
// per-request working state.
type Store interface {
	ObjectReader
	PutAttributes(ctx context.Context, id string, attrs map[string]any) error
	InstallMethod(ctx context.Context, id, name, body string) error
}

// ExecResult mirrors the sandbox wire protocol. A non-empty Err means the
// body itself raised; transport problems are reported as Go errors instead.
type ExecResult struct {
	Output          any
	StateChanged    bool
	FinalAttributes map[string]any
	Err             string
}

// Executor runs one method body against an attribute snapshot in an
// isolated boundary. It never sees method mappings or other objects.
type Executor interface {
	Execute(ctx context.Context, body, method string, snapshot map[string]any, args []any, kwargs map[string]any) (ExecResult, error)
}

// Generator is the code-generation oracle: mandate in, candidate source
// out. An empty result is a generation failure.
type Generator interface {
	Generate(ctx context.Context, mandate, method string) (string, error)
}

// Auditor statically vets a candidate body. nil means pass; any error is a
// rejection with reason. Must be a pure function of the source text.
type Auditor interface {
	Audit(source string) error
}

// Publisher receives post-mutation object documents. Best effort: a Publish
// must never block or fail the dispatch that triggered it.
type Publisher interface {
	Publish(update ObjectUpdate)
}

// Archiver records generated candidates (installed or rejected) for the
// historical record. Best effort.
type Archiver interface {
	ArchiveCandidate(ctx context.Context, targetID, method, source, verdict, reason string)
}

// dispatchState enumerates the orchestrator state machine.
type dispatchState int

const (
	stateResolving dispatchState = iota
	stateExecuting
	statePersisting
	stateMissed
	stateGenerating
	stateAuditing
	stateInstalling
	stateDone
)

// Timeouts bound each external call. A timeout is that step's failure, not
// grounds for a retry.
type Timeouts struct {
	Store     time.Duration
	Executor  time.Duration
	Generator time.Duration
}

func (t Timeouts) withDefaults() Timeouts {
	if t.Store <= 0 {
		t.Store = 10 * time.Second
	}
	if t.Executor <= 0 {
		t.Executor = 30 * time.Second
	}
	if t.Generator <= 0 {
		t.Generator = 120 * time.Second
	}
	return t
}

// Orchestrator drives one dispatch through resolve -> execute -> persist,
// falling into generate -> audit -> install -> retry on a resolution miss.
// It is safe for concurrent use; dispatches against the same object are
// deliberately not serialized (documented lost-update semantics).
type Orchestrator struct {
	store     Store
	resolver  *Resolver
	executor  Executor
	generator Generator
	auditor   Auditor
	publisher Publisher
	archiver  Archiver
	timeouts  Timeouts
}

// Deps carries the collaborators for New. Publisher and Archiver are
// optional; everything else is required.
type Deps struct {
	Store     Store
	Resolver  *Resolver
	Executor  Executor
	Generator Generator
	Auditor   Auditor
	Publisher Publisher
	Archiver  Archiver
	Timeouts  Timeouts
}

func New(deps Deps) (*Orchestrator, error) {
	if deps.Store == nil {
		return nil, errors.New("uvm: store is required")
	}
	if deps.Executor == nil {
		return nil, errors.New("uvm: executor is required")
	}
	if deps.Generator == nil {
		return nil, errors.New("uvm: generator is required")
	}
	if deps.Auditor == nil {
		return nil, errors.New("uvm: auditor is required")
	}
	resolver := deps.Resolver
	if resolver == nil {
		var err error
		resolver, err = NewResolver(deps.Store, DefaultMaxDepth)
		if err != nil {
			return nil, err
		}
	}
	return &Orchestrator{
		store:     deps.Store,
		resolver:  resolver,
		executor:  deps.Executor,
		generator: deps.Generator,
		auditor:   deps.Auditor,
		publisher: deps.Publisher,
		archiver:  deps.Archiver,
		timeouts:  deps.Timeouts.withDefaults(),
	}, nil
}

// dispatchRun is the short-lived working state of one request.
type dispatchRun struct {
	req       DispatchRequest
	resolved  ResolvedMethod
	exec      ExecResult
	generated string
	result    Result
	installed bool // retry guard: at most one install per request
}

// Dispatch processes one message end to end and returns either a Result or
// a *Failure. ErrNotFound is returned as-is when the target object does
// not exist.
func (o *Orchestrator) Dispatch(ctx context.Context, req DispatchRequest) (Result, error) {
	run := &dispatchRun{req: req}
	state := stateResolving

	for state != stateDone {
		if err := ctx.Err(); err != nil {
			return Result{}, newFailure(FailureTransport, "dispatch", "request canceled", err)
		}
		var err error
		switch state {
		case stateResolving:
			state, err = o.resolve(ctx, run)
		case stateExecuting:
			state, err = o.execute(ctx, run)
		case statePersisting:
			state, err = o.persist(ctx, run)
		case stateMissed:
			state, err = o.missed(run)
		case stateGenerating:
			state, err = o.generate(ctx, run)
		case stateAuditing:
			state, err = o.auditCandidate(ctx, run)
		case stateInstalling:
			state, err = o.install(ctx, run)
		default:
			return Result{}, newFailure(FailureTransport, "dispatch", fmt.Sprintf("invalid state %d", state), nil)
		}
		if err != nil {
			return Result{}, err
		}
	}
	return run.result, nil
}

func (o *Orchestrator) resolve(ctx context.Context, run *dispatchRun) (dispatchState, error) {
	sctx, cancel := context.WithTimeout(ctx, o.timeouts.Store)
	defer cancel()

	resolved, err := o.resolver.Resolve(sctx, run.req.TargetID, run.req.Method)
	switch {
	case err == nil:
		run.resolved = resolved
		return stateExecuting, nil
	case errors.Is(err, ErrMethodNotFound):
		if run.installed {
			// Installation reported success but the retried resolution
			// still misses: an inconsistent store view. Surface it rather
			// than looping back into generation.
			return 0, newFailure(FailurePersistence, "object store",
				fmt.Sprintf("method %q installed on %q but not resolvable on retry", run.req.Method, run.req.TargetID), err)
		}
		return stateMissed, nil
	case errors.Is(err, ErrNotFound):
		return 0, err
	case errors.Is(err, context.DeadlineExceeded):
		return 0, newFailure(FailureTransport, "object store", "resolution timed out", err)
	default:
		return 0, newFailure(FailureTransport, "object store", err.Error(), err)
	}
}

func (o *Orchestrator) execute(ctx context.Context, run *dispatchRun) (dispatchState, error) {
	// Delegation semantics: the body runs against the declaring ancestor's
	// own attribute state, fetched fresh so concurrent mutations since
	// resolution are observed.
	sctx, scancel := context.WithTimeout(ctx, o.timeouts.Store)
	declaring, err := o.store.Get(sctx, run.resolved.DeclaringID)
	scancel()
	if err != nil {
		return 0, newFailure(FailureTransport, "object store",
			fmt.Sprintf("snapshot of %q: %v", run.resolved.DeclaringID, err), err)
	}

	ectx, ecancel := context.WithTimeout(ctx, o.timeouts.Executor)
	defer ecancel()
	exec, err := o.executor.Execute(ectx, run.resolved.Body, run.req.Method,
		CloneAttributes(declaring.Attributes), run.req.Args, run.req.Kwargs)
	if err != nil {
		return 0, newFailure(FailureTransport, "sandbox executor", err.Error(), err)
	}
	if exec.Err != "" {
		return 0, newFailure(FailureExecution, "sandbox executor", exec.Err, nil)
	}

	run.exec = exec
	if exec.StateChanged {
		if exec.FinalAttributes == nil {
			return 0, newFailure(FailureTransport, "sandbox executor",
				"state_changed reported without final_state", nil)
		}
		// The wire flag is only a hint; a mutation happened iff the
		// attribute mappings differ by value.
		if !AttributesEqual(declaring.Attributes, exec.FinalAttributes) {
			return statePersisting, nil
		}
	}
	run.result = Result{Output: exec.Output, StateChanged: false}
	return stateDone, nil
}

func (o *Orchestrator) persist(ctx context.Context, run *dispatchRun) (dispatchState, error) {
	sctx, cancel := context.WithTimeout(ctx, o.timeouts.Store)
	defer cancel()

	if err := o.store.PutAttributes(sctx, run.resolved.DeclaringID, run.exec.FinalAttributes); err != nil {
		return 0, newFailure(FailurePersistence, "object store",
			fmt.Sprintf("persist attributes of %q: %v", run.resolved.DeclaringID, err), err)
	}

	if o.publisher != nil {
		o.publisher.Publish(ObjectUpdate{
			ObjectID:   run.resolved.DeclaringID,
			Method:     run.req.Method,
			Attributes: CloneAttributes(run.exec.FinalAttributes),
		})
	}

	run.result = Result{Output: run.exec.Output, StateChanged: true}
	return stateDone, nil
}

func (o *Orchestrator) missed(run *dispatchRun) (dispatchState, error) {
	log.Printf("uvm: %q does not understand %q, entering generation protocol", run.req.TargetID, run.req.Method)
	return stateGenerating, nil
}

func (o *Orchestrator) generate(ctx context.Context, run *dispatchRun) (dispatchState, error) {
	gctx, cancel := context.WithTimeout(ctx, o.timeouts.Generator)
	defer cancel()

	mandate := fmt.Sprintf("Implement method %q with args %v and kwargs %v",
		run.req.Method, run.req.Args, run.req.Kwargs)
	source, err := o.generator.Generate(gctx, mandate, run.req.Method)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, newFailure(FailureTransport, "code generator", "generation timed out", err)
		}
		return 0, newFailure(FailureGeneration, "code generator", err.Error(), err)
	}
	if source == "" {
		return 0, newFailure(FailureGeneration, "code generator", "empty implementation returned", nil)
	}
	run.generated = source
	return stateAuditing, nil
}

func (o *Orchestrator) auditCandidate(ctx context.Context, run *dispatchRun) (dispatchState, error) {
	if err := o.auditor.Audit(run.generated); err != nil {
		o.archive(ctx, run, "rejected", err.Error())
		// Rejected code is discarded here: it is never installed and never
		// reaches the executor.
		return 0, newFailure(FailureAudit, "security auditor", err.Error(), err)
	}
	o.archive(ctx, run, "installed", "")
	return stateInstalling, nil
}

func (o *Orchestrator) install(ctx context.Context, run *dispatchRun) (dispatchState, error) {
	sctx, cancel := context.WithTimeout(ctx, o.timeouts.Store)
	defer cancel()

	// Self-installation: the new method lands on the original target, not
	// on whatever ancestor a future resolution might have found.
	if err := o.store.InstallMethod(sctx, run.req.TargetID, run.req.Method, run.generated); err != nil {
		return 0, newFailure(FailurePersistence, "object store",
			fmt.Sprintf("install %q on %q: %v", run.req.Method, run.req.TargetID, err), err)
	}
	o.resolver.InvalidateAll()
	run.installed = true
	log.Printf("uvm: installed %q on %q, re-dispatching", run.req.Method, run.req.TargetID)
	return stateResolving, nil
}

func (o *Orchestrator) archive(ctx context.Context, run *dispatchRun, verdict, reason string) {
	if o.archiver == nil {
		return
	}
	o.archiver.ArchiveCandidate(ctx, run.req.TargetID, run.req.Method, run.generated, verdict, reason)
}
