package rpc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	aurav1 "aura/gen/go/aura/v1"
	"aura/internal/gateway/repository/object"
	"aura/internal/uvm"
)

// DispatchHandler serves the caller-facing dispatch entry point.
type DispatchHandler struct {
	orch  *uvm.Orchestrator
	store object.Store
}

func NewDispatchHandler(orch *uvm.Orchestrator, store object.Store) *DispatchHandler {
	return &DispatchHandler{orch: orch, store: store}
}

func (h *DispatchHandler) Dispatch(ctx context.Context, req *connect.Request[aurav1.DispatchRequest]) (*connect.Response[aurav1.DispatchResponse], error) {
	targetID := strings.TrimSpace(req.Msg.GetTargetObjectId())
	if targetID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("target_object_id is required"))
	}
	method := strings.TrimSpace(req.Msg.GetMethodName())
	if method == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("method_name is required"))
	}

	args := make([]any, 0, len(req.Msg.GetArgs()))
	for _, v := range req.Msg.GetArgs() {
		args = append(args, v.AsInterface())
	}
	var kwargs map[string]any
	if kw := req.Msg.GetKwargs(); kw != nil {
		kwargs = kw.AsMap()
	}

	result, err := h.orch.Dispatch(ctx, uvm.DispatchRequest{
		TargetID: targetID,
		Method:   method,
		Args:     args,
		Kwargs:   kwargs,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	out := &aurav1.DispatchResponse{StateChanged: result.StateChanged}
	if result.Output != nil {
		val, err := structpb.NewValue(result.Output)
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("encode output: %w", err))
		}
		out.Output = val
	}
	return connect.NewResponse(out), nil
}

func (h *DispatchHandler) GetObject(ctx context.Context, req *connect.Request[aurav1.GetObjectRequest]) (*connect.Response[aurav1.GetObjectResponse], error) {
	id := strings.TrimSpace(req.Msg.GetObjectId())
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("object_id is required"))
	}

	obj, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, uvm.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	attrs, err := structpb.NewStruct(obj.Attributes)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("encode attributes: %w", err))
	}
	return connect.NewResponse(&aurav1.GetObjectResponse{
		ObjectId:     obj.ID,
		Attributes:   attrs,
		Methods:      obj.Methods,
		PrototypeIds: obj.Prototypes,
	}), nil
}

// toConnectError maps the dispatch failure taxonomy onto connect codes so
// callers can branch without parsing detail strings.
func toConnectError(err error) error {
	if errors.Is(err, uvm.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	if f, ok := uvm.AsFailure(err); ok {
		switch f.Kind {
		case uvm.FailureAudit:
			return connect.NewError(connect.CodePermissionDenied, f)
		case uvm.FailureExecution:
			return connect.NewError(connect.CodeAborted, f)
		case uvm.FailureGeneration, uvm.FailureTransport:
			return connect.NewError(connect.CodeUnavailable, f)
		case uvm.FailurePersistence:
			return connect.NewError(connect.CodeInternal, f)
		}
	}
	return connect.NewError(connect.CodeInternal, err)
}
