// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: aura/v1/uvm.proto

package aurav1connect

import (
	v1 "aura/gen/go/aura/v1"
	connect "connectrpc.com/connect"
	context "context"
	errors "errors"
	http "net/http"
	strings "strings"
)

// This is a compile-time assertion to ensure that this generated file and the connect package are
// compatible. If you get a compiler error that this constant is not defined, this code was
// generated with a version of connect newer than the one compiled into your binary. You can fix the
// problem by either regenerating this code with an older version of connect or updating the connect
// version compiled into your binary.
const _ = connect.IsAtLeastVersion1_13_0

const (
	// DispatchServiceName is the fully-qualified name of the DispatchService service.
	DispatchServiceName = "aura.v1.DispatchService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// DispatchServiceDispatchProcedure is the fully-qualified name of the DispatchService's Dispatch
	// RPC.
	DispatchServiceDispatchProcedure = "/aura.v1.DispatchService/Dispatch"
	// DispatchServiceGetObjectProcedure is the fully-qualified name of the DispatchService's GetObject
	// RPC.
	DispatchServiceGetObjectProcedure = "/aura.v1.DispatchService/GetObject"
)

// DispatchServiceClient is a client for the aura.v1.DispatchService service.
type DispatchServiceClient interface {
	// Dispatch sends one message to an object, potentially triggering the
	// generate-audit-install protocol when no ancestor declares the method.
	Dispatch(context.Context, *connect.Request[v1.DispatchRequest]) (*connect.Response[v1.DispatchResponse], error)
	// GetObject returns one object document.
	GetObject(context.Context, *connect.Request[v1.GetObjectRequest]) (*connect.Response[v1.GetObjectResponse], error)
}

// NewDispatchServiceClient constructs a client for the aura.v1.DispatchService service. By default,
// it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses, and
// sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the connect.WithGRPC()
// or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewDispatchServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DispatchServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	dispatchServiceMethods := v1.File_aura_v1_uvm_proto.Services().ByName("DispatchService").Methods()
	return &dispatchServiceClient{
		dispatch: connect.NewClient[v1.DispatchRequest, v1.DispatchResponse](
			httpClient,
			baseURL+DispatchServiceDispatchProcedure,
			connect.WithSchema(dispatchServiceMethods.ByName("Dispatch")),
			connect.WithClientOptions(opts...),
		),
		getObject: connect.NewClient[v1.GetObjectRequest, v1.GetObjectResponse](
			httpClient,
			baseURL+DispatchServiceGetObjectProcedure,
			connect.WithSchema(dispatchServiceMethods.ByName("GetObject")),
			connect.WithClientOptions(opts...),
		),
	}
}

// dispatchServiceClient implements DispatchServiceClient.
type dispatchServiceClient struct {
	dispatch  *connect.Client[v1.DispatchRequest, v1.DispatchResponse]
	getObject *connect.Client[v1.GetObjectRequest, v1.GetObjectResponse]
}

// Dispatch calls aura.v1.DispatchService.Dispatch.
func (c *dispatchServiceClient) Dispatch(ctx context.Context, req *connect.Request[v1.DispatchRequest]) (*connect.Response[v1.DispatchResponse], error) {
	return c.dispatch.CallUnary(ctx, req)
}

// GetObject calls aura.v1.DispatchService.GetObject.
func (c *dispatchServiceClient) GetObject(ctx context.Context, req *connect.Request[v1.GetObjectRequest]) (*connect.Response[v1.GetObjectResponse], error) {
	return c.getObject.CallUnary(ctx, req)
}

// DispatchServiceHandler is an implementation of the aura.v1.DispatchService service.
type DispatchServiceHandler interface {
	// Dispatch sends one message to an object, potentially triggering the
	// generate-audit-install protocol when no ancestor declares the method.
	Dispatch(context.Context, *connect.Request[v1.DispatchRequest]) (*connect.Response[v1.DispatchResponse], error)
	// GetObject returns one object document.
	GetObject(context.Context, *connect.Request[v1.GetObjectRequest]) (*connect.Response[v1.GetObjectResponse], error)
}

// NewDispatchServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewDispatchServiceHandler(svc DispatchServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	dispatchServiceMethods := v1.File_aura_v1_uvm_proto.Services().ByName("DispatchService").Methods()
	dispatchServiceDispatchHandler := connect.NewUnaryHandler(
		DispatchServiceDispatchProcedure,
		svc.Dispatch,
		connect.WithSchema(dispatchServiceMethods.ByName("Dispatch")),
		connect.WithHandlerOptions(opts...),
	)
	dispatchServiceGetObjectHandler := connect.NewUnaryHandler(
		DispatchServiceGetObjectProcedure,
		svc.GetObject,
		connect.WithSchema(dispatchServiceMethods.ByName("GetObject")),
		connect.WithHandlerOptions(opts...),
	)
	return "/aura.v1.DispatchService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case DispatchServiceDispatchProcedure:
			dispatchServiceDispatchHandler.ServeHTTP(w, r)
		case DispatchServiceGetObjectProcedure:
			dispatchServiceGetObjectHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedDispatchServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedDispatchServiceHandler struct{}

func (UnimplementedDispatchServiceHandler) Dispatch(context.Context, *connect.Request[v1.DispatchRequest]) (*connect.Response[v1.DispatchResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("aura.v1.DispatchService.Dispatch is not implemented"))
}

func (UnimplementedDispatchServiceHandler) GetObject(context.Context, *connect.Request[v1.GetObjectRequest]) (*connect.Response[v1.GetObjectResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("aura.v1.DispatchService.GetObject is not implemented"))
}
