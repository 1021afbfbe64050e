package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "lifeplan.v1.LifePlanService"

// LifePlanServiceServer is the server API for the LifePlanService
type LifePlanServiceServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error)
	AddHolding(context.Context, *AddHoldingRequest) (*AddHoldingResponse, error)
	ListHoldings(context.Context, *ListHoldingsRequest) (*ListHoldingsResponse, error)
	Simulate(context.Context, *SimulateRequest) (*SimulateResponse, error)
	SubmitConsultation(context.Context, *SubmitConsultationRequest) (*SubmitConsultationResponse, error)
}

// LifePlanServiceDesc describes the LifePlanService for grpc.Server.RegisterService.
// Messages use the JSON codec.
var LifePlanServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LifePlanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateSession", Handler: unaryHandler("CreateSession", LifePlanServiceServer.CreateSession)},
		{MethodName: "AddHolding", Handler: unaryHandler("AddHolding", LifePlanServiceServer.AddHolding)},
		{MethodName: "ListHoldings", Handler: unaryHandler("ListHoldings", LifePlanServiceServer.ListHoldings)},
		{MethodName: "Simulate", Handler: unaryHandler("Simulate", LifePlanServiceServer.Simulate)},
		{MethodName: "SubmitConsultation", Handler: unaryHandler("SubmitConsultation", LifePlanServiceServer.SubmitConsultation)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterLifePlanServiceServer registers srv on s
func RegisterLifePlanServiceServer(s grpc.ServiceRegistrar, srv LifePlanServiceServer) {
	s.RegisterService(&LifePlanServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

func unaryHandler[Req, Resp any](method string, call func(LifePlanServiceServer, context.Context, *Req) (*Resp, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LifePlanServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(LifePlanServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client is the client API for the LifePlanService
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a LifePlanService client on an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error) {
	return invoke[CreateSessionResponse](ctx, c.cc, "CreateSession", in, opts)
}

func (c *Client) AddHolding(ctx context.Context, in *AddHoldingRequest, opts ...grpc.CallOption) (*AddHoldingResponse, error) {
	return invoke[AddHoldingResponse](ctx, c.cc, "AddHolding", in, opts)
}

func (c *Client) ListHoldings(ctx context.Context, in *ListHoldingsRequest, opts ...grpc.CallOption) (*ListHoldingsResponse, error) {
	return invoke[ListHoldingsResponse](ctx, c.cc, "ListHoldings", in, opts)
}

func (c *Client) Simulate(ctx context.Context, in *SimulateRequest, opts ...grpc.CallOption) (*SimulateResponse, error) {
	return invoke[SimulateResponse](ctx, c.cc, "Simulate", in, opts)
}

func (c *Client) SubmitConsultation(ctx context.Context, in *SubmitConsultationRequest, opts ...grpc.CallOption) (*SubmitConsultationResponse, error) {
	return invoke[SubmitConsultationResponse](ctx, c.cc, "SubmitConsultation", in, opts)
}
