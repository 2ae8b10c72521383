package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "memento.report.v1.ReportService"

// ReportServer serves read-only aggregations of the journal. Requests and
// responses are google.protobuf.Struct so clients need no generated code.
type ReportServer interface {
	DailySeries(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	MonthlySeries(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Distribution(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	TagIndex(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

type reportCall func(ReportServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call reportCall) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ReportServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ReportServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ReportServiceDesc describes ReportService for grpc.Server.RegisterService.
var ReportServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReportServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "DailySeries", Handler: unaryHandler("DailySeries", ReportServer.DailySeries)},
		{MethodName: "MonthlySeries", Handler: unaryHandler("MonthlySeries", ReportServer.MonthlySeries)},
		{MethodName: "Distribution", Handler: unaryHandler("Distribution", ReportServer.Distribution)},
		{MethodName: "TagIndex", Handler: unaryHandler("TagIndex", ReportServer.TagIndex)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "memento/report/v1/report.proto",
}

// RegisterReportServer registers srv on s.
func RegisterReportServer(s grpc.ServiceRegistrar, srv ReportServer) {
	s.RegisterService(&ReportServiceDesc, srv)
}

// ReportClient calls ReportService over an established connection.
type ReportClient struct {
	cc grpc.ClientConnInterface
}

func NewReportClient(cc grpc.ClientConnInterface) *ReportClient {
	return &ReportClient{cc: cc}
}

func (c *ReportClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReportClient) DailySeries(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "DailySeries", in, opts...)
}

func (c *ReportClient) MonthlySeries(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "MonthlySeries", in, opts...)
}

func (c *ReportClient) Distribution(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Distribution", in, opts...)
}

func (c *ReportClient) TagIndex(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "TagIndex", in, opts...)
}
