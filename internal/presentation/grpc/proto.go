package grpc

// proto.go defines the gRPC server interface for syndicateiq/portfolio/v1.
// Messages travel with the JSON codec registered in json_codec.go, so the
// service descriptor is written by hand instead of generated.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PortfolioServiceServer is the server API for PortfolioService.
type PortfolioServiceServer interface {
	ClassifyScore(context.Context, *ClassifyScoreRequest) (*ClassifyScoreResponse, error)
	GetCovenantPortfolio(context.Context, *GetCovenantPortfolioRequest) (*GetCovenantPortfolioResponse, error)
	GetESGOverview(context.Context, *GetESGOverviewRequest) (*GetESGOverviewResponse, error)
	GetDueDiligenceReport(context.Context, *GetDueDiligenceReportRequest) (*GetDueDiligenceReportResponse, error)
	GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error)
	mustEmbedUnimplementedPortfolioServiceServer()
}

// UnimplementedPortfolioServiceServer provides forward-compatible default implementations.
type UnimplementedPortfolioServiceServer struct{}

func (UnimplementedPortfolioServiceServer) ClassifyScore(context.Context, *ClassifyScoreRequest) (*ClassifyScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClassifyScore not implemented")
}
func (UnimplementedPortfolioServiceServer) GetCovenantPortfolio(context.Context, *GetCovenantPortfolioRequest) (*GetCovenantPortfolioResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCovenantPortfolio not implemented")
}
func (UnimplementedPortfolioServiceServer) GetESGOverview(context.Context, *GetESGOverviewRequest) (*GetESGOverviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetESGOverview not implemented")
}
func (UnimplementedPortfolioServiceServer) GetDueDiligenceReport(context.Context, *GetDueDiligenceReportRequest) (*GetDueDiligenceReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDueDiligenceReport not implemented")
}
func (UnimplementedPortfolioServiceServer) GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDashboard not implemented")
}
func (UnimplementedPortfolioServiceServer) mustEmbedUnimplementedPortfolioServiceServer() {}

// RegisterPortfolioServiceServer registers the PortfolioServiceServer with the gRPC server.
func RegisterPortfolioServiceServer(s grpclib.ServiceRegistrar, srv PortfolioServiceServer) {
	s.RegisterService(&_PortfolioService_serviceDesc, srv)
}

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "syndicateiq.portfolio.v1.PortfolioService"

var _PortfolioService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PortfolioServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ClassifyScore", Handler: _PortfolioService_ClassifyScore_Handler},
		{MethodName: "GetCovenantPortfolio", Handler: _PortfolioService_GetCovenantPortfolio_Handler},
		{MethodName: "GetESGOverview", Handler: _PortfolioService_GetESGOverview_Handler},
		{MethodName: "GetDueDiligenceReport", Handler: _PortfolioService_GetDueDiligenceReport_Handler},
		{MethodName: "GetDashboard", Handler: _PortfolioService_GetDashboard_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

// unary runs a decoded request through the interceptor chain when one is installed.
func unary[Req any](
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpclib.UnaryServerInterceptor,
	method string,
	call func(PortfolioServiceServer, context.Context, *Req) (interface{}, error),
) (interface{}, error) {
	req := new(Req)
	if err := dec(req); err != nil {
		return nil, err
	}
	s := srv.(PortfolioServiceServer)
	if interceptor == nil {
		return call(s, ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + method}
	handler := func(ctx context.Context, r interface{}) (interface{}, error) {
		return call(s, ctx, r.(*Req))
	}
	return interceptor(ctx, req, info, handler)
}

func _PortfolioService_ClassifyScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	return unary(srv, ctx, dec, interceptor, "ClassifyScore",
		func(s PortfolioServiceServer, ctx context.Context, req *ClassifyScoreRequest) (interface{}, error) {
			return s.ClassifyScore(ctx, req)
		})
}

func _PortfolioService_GetCovenantPortfolio_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	return unary(srv, ctx, dec, interceptor, "GetCovenantPortfolio",
		func(s PortfolioServiceServer, ctx context.Context, req *GetCovenantPortfolioRequest) (interface{}, error) {
			return s.GetCovenantPortfolio(ctx, req)
		})
}

func _PortfolioService_GetESGOverview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	return unary(srv, ctx, dec, interceptor, "GetESGOverview",
		func(s PortfolioServiceServer, ctx context.Context, req *GetESGOverviewRequest) (interface{}, error) {
			return s.GetESGOverview(ctx, req)
		})
}

func _PortfolioService_GetDueDiligenceReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	return unary(srv, ctx, dec, interceptor, "GetDueDiligenceReport",
		func(s PortfolioServiceServer, ctx context.Context, req *GetDueDiligenceReportRequest) (interface{}, error) {
			return s.GetDueDiligenceReport(ctx, req)
		})
}

func _PortfolioService_GetDashboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	return unary(srv, ctx, dec, interceptor, "GetDashboard",
		func(s PortfolioServiceServer, ctx context.Context, req *GetDashboardRequest) (interface{}, error) {
			return s.GetDashboard(ctx, req)
		})
}
