package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "foldervault.v1.FolderService"

const (
	FolderService_Ping_FullMethodName         = "/" + ServiceName + "/Ping"
	FolderService_RefreshToken_FullMethodName = "/" + ServiceName + "/RefreshToken"
	FolderService_CreateFolder_FullMethodName = "/" + ServiceName + "/CreateFolder"
	FolderService_UpdateFolder_FullMethodName = "/" + ServiceName + "/UpdateFolder"
	FolderService_DeleteFolder_FullMethodName = "/" + ServiceName + "/DeleteFolder"
	FolderService_ListFolders_FullMethodName  = "/" + ServiceName + "/ListFolders"
)

// FolderServiceClient is the client API for the folder sync service.
type FolderServiceClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	RefreshToken(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateFolder(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateFolder(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteFolder(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListFolders(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type folderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFolderServiceClient(cc grpc.ClientConnInterface) FolderServiceClient {
	return &folderServiceClient{cc: cc}
}

func (c *folderServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, FolderService_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *folderServiceClient) RefreshToken(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FolderService_RefreshToken_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *folderServiceClient) CreateFolder(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FolderService_CreateFolder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *folderServiceClient) UpdateFolder(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FolderService_UpdateFolder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *folderServiceClient) DeleteFolder(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, FolderService_DeleteFolder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *folderServiceClient) ListFolders(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FolderService_ListFolders_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// FolderServiceServer is the server API for the folder sync service.
// Implementations must embed UnimplementedFolderServiceServer.
type FolderServiceServer interface {
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	RefreshToken(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	CreateFolder(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateFolder(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteFolder(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	ListFolders(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	mustEmbedUnimplementedFolderServiceServer()
}

// UnimplementedFolderServiceServer answers every method with codes.Unimplemented.
type UnimplementedFolderServiceServer struct{}

func (UnimplementedFolderServiceServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedFolderServiceServer) RefreshToken(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedFolderServiceServer) CreateFolder(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateFolder not implemented")
}
func (UnimplementedFolderServiceServer) UpdateFolder(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateFolder not implemented")
}
func (UnimplementedFolderServiceServer) DeleteFolder(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteFolder not implemented")
}
func (UnimplementedFolderServiceServer) ListFolders(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFolders not implemented")
}
func (UnimplementedFolderServiceServer) mustEmbedUnimplementedFolderServiceServer() {}

func RegisterFolderServiceServer(s grpc.ServiceRegistrar, srv FolderServiceServer) {
	s.RegisterService(&FolderService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler, running it
// through the server's interceptor chain.
func unaryHandler[Req any, Resp any](fullMethod string, call func(FolderServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FolderServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(FolderServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var FolderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FolderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(FolderService_Ping_FullMethodName, FolderServiceServer.Ping)},
		{MethodName: "RefreshToken", Handler: unaryHandler(FolderService_RefreshToken_FullMethodName, FolderServiceServer.RefreshToken)},
		{MethodName: "CreateFolder", Handler: unaryHandler(FolderService_CreateFolder_FullMethodName, FolderServiceServer.CreateFolder)},
		{MethodName: "UpdateFolder", Handler: unaryHandler(FolderService_UpdateFolder_FullMethodName, FolderServiceServer.UpdateFolder)},
		{MethodName: "DeleteFolder", Handler: unaryHandler(FolderService_DeleteFolder_FullMethodName, FolderServiceServer.DeleteFolder)},
		{MethodName: "ListFolders", Handler: unaryHandler(FolderService_ListFolders_FullMethodName, FolderServiceServer.ListFolders)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "foldervault/v1/folders.proto",
}
