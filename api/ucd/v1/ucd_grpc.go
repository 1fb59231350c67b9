// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

// Package v1 defines the ucd.v1.UCDService gRPC API. Requests and responses
// are protobuf well-known types, so no generated message code is needed.
package v1

import (
	"context"

	empty "github.com/golang/protobuf/ptypes/empty"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	UCDService_Decode_FullMethodName     = "/ucd.v1.UCDService/Decode"
	UCDService_ListFields_FullMethodName = "/ucd.v1.UCDService/ListFields"
)

// UCDServiceClient is the client API for UCDService.
type UCDServiceClient interface {
	// Decode returns the display tree of one UCD message payload.
	Decode(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	// ListFields returns the field dictionary used by Decode.
	ListFields(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type uCDServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUCDServiceClient(cc grpc.ClientConnInterface) UCDServiceClient {
	return &uCDServiceClient{cc}
}

func (c *uCDServiceClient) Decode(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, UCDService_Decode_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uCDServiceClient) ListFields(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, UCDService_ListFields_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UCDServiceServer is the server API for UCDService.
// All implementations must embed UnimplementedUCDServiceServer.
type UCDServiceServer interface {
	Decode(context.Context, *wrapperspb.BytesValue) (*structpb.Struct, error)
	ListFields(context.Context, *empty.Empty) (*structpb.ListValue, error)
	mustEmbedUnimplementedUCDServiceServer()
}

// UnimplementedUCDServiceServer must be embedded to have forward compatible implementations.
type UnimplementedUCDServiceServer struct{}

func (UnimplementedUCDServiceServer) Decode(context.Context, *wrapperspb.BytesValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Decode not implemented")
}

func (UnimplementedUCDServiceServer) ListFields(context.Context, *empty.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFields not implemented")
}

func (UnimplementedUCDServiceServer) mustEmbedUnimplementedUCDServiceServer() {}

func RegisterUCDServiceServer(s grpc.ServiceRegistrar, srv UCDServiceServer) {
	s.RegisterService(&UCDService_ServiceDesc, srv)
}

func _UCDService_Decode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UCDServiceServer).Decode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UCDService_Decode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UCDServiceServer).Decode(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _UCDService_ListFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(empty.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UCDServiceServer).ListFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UCDService_ListFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UCDServiceServer).ListFields(ctx, req.(*empty.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// UCDService_ServiceDesc is the grpc.ServiceDesc for UCDService service.
var UCDService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ucd.v1.UCDService",
	HandlerType: (*UCDServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Decode",
			Handler:    _UCDService_Decode_Handler,
		},
		{
			MethodName: "ListFields",
			Handler:    _UCDService_ListFields_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ucd/v1/ucd.proto",
}
