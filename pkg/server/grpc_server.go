// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/golang/protobuf/ptypes/empty"
	"go.uber.org/zap"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/nttcom/ucd/api/ucd/v1"
	"github.com/nttcom/ucd/pkg/packet/ucd"
)

type APIServer struct {
	srv        *Server
	grpcServer *grpc.Server
	pb.UnimplementedUCDServiceServer
}

func NewAPIServer(s *Server, grpcServer *grpc.Server) *APIServer {
	a := &APIServer{
		srv:        s,
		grpcServer: grpcServer,
	}
	pb.RegisterUCDServiceServer(grpcServer, a)
	return a
}

func (s *APIServer) Serve(address string, port string) error {
	listenInfo := net.JoinHostPort(address, port)
	s.srv.logger.Info("gRPC listen", zap.String("listenInfo", listenInfo), zap.String("server", "grpc"))
	grpcListener, err := net.Listen("tcp", listenInfo)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.grpcServer.Serve(grpcListener)
}

func (s *APIServer) Decode(ctx context.Context, input *wrapperspb.BytesValue) (*structpb.Struct, error) {
	msg, err := s.srv.Decode(input.GetValue())
	if err != nil {
		s.srv.logger.Info("rejected UCD message", zap.Error(err), zap.String("server", "grpc"))
		if errors.Is(err, ucd.ErrMalformed) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	diags := msg.Diagnostics()
	if len(diags) > 0 {
		s.srv.logger.Info("UCD message has diagnostics", zap.Array("diagnostics", diags), zap.String("server", "grpc"))
	}
	diagList := make([]any, 0, len(diags))
	for _, d := range diags {
		diagList = append(diagList, map[string]any{
			"offset":   d.Offset,
			"length":   d.Length,
			"declared": int(d.Declared),
			"cause":    d.Cause,
		})
	}

	ret, err := structpb.NewStruct(map[string]any{
		"summary":     msg.Summary(),
		"tree":        msg.Tree().AsMap(),
		"diagnostics": diagList,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return ret, nil
}

func (s *APIServer) ListFields(context.Context, *empty.Empty) (*structpb.ListValue, error) {
	fields := s.srv.decoder.Dictionary().Fields()
	list := make([]any, 0, len(fields))
	for _, f := range fields {
		list = append(list, map[string]any{
			"context":     f.Context,
			"code":        int(f.Code),
			"name":        f.Name,
			"abbrev":      f.Abbrev,
			"description": f.Description,
			"kind":        f.Kind.String(),
			"length":      int(f.Length),
		})
	}
	ret, err := structpb.NewList(list)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return ret, nil
}
