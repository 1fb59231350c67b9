// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package main

import (
	"context"
	"time"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/nttcom/ucd/api/ucd/v1"
)

func decodeRemote(client pb.UCDServiceClient, data []byte) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ret, err := client.Decode(ctx, wrapperspb.Bytes(data))
	if err != nil {
		return nil, err
	}
	return ret.AsMap(), nil
}

func listFieldsRemote(client pb.UCDServiceClient) ([]any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ret, err := client.ListFields(ctx, &empty.Empty{})
	if err != nil {
		return nil, err
	}
	return ret.AsSlice(), nil
}
