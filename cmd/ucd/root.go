// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/nttcom/ucd/api/ucd/v1"
)

var (
	client  pb.UCDServiceClient
	jsonFmt bool
	remote  bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ucd",
		Short: "Decode DOCSIS Upstream Channel Descriptor messages",
	}
	rootCmd.PersistentFlags().BoolVarP(&jsonFmt, "json", "j", false, "output json format")
	rootCmd.PersistentFlags().BoolVarP(&remote, "remote", "r", false, "decode through ucdd instead of locally")
	rootCmd.PersistentFlags().String("host", "127.0.0.1", "ucdd connection address")
	rootCmd.PersistentFlags().StringP("port", "p", "50052", "ucdd connection port")

	rootCmd.AddCommand(newDecodeCmd(), newFieldsCmd())
	rootCmd.PersistentPreRunE = persistentPreRunE
	rootCmd.Run = runRootCmd

	return rootCmd
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	if !remote {
		return nil
	}
	conn, err := grpc.NewClient(
		net.JoinHostPort(cmd.Flag("host").Value.String(), cmd.Flag("port").Value.String()),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to dial ucdd connection: %v", err)
	}

	client = pb.NewUCDServiceClient(conn)
	return nil
}

func runRootCmd(cmd *cobra.Command, args []string) {
	cmd.HelpFunc()(cmd, args)
}
