// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/nttcom/ucd/internal/config"
	"github.com/nttcom/ucd/internal/pkg/version"
	"github.com/nttcom/ucd/pkg/logger"
	"github.com/nttcom/ucd/pkg/server"
)

type Flags struct {
	ConfigFile string
	Version    bool
}

func main() {
	f := new(Flags)
	flag.StringVar(&f.ConfigFile, "f", "ucdd.yaml", "Specify a configuration file")
	flag.BoolVar(&f.Version, "version", false, "Print the version and exit")
	flag.Parse()

	if f.Version {
		fmt.Println("ucdd " + version.Version())
		return
	}

	c, err := config.ReadConfigFile(f.ConfigFile)
	if err != nil {
		log.Panic(err)
	}
	if err := os.MkdirAll(c.Global.Log.Path, 0755); err != nil {
		log.Panic(err)
	}
	fp, err := os.OpenFile(filepath.Join(c.Global.Log.Path, c.Global.Log.Name), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Panic(err)
	}
	defer fp.Close()

	logger := logger.LogInit(fp, c.Global.Log.Debug)
	defer func() {
		_ = logger.Sync()
	}()
	zap.ReplaceGlobals(logger)
	logger.Info("ucdd start", zap.String("version", version.Version()))

	o := new(server.Options)
	o.GrpcAddr = c.Global.Grpc.Address
	o.GrpcPort = c.Global.Grpc.Port
	o.MetricsEnabled = c.Global.Metrics.Enabled
	o.MetricsAddr = c.Global.Metrics.Address
	o.MetricsPort = c.Global.Metrics.Port
	if err := server.NewUCD(o, logger); err != nil {
		logger.Panic("Failed to serve", zap.Error(err))
	}
}
