// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	grpc "google.golang.org/grpc"

	"github.com/nttcom/ucd/internal/pkg/metrics"
	"github.com/nttcom/ucd/pkg/packet/ucd"
)

type Options struct {
	GrpcAddr       string
	GrpcPort       string
	MetricsEnabled bool
	MetricsAddr    string
	MetricsPort    string
}

type Server struct {
	decoder  *ucd.Decoder
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	logger   *zap.Logger
}

func NewServer(logger *zap.Logger) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		decoder:  ucd.NewDecoder(ucd.WithLogger(logger.With(zap.String("server", "decoder")))),
		metrics:  metrics.New(reg),
		registry: reg,
		logger:   logger,
	}
}

// Decode decodes one message and records the outcome in the server metrics.
func (s *Server) Decode(data []byte) (*ucd.Message, error) {
	msg, err := s.decoder.Decode(data)
	s.metrics.Observe(msg, err)
	return msg, err
}

func (s *Server) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// NewUCD starts the metrics endpoint, if enabled, and serves gRPC until either fails.
func NewUCD(o *Options, logger *zap.Logger) error {
	s := NewServer(logger)
	errChan := make(chan error, 2)

	if o.MetricsEnabled {
		go func() {
			errChan <- s.serveMetrics(o.MetricsAddr, o.MetricsPort)
		}()
	}

	go func() {
		grpcServer := grpc.NewServer()
		apiServer := NewAPIServer(s, grpcServer)
		errChan <- apiServer.Serve(o.GrpcAddr, o.GrpcPort)
	}()

	err := <-errChan
	return err
}

func (s *Server) serveMetrics(address string, port string) error {
	listenInfo := net.JoinHostPort(address, port)
	s.logger.Info("metrics listen", zap.String("listenInfo", listenInfo), zap.String("server", "metrics"))

	mux := http.NewServeMux()
	mux.Handle("/metrics", s.MetricsHandler())
	httpServer := &http.Server{
		Addr:              listenInfo,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve metrics: %w", err)
	}
	return nil
}
