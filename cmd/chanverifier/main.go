// Package main verifies channel funding outputs against a bitcoin node.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/chanverifier/internal/bitcoin"
	"github.com/goodnatureofminers/chanverifier/internal/metrics"
	"github.com/goodnatureofminers/chanverifier/internal/model"
	rpcclient2 "github.com/goodnatureofminers/chanverifier/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/chanverifier/internal/verifier"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	sourceREST = "rest"
	sourceRPC  = "rpc"
)

type config struct {
	Network           model.Network `long:"network" env:"CHANVERIFIER_NETWORK" description:"network name (mainnet, testnet, signet, regtest)" default:"mainnet"`
	Source            string        `long:"source" env:"CHANVERIFIER_SOURCE" description:"block data source" choice:"rest" choice:"rpc" default:"rest"`
	RESTURL           string        `long:"rest-url" env:"CHANVERIFIER_REST_URL" description:"bitcoind REST base URL" default:"http://127.0.0.1:8332/rest/"`
	RPCURL            string        `long:"rpc-url" env:"CHANVERIFIER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser           string        `long:"rpc-user" env:"CHANVERIFIER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword       string        `long:"rpc-password" env:"CHANVERIFIER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	HTTPTimeout       time.Duration `long:"http-timeout" env:"CHANVERIFIER_HTTP_TIMEOUT" description:"HTTP timeout for REST requests" default:"30s"`
	RequestsPerSecond int           `long:"requests-per-second" env:"CHANVERIFIER_REQUESTS_PER_SECOND" description:"REST request rate limit, 0 disables it" default:"0"`
	Workers           int           `long:"workers" env:"CHANVERIFIER_WORKERS" description:"channels verified concurrently" default:"4"`
	MetricsAddr       string        `long:"metrics-addr" env:"CHANVERIFIER_METRICS_ADDR" description:"address for metrics server, empty disables it"`

	Args struct {
		SCIDs []string `positional-arg-name:"scid" required:"1" description:"short channel id, HxTxO or decimal"`
	} `positional-args:"yes"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("channel verification failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := bitcoin.ChainParams(cfg.Network)
	if err != nil {
		return err
	}
	channels, err := parseChannels(cfg.Args.SCIDs)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	source, shutdown, err := newBlockSource(cfg)
	if err != nil {
		return fmt.Errorf("init block source: %w", err)
	}
	defer shutdown()

	graph := newLogGraph(logger)
	v, err := verifier.NewChainVerifier(
		source,
		graph,
		nil,
		metrics.NewChainVerifier(cfg.Network),
		logger.With(zap.String("network", params.Name), zap.String("source", cfg.Source)),
	)
	if err != nil {
		return err
	}
	defer v.Stop()

	pump := newEventCounter(logger)
	if err := v.SetPeerEventPump(pump); err != nil {
		return err
	}

	report := verifyChannels(ctx, v, *params.GenesisHash, channels, cfg.Workers)
	v.Stop()
	logSummary(logger, graph, pump)
	return report.log(logger, bitcoin.NewScriptDecoder(params))
}

func newBlockSource(cfg config) (verifier.BlockSource, func(), error) {
	switch cfg.Source {
	case sourceRPC:
		rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return nil, nil, err
		}
		shutdown := func() {
			rpcClient.Shutdown()
			rpcClient.WaitForShutdown()
		}
		rpc := rpcclient2.NewObservedClient(rpcClient, metrics.NewDataSource(sourceRPC, cfg.Network))
		return bitcoin.NewRPCSource(rpc), shutdown, nil
	default:
		var limiter ratelimit.Limiter
		if cfg.RequestsPerSecond > 0 {
			limiter = ratelimit.New(cfg.RequestsPerSecond)
		}
		client, err := bitcoin.NewRESTClient(
			cfg.RESTURL,
			&http.Client{Timeout: cfg.HTTPTimeout},
			limiter,
			metrics.NewDataSource(sourceREST, cfg.Network),
		)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
