package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/cliffordsim/storage/blob"
	"github.com/katalvlaran/cliffordsim/storage/results"
	"github.com/katalvlaran/cliffordsim/sweep"
)

// flag name -> config key
var sweepFlagKeys = map[string]string{
	"workers":           "num_threads",
	"seed":              "seed",
	"resume":            "resume",
	"checkpoint-driver": "checkpoint_driver",
	"checkpoint-dir":    "checkpoint_dir",
	"sqlite":            "sqlite_path",
	"postgres":          "postgres_dsn",
	"output":            "filename",
}

func runSweep(ctx context.Context, args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "experiment config (json, yaml or toml)")
	debug := fs.Bool("debug", false, "development logging")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address while running")
	fs.IntP("workers", "j", 0, "points run in parallel (default num_threads)")
	fs.Uint64("seed", 0, "sweep seed (0 draws one)")
	fs.String("resume", "", "run ID whose checkpoints to resume")
	fs.String("checkpoint-driver", "", "checkpoint store: fs, s3 or memory (empty disables)")
	fs.String("checkpoint-dir", "", "root directory of the fs checkpoint store")
	fs.String("sqlite", "", "also append results to this SQLite database")
	fs.String("postgres", "", "also append results to this PostgreSQL DSN")
	fs.StringP("output", "o", "", "result file (overrides filename)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return fmt.Errorf("run: --config is required: %w", errUsage)
	}

	v := sweep.NewViper()
	for name, key := range sweepFlagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return err
		}
	}
	cfg, err := sweep.LoadConfig(v, *configPath)
	if err != nil {
		return err
	}

	log, err := newLogger(*debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	opts := []sweep.Option{sweep.WithLogger(log), sweep.WithRegisterer(reg)}

	if cfg.CheckpointDriver != "" {
		store, err := blob.Open(ctx, blob.Driver(cfg.CheckpointDriver), cfg.CheckpointDir, cfg.S3)
		if err != nil {
			return err
		}
		log.Info("checkpoints enabled", zap.String("driver", string(store.Driver())))
		opts = append(opts, sweep.WithCheckpoints(store))
	}

	sinks, err := openSinks(ctx, cfg, log)
	defer func() {
		for _, s := range sinks {
			if err := s.Close(); err != nil {
				log.Warn("closing results sink", zap.Error(err))
			}
		}
	}()
	if err != nil {
		return err
	}
	opts = append(opts, sweep.WithSinks(sinks...))

	if *metricsAddr != "" {
		srv := &http.Server{
			Addr:              *metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", zap.Error(err))
			}
		}()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	df, err := sweep.NewRunner(opts...).Run(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "run %s: %d slides\n", df.RunID, len(df.Slides))

	return nil
}

func openSinks(ctx context.Context, cfg sweep.Config, log *zap.Logger) ([]results.Sink, error) {
	var sinks []results.Sink
	open := func(s *results.SQL, err error) error {
		if err != nil {
			return err
		}
		sinks = append(sinks, s)
		return s.Init(ctx)
	}
	if cfg.SQLitePath != "" {
		if err := open(results.OpenSQLite(ctx, cfg.SQLitePath, results.WithLogger(log))); err != nil {
			return sinks, err
		}
	}
	if cfg.PostgresDSN != "" {
		if err := open(results.OpenPostgres(ctx, cfg.PostgresDSN, results.WithLogger(log))); err != nil {
			return sinks, err
		}
	}

	return sinks, nil
}
