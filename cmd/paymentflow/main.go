// Copyright 2025 The Paymentflow Authors
// This file is part of paymentflow.
//
// paymentflow is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// paymentflow is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with paymentflow. If not, see <http://www.gnu.org/licenses/>.

// Command paymentflow reads a CSV of client payment operations and emits
// a CSV of final account balances. See the root command's long
// description (--help) for the input/output formats.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/erigontech/paymentflow/internal/config"
	"github.com/erigontech/paymentflow/internal/engine"
	"github.com/erigontech/paymentflow/internal/ioadapter"
	"github.com/erigontech/paymentflow/internal/logging"
	"github.com/erigontech/paymentflow/internal/metrics"
	"github.com/erigontech/paymentflow/internal/operation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		workers     int
		configPath  string
		logLevel    string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "paymentflow <input.csv>",
		Short: "Apply a CSV of client payment operations and emit final balances",
		Long: `paymentflow reads one CSV of client payment operations
(type,client,tx,amount — conflict rows may omit amount) and writes a CSV
of final per-client balances (client,available,held,total,locked) to
standard output.

Operations for a given client id are always applied in the order they
appear in the input, regardless of worker count. Transaction ids are
assumed unique across the whole input. A duplicate id is rejected only
when the earlier record with that id is held by the same shard, which is
always the case when both rows belong to the same client; a duplicate id
used by a different client is accepted if that client is routed to
another shard, so for such input the resulting account state can depend
on worker count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], workers, configPath, logLevel, metricsAddr)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "shard/processor count (default: config file, else number of CPUs)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to an optional TOML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (default: config file, else info)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address until the run completes")

	return cmd
}

func run(inputPath string, workersFlag int, configPath, logLevelFlag, metricsAddrFlag string) error {
	cfg := config.Defaults()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if workersFlag > 0 {
		cfg.Workers = workersFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if metricsAddrFlag != "" {
		cfg.MetricsAddr = metricsAddrFlag
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: m.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warnw("metrics server stopped", "reason", err)
			}
		}()
		defer srv.Close()
	}

	recorder := logging.NewRecorder(log)
	eng := engine.New(cfg.Workers, multiRecorder{m, recorder})

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	readDone := make(chan error, 1)
	go func() {
		readDone <- ioadapter.ReadOperations(in, eng.Submit, func(reason error) {
			m.ParseError("parse_error")
			log.Warnw("dropped input row", "reason", reason)
		})
		eng.Close()
	}()

	store, runErr := eng.Run()
	if err := <-readDone; err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if runErr != nil {
		log.Errorw("engine run failed", "reason", runErr)
		return runErr
	}

	return ioadapter.WriteAccounts(os.Stdout, store)
}

// multiRecorder fans instrumentation out to both the metrics and logging
// recorders without either needing to know about the other.
type multiRecorder struct {
	metrics *metrics.Metrics
	log     *logging.Recorder
}

func (m multiRecorder) Enqueued(shard, depth int) {
	m.metrics.Enqueued(shard, depth)
}

func (m multiRecorder) Applied(shard int, op operation.Operation) {
	m.metrics.Applied(shard, op)
}

func (m multiRecorder) Dropped(shard int, op operation.Operation, reason error) {
	m.metrics.Dropped(shard, op, reason)
	m.log.Dropped(shard, op, reason)
}

func (m multiRecorder) ShardFailed(err error) {
	m.metrics.ShardFailed(err)
	m.log.ShardFailed(err)
}

var _ engine.Recorder = multiRecorder{}
