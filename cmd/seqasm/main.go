package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/kmerlab/seqasm/internal/api"
	"github.com/kmerlab/seqasm/internal/config"
	"github.com/kmerlab/seqasm/internal/output"
	"github.com/kmerlab/seqasm/internal/pipeline"
	"github.com/kmerlab/seqasm/internal/watch"
)

const version = "0.3.1"

func main() {
	cfgPath := flag.String("config", "", "path to optional YAML config")
	format := flag.String("format", "", "output format: raw | fasta | json (overrides config)")
	watchMode := flag.Bool("watch", false, "keep running and re-assemble when the input file changes")
	metricsAddr := flag.String("metrics-addr", "", "listen address for /metrics in watch mode (overrides config)")
	jobs := flag.Int("jobs", 4, "parallel assemblies when the input is a directory")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("seqasm", version)
		return
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <input-file>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	input := flag.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}
	if err := config.Validate(cfg); err != nil {
		slog.Error("config validation failed", "err", err)
		os.Exit(1)
	}

	asm := pipeline.New(cfg)
	writers := output.NewRegistry()

	info, err := os.Stat(input)
	if err != nil {
		slog.Error("cannot stat input", "path", input, "err", err)
		os.Exit(1)
	}

	switch {
	case info.IsDir():
		if *watchMode {
			slog.Error("watch mode requires a single input file, not a directory")
			os.Exit(1)
		}
		os.Exit(runBatch(asm, writers, cfg, input, *jobs))
	case *watchMode:
		os.Exit(runWatch(asm, writers, cfg, input))
	default:
		os.Exit(runOnce(asm, writers, cfg, input))
	}
}

// runOnce performs a single read → assemble → write cycle.
func runOnce(asm *pipeline.Assembler, writers *output.Registry, cfg *config.Config, input string) int {
	rep, err := asm.RunFile(input)
	if err != nil {
		slog.Error("assembly failed", "input", input, "err", err)
		return 1
	}
	if err := writers.WriteFile(cfg.Output.Path, cfg.Output.Format, rep); err != nil {
		slog.Error("write failed", "err", err)
		return 1
	}
	slog.Info("assembly complete",
		"run_id", rep.RunID, "input", input, "output", cfg.Output.Path,
		"kmers", rep.KmerCount, "k", rep.K, "length", len(rep.Sequence),
		"duration_ms", rep.DurationMs)
	return 0
}

// runBatch assembles every regular file in dir, writing one output per input.
func runBatch(asm *pipeline.Assembler, writers *output.Registry, cfg *config.Config, dir string, jobs int) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Error("cannot read input directory", "dir", dir, "err", err)
		return 1
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		slog.Error("no input files found", "dir", dir)
		return 1
	}

	failures := 0
	for _, res := range asm.RunFiles(context.Background(), paths, jobs) {
		if res.Err != nil {
			slog.Error("assembly failed", "input", res.Path, "err", res.Err)
			failures++
			continue
		}
		out := batchOutputPath(res.Path, cfg.Output.Format)
		if err := writers.WriteFile(out, cfg.Output.Format, res.Report); err != nil {
			slog.Error("write failed", "input", res.Path, "err", err)
			failures++
			continue
		}
		slog.Info("assembly complete", "input", res.Path, "output", out, "length", len(res.Report.Sequence))
	}
	slog.Info("batch finished", "inputs", len(paths), "failed", failures)
	if failures > 0 {
		return 1
	}
	return 0
}

// batchOutputPath derives the per-input output name, e.g. reads.txt → reads.assembly.txt.
func batchOutputPath(input, format string) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	switch format {
	case "fasta":
		return stem + ".assembly.fasta"
	case "json":
		return stem + ".assembly.json"
	default:
		return stem + ".assembly.txt"
	}
}

// runWatch assembles once, then re-assembles whenever the input changes,
// serving metrics and the last run report over HTTP until interrupted.
func runWatch(asm *pipeline.Assembler, writers *output.Registry, cfg *config.Config, input string) int {
	var last atomic.Pointer[pipeline.Report]

	assemble := func() {
		rep, err := asm.RunFile(input)
		if err != nil {
			slog.Warn("assembly failed; keeping previous output", "input", input, "err", err)
			return
		}
		if err := writers.WriteFile(cfg.Output.Path, cfg.Output.Format, rep); err != nil {
			slog.Error("write failed", "err", err)
			return
		}
		last.Store(rep)
		slog.Info("assembly complete", "run_id", rep.RunID, "length", len(rep.Sequence), "duration_ms", rep.DurationMs)
	}
	assemble()

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	stopWatch, err := watch.Start(input, debounce, assemble)
	if err != nil {
		slog.Error("input watcher unavailable", "err", err)
		return 1
	}
	defer stopWatch()

	srv := &http.Server{
		Addr:         cfg.Metrics.Addr,
		Handler:      api.New(last.Load),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		slog.Info("metrics server starting", "addr", cfg.Metrics.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutCtx)
	return 0
}
