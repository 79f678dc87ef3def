package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/blurhash-tools/internal/config"
	"github.com/ironsheep/blurhash-tools/internal/logging"
	"github.com/ironsheep/blurhash-tools/internal/pipeline"
	"github.com/ironsheep/blurhash-tools/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, args, stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "blurhash-tools %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := cfg.LoggingOptions()
	opts.Out, opts.ErrOut = stdout, stderr
	if cfg.ServeMCP {
		// stdout is for MCP protocol
		opts.Out = stderr
	}
	log, err := logging.New(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	if cfg.ServeMCP {
		return serve(ctx, &cfg, log, stdin, stdout)
	}
	return batch(ctx, &cfg, log)
}

func serve(ctx context.Context, cfg *config.Config, log *logging.Logger, stdin io.Reader, stdout io.Writer) int {
	log.Debug("blurhash-tools MCP server %s (built %s, commit %s)", Version, BuildTime, GitCommit)

	srv := server.New(server.Options{
		Grid:    cfg.Grid(),
		Loader:  cfg.Loader(),
		Workers: cfg.Workers,
		Log:     log,
		Version: Version,
	})
	if err := srv.Serve(ctx, stdin, stdout); err != nil {
		log.Error("Server error: %v", err)
		return 1
	}
	return 0
}

func batch(ctx context.Context, cfg *config.Config, log *logging.Logger) int {
	p := pipeline.NewProcessor(cfg.Grid(), cfg.Workers, cfg.Loader(), log)
	p.DryRun = cfg.DryRun
	log.Debug("Grid %s, %d workers, max size %d", p.Grid, p.PoolSize(), cfg.MaxSize)

	disc, err := pipeline.Discover(cfg.Inputs, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if len(disc.Pending) == 0 && len(disc.Skipped) == 0 {
		log.Warn("No images found")
		return 0
	}

	res := p.RunDiscovery(ctx, disc)
	stats := res.Stats()
	pipeline.LogSummary(log, stats)
	return exitCode(stats, cfg.Strict)
}

// exitCode is 0 after a completed batch. With strict set, any failed image
// makes it 1.
func exitCode(s pipeline.Stats, strict bool) int {
	if strict && s.Failed > 0 {
		return 1
	}
	return 0
}
