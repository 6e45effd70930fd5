package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AntonioJCosta/aliasreg/internal/adapters/aliasgeneration"
	"github.com/AntonioJCosta/aliasreg/internal/adapters/lisphost"
	"github.com/AntonioJCosta/aliasreg/internal/adapters/nameanalysis"
	"github.com/AntonioJCosta/aliasreg/internal/adapters/nativehost"
	"github.com/AntonioJCosta/aliasreg/internal/adapters/oscommand"
	"github.com/AntonioJCosta/aliasreg/internal/adapters/predefinedaliases"
	"github.com/AntonioJCosta/aliasreg/internal/config"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
	"github.com/AntonioJCosta/aliasreg/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/aliasreg/internal/core/services/aliasregistry"
	"github.com/AntonioJCosta/aliasreg/internal/core/services/aliassuggestion"
	"github.com/AntonioJCosta/aliasreg/internal/handlers/cli"
	"github.com/AntonioJCosta/aliasreg/internal/repositories/aliastable"
)

// Version is set at build time
var Version = "dev"

// newLogger builds the text logger at the configured level.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// mirroredCells are the native cells the lisp host carries over.
var mirroredCells = []string{"fill-column", "case-fold-search", "default-directory", "inhibit-quit", "gc-cons-threshold"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error reading configuration: %v", err)
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		config.Exitf("Error reading configuration: %v", err)
	}
	slog.SetDefault(logger)

	build := func(opts cli.Options) (*cli.Services, error) {
		return buildServices(cfg, opts)
	}
	rootCmd := cli.NewRootCommand(Version, cli.Options{Table: cfg.Table, Host: cfg.Host}, build)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildServices(cfg config.Config, opts cli.Options) (*cli.Services, error) {
	host, err := newHost(opts.Host, oscommand.NewOSCommandExecutor(cfg.Shell))
	if err != nil {
		return nil, err
	}
	registry := aliasregistry.New(host)

	provider, err := predefinedaliases.NewProvider(opts.Table)
	if err != nil {
		return nil, fmt.Errorf("error initializing alias table provider: %w", err)
	}
	management := aliasmanagement.NewService(registry, provider)

	report, err := management.LoadTable()
	if err != nil {
		return nil, err
	}
	slog.Info("alias table loaded", "source", report.Source, "host", opts.Host, "registered", report.Registered, "replaced", report.Replaced, "total", report.Total)
	for _, r := range report.Rejected {
		slog.Warn("alias rejected", "alias", r.Entry.Name, "target", r.Entry.Target, "kind", r.Entry.EffectiveKind(), "error", r.Err)
	}

	analyzer := nameanalysis.NewBasicAnalyzer()
	suggestion := aliassuggestion.NewService(host, registry, aliasgeneration.NewAliasGenerator(analyzer))

	builtin, err := predefinedaliases.NewYAMLProvider()
	if err != nil {
		return nil, fmt.Errorf("error initializing built-in alias table: %w", err)
	}

	svcs := &cli.Services{
		Management: management,
		Suggestion: suggestion,
		Report:     report,
		Builtin:    builtin,
	}
	if opts.Table != "" {
		svcs.Writer, err = aliastable.NewTableFileWriter(opts.Table)
		if err != nil {
			return nil, err
		}
	}
	return svcs, nil
}

// newHost builds the host environment named by kind. The lisp host mirrors
// the native catalogue so the same table resolves in both.
func newHost(kind string, executor ports.CommandExecutor) (ports.HostEnvironment, error) {
	native := nativehost.New(executor)
	switch kind {
	case config.HostNative:
		return native, nil
	case config.HostLisp:
		lisp := lisphost.New()
		if err := lisp.Mirror(native, mirroredCells...); err != nil {
			return nil, fmt.Errorf("error initializing lisp host: %w", err)
		}
		slog.Debug("lisp host ready", "operations", len(lisp.OperationNames()))
		return lisp, nil
	default:
		return nil, fmt.Errorf("unknown host %q: must be %q or %q", kind, config.HostNative, config.HostLisp)
	}
}
