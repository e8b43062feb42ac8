// Package app implements the application layer for depscope.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/depscope/internal/adapters/assetdb"
	"go.trai.ch/depscope/internal/adapters/detector"
	"go.trai.ch/depscope/internal/adapters/fs"
	"go.trai.ch/depscope/internal/adapters/linear"
	"go.trai.ch/depscope/internal/adapters/telemetry"
	"go.trai.ch/depscope/internal/adapters/watcher"
	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/depscope/internal/engine/analysis"
	"go.trai.ch/depscope/internal/ui/output"
	"go.trai.ch/zerr"
)

// WatcherFactory creates a file watcher that skips the given name patterns.
type WatcherFactory func(ignore []string, logger ports.Logger) (ports.Watcher, error)

// RendererFactory creates the renderer for one invocation once the configuration is known.
type RendererFactory func(cfg *domain.Config, opts Options) ports.Renderer

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	walker       *fs.Walker
	hasher       *fs.Hasher

	stdout      io.Writer
	stderr      io.Writer
	newWatcher  WatcherFactory
	newRenderer RendererFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	walker *fs.Walker,
	hasher *fs.Hasher,
) *App {
	a := &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		walker:       walker,
		hasher:       hasher,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		newWatcher: func(ignore []string, logger ports.Logger) (ports.Watcher, error) {
			return watcher.NewWatcher(ignore, logger)
		},
	}
	a.newRenderer = a.linearRenderer
	return a
}

// WithOutput redirects results and progress. This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWatcherFactory replaces the file watcher used by watched sessions.
// This is primarily used for testing.
func (a *App) WithWatcherFactory(f WatcherFactory) *App {
	a.newWatcher = f
	return a
}

// WithRendererFactory replaces the renderer built for each invocation.
// This is primarily used for testing.
func (a *App) WithRendererFactory(f RendererFactory) *App {
	a.newRenderer = f
	return a
}

// Options configures a query or a session.
type Options struct {
	// ConfigPath is an explicit configuration file. Empty means discovery from the working directory.
	ConfigPath string
	// Root overrides the project root from the configuration.
	Root string
	// OutputMode is one of auto, interactive, linear or plain.
	OutputMode string
	// Format is the result format, text or json.
	Format string
	// JSONLog switches log output to JSON.
	JSONLog bool
	// Trace logs the duration of every analysis span.
	Trace bool
}

// Query runs a single analysis of the given kind and renders its result.
// An asset unknown to the reverse index is reported as a warning, not an error.
func (a *App) Query(ctx context.Context, kind domain.QueryKind, asset string, opts Options) error {
	env, err := a.prepare(opts)
	if err != nil {
		return err
	}
	defer env.close(ctx)

	id, err := env.resolveAsset(asset)
	if err != nil {
		return err
	}

	return a.runQuery(ctx, env, kind, id)
}

// environment holds everything built for one invocation once the config is known.
type environment struct {
	cfg      *domain.Config
	cwd      string
	analyzer *analysis.Analyzer
	renderer ports.Renderer
	shutdown func(context.Context) error
}

func (e *environment) close(ctx context.Context) {
	if e.shutdown != nil {
		_ = e.shutdown(ctx)
	}
}

// prepare loads the configuration and builds the renderer and the analyzer.
func (a *App) prepare(opts Options) (*environment, error) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.JSONLog)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.loadConfig(cwd, opts)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	env := &environment{cfg: cfg, cwd: cwd}
	if opts.Trace {
		env.shutdown = telemetry.Install(telemetry.NewBridge(a.logger))
	}

	env.renderer = a.newRenderer(cfg, opts)
	resolver := assetdb.New(cfg, a.walker, a.hasher)
	env.analyzer = analysis.NewAnalyzer(
		cfg,
		resolver,
		assetdb.NewAtlasLoader(cfg),
		fs.NewLister(cfg.Root, cfg.AtlasExtension),
		a.logger,
		a.tracer,
		env.renderer,
	)
	return env, nil
}

func (a *App) loadConfig(cwd string, opts Options) (*domain.Config, error) {
	var cfg *domain.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = a.configLoader.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = a.configLoader.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	if opts.Root == "" {
		return cfg, nil
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", opts.Root)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrPathStatFailed, err), "invalid root"), "root", root)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "root is not a directory"), "root", root)
	}
	cfg.Root = root
	return cfg, nil
}

func (a *App) linearRenderer(cfg *domain.Config, opts Options) ports.Renderer {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)

	profile := output.ColorProfileANSI
	switch mode {
	case detector.ModeInteractive:
		profile = output.ColorProfile
	case detector.ModePlain:
		profile = output.ColorProfileNone
	}

	format := linear.FormatText
	if opts.Format == string(linear.FormatJSON) {
		format = linear.FormatJSON
	}

	return linear.NewRenderer(a.stdout, a.stderr,
		linear.WithProfile(profile),
		linear.WithInteractive(mode == detector.ModeInteractive),
		linear.WithFormat(format),
		linear.WithHighlightPrefix(cfg.DiffHighlightPrefix),
		linear.WithRoot(cfg.Root),
	)
}

// resolveAsset turns a command line path into an asset id relative to the project root.
// Relative paths are taken from the root first and from the working directory second.
func (e *environment) resolveAsset(arg string) (domain.AssetID, error) {
	if strings.TrimSpace(arg) == "" {
		return domain.AssetID{}, nil
	}

	p := arg
	if !filepath.IsAbs(p) {
		if _, err := os.Stat(filepath.Join(e.cfg.Root, p)); err != nil {
			if _, err := os.Stat(filepath.Join(e.cwd, p)); err == nil {
				p = filepath.Join(e.cwd, p)
			}
		}
	}

	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(e.cfg.Root, p)
		if err != nil {
			return domain.AssetID{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrAssetOutsideRoot, err), "cannot analyse asset"), "path", arg)
		}
		p = rel
	}

	id := domain.NewAssetID(p)
	if s := id.String(); s == ".." || strings.HasPrefix(s, "../") {
		return domain.AssetID{}, zerr.With(zerr.Wrap(domain.ErrAssetOutsideRoot, "cannot analyse asset"), "path", arg)
	}
	return id, nil
}

// runQuery dispatches one query and renders its result.
func (a *App) runQuery(ctx context.Context, env *environment, kind domain.QueryKind, id domain.AssetID) error {
	var result *domain.QueryResult
	var err error

	switch kind {
	case domain.QueryForward:
		result, err = env.analyzer.AnalyzeForwardDependencies(ctx, id)
	case domain.QueryReferences:
		result, err = env.analyzer.AnalyzeReferences(ctx, id)
	case domain.QueryAtlasMembers:
		result, err = env.analyzer.AnalyzeAtlasMembers(ctx, id)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "unsupported query"), "command", string(kind))
	}

	if err != nil {
		if errors.Is(err, domain.ErrNoReferences) {
			a.logger.Warn(fmt.Sprintf("no references to %s", id))
			return nil
		}
		return err
	}

	if err := env.renderer.RenderResult(result); err != nil {
		return err
	}
	a.logger.Info(completionMessage(kind, id))
	return nil
}

func completionMessage(kind domain.QueryKind, id domain.AssetID) string {
	switch kind {
	case domain.QueryReferences:
		return fmt.Sprintf("analysed references of %s", id)
	case domain.QueryAtlasMembers:
		return fmt.Sprintf("analysed atlas members of %s", id)
	default:
		return fmt.Sprintf("analysed dependencies of %s", id)
	}
}
