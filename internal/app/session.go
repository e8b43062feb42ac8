package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/depscope/internal/adapters/watcher"
	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const sessionHelp = `commands:
  deps <asset>    list what the asset depends on
  refs <asset>    list what references the asset
  atlas <asset>   list the members of an atlas
  status          show the state of the session caches
  reset           drop every cache and index
  help            show this help
  quit            leave the session
`

// SessionOptions configures an interactive session.
type SessionOptions struct {
	Options
	// Watch reports file changes under the project root while the session runs.
	Watch bool
}

// Session runs a line-oriented session reading commands from in. One analyzer
// serves every command, so its caches and indexes persist until reset.
// Query errors are reported and the session continues.
func (a *App) Session(ctx context.Context, in io.Reader, opts SessionOptions) error {
	env, err := a.prepare(opts.Options)
	if err != nil {
		return err
	}
	defer env.close(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if opts.Watch {
		g.Go(func() error {
			return a.watch(gctx, env)
		})
	}

	g.Go(func() error {
		defer cancel()
		return a.repl(gctx, env, readLines(in))
	})

	return g.Wait()
}

// readLines feeds the lines of in to a channel, closing it at EOF.
// The reader goroutine may outlive the session while blocked on input.
func readLines(in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func (a *App) repl(ctx context.Context, env *environment, lines <-chan string) error {
	for {
		_, _ = io.WriteString(a.stderr, "depscope> ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
			if !ok {
				return nil
			}
		}

		if quit := a.execute(ctx, env, line); quit {
			return nil
		}
	}
}

// execute runs one session command and reports whether the session should end.
func (a *App) execute(ctx context.Context, env *environment, line string) bool {
	command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "":
		return false
	case "quit", "exit", "q":
		return true
	case "help", "?":
		_, _ = io.WriteString(a.stdout, sessionHelp)
		return false
	case "reset":
		env.analyzer.Reset()
		env.renderer.Notice("session reset; indexes will be rebuilt on demand")
		return false
	case "status":
		env.renderer.Notice(statusLine(env))
		return false
	}

	kind, ok := domain.ParseQueryKind(command)
	if !ok {
		a.logger.Error(zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "type help for a list of commands"), "command", command))
		return false
	}

	id, err := env.resolveAsset(arg)
	if err == nil {
		err = a.runQuery(ctx, env, kind, id)
	}
	if err != nil {
		a.logger.Error(err)
	}
	return false
}

func statusLine(env *environment) string {
	state := env.analyzer.State()
	return fmt.Sprintf("reverse index: %s (%d assets), atlas index: %s (%d atlases), cached dependency queries: %d",
		state.ReverseIndex, state.IndexedAssets, state.AtlasIndex, state.Atlases, state.CachedForward)
}

// watch reports debounced file changes until ctx is done. It never touches the
// session caches; the user decides when to reset.
func (a *App) watch(ctx context.Context, env *environment) error {
	w, err := a.newWatcher(env.cfg.Ignore, a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, env.cfg.Root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start watcher"), "root", env.cfg.Root)
	}

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		env.renderer.Notice(fmt.Sprintf("%d path(s) changed; indexes are stale until reset", len(paths)))
	})

	for event := range w.Events() {
		debouncer.Add(event.Path)
	}
	debouncer.Flush()

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
