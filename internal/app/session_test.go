package app_test

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depscope/internal/app"
	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/depscope/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestApp_SessionKeepsCachesUntilReset(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrUnknownCommand)
	}).Times(1)

	input := strings.Join([]string{
		"refs Assets/UI/leaf.png",
		"status",
		"bogus Assets/UI/leaf.png",
		"reset",
		"status",
		"quit",
		"deps Assets/UI/panel.prefab",
	}, "\n")

	err := f.app.Session(context.Background(), strings.NewReader(input), app.SessionOptions{Options: plain()})
	require.NoError(t, err)

	assert.Contains(t, f.stdout.String(), "3 related asset(s)")
	assert.NotContains(t, f.stdout.String(), "2 related asset(s)", "commands after quit must not run")

	errOut := f.stderr.String()
	assert.Contains(t, errOut, "reverse index: built (4 assets), atlas index: built (1 atlases)")
	assert.Contains(t, errOut, "session reset")
	assert.Contains(t, errOut, "reverse index: uninitialized (0 assets), atlas index: uninitialized (0 atlases)")
}

func TestApp_SessionContinuesAfterErrors(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Error(gomock.Any()).Times(1)
	f.logger.EXPECT().Warn("no references to Assets/ghost.png").Times(1)

	input := "atlas Assets/UI/panel.prefab\nrefs Assets/ghost.png\natlas Assets/Fix/Atlas/common.asset\n"

	err := f.app.Session(context.Background(), strings.NewReader(input), app.SessionOptions{Options: plain()})
	require.NoError(t, err)

	assert.Equal(t, "2 related asset(s)\n  leaf\n  button\n", f.stdout.String())
}

func TestApp_SessionHelp(t *testing.T) {
	f := newFixture(t)

	err := f.app.Session(context.Background(), strings.NewReader("help\n"), app.SessionOptions{Options: plain()})
	require.NoError(t, err)

	assert.Contains(t, f.stdout.String(), "deps <asset>")
	assert.Contains(t, f.stdout.String(), "reset")
}

func TestApp_SessionWatchReportsStaleness(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)

	w.EXPECT().Start(gomock.Any(), f.root).Return(nil)
	w.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for _, p := range []string{"Assets/UI/leaf.png", "Assets/UI/leaf.png.meta", "Assets/UI/leaf.png"} {
			if !yield(ports.WatchEvent{Path: f.root + "/" + p, Operation: ports.OpWrite}) {
				return
			}
		}
	}))
	w.EXPECT().Stop().Return(nil)

	f.app.WithWatcherFactory(func(ignore []string, _ ports.Logger) (ports.Watcher, error) {
		assert.Contains(t, ignore, "Library")
		return w, nil
	})

	err := f.app.Session(context.Background(), strings.NewReader(""),
		app.SessionOptions{Options: plain(), Watch: true})
	require.NoError(t, err)

	assert.Contains(t, f.stderr.String(), "2 path(s) changed; indexes are stale until reset")
}

func TestApp_SessionWatcherFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("inotify limit reached")

	f.app.WithWatcherFactory(func([]string, ports.Logger) (ports.Watcher, error) {
		return nil, boom
	})

	err := f.app.Session(context.Background(), strings.NewReader("status\n"),
		app.SessionOptions{Options: plain(), Watch: true})
	require.ErrorIs(t, err, boom)
}
