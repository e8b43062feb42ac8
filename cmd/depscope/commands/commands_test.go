package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depscope/cmd/depscope/commands"
	"go.trai.ch/depscope/internal/app"
	"go.trai.ch/depscope/internal/build"
	"go.trai.ch/depscope/internal/core/domain"
)

type queryCall struct {
	kind  domain.QueryKind
	asset string
	opts  app.Options
}

type mockApp struct {
	queries   []queryCall
	queryErr  error
	session   *app.SessionOptions
	sessionIn string
}

func (m *mockApp) Query(_ context.Context, kind domain.QueryKind, asset string, opts app.Options) error {
	m.queries = append(m.queries, queryCall{kind: kind, asset: asset, opts: opts})
	return m.queryErr
}

func (m *mockApp) Session(_ context.Context, in io.Reader, opts app.SessionOptions) error {
	m.session = &opts
	data, _ := io.ReadAll(in)
	m.sessionIn = string(data)
	return nil
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	cli.SetArgs(args)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Query(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantKind  domain.QueryKind
		wantAsset string
	}{
		{name: "bare asset runs dependencies", args: []string{"Assets/a.prefab"}, wantKind: domain.QueryForward, wantAsset: "Assets/a.prefab"},
		{name: "deps", args: []string{"deps", "Assets/a.prefab"}, wantKind: domain.QueryForward, wantAsset: "Assets/a.prefab"},
		{name: "refs", args: []string{"refs", "Assets/a.png"}, wantKind: domain.QueryReferences, wantAsset: "Assets/a.png"},
		{name: "references alias", args: []string{"references", "Assets/a.png"}, wantKind: domain.QueryReferences, wantAsset: "Assets/a.png"},
		{name: "atlas", args: []string{"atlas", "Assets/Fix/Atlas/ui.asset"}, wantKind: domain.QueryAtlasMembers, wantAsset: "Assets/Fix/Atlas/ui.asset"},
		{name: "missing asset is passed through", args: []string{"refs"}, wantKind: domain.QueryReferences, wantAsset: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			require.Len(t, m.queries, 1)
			assert.Equal(t, tt.wantKind, m.queries[0].kind)
			assert.Equal(t, tt.wantAsset, m.queries[0].asset)
		})
	}
}

func TestCommands_Flags(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "refs", "Assets/a.png",
		"-c", "/p/depscope.yaml", "-r", "/p", "--output", "plain", "--format", "json", "--json-log", "--trace")
	require.NoError(t, err)

	require.Len(t, m.queries, 1)
	assert.Equal(t, app.Options{
		ConfigPath: "/p/depscope.yaml",
		Root:       "/p",
		OutputMode: "plain",
		Format:     "json",
		JSONLog:    true,
		Trace:      true,
	}, m.queries[0].opts)
}

func TestCommands_QueryError(t *testing.T) {
	m := &mockApp{queryErr: errors.New("simulated error")}
	_, err := execute(t, m, "deps", "Assets/a.prefab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_NoArgsShowsHelp(t *testing.T) {
	m := &mockApp{}
	out, err := execute(t, m)
	require.NoError(t, err)
	assert.Empty(t, m.queries)
	assert.Contains(t, out, "Usage:")
}

func TestCommands_TooManyArgs(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "deps", "a", "b")
	require.Error(t, err)
	assert.Empty(t, m.queries)
}

func TestCommands_Session(t *testing.T) {
	m := &mockApp{}
	cli := commands.New(m)
	cli.SetArgs([]string{"session", "--watch", "--output", "linear"})
	cli.SetInput(strings.NewReader("deps Assets/a.prefab\nquit\n"))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, m.session)
	assert.True(t, m.session.Watch)
	assert.Equal(t, "linear", m.session.OutputMode)
	assert.Equal(t, "deps Assets/a.prefab\nquit\n", m.sessionIn)
}

func TestCommands_Version(t *testing.T) {
	m := &mockApp{}
	out, err := execute(t, m, "version")
	require.NoError(t, err)
	assert.Equal(t, "depscope version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)
}
