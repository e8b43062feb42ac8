// Package linear provides a synchronous, line-oriented renderer for query results.
package linear

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/depscope/internal/ui/output"
	"go.trai.ch/depscope/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Format selects how results are written to stdout.
type Format string

const (
	// FormatText prints a count header followed by one entry per line.
	FormatText Format = "text"
	// FormatJSON prints one JSON document per result.
	FormatJSON Format = "json"
)

const progressWidth = 24

// Renderer implements ports.Renderer. Results go to stdout; progress and
// notices go to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output

	format          Format
	interactive     bool
	highlightPrefix string
	root            string

	mu        sync.Mutex
	drawn     bool
	lastShown int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFormat sets the result format.
func WithFormat(f Format) Option {
	return func(r *Renderer) { r.format = f }
}

// WithInteractive enables the redrawn progress line on stderr.
func WithInteractive(enabled bool) Option {
	return func(r *Renderer) { r.interactive = enabled }
}

// WithHighlightPrefix marks result entries whose path contains prefix.
func WithHighlightPrefix(prefix string) Option {
	return func(r *Renderer) { r.highlightPrefix = prefix }
}

// WithRoot sets the project root used to flag entries missing on disk.
func WithRoot(root string) Option {
	return func(r *Renderer) { r.root = root }
}

// WithProfile overrides the color profile selector.
func WithProfile(profileFn func() termenv.Profile) Option {
	return func(r *Renderer) {
		r.out = output.NewWithProfile(r.stdout, profileFn)
		r.errOut = output.NewWithProfile(r.stderr, profileFn)
	}
}

// NewRenderer creates a new Renderer. Nil writers default to stdout and stderr.
func NewRenderer(stdout, stderr io.Writer, opts ...Option) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	r := &Renderer{
		stdout:    stdout,
		stderr:    stderr,
		format:    FormatText,
		lastShown: -1,
	}
	WithProfile(output.ColorProfileANSI)(r)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Update redraws the progress line. Only percentage changes cause a redraw.
func (r *Renderer) Update(fraction float64, current domain.AssetID) {
	if !r.interactive {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fraction = min(max(fraction, 0), 1)
	percent := int(fraction * 100)
	if percent == r.lastShown {
		return
	}
	r.lastShown = percent

	filled := int(fraction * progressWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)

	r.errOut.ClearLine()
	_, _ = fmt.Fprintf(r.stderr, "\r%s %3d%% %s",
		output.Paint(r.errOut, bar, style.Iris), percent,
		output.Paint(r.errOut, current.String(), style.Muted))
	r.drawn = true
}

// Done clears the progress line.
func (r *Renderer) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.drawn {
		r.errOut.ClearLine()
		_, _ = io.WriteString(r.stderr, "\r")
	}
	r.drawn = false
	r.lastShown = -1
}

// Notice writes a status line to stderr.
func (r *Renderer) Notice(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stderr, output.Paint(r.errOut, style.Check+" "+msg, style.Muted))
}

type jsonResult struct {
	Kind    domain.QueryKind `json:"kind"`
	Subject domain.AssetID   `json:"subject"`
	Count   int              `json:"count"`
	Items   []string         `json:"items"`
}

// RenderResult writes result to stdout in the configured format.
func (r *Renderer) RenderResult(result *domain.QueryResult) error {
	if result == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format == FormatJSON {
		items := result.Items
		if items == nil {
			items = []string{}
		}
		enc := json.NewEncoder(r.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jsonResult{
			Kind:    result.Kind,
			Subject: result.Subject,
			Count:   len(items),
			Items:   items,
		}); err != nil {
			return zerr.Wrap(err, "failed to encode result")
		}
		return nil
	}

	var sb strings.Builder
	if len(result.Items) == 0 {
		sb.WriteString(output.Paint(r.out, "no related assets", style.Muted))
	} else {
		sb.WriteString(output.Paint(r.out, fmt.Sprintf("%d related asset(s)", len(result.Items)), style.Muted))
	}
	sb.WriteByte('\n')

	for _, item := range result.Items {
		sb.WriteString("  ")
		sb.WriteString(r.paintItem(result.Kind, item))
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(r.stdout, sb.String()); err != nil {
		return zerr.Wrap(err, "failed to write result")
	}
	return nil
}

// paintItem colors an entry: highlighted when its path contains the diff prefix, distinct when
// the file no longer exists. Atlas member names are not paths and stay plain.
func (r *Renderer) paintItem(kind domain.QueryKind, item string) string {
	if kind == domain.QueryAtlasMembers {
		return item
	}
	if r.highlightPrefix != "" && strings.Contains(item, r.highlightPrefix) {
		return output.Paint(r.out, item, style.Highlighted)
	}
	if r.root != "" {
		if _, err := os.Stat(filepath.Join(r.root, filepath.FromSlash(item))); err != nil {
			return output.Paint(r.out, item, style.Missing)
		}
	}
	return item
}
