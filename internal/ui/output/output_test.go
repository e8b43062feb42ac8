package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/depscope/internal/ui/output"
	"go.trai.ch/depscope/internal/ui/style"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	// The detected profile depends on the environment; only check it is valid.
	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestColorProfileANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ColorProfileANSI())

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNewWithProfile_NilWriter(t *testing.T) {
	// Defaults to stderr; only check it does not panic.
	out := output.NewWithProfile(nil, output.ColorProfile)
	assert.NotNil(t, out)
}

func TestPaint(t *testing.T) {
	var buf bytes.Buffer

	plain := output.NewWithProfile(&buf, output.ColorProfileNone)
	assert.Equal(t, "Assets/a.png", output.Paint(plain, "Assets/a.png", style.Red))

	colored := output.NewWithProfile(&buf, func() termenv.Profile { return termenv.TrueColor })
	painted := output.Paint(colored, "Assets/a.png", style.Red)
	assert.Contains(t, painted, "Assets/a.png")
	assert.Contains(t, painted, "\x1b[")
}
