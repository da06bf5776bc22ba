package style_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/style"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := style.NewPrinter(&buf, false)

	p.Info("Watching %s for changes...", "/tmp/k.json")
	p.Success("Successfully added new rule: %q", "f13 to a")
	p.Warning("no backup")
	p.Error(errors.Wrap(fmt.Errorf("permission denied"), errors.ErrIO, "failed to write /tmp/k.json"))
	p.Error(nil)

	assert.Equal(t, "Watching /tmp/k.json for changes...\n"+
		"Successfully added new rule: \"f13 to a\"\n"+
		"Warning: no backup\n"+
		"Error: failed to write /tmp/k.json: permission denied\n", buf.String())
}

func TestPrinter_ColorKeepsMessage(t *testing.T) {
	var buf bytes.Buffer
	p := style.NewPrinter(&buf, true)

	p.Success("done")
	p.Error(errors.New(errors.ErrNoActiveProfile, "no active profile"))

	assert.Contains(t, buf.String(), "done")
	assert.Contains(t, buf.String(), "no active profile")
	assert.Contains(t, buf.String(), "Error:")
}

func TestIsColorTerminal(t *testing.T) {
	assert.False(t, style.IsColorTerminal(nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if assert.NoError(t, err) {
		defer func() { _ = f.Close() }()
		assert.False(t, style.IsColorTerminal(f))
	}

	t.Setenv("NO_COLOR", "1")
	assert.False(t, style.IsColorTerminal(os.Stdout))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    x", style.Indent("x", 2))
}
