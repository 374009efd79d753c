package snapshot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ripple-toggle/internal/config"
)

func TestRunSnapshotSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.svg")
	so := Options{Ripple: config.DefaultOptions(), At: 200 * time.Millisecond, Out: out, Size: 128}
	require.NoError(t, Run(so))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<radialGradient")
}

func TestRunSnapshotPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	so := Options{Ripple: config.DefaultOptions(), Format: "png", Out: out, Size: 64}
	so.Ripple.Debug = true
	require.NoError(t, Run(so))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunSnapshotRejectsBadInput(t *testing.T) {
	base := Options{Ripple: config.DefaultOptions(), Out: filepath.Join(t.TempDir(), "x.gif"), Size: 64}
	assert.Error(t, Run(base), "unknown format")

	bad := base
	bad.Size = 0
	assert.Error(t, Run(bad))

	bad = base
	bad.At = -time.Second
	assert.Error(t, Run(bad))

	bad = base
	bad.Format = "png"
	bad.Out = "-"
	assert.Error(t, Run(bad))
}

func TestRunSnapshotToStdout(t *testing.T) {
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	defer func() { stdout = prev }()

	so := DefaultOptions()
	so.Out = "-"
	so.Format = "SVG"
	require.NoError(t, Run(so))
	assert.Contains(t, buf.String(), "</svg>")
}
