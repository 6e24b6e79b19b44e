package gridenv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridq/gridenv"
)

// TestParseLayout_Basic decodes a small YAML layout and checks cells.
func TestParseLayout_Basic(t *testing.T) {
	data := []byte(`
- [0, H, 5]
- [-3, hole, 10]
`)
	layout, err := gridenv.ParseLayout(data)
	require.NoError(t, err, "valid layout must decode")
	require.Len(t, layout, 2)
	require.Len(t, layout[0], 3)

	assert.Equal(t, gridenv.OpenCell(0), layout[0][0])
	assert.Equal(t, gridenv.HoleCell(), layout[0][1], "H is a hole marker")
	assert.Equal(t, gridenv.OpenCell(5), layout[0][2])
	assert.Equal(t, gridenv.OpenCell(-3), layout[1][0])
	assert.Equal(t, gridenv.HoleCell(), layout[1][1], "hole is a hole marker")
	assert.Equal(t, gridenv.OpenCell(10), layout[1][2])
}

// TestParseLayout_HoleMarkers accepts every marker case-insensitively.
func TestParseLayout_HoleMarkers(t *testing.T) {
	for _, marker := range []string{"H", "h", "X", "x", "hole", "HOLE"} {
		layout, err := gridenv.ParseLayout([]byte("- [" + marker + "]"))
		require.NoError(t, err, "marker %q must decode", marker)
		assert.True(t, layout[0][0].Hole, "marker %q must decode to a hole", marker)
	}
}

// TestParseLayout_BadCell rejects cells that are neither integers nor
// hole markers.
func TestParseLayout_BadCell(t *testing.T) {
	for _, data := range []string{"- [goal]", "- [1.5]", "- [[0]]"} {
		_, err := gridenv.ParseLayout([]byte(data))
		assert.ErrorIs(t, err, gridenv.ErrBadCell, "input %q must fail", data)
	}
}

// TestParseLayout_RoundTrip decodes a layout that New accepts and
// builds the expected world.
func TestParseLayout_RoundTrip(t *testing.T) {
	data := []byte(`
- [0, 0, 0]
- [0, H, 10]
`)
	layout, err := gridenv.ParseLayout(data)
	require.NoError(t, err)
	env, err := gridenv.New(layout)
	require.NoError(t, err)

	assert.Equal(t, 2, env.Rows())
	assert.Equal(t, 3, env.Cols())
	assert.True(t, env.IsTerminal(gridenv.Position{Row: 1, Col: 1}))
	assert.True(t, env.IsTerminal(gridenv.Position{Row: 1, Col: 2}))
	assert.Len(t, env.StartingPositions(), 4)
}
