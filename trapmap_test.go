package trapmap

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	diamond := []Point{{X: 0, Y: -5}, {X: 5, Y: 0.5}, {X: 0, Y: 5}, {X: -5, Y: -0.5}}
	m, err := Decompose(diamond)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.True(t, m.Contains(Point{X: 0, Y: 0}))
	assert.True(t, m.Contains(Point{X: 3, Y: 0.3}))
	assert.False(t, m.Contains(Point{X: 4, Y: 4}))
	assert.False(t, m.Contains(Point{X: 0, Y: 5.5}))
}

func TestDecomposeWithHole(t *testing.T) {
	outer := []Point{{X: 0, Y: 0}, {X: 10, Y: 0.5}, {X: 9.5, Y: 10}, {X: -0.5, Y: 9.5}}
	hole := []Point{{X: 3, Y: 3.2}, {X: 3.2, Y: 6.8}, {X: 6.8, Y: 7}, {X: 7, Y: 3.4}}
	m, err := Decompose(outer, hole)
	require.NoError(t, err)

	assert.True(t, m.Contains(Point{X: 1, Y: 5}))
	assert.False(t, m.Contains(Point{X: 5, Y: 5}))
}

func TestDecomposeErrors(t *testing.T) {
	t.Run("horizontal edge", func(t *testing.T) {
		m, err := Decompose([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
		require.Error(t, err)
		assert.Nil(t, m)
		assert.True(t, errors.Is(err, ErrHorizontalEdge))
	})
	t.Run("degenerate loop", func(t *testing.T) {
		_, err := Decompose([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDegenerateLoop))
	})
	t.Run("no loops", func(t *testing.T) {
		_, err := Decompose()
		assert.Error(t, err)
	})
}

func TestContains(t *testing.T) {
	diamond := []Point{{X: 0, Y: -5}, {X: 5, Y: 0.5}, {X: 0, Y: 5}, {X: -5, Y: -0.5}}
	inside, err := Contains(Point{X: 0, Y: 0}, diamond)
	require.NoError(t, err)
	assert.True(t, inside)

	inside, err = Contains(Point{X: 4.9, Y: 4.9}, diamond)
	require.NoError(t, err)
	assert.False(t, inside)

	_, err = Contains(Point{X: 0, Y: 0}, []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	assert.True(t, errors.Is(err, ErrHorizontalEdge))
}
