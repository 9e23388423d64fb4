package seidel

import (
	"embed"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"
)

// Test polygons live as SVGs under fixtures/, looked up by name sans
// extension. Each file must hold exactly one <polygon>; its points attribute
// becomes a loop, reversed if needed so tests always get CCW input.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) []Point {
	t.Helper()

	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "fixture %q", name)
	defer fixture.Close()

	root, err := svgparser.Parse(fixture, true)
	require.NoError(t, err, "parsing fixture %q", name)
	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 1, "fixture %q must hold exactly one polygon", name)

	fields := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(fields))
	for _, field := range fields {
		pair := strings.SplitN(field, ",", 2)
		require.Len(t, pair, 2, "malformed point %q in fixture %q", field, name)
		x, err := strconv.ParseFloat(pair[0], 64)
		require.NoError(t, err, "point %q in fixture %q", field, name)
		y, err := strconv.ParseFloat(pair[1], 64)
		require.NoError(t, err, "point %q in fixture %q", field, name)
		points = append(points, Point{x, y})
	}
	require.GreaterOrEqual(t, len(points), 3, "fixture %q is degenerate", name)

	loop := Polygon{Points: points}
	if !loop.IsCCW() {
		loop = loop.Reverse()
	}
	return loop.Points
}
