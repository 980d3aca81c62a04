package delaunay

import (
	"embed"
	"log"
	"os"
	"strconv"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs point sets. This is not a
// full (or even correct) svg parser; it finds every circle element and takes
// its center as a point. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		points = append(points, pt(x, y))
	}
	return points
}

func TestFixtures(t *testing.T) {
	for _, name := range []string{"cloud", "ring"} {
		name := name
		t.Run(name, func(t *testing.T) {
			points := LoadFixture(name)

			triangles, err := Triangulate(points)
			require.NoError(t, err)
			require.NotEmpty(t, triangles)

			assertDelaunay(t, points, triangles)
			assertVertexClosure(t, points, triangles)

			if os.Getenv("DELAUNAY_DEBUG_DRAW") != "" {
				t.Logf("\n%s", TriangleList(triangles))
				TriangleList(triangles).dbgDraw(4)
			}
		})
	}
}
