package delaunay

import (
	"fmt"
	"strings"

	"github.com/christianzski/delaunay/dbg"
	"github.com/logrusorgru/aurora"
)

// This is for debugging purposes only

func (tl TriangleList) String() string {
	parts := make([]string, 0, len(tl))
	for _, t := range tl {
		parts = append(parts, fmt.Sprintf("%s { (%g, %g) (%g, %g) (%g, %g) }",
			dbgName(t), t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y))
	}
	return strings.Join(parts, "\n")
}

func dbgName(t Triangle) string {
	// Triangles reaching a symbolic infinity are colored cyan, degenerate
	// finite ones red.
	name := dbg.Name(t)
	if !t.A.Finite() || !t.B.Finite() || !t.C.Finite() {
		name = aurora.Cyan(name).String()
	} else if !t.Valid() {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
