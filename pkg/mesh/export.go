package mesh

import (
	"fmt"
	"math"
	"strings"
)

// Export serializes a frame into the textual mesh-gradient literal placed on
// the clipboard: dimensions, row-major position pairs and RGB colors at three
// decimal places, and the smoothing flag. Alpha is not exported.
//
// Export never fails. A color whose components are not finite numbers is
// written as the transparent placeholder Color.clear instead of aborting.
func Export(f Frame) string {
	var sb strings.Builder

	sb.WriteString("MeshGradient(\n")
	fmt.Fprintf(&sb, "    width: %d,\n", f.Width)
	fmt.Fprintf(&sb, "    height: %d,\n", f.Height)

	sb.WriteString("    points: [\n")
	for y := 0; y < f.Height; y++ {
		sb.WriteString("        ")
		for x := 0; x < f.Width; x++ {
			p := f.Positions[y*f.Width+x]
			fmt.Fprintf(&sb, "[%.3f, %.3f]", p.X, p.Y)
			if y*f.Width+x < len(f.Positions)-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    ],\n")

	sb.WriteString("    colors: [\n")
	for i, c := range f.Colors {
		sb.WriteString("        " + formatColor(c))
		if i < len(f.Colors)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    ],\n")

	fmt.Fprintf(&sb, "    smoothsColors: %t\n", f.Smooth)
	sb.WriteString(")\n")

	return sb.String()
}

// formatColor writes one color entry, degrading to the transparent
// placeholder when a component cannot be represented.
func formatColor(c Color) string {
	if !finite(c.R) || !finite(c.G) || !finite(c.B) {
		return "Color.clear"
	}
	return fmt.Sprintf("Color(red: %.3f, green: %.3f, blue: %.3f)", c.R, c.G, c.B)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
