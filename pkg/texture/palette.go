// Package texture renders deterministic placeholder textures: a colored
// square with a border and a single identifying letter, colored by keyword.
package texture

import (
	"image/color"
	"strings"
)

// Rule associates a keyword with a fill color. Matching is a case-insensitive
// substring check over an ordered table: the first rule that matches wins.
type Rule struct {
	Keyword string
	Color   color.RGBA
}

// rules lists material rules before category rules. The precedence is
// deliberate and load-bearing: "copper_ore" must render copper-colored, not
// generic ore-colored, and "rubber_wood" renders as the rubber material even
// though a rubber category color also exists further down.
var rules = []Rule{
	// materials
	{"copper", color.RGBA{184, 115, 51, 255}},
	{"tin", color.RGBA{180, 180, 180, 255}},
	{"lead", color.RGBA{70, 70, 90, 255}},
	{"uranium", color.RGBA{50, 200, 50, 255}},
	{"gold", color.RGBA{255, 215, 0, 255}},
	{"iron", color.RGBA{200, 200, 200, 255}},
	{"bronze", color.RGBA{205, 127, 50, 255}},
	{"coal", color.RGBA{40, 40, 40, 255}},
	{"rubber", color.RGBA{30, 30, 30, 255}},

	// categories
	{"generator", color.RGBA{100, 100, 100, 255}},
	{"solar", color.RGBA{100, 100, 100, 255}},
	{"wind", color.RGBA{100, 100, 100, 255}},
	{"macerator", color.RGBA{120, 120, 120, 255}},
	{"furnace", color.RGBA{120, 120, 120, 255}},
	{"compressor", color.RGBA{120, 120, 120, 255}},
	{"extractor", color.RGBA{120, 120, 120, 255}},
	{"recycler", color.RGBA{120, 120, 120, 255}},
	{"cable", color.RGBA{180, 120, 60, 255}},
	{"ore", color.RGBA{139, 119, 101, 255}},
	{"resin", color.RGBA{80, 60, 40, 255}},
	{"dust", color.RGBA{200, 180, 150, 255}},
	{"ingot", color.RGBA{220, 150, 50, 255}},
	{"plate", color.RGBA{220, 150, 50, 255}},
	{"circuit", color.RGBA{50, 150, 50, 255}},
	{"nano", color.RGBA{50, 50, 80, 255}},
	{"quantum", color.RGBA{100, 200, 255, 255}},
	{"reactor", color.RGBA{50, 200, 50, 255}},
	{"heat", color.RGBA{50, 200, 50, 255}},
	{"coolant", color.RGBA{50, 200, 50, 255}},
}

// defaultColor is the fallback for names no rule matches.
var defaultColor = color.RGBA{128, 128, 128, 255}

// ColorFor picks the fill color for a texture name.
func ColorFor(name string) color.RGBA {
	lower := strings.ToLower(name)
	for _, r := range rules {
		if strings.Contains(lower, r.Keyword) {
			return r.Color
		}
	}
	return defaultColor
}

// Rules exposes a copy of the keyword table in precedence order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
