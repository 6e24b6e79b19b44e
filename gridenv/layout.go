package gridenv

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Hole markers accepted when decoding a layout from YAML.
// Integers decode to open cells; any of these strings decodes to a hole.
var holeMarkers = map[string]struct{}{
	"h":    {},
	"hole": {},
	"x":    {},
}

// UnmarshalYAML decodes a single cell: an integer scalar becomes an open
// cell, a hole marker string ("H", "hole", "x", case-insensitive)
// becomes a hole. Anything else yields ErrBadCell.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected scalar, got %v (line %d)", ErrBadCell, node.Kind, node.Line)
	}
	var v int
	if err := node.Decode(&v); err == nil {
		*c = OpenCell(v)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: %v", ErrBadCell, err)
	}
	if _, ok := holeMarkers[strings.ToLower(s)]; !ok {
		return fmt.Errorf("%w: %q (line %d)", ErrBadCell, s, node.Line)
	}
	*c = HoleCell()
	return nil
}

// MarshalYAML encodes a cell back to its scalar form: the integer value
// for open cells, "H" for holes.
func (c Cell) MarshalYAML() (interface{}, error) {
	if c.Hole {
		return "H", nil
	}
	return c.Value, nil
}

// ParseLayout decodes a YAML sequence of rows into a Layout, e.g.:
//
//	- [0, 0, 0, 0, 0, 0, 0]
//	- [0, H, 0, 0, 0, H, 0]
//	- [0, 0, 0, 5, 0, 0, 0]
//	- [0, 0, 0, 0, 0, 0, 10]
//
// Decoding does not validate shape; New rejects empty or ragged layouts.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("gridenv: decode layout: %w", err)
	}
	return l, nil
}
