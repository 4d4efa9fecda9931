package solver

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrInvalidControls = errors.New("invalid simulation controls")
)

// Geometry describes the rectangular coolant channel over the heated
// substrate and its 1-D discretization along the flow direction.
type Geometry struct {
	Length float64 `json:"length" yaml:"length"` // [m] along the flow direction
	Width  float64 `json:"width" yaml:"width"`   // [m]
	Height float64 `json:"height" yaml:"height"` // [m] channel/film height
	Nodes  int     `json:"nodes" yaml:"nodes"`
}

// DefaultGeometry is the benchmark channel: 10 mm x 5 mm x 500 µm, 50 nodes.
func DefaultGeometry() Geometry {
	return Geometry{
		Length: 0.01,
		Width:  0.005,
		Height: 0.0005,
		Nodes:  50,
	}
}

func (g Geometry) Validate() error {
	if g.Length <= 0 || g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: channel dimensions must be positive, got %g x %g x %g",
			ErrInvalidGeometry, g.Length, g.Width, g.Height)
	}
	// Central differences need at least one interior node
	if g.Nodes < 3 {
		return fmt.Errorf("%w: need at least 3 nodes, got %d", ErrInvalidGeometry, g.Nodes)
	}
	return nil
}

// DX returns the grid spacing [m].
func (g Geometry) DX() float64 {
	return g.Length / float64(g.Nodes)
}

// HydraulicDiameter returns 2·W·H/(W+H) [m], the effective diameter that
// lets circular-pipe correlations apply to the rectangular channel.
func (g Geometry) HydraulicDiameter() float64 {
	return 2 * g.Width * g.Height / (g.Width + g.Height)
}
