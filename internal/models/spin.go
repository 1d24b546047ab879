package models

// Color is one of the four mat colors
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
)

// Limb is one of the four body parts a spin can call
type Limb string

const (
	LimbLeftHand  Limb = "Left Hand"
	LimbRightHand Limb = "Right Hand"
	LimbLeftFoot  Limb = "Left Foot"
	LimbRightFoot Limb = "Right Foot"
)

// Colors is the fixed palette, in display order
var Colors = []Color{ColorRed, ColorBlue, ColorYellow, ColorGreen}

// Limbs is the fixed limb set, in display order
var Limbs = []Limb{LimbLeftHand, LimbRightHand, LimbLeftFoot, LimbRightFoot}

// SpinResult is one randomized draw of (color, limb) for the current player.
// Results are generated fresh on every spin and never persisted.
type SpinResult struct {
	// Color is the mat color the limb goes on
	Color Color `json:"color"`

	// Limb is the body part being placed
	Limb Limb `json:"limb"`
}

// IsHand reports whether the limb is a hand (used to pick the display icon)
func (r SpinResult) IsHand() bool {
	return r.Limb == LimbLeftHand || r.Limb == LimbRightHand
}
