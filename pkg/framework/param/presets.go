package param

import "github.com/justyntemme/ofxgo/pkg/ofx"

// Common parameter shapes for image effects.

// Mix creates a 0..1 blend between the source and the processed result,
// defaulting to fully processed.
func Mix(name string) *DoubleBuilder {
	return Double(name).
		Label("Mix").
		Range(0, 1).
		DisplayRange(0, 1).
		Default(1).
		Increment(0.01).
		Digits(2)
}

// Amount creates a plain 0..1 strength control.
func Amount(name, label string, def float64) *DoubleBuilder {
	return Double(name).
		Label(label).
		Range(0, 1).
		DisplayRange(0, 1).
		Default(def).
		Type(ofx.DoubleTypePlain)
}

// Angle creates an angle in degrees.
func Angle(name, label string) *DoubleBuilder {
	return Double(name).
		Label(label).
		Range(-360, 360).
		DisplayRange(-180, 180).
		Default(0).
		Type(ofx.DoubleTypeAngle)
}

// Scale creates a scale factor where 1 means unchanged.
func Scale(name, label string) *DoubleBuilder {
	return Double(name).
		Label(label).
		Range(0, 100).
		DisplayRange(0, 4).
		Default(1).
		Type(ofx.DoubleTypeScale)
}

// Toggle creates a checkbox.
func Toggle(name, label string, def bool) *BoolBuilder {
	return Bool(name).
		Label(label).
		Default(def).
		Animates(false)
}

// Channels creates the usual per-channel enable group.
func Channels(name string) *GroupBuilder {
	return Group(name).
		Label("Channels").
		Open(true).
		Children(
			Toggle("processR", "R", true),
			Toggle("processG", "G", true),
			Toggle("processB", "B", true),
			Toggle("processA", "A", false),
		)
}
