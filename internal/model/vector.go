package model

// Vector3 is a position or orientation in world space.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}
