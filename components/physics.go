package components

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}
