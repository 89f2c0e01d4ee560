// Package gamemath holds the world geometry shared by the gameplay systems.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

// Plane is one of the two vertically stacked worlds.
type Plane int

const (
	Upper Plane = iota
	Lower
)

func (p Plane) String() string {
	switch p {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	}
	return "unknown"
}

// Other returns the opposite plane.
func (p Plane) Other() Plane {
	if p == Upper {
		return Lower
	}
	return Upper
}

// ParsePlane maps "upper"/"lower" to a Plane. Anything else reports false.
func ParsePlane(s string) (Plane, bool) {
	switch s {
	case "upper":
		return Upper, true
	case "lower":
		return Lower, true
	}
	return Upper, false
}

// GroundY is the y of the player's center when standing on plane p.
// Upper's floor is the screen midline, Lower's is the bottom edge.
func GroundY(p Plane, screenH, halfH float64) float64 {
	if p == Lower {
		return screenH - halfH
	}
	return screenH/2 - halfH
}

// PlaneAt returns the plane whose band contains y.
func PlaneAt(y, screenH float64) Plane {
	if y >= screenH/2 {
		return Lower
	}
	return Upper
}

// TeleportOffset is the vertical shift applied when moving from one plane to
// another. Zero when from == to.
func TeleportOffset(from, to Plane, screenH float64) float64 {
	switch {
	case from == Upper && to == Lower:
		return screenH / 2
	case from == Lower && to == Upper:
		return -screenH / 2
	}
	return 0
}
