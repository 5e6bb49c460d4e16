package component

// ColorClass represents semantic color categories for rendering
// Renderers resolve these to concrete colors
type ColorClass uint8

// Semantic colors
const (
	ColorNone ColorClass = iota
	ColorNormal
	ColorCombat
	ColorHit
	ColorDestroyed
	ColorEffect
)

func (c ColorClass) String() string {
	switch c {
	case ColorNormal:
		return "normal"
	case ColorCombat:
		return "combat"
	case ColorHit:
		return "hit"
	case ColorDestroyed:
		return "destroyed"
	case ColorEffect:
		return "effect"
	}
	return "none"
}

// Visual is the renderer-facing handle of an entity
// Renderers read it; only the owning entity writes it
type Visual struct {
	Transform
	Color ColorClass

	// Aim is a secondary yaw for a rotor or turret head, radians
	Aim float64
}

// NewVisual creates a visual at the identity pose
func NewVisual(color ColorClass) *Visual {
	return &Visual{
		Transform: IdentityTransform(),
		Color:     color,
	}
}

// MarshalText encodes the class by name
func (c ColorClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
