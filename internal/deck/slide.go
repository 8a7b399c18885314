// Package deck turns a quiz bank snapshot into an ordered sequence of
// slide records. Assembly is a pure pass over the bank: it never mutates
// its input and is total over any structurally valid bank, substituting
// empty strings for missing optional fields.
package deck

// Role labels what a slide is for. Roles drive nothing at render time;
// they exist so callers and tests can reason about deck structure.
type Role string

const (
	RoleTitle        Role = "title"
	RoleInstructions Role = "instructions"
	RoleBoard        Role = "board"
	RoleScoreboard   Role = "scoreboard"
	RoleDivider      Role = "divider"
	RoleStem         Role = "stem"
	RoleQuestion     Role = "question"
	RoleReveal       Role = "reveal"
	RoleFacts        Role = "facts"
)

// Align is horizontal text alignment within a shape.
type Align string

const (
	AlignLeft   Align = "l"
	AlignCenter Align = "ctr"
	AlignRight  Align = "r"
)

// ShapeKind distinguishes filled rectangles from text boxes.
type ShapeKind int

const (
	KindBox ShapeKind = iota
	KindText
)

// Shape is one drawable element on a slide. Geometry is in EMU.
type Shape struct {
	Kind ShapeKind
	X, Y EMU
	W, H EMU

	// Fill is the solid fill for boxes.
	Fill Color

	// Text fields, used when Kind is KindText.
	Text     string
	FontSize int // points
	Bold     bool
	Color    Color
	Align    Align
}

// Slide is one ordered, read-only rendering unit. It is owned by the
// render pass that produced it and discarded after serialization.
type Slide struct {
	Role       Role
	Title      string
	Background Color
	Shapes     []Shape
}

func box(x, y, w, h EMU, fill Color) Shape {
	return Shape{Kind: KindBox, X: x, Y: y, W: w, H: h, Fill: fill}
}

func text(s string, x, y, w, h EMU, size int, bold bool, color Color, align Align) Shape {
	return Shape{
		Kind:     KindText,
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		Text:     s,
		FontSize: size,
		Bold:     bold,
		Color:    color,
		Align:    align,
	}
}
