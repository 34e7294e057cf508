package piece

// Piece is a catalog entry: a kind, its spawn orientation and its color.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Color
}

// Every template uses a square bounding matrix so that clockwise rotation
// stays inside the same box for all seven pieces.
var templates = [KindCount]Shape{
	KindI: ParseShape(
		"....",
		"####",
		"....",
		"....",
	),
	KindO: ParseShape(
		"##",
		"##",
	),
	KindT: ParseShape(
		".#.",
		"###",
		"...",
	),
	KindS: ParseShape(
		".##",
		"##.",
		"...",
	),
	KindZ: ParseShape(
		"##.",
		".##",
		"...",
	),
	KindJ: ParseShape(
		"#..",
		"###",
		"...",
	),
	KindL: ParseShape(
		"..#",
		"###",
		"...",
	),
}

// Lookup returns a fresh copy of the catalog entry for k.
// It panics if k is not a catalog kind.
func Lookup(k Kind) Piece {
	if !k.Valid() {
		panic("piece: unknown kind " + k.String())
	}
	return Piece{
		Kind:  k,
		Shape: templates[k].Clone(),
		Color: k.Color(),
	}
}

// Catalog returns the seven standard pieces in spawn orientation.
// The returned shapes are copies and may be modified freely.
func Catalog() []Piece {
	pieces := make([]Piece, 0, KindCount)
	for _, k := range Kinds() {
		pieces = append(pieces, Lookup(k))
	}
	return pieces
}
