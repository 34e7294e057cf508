package piece

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies one of the seven standard pieces.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of piece kinds in the catalog.
const KindCount = 7

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// Valid reports whether k names a catalog piece.
func (k Kind) Valid() bool {
	return k < KindCount
}

// Color returns the color tag pieces of this kind are drawn and settled with.
func (k Kind) Color() Color {
	if !k.Valid() {
		return ColorNone
	}
	return Color(k) + 1
}

// ParseKind maps a single letter (I, O, T, S, Z, J, L) to its kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
