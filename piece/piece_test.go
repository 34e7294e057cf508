package piece_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/piece"
)

func TestCatalog(t *testing.T) {
	catalog := piece.Catalog()
	require.Len(t, catalog, piece.KindCount)

	seen := make(map[piece.Kind]bool)
	colors := make(map[piece.Color]bool)
	for _, p := range catalog {
		assert.True(t, p.Kind.Valid())
		assert.True(t, p.Shape.Square(), "%s must use a square matrix", p.Kind)
		assert.Equal(t, 4, p.Shape.Count(), "%s must have four cells", p.Kind)
		assert.False(t, p.Color.Empty())
		assert.Equal(t, p.Kind.Color(), p.Color)
		seen[p.Kind] = true
		colors[p.Color] = true
	}
	assert.Len(t, seen, piece.KindCount)
	assert.Len(t, colors, piece.KindCount)
}

func TestCatalogReturnsCopies(t *testing.T) {
	first := piece.Lookup(piece.KindT)
	first.Shape[0][0] = true

	second := piece.Lookup(piece.KindT)
	assert.False(t, second.Shape[0][0], "mutating a looked up shape must not touch the template")
}

func TestRotateClockwise(t *testing.T) {
	t.Run("T points right", func(t *testing.T) {
		rotated := piece.Lookup(piece.KindT).Shape.RotateClockwise()
		want := piece.ParseShape(
			".#.",
			".##",
			".#.",
		)
		assert.True(t, want.Equal(rotated), "got\n%s", rotated)
	})

	t.Run("I becomes vertical", func(t *testing.T) {
		rotated := piece.Lookup(piece.KindI).Shape.RotateClockwise()
		want := piece.ParseShape(
			"..#.",
			"..#.",
			"..#.",
			"..#.",
		)
		assert.True(t, want.Equal(rotated), "got\n%s", rotated)
	})

	t.Run("source is untouched", func(t *testing.T) {
		shape := piece.Lookup(piece.KindL).Shape
		before := shape.Clone()
		_ = shape.RotateClockwise()
		assert.True(t, before.Equal(shape))
	})

	t.Run("rectangular matrix", func(t *testing.T) {
		rotated := piece.ParseShape("##.").RotateClockwise()
		assert.Equal(t, 3, rotated.Height())
		assert.Equal(t, 1, rotated.Width())
		assert.Equal(t, "#\n#\n.", rotated.String())
	})
}

func TestRotationRoundTrip(t *testing.T) {
	for _, p := range piece.Catalog() {
		t.Run(p.Kind.String(), func(t *testing.T) {
			shape := p.Shape
			for range 4 {
				shape = shape.RotateClockwise()
			}
			assert.True(t, p.Shape.Equal(shape))

			assert.True(t, p.Shape.Equal(p.Shape.RotateClockwise().RotateCounterClockwise()))
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "T", piece.KindT.String())
	assert.Equal(t, "Kind(9)", piece.Kind(9).String())
	assert.False(t, piece.Kind(9).Valid())
	assert.Equal(t, piece.ColorNone, piece.Kind(9).Color())

	for _, k := range piece.Kinds() {
		parsed, ok := piece.ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, parsed)

		back, ok := k.Color().Kind()
		require.True(t, ok)
		assert.Equal(t, k, back)
	}

	_, ok := piece.ParseKind("X")
	assert.False(t, ok)
	_, ok = piece.ColorNone.Kind()
	assert.False(t, ok)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#00f0f0", piece.ColorCyan.Hex())
	assert.Equal(t, "#000000", piece.ColorNone.Hex())
	assert.Equal(t, "#000000", piece.Color(200).Hex())
	assert.Equal(t, "#a000f0", piece.ColorPurple.Hex())
	assert.Equal(t, "#f0a000", piece.ColorOrange.Hex())
}

func TestUniformIsReproducible(t *testing.T) {
	a := piece.NewUniform(42)
	b := piece.NewUniform(42)

	var first []piece.Kind
	for range 50 {
		pa, pb := a.Draw(), b.Draw()
		require.Equal(t, pa.Kind, pb.Kind)
		first = append(first, pa.Kind)
	}

	a.Reseed(42)
	for i := range 50 {
		assert.Equal(t, first[i], a.Draw().Kind)
	}
}

func TestUniformCoversCatalog(t *testing.T) {
	src := piece.NewUniform(7)
	counts := make(map[piece.Kind]int)
	for range 7000 {
		counts[src.Draw().Kind]++
	}

	require.Len(t, counts, piece.KindCount)
	for k, n := range counts {
		assert.InDelta(t, 1000, n, 200, "kind %s drawn %d times", k, n)
	}
}

func TestBagDealsEveryKindOncePerBag(t *testing.T) {
	src := piece.NewBag(3)
	for bag := range 10 {
		seen := make(map[piece.Kind]bool)
		for range piece.KindCount {
			seen[src.Draw().Kind] = true
		}
		assert.Len(t, seen, piece.KindCount, "bag %d", bag)
	}
}

func TestSequence(t *testing.T) {
	src := piece.NewSequence(piece.KindO, piece.KindI)
	var got []piece.Kind
	for range 5 {
		got = append(got, src.Draw().Kind)
	}
	assert.Equal(t, []piece.Kind{piece.KindO, piece.KindI, piece.KindO, piece.KindI, piece.KindO}, got)

	assert.Panics(t, func() { piece.NewSequence() })
}

func ExampleShape_RotateClockwise() {
	s := piece.Lookup(piece.KindL).Shape
	fmt.Println(s)
	fmt.Println()
	fmt.Println(s.RotateClockwise())
	// Output:
	// ..#
	// ###
	// ...
	//
	// .#.
	// .#.
	// .##
}
