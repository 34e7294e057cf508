package piece

import "math/rand/v2"

// Source hands out the pieces a game spawns, one at a time.
type Source interface {
	Draw() Piece
}

// pcgStream is mixed into the seed so a zero seed still produces a usable
// second PCG word.
const pcgStream = 0x9e3779b97f4a7c15

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// Uniform draws every piece independently and uniformly from the catalog.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a uniform source seeded with seed. Two sources with the
// same seed produce the same sequence.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{rng: newRand(seed)}
}

// Reseed restarts the sequence from seed.
func (u *Uniform) Reseed(seed uint64) {
	u.rng = newRand(seed)
}

func (u *Uniform) Draw() Piece {
	return Lookup(Kind(u.rng.IntN(KindCount)))
}

// Bag deals the seven kinds in shuffled bags: every kind appears exactly once
// in each consecutive group of seven draws.
type Bag struct {
	rng  *rand.Rand
	next []Kind
}

// NewBag returns a bag source seeded with seed.
func NewBag(seed uint64) *Bag {
	return &Bag{rng: newRand(seed)}
}

// Reseed restarts the sequence from seed and discards the current bag.
func (b *Bag) Reseed(seed uint64) {
	b.rng = newRand(seed)
	b.next = nil
}

func (b *Bag) Draw() Piece {
	if len(b.next) == 0 {
		bag := Kinds()
		b.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		b.next = bag
	}

	k := b.next[0]
	b.next = b.next[1:]
	return Lookup(k)
}

// Sequence cycles through a fixed list of kinds. It is meant for fixtures
// and tests where the spawn order must be known in advance.
type Sequence struct {
	kinds []Kind
	pos   int
}

// NewSequence returns a source that yields kinds in order and wraps around.
// It panics when called without kinds.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("piece: empty sequence")
	}
	return &Sequence{kinds: kinds}
}

func (s *Sequence) Draw() Piece {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return Lookup(k)
}
