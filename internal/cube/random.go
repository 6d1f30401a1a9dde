package cube

import "lukechampine.com/frand"

// Random returns a uniformly random reachable cube in standard orientation.
func Random() *Cube {
	c := New()
	c.Randomize()
	return c
}

// Randomize replaces corners and edges with a uniformly random reachable
// state. Centers are left alone.
func (c *Cube) Randomize() {
	for {
		shuffle(c.CP[:])
		shuffle(c.EP[:])
		if c.CornerParity() == c.EdgeParity() {
			break
		}
	}
	randomOrientation(c.CO[:], 3)
	randomOrientation(c.EO[:], 2)
}

func shuffle(a []int8) {
	frand.Shuffle(len(a), func(i, j int) {
		a[i], a[j] = a[j], a[i]
	})
}

// randomOrientation fills all but the last slot at random and sets the
// last so the sum is 0 mod m.
func randomOrientation(a []int8, m int) {
	sum := 0
	for i := 0; i < len(a)-1; i++ {
		o := frand.Intn(m)
		a[i] = int8(o)
		sum += o
	}
	a[len(a)-1] = int8((m - sum%m) % m)
}
