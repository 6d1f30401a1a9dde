package cube

// Coordinate domain sizes.
const (
	NTwist    = 2187  // 3^7 corner orientations
	NFlip     = 2048  // 2^11 edge orientations
	NParity   = 2     // permutation parity
	NFRtoBR   = 11880 // slice edges: C(12,4) * 4!
	NSlice1   = 495   // slice edge positions: C(12,4)
	NSlice2   = 24    // slice edge order inside the slice: 4!
	NURFtoDLF = 20160 // six corners URF..DLF: C(8,6) * 6!
	NURtoDF   = 20160 // six edges UR..DF inside the phase-2 subgroup: C(8,6) * 6!
	NURtoUL   = 1320  // three edges UR..UL: C(12,3) * 3!
	NUBtoDF   = 1320  // three edges UB..DF: C(12,3) * 3!
)

// Twist returns the corner orientation coordinate.
func (c *Cube) Twist() int {
	v := 0
	for i := URF; i < DRB; i++ {
		v = 3*v + int(c.CO[i])
	}
	return v
}

// SetTwist sets corner orientations from a twist coordinate. The last
// corner's orientation follows from the others.
func (c *Cube) SetTwist(v int) {
	parity := 0
	for i := DRB - 1; i >= URF; i-- {
		ori := v % 3
		v /= 3
		c.CO[i] = int8(ori)
		parity += ori
	}
	c.CO[DRB] = int8((3 - parity%3) % 3)
}

// Flip returns the edge orientation coordinate.
func (c *Cube) Flip() int {
	v := 0
	for i := UR; i < BR; i++ {
		v = 2*v + int(c.EO[i])
	}
	return v
}

// SetFlip sets edge orientations from a flip coordinate.
func (c *Cube) SetFlip(v int) {
	parity := 0
	for i := BR - 1; i >= UR; i-- {
		ori := v % 2
		v /= 2
		c.EO[i] = int8(ori)
		parity += ori
	}
	c.EO[BR] = int8((2 - parity%2) % 2)
}

// CornerParity returns the parity of the corner permutation.
func (c *Cube) CornerParity() int {
	return permParity(c.CP[:])
}

// EdgeParity returns the parity of the edge permutation.
func (c *Cube) EdgeParity() int {
	return permParity(c.EP[:])
}

func permParity(p []int8) int {
	s := 0
	for i := len(p) - 1; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if p[j] > p[i] {
				s++
			}
		}
	}
	return s % 2
}

// permSpec describes a permutation coordinate: the pieces start..end of
// the corners or edges, located by a binomial walk that runs from the
// first slot or, with fromEnd, from the last.
type permSpec struct {
	corners    bool
	start, end int
	fromEnd    bool
}

func (s permSpec) slots(c *Cube) []int8 {
	if s.corners {
		return c.CP[:]
	}
	return c.EP[:]
}

// encode returns choice * k! + rank, where choice says which slots hold the
// tracked pieces and rank gives their order.
func (s permSpec) encode(c *Cube) int {
	perm := s.slots(c)
	maxOur := s.end - s.start
	maxAll := len(perm) - 1
	var ourBuf [NumEdges]int8
	our := ourBuf[:maxOur+1]

	a, x := 0, 0
	if s.fromEnd {
		for j := maxAll; j >= 0; j-- {
			if p := int(perm[j]); s.start <= p && p <= s.end {
				a += Cnk(maxAll-j, x+1)
				our[maxOur-x] = perm[j]
				x++
			}
		}
	} else {
		for j := 0; j <= maxAll; j++ {
			if p := int(perm[j]); s.start <= p && p <= s.end {
				a += Cnk(j, x+1)
				our[x] = perm[j]
				x++
			}
		}
	}

	b := 0
	for j := maxOur; j >= 0; j-- {
		k := 0
		for int(our[j]) != s.start+j {
			rotateLeft(our, 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return a*Factorial(maxOur+1) + b
}

// decode places the tracked pieces for index and marks every other slot
// of the same kind with -1.
func (s permSpec) decode(c *Cube, index int) {
	perm := s.slots(c)
	maxOur := s.end - s.start
	maxAll := len(perm) - 1
	maxB := Factorial(maxOur + 1)
	var ourBuf [NumEdges]int8
	our := ourBuf[:maxOur+1]
	for i := range our {
		our[i] = int8(i + s.start)
	}

	b := index % maxB
	a := index / maxB
	for i := range perm {
		perm[i] = -1
	}

	for j := 1; j <= maxOur; j++ {
		k := b % (j + 1)
		b /= j + 1
		for ; k > 0; k-- {
			rotateRight(our, 0, j)
		}
	}

	x := maxOur
	if s.fromEnd {
		for j := 0; j <= maxAll; j++ {
			if cnk := Cnk(maxAll-j, x+1); a-cnk >= 0 {
				perm[j] = our[maxOur-x]
				a -= cnk
				x--
			}
		}
	} else {
		for j := maxAll; j >= 0; j-- {
			if cnk := Cnk(j, x+1); a-cnk >= 0 {
				perm[j] = our[x]
				a -= cnk
				x--
			}
		}
	}
}

var (
	urfToDLF = permSpec{corners: true, start: URF, end: DLF}
	urToUL   = permSpec{start: UR, end: UL}
	ubToDF   = permSpec{start: UB, end: DF}
	urToDF   = permSpec{start: UR, end: DF}
	frToBR   = permSpec{start: FR, end: BR, fromEnd: true}
)

// URFtoDLF returns the permutation coordinate of corners URF..DLF.
func (c *Cube) URFtoDLF() int { return urfToDLF.encode(c) }

// SetURFtoDLF places corners URF..DLF; the other corner slots become -1.
func (c *Cube) SetURFtoDLF(v int) { urfToDLF.decode(c, v) }

// URtoUL returns the permutation coordinate of edges UR, UF, UL.
func (c *Cube) URtoUL() int { return urToUL.encode(c) }

// SetURtoUL places edges UR, UF, UL; the other edge slots become -1.
func (c *Cube) SetURtoUL(v int) { urToUL.decode(c, v) }

// UBtoDF returns the permutation coordinate of edges UB, DR, DF.
func (c *Cube) UBtoDF() int { return ubToDF.encode(c) }

// SetUBtoDF places edges UB, DR, DF; the other edge slots become -1.
func (c *Cube) SetUBtoDF(v int) { ubToDF.decode(c, v) }

// URtoDF returns the permutation coordinate of edges UR..DF.
func (c *Cube) URtoDF() int { return urToDF.encode(c) }

// SetURtoDF places edges UR..DF; the other edge slots become -1.
func (c *Cube) SetURtoDF(v int) { urToDF.decode(c, v) }

// FRtoBR returns the permutation coordinate of the slice edges FR..BR.
func (c *Cube) FRtoBR() int { return frToBR.encode(c) }

// SetFRtoBR places the slice edges; the other edge slots become -1.
func (c *Cube) SetFRtoBR(v int) { frToBR.decode(c, v) }

// Slice returns which four slots hold the slice edges, ignoring their order.
func (c *Cube) Slice() int { return c.FRtoBR() / NSlice2 }

// Pieces says which half of the cube a coordinate lives in.
type Pieces int

const (
	Corners Pieces = iota
	Edges
)

// Coordinate describes one coordinate family: its size, the pieces it
// reads, and its encode/decode pair.
type Coordinate struct {
	Name   string
	Size   int
	Pieces Pieces
	Get    func(*Cube) int
	Set    func(*Cube, int)
}

// Coordinate families used by the solver tables.
var (
	TwistCoord    = Coordinate{"twist", NTwist, Corners, (*Cube).Twist, (*Cube).SetTwist}
	FlipCoord     = Coordinate{"flip", NFlip, Edges, (*Cube).Flip, (*Cube).SetFlip}
	FRtoBRCoord   = Coordinate{"FRtoBR", NFRtoBR, Edges, (*Cube).FRtoBR, (*Cube).SetFRtoBR}
	URFtoDLFCoord = Coordinate{"URFtoDLF", NURFtoDLF, Corners, (*Cube).URFtoDLF, (*Cube).SetURFtoDLF}
	URtoDFCoord   = Coordinate{"URtoDF", NURtoDF, Edges, (*Cube).URtoDF, (*Cube).SetURtoDF}
	URtoULCoord   = Coordinate{"URtoUL", NURtoUL, Edges, (*Cube).URtoUL, (*Cube).SetURtoUL}
	UBtoDFCoord   = Coordinate{"UBtoDF", NUBtoDF, Edges, (*Cube).UBtoDF, (*Cube).SetUBtoDF}
)

// Coordinates lists every family with a move table.
var Coordinates = []Coordinate{
	TwistCoord, FlipCoord, FRtoBRCoord, URFtoDLFCoord, URtoDFCoord, URtoULCoord, UBtoDFCoord,
}
