package codectk

// polyGF2 is a polynomial over GF(2), coefficients bit-packed into 64-bit
// words. deg is -1 for the zero polynomial. Grounded on
// original_source/include/poly.h / src/poly.c.
type polyGF2 struct {
	coeff []uint64
	deg   int
	cap   int // capacity in bits
}

func newPolyGF2(capacity int) polyGF2 {
	nWords := (capacity + 63) / 64
	return polyGF2{coeff: make([]uint64, nWords), deg: -1, cap: capacity}
}

func (p *polyGF2) updateDegree() {
	d := p.cap - 1
	for d >= 0 {
		word, bit := d/64, uint(d%64)
		if p.coeff[word]&(1<<bit) != 0 {
			break
		}
		d--
	}
	p.deg = d
}

func (p *polyGF2) zero() {
	for i := range p.coeff {
		p.coeff[i] = 0
	}
	p.deg = -1
}

func (p *polyGF2) getCoeff(i int) int {
	if i < 0 || i >= p.cap {
		return 0
	}
	word, bit := i/64, uint(i%64)
	return int(p.coeff[word]>>bit) & 1
}

func (p *polyGF2) setCoeff(i, value int) {
	if i < 0 || i >= p.cap {
		return
	}
	word, bit := i/64, uint(i%64)
	if value != 0 {
		p.coeff[word] |= 1 << bit
	} else {
		p.coeff[word] &^= 1 << bit
	}
	if value != 0 && i > p.deg {
		p.deg = i
	} else if value == 0 && i == p.deg {
		p.updateDegree()
	}
}

func (dst *polyGF2) copyFrom(src *polyGF2) {
	dst.zero()
	maxDeg := src.deg
	if dst.cap-1 < maxDeg {
		maxDeg = dst.cap - 1
	}
	for i := 0; i <= maxDeg; i++ {
		if src.getCoeff(i) != 0 {
			dst.setCoeff(i, 1)
		}
	}
}

// add computes result = a + b (XOR), i.e. the same as subtraction over
// GF(2).
func (result *polyGF2) add(a, b *polyGF2) {
	result.zero()
	maxDeg := a.deg
	if b.deg > maxDeg {
		maxDeg = b.deg
	}
	for i := 0; i <= maxDeg && i < result.cap; i++ {
		result.setCoeff(i, a.getCoeff(i)^b.getCoeff(i))
	}
}

// mul computes result = a * b via schoolbook multiplication.
func (result *polyGF2) mul(a, b *polyGF2) {
	result.zero()
	for i := 0; i <= a.deg && i < a.cap; i++ {
		if a.getCoeff(i) == 0 {
			continue
		}
		for j := 0; j <= b.deg && j < b.cap; j++ {
			if b.getCoeff(j) == 0 {
				continue
			}
			k := i + j
			if k < result.cap {
				result.setCoeff(k, result.getCoeff(k)^1)
			}
		}
	}
}

// divRem computes a = q*b + r via long division over GF(2). Returns
// ErrDivByZeroPoly if b is the zero polynomial.
func polyGF2DivRem(q, r, a, b *polyGF2) error {
	if b.deg < 0 {
		return ErrDivByZeroPoly
	}
	q.zero()
	r.copyFrom(a)

	for r.deg >= b.deg {
		shift := r.deg - b.deg
		for i := 0; i <= b.deg; i++ {
			if b.getCoeff(i) != 0 {
				pos := i + shift
				r.setCoeff(pos, r.getCoeff(pos)^1)
			}
		}
		q.setCoeff(shift, 1)
		r.updateDegree()
	}
	return nil
}

// mod computes result = a mod b.
func polyGF2Mod(result, a, b *polyGF2) error {
	q := newPolyGF2(a.cap)
	r := newPolyGF2(a.cap)
	if err := polyGF2DivRem(&q, &r, a, b); err != nil {
		return err
	}
	result.copyFrom(&r)
	return nil
}

// gcd computes the GCD of a and b via the Euclidean algorithm.
func polyGF2GCD(result, a, b *polyGF2) {
	u := newPolyGF2(a.cap)
	v := newPolyGF2(b.cap)
	tq := newPolyGF2(a.cap)
	tr := newPolyGF2(a.cap)
	u.copyFrom(a)
	v.copyFrom(b)

	for v.deg >= 0 {
		_ = polyGF2DivRem(&tq, &tr, &u, &v)
		u.copyFrom(&v)
		v.copyFrom(&tr)
	}
	result.copyFrom(&u)
}
