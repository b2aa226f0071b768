package codectk

// polyGF2M is a polynomial over GF(2^m): coefficients are field elements.
// field is a borrowed reference; it must outlive the polynomial, which in Go
// means simply keeping the *gf2mField reachable for as long as any polyGF2M
// built from it is in use.
type polyGF2M struct {
	coeff []uint16
	deg   int
	cap   int
	field *gf2mField
}

func newPolyGF2M(field *gf2mField, capacity int) polyGF2M {
	return polyGF2M{coeff: make([]uint16, capacity), deg: -1, cap: capacity, field: field}
}

func (p *polyGF2M) updateDegree() {
	d := p.cap - 1
	for d >= 0 && p.coeff[d] == 0 {
		d--
	}
	p.deg = d
}

func (p *polyGF2M) zero() {
	for i := range p.coeff {
		p.coeff[i] = 0
	}
	p.deg = -1
}

func (p *polyGF2M) getCoeff(i int) uint16 {
	if i < 0 || i >= p.cap {
		return 0
	}
	return p.coeff[i]
}

func (p *polyGF2M) setCoeff(i int, value uint16) {
	if i < 0 || i >= p.cap {
		return
	}
	p.coeff[i] = value
	if value != 0 && i > p.deg {
		p.deg = i
	} else if value == 0 && i == p.deg {
		p.updateDegree()
	}
}

func (dst *polyGF2M) copyFrom(src *polyGF2M) {
	dst.zero()
	maxDeg := src.deg
	if dst.cap-1 < maxDeg {
		maxDeg = dst.cap - 1
	}
	for i := 0; i <= maxDeg; i++ {
		dst.coeff[i] = src.coeff[i]
	}
	dst.deg = maxDeg
	if maxDeg >= 0 && dst.coeff[maxDeg] == 0 {
		dst.updateDegree()
	}
}

func (result *polyGF2M) add(a, b *polyGF2M) {
	result.zero()
	maxDeg := a.deg
	if b.deg > maxDeg {
		maxDeg = b.deg
	}
	for i := 0; i <= maxDeg && i < result.cap; i++ {
		result.coeff[i] = gf2mAdd(a.getCoeff(i), b.getCoeff(i))
	}
	result.updateDegree()
}

func (result *polyGF2M) mul(a, b *polyGF2M) {
	result.zero()
	field := result.field
	for i := 0; i <= a.deg && i < a.cap; i++ {
		ca := a.coeff[i]
		if ca == 0 {
			continue
		}
		for j := 0; j <= b.deg && j < b.cap; j++ {
			cb := b.coeff[j]
			if cb == 0 {
				continue
			}
			k := i + j
			if k < result.cap {
				prod := field.mul(ca, cb)
				result.coeff[k] = gf2mAdd(result.coeff[k], prod)
			}
		}
	}
	result.updateDegree()
}

// divRem computes a = q*b + r by Euclidean long division.
func polyGF2MDivRem(q, r, a, b *polyGF2M) error {
	if b.deg < 0 {
		return ErrDivByZeroPoly
	}
	q.zero()
	r.copyFrom(a)
	field := b.field

	for r.deg >= b.deg {
		shift := r.deg - b.deg
		rLead := r.coeff[r.deg]
		bLead := b.coeff[b.deg]
		factor := field.mul(rLead, field.inv(bLead))

		for i := 0; i <= b.deg; i++ {
			term := field.mul(factor, b.coeff[i])
			pos := i + shift
			r.coeff[pos] = gf2mAdd(r.coeff[pos], term)
		}
		q.coeff[shift] = factor
		r.updateDegree()
	}
	q.updateDegree()
	return nil
}

func polyGF2MMod(result, a, m *polyGF2M) error {
	q := newPolyGF2M(a.field, a.cap)
	r := newPolyGF2M(a.field, a.cap)
	if err := polyGF2MDivRem(&q, &r, a, m); err != nil {
		return err
	}
	result.copyFrom(&r)
	return nil
}

func polyGF2MGCD(result, a, b *polyGF2M) {
	cap := a.cap
	u := newPolyGF2M(a.field, cap)
	v := newPolyGF2M(a.field, cap)
	tq := newPolyGF2M(a.field, cap)
	tr := newPolyGF2M(a.field, cap)
	u.copyFrom(a)
	v.copyFrom(b)

	for v.deg >= 0 {
		_ = polyGF2MDivRem(&tq, &tr, &u, &v)
		u.copyFrom(&v)
		v.copyFrom(&tr)
	}
	result.copyFrom(&u)
}

// eval evaluates the polynomial at x using Horner's scheme, grounded on the
// teacher's gfPolyEval (field.go).
func (p *polyGF2M) eval(x uint16) uint16 {
	if p.deg < 0 {
		return 0
	}
	result := p.coeff[p.deg]
	for i := p.deg - 1; i >= 0; i-- {
		result = gf2mAdd(p.field.mul(result, x), p.coeff[i])
	}
	return result
}

// deriv computes the formal derivative. In characteristic 2, d/dx(x^n) is
// x^(n-1) when n is odd and 0 when n is even.
func (result *polyGF2M) deriv(p *polyGF2M) {
	result.zero()
	for i := 1; i <= p.deg && i-1 < result.cap; i++ {
		if i&1 == 1 {
			result.coeff[i-1] = p.coeff[i]
		}
	}
	result.updateDegree()
}

// invMod computes result such that result*a == 1 (mod m) via the extended
// Euclidean algorithm. Returns ErrNotCoprime if a and m share a nontrivial
// factor.
func polyGF2MInvMod(result, a, m *polyGF2M) error {
	field := a.field
	cap := a.cap
	if m.cap > cap {
		cap = m.cap
	}
	if 2*m.cap > cap {
		cap = 2 * m.cap
	}

	r0 := newPolyGF2M(field, cap)
	r1 := newPolyGF2M(field, cap)
	s0 := newPolyGF2M(field, cap)
	s1 := newPolyGF2M(field, cap)
	tq := newPolyGF2M(field, cap)
	tr := newPolyGF2M(field, cap)
	ts := newPolyGF2M(field, cap)
	tprod := newPolyGF2M(field, cap)

	r0.copyFrom(m)
	r1.copyFrom(a)
	s0.setCoeff(0, 0)
	s1.setCoeff(0, 1)

	for r1.deg >= 0 {
		_ = polyGF2MDivRem(&tq, &tr, &r0, &r1)

		r0.copyFrom(&r1)
		r1.copyFrom(&tr)

		tprod.mul(&tq, &s1)
		ts.add(&s0, &tprod)
		s0.copyFrom(&s1)
		s1.copyFrom(&ts)
	}

	if r0.deg != 0 || r0.coeff[0] == 0 {
		return ErrNotCoprime
	}

	invGCD := field.inv(r0.coeff[0])
	result.zero()
	for i := 0; i <= s0.deg && i < result.cap; i++ {
		result.coeff[i] = field.mul(s0.coeff[i], invGCD)
	}
	result.updateDegree()
	return nil
}
