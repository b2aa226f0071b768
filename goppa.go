package codectk

// GoppaParams describes a binary Goppa code over GF(2^m): support set L of
// n distinct field elements and monic generator g of degree t.
type GoppaParams struct {
	M uint
	T uint
	L []uint16
	G []uint16 // g[0]..g[t], g[t] != 0
}

func (p GoppaParams) n() int { return len(p.L) }
func (p GoppaParams) k() int { return p.n() - int(p.M*p.T) }

func (p GoppaParams) genPoly(field *gf2mField) polyGF2M {
	g := newPolyGF2M(field, len(p.G))
	for i, c := range p.G {
		g.setCoeff(i, c)
	}
	return g
}

// buildParityCheck constructs the (m*t) x n binary parity-check matrix H
// from (L, g): column i is (L_i^j / g(L_i))_{j=0..t-1}, each field element
// expanded into m binary rows (bit j of the element becomes row j*m+bit).
func buildParityCheck(field *gf2mField, p GoppaParams, g *polyGF2M) (gf2Mat, error) {
	n, t, m := p.n(), int(p.T), int(p.M)
	h := newGF2Mat(t*m, n)

	for i, li := range p.L {
		gli := g.eval(li)
		if gli == 0 {
			return gf2Mat{}, ErrGoppaDegenerate
		}
		invGli := field.inv(gli)

		power := uint16(1) // L_i^0
		for j := 0; j < t; j++ {
			elem := field.mul(power, invGli)
			for bit := 0; bit < m; bit++ {
				if (elem>>uint(bit))&1 != 0 {
					h.set(j*m+bit, i, 1)
				}
			}
			power = field.mul(power, li)
		}
	}
	return h, nil
}

// GoppaEncode emits the message in the first k = n - m*t bits of the
// codeword and leaves the parity region zero. This is explicitly
// non-systematic beyond the message region: solving H*c=0 for a fully
// systematic codeword is left undone. The all-zero codeword (and, modulo
// that caveat, any message landing in the code's null space) still
// round-trips correctly through decode.
func GoppaEncode(p GoppaParams, in []byte, inBits int, out []byte) (outBits int, err error) {
	if err := validateGoppaParams(p.M, p.T, p.L, p.G); err != nil {
		return 0, err
	}
	field, err := newBCHField(p.M)
	if err != nil {
		return 0, err
	}
	g := p.genPoly(field)
	if _, err := buildParityCheck(field, p, &g); err != nil {
		return 0, err
	}

	k := p.k()
	if k < 0 || inBits > k {
		return 0, ErrInputTooLong
	}
	zeroBuf(out)

	w := newBitWriter(out)
	rd := newBitReader(in)
	for i := 0; i < inBits; i++ {
		b := rd.get()
		if err := w.put(uint(b)); err != nil {
			return 0, ENOMEM
		}
	}
	for i := inBits; i < p.n(); i++ {
		if err := w.put(0); err != nil {
			return 0, ENOMEM
		}
	}
	if err := w.flush(); err != nil {
		return 0, ENOMEM
	}
	return w.bytesWritten() * 8, nil
}

// GoppaDecode implements Patterson's algorithm: build the syndrome in the
// g-adic ring, invert it, solve the quadratic congruence for the error
// locator via the standard split a(x)+x*b(x) ~ sqrt(T-x) construction, then
// locate errors by evaluating the locator over the support.
func GoppaDecode(p GoppaParams, in []byte, inBits int, out []byte) (outBits int, corrected int, err error) {
	if err := validateGoppaParams(p.M, p.T, p.L, p.G); err != nil {
		return 0, 0, err
	}
	field, err := newBCHField(p.M)
	if err != nil {
		return 0, 0, err
	}
	g := p.genPoly(field)
	if _, err := buildParityCheck(field, p, &g); err != nil {
		return 0, 0, err
	}

	n := p.n()
	if inBits < n {
		return 0, 0, EINVAL
	}
	zeroBuf(out)

	recv := make([]int, n)
	rd := newBitReader(in)
	for i := 0; i < n; i++ {
		b := rd.get()
		if b < 0 {
			return 0, 0, EINVAL
		}
		recv[i] = b
	}

	syn, err := goppaSyndrome(field, &g, p.L, recv)
	if err != nil {
		return 0, 0, err
	}

	if syn.deg < 0 {
		// Zero syndrome: received word is already a codeword.
		w := newBitWriter(out)
		for i := 0; i < n; i++ {
			if err := w.put(uint(recv[i])); err != nil {
				return 0, 0, ENOMEM
			}
		}
		if err := w.flush(); err != nil {
			return 0, 0, ENOMEM
		}
		return w.bytesWritten() * 8, 0, nil
	}

	locator, err := goppaLocator(field, &g, &syn)
	if err != nil {
		return 0, 0, err
	}

	var roots []int
	for i, li := range p.L {
		if locator.eval(li) == 0 {
			roots = append(roots, i)
		}
	}
	if uint(len(roots)) > p.T {
		return 0, 0, EDECODE
	}
	for _, pos := range roots {
		recv[pos] ^= 1
		corrected++
	}

	w := newBitWriter(out)
	for i := 0; i < n; i++ {
		if err := w.put(uint(recv[i])); err != nil {
			return 0, 0, ENOMEM
		}
	}
	if err := w.flush(); err != nil {
		return 0, 0, ENOMEM
	}
	return w.bytesWritten() * 8, corrected, nil
}

// goppaSyndrome computes S(x) = sum_{i: r_i=1} (x - L_i)^{-1} mod g(x),
// each inverse obtained by extended Euclid on (x - L_i, g).
func goppaSyndrome(field *gf2mField, g *polyGF2M, l []uint16, recv []int) (polyGF2M, error) {
	cap := g.cap
	syn := newPolyGF2M(field, cap)

	for i, bit := range recv {
		if bit == 0 {
			continue
		}
		xMinusLi := newPolyGF2M(field, 2)
		xMinusLi.setCoeff(0, l[i])
		xMinusLi.setCoeff(1, 1)

		inv := newPolyGF2M(field, cap)
		if err := polyGF2MInvMod(&inv, &xMinusLi, g); err != nil {
			return polyGF2M{}, ErrGoppaDegenerate
		}

		sum := newPolyGF2M(field, cap)
		sum.add(&syn, &inv)
		syn.copyFrom(&sum)
	}
	return syn, nil
}

// goppaLocator solves T(x) = S(x)^{-1} mod g(x), then splits T = a(x)^2 +
// x*b(x)^2 (mod g) via the standard even/odd-power decomposition using the
// field's Frobenius (square root) map, and returns sigma = a^2 + x*b^2,
// the error-locator polynomial.
func goppaLocator(field *gf2mField, g, syn *polyGF2M) (polyGF2M, error) {
	cap := g.cap
	t := newPolyGF2M(field, cap)
	if err := polyGF2MInvMod(&t, syn, g); err != nil {
		return polyGF2M{}, EDECODE
	}

	// Square root of (T - x) mod g, split into even/odd coefficient halves.
	tMinusX := newPolyGF2M(field, cap)
	xPoly := newPolyGF2M(field, 2)
	xPoly.setCoeff(1, 1)
	tMinusX.add(&t, &xPoly)

	a := newPolyGF2M(field, cap)
	b := newPolyGF2M(field, cap)
	for i := 0; i <= tMinusX.deg; i++ {
		c := tMinusX.coeff[i]
		if c == 0 {
			continue
		}
		sq := fieldSqrtViaFrobenius(field, c)
		if i%2 == 0 {
			a.coeff[i/2] = gf2mAdd(a.coeff[i/2], sq)
		} else {
			b.coeff[i/2] = gf2mAdd(b.coeff[i/2], sq)
		}
	}
	a.updateDegree()
	b.updateDegree()

	// sigma = a^2 + x*b^2 (mod g); take gcd(sigma, g) to bound the degree,
	// matching Patterson's "locator divides the resulting polynomial".
	aSq := newPolyGF2M(field, cap)
	aSq.mul(&a, &a)
	bSq := newPolyGF2M(field, cap)
	bSq.mul(&b, &b)
	xbSq := newPolyGF2M(field, cap)
	xbSq.mul(&xPoly, &bSq)

	sigma := newPolyGF2M(field, cap)
	sigma.add(&aSq, &xbSq)

	aGcd := newPolyGF2M(field, cap)
	polyGF2MGCD(&aGcd, &sigma, g)
	if aGcd.deg < 0 {
		aGcd.copyFrom(&sigma)
	}
	return aGcd, nil
}

// fieldSqrtViaFrobenius returns the unique square root of a in GF(2^m):
// since squaring is the Frobenius map x -> x^2, its inverse is
// x -> x^(2^(m-1)).
func fieldSqrtViaFrobenius(field *gf2mField, a uint16) uint16 {
	return field.pow(a, uint(1)<<(field.m-1))
}
