package codectk

// BCHParams selects a binary BCH(n, k, t) code with n = 2^m-1, designed
// distance 2t+1, over GF(2^m).
type BCHParams struct {
	M uint
	T uint
}

// bchMinimalPoly computes the minimal polynomial of alpha^i: the product
// of (x - alpha^c) over the conjugate orbit {i, 2i, 4i, ...} mod (2^m-1).
// Coefficients are guaranteed binary (minimal polynomials of GF(2^m)
// elements always have GF(2) coefficients), so the result is reinterpreted
// as a GF(2) polynomial of the same degree.
func bchMinimalPoly(f *gf2mField, i uint, n uint) polyGF2 {
	seen := make(map[uint]bool)
	orbit := []uint{}
	c := i % n
	for !seen[c] {
		seen[c] = true
		orbit = append(orbit, c)
		c = (c * 2) % n
	}

	// Build the product of (x - alpha^c) = (x + alpha^c) over GF(2^m)[x],
	// one degree-1 factor at a time.
	acc := newPolyGF2M(f, len(orbit)+1)
	acc.setCoeff(0, 1)
	acc.deg = 0

	factor := newPolyGF2M(f, 2)
	result := newPolyGF2M(f, len(orbit)+1)

	for _, c := range orbit {
		factor.zero()
		factor.setCoeff(0, f.alog[c])
		factor.setCoeff(1, 1)
		result.mul(&acc, &factor)
		acc.copyFrom(&result)
	}

	out := newPolyGF2(len(orbit) + 1)
	for d := 0; d <= acc.deg; d++ {
		if acc.coeff[d] != 0 {
			out.setCoeff(d, 1)
		}
	}
	return out
}

// bchGenerator computes g(x) = lcm(m_1, m_3, ..., m_{2t-1}) iteratively as
// (current * m_i) / gcd(current, m_i).
func bchGenerator(f *gf2mField, t, n uint) polyGF2 {
	cap := int(n) + 1
	g := newPolyGF2(cap)
	g.setCoeff(0, 1)
	g.deg = 0

	for i := uint(1); i <= 2*t-1; i += 2 {
		mi := bchMinimalPoly(f, i, n)

		gcd := newPolyGF2(cap)
		polyGF2GCD(&gcd, &g, &mi)

		prod := newPolyGF2(cap)
		prod.mul(&g, &mi)

		quo := newPolyGF2(cap)
		rem := newPolyGF2(cap)
		_ = polyGF2DivRem(&quo, &rem, &prod, &gcd)

		g = quo
	}
	return g
}

// BCHEncode produces one systematic codeword per call: the message bits
// followed by r = deg(g) parity bits, n = 2^m-1 total. Messages longer
// than k = n - deg(g) bits are rejected.
func BCHEncode(p BCHParams, in []byte, inBits int, out []byte) (outBits int, err error) {
	if err := validateBCHParams(p.M, p.T); err != nil {
		return 0, err
	}
	field, err := newBCHField(p.M)
	if err != nil {
		return 0, err
	}
	n := (uint(1) << p.M) - 1
	g := bchGenerator(field, p.T, n)
	r := uint(g.deg)
	k := n - r

	if uint(inBits) > k {
		return 0, ErrInputTooLong
	}
	zeroBuf(out)

	msg := newPolyGF2(int(n) + 1)
	rd := newBitReader(in)
	for i := 0; i < inBits; i++ {
		b := rd.get()
		if b < 0 {
			return 0, EINVAL
		}
		msg.setCoeff(i+int(r), b)
	}

	quo := newPolyGF2(int(n) + 1)
	rem := newPolyGF2(int(n) + 1)
	if err := polyGF2DivRem(&quo, &rem, &msg, &g); err != nil {
		return 0, EDECODE
	}

	// Codeword = message bits (input order), zero-padded to k, followed by
	// the r parity bits.
	w := newBitWriter(out)
	rd2 := newBitReader(in)
	for i := 0; i < inBits; i++ {
		b := rd2.get()
		if err := w.put(uint(b)); err != nil {
			return 0, ENOMEM
		}
	}
	for i := inBits; i < int(k); i++ {
		if err := w.put(0); err != nil {
			return 0, ENOMEM
		}
	}
	for i := 0; i < int(r); i++ {
		if err := w.put(uint(rem.getCoeff(i))); err != nil {
			return 0, ENOMEM
		}
	}
	if err := w.flush(); err != nil {
		return 0, ENOMEM
	}
	return w.bytesWritten() * 8, nil
}

// BCHDecode reads one n-bit codeword, computes 2t syndromes, and if any are
// nonzero runs Berlekamp-Massey and a Chien search to locate and correct up
// to t errors. More than t apparent roots is reported as EDECODE.
func BCHDecode(p BCHParams, in []byte, inBits int, out []byte) (outBits int, corrected int, err error) {
	if err := validateBCHParams(p.M, p.T); err != nil {
		return 0, 0, err
	}
	field, err := newBCHField(p.M)
	if err != nil {
		return 0, 0, err
	}
	n := (uint(1) << p.M) - 1
	g := bchGenerator(field, p.T, n)
	r := uint(g.deg)
	k := n - r

	if uint(inBits) < n {
		return 0, 0, EINVAL
	}
	zeroBuf(out)

	recv := make([]uint16, n)
	rd := newBitReader(in)
	for i := uint(0); i < n; i++ {
		b := rd.get()
		if b < 0 {
			return 0, 0, EINVAL
		}
		recv[i] = uint16(b)
	}

	// Syndromes S_i = r(alpha^(i+1)) for i = 0..2t-1, Horner's method over
	// the received bit sequence treated as a GF(2) polynomial's coefficients
	// promoted into GF(2^m). The generator is the lcm of the minimal
	// polynomials of alpha^1..alpha^(2t), i.e. consecutive roots, so the
	// syndromes must be evaluated at those same consecutive powers rather
	// than only the odd ones.
	syn := make([]uint16, 2*p.T)
	for i := uint(0); i < 2*p.T; i++ {
		x := field.alog[(i+1)%field.order]
		var acc uint16
		for j := int(n) - 1; j >= 0; j-- {
			acc = gf2mAdd(field.mul(acc, x), recv[j])
		}
		syn[i] = acc
	}

	allZero := true
	for _, s := range syn {
		if s != 0 {
			allZero = false
			break
		}
	}

	bits := make([]int, n)
	for i := range recv {
		bits[i] = int(recv[i])
	}

	if !allZero {
		lambda := bchBerlekampMassey(field, syn, p.T)
		roots := bchChienSearch(field, lambda, n)
		if uint(len(roots)) > p.T {
			return 0, 0, EDECODE
		}
		for _, pos := range roots {
			bits[pos] ^= 1
			corrected++
		}
	}

	w := newBitWriter(out)
	for i := uint(0); i < k; i++ {
		if err := w.put(uint(bits[i])); err != nil {
			return 0, 0, ENOMEM
		}
	}
	if err := w.flush(); err != nil {
		return 0, 0, ENOMEM
	}
	return w.bytesWritten() * 8, corrected, nil
}

// bchBerlekampMassey is the characteristic-2 LFSR synthesis algorithm:
// maintain Lambda, B, L, m, b; on a nonzero discrepancy update Lambda and
// conditionally reset B/L/b.
func bchBerlekampMassey(field *gf2mField, syn []uint16, t uint) []uint16 {
	lambda := make([]uint16, len(syn)+1)
	b := make([]uint16, len(syn)+1)
	lambda[0] = 1
	b[0] = 1
	var l uint
	m := 1
	bVal := uint16(1)

	for nStep := 0; nStep < len(syn); nStep++ {
		var d uint16 = syn[nStep]
		for i := uint(1); i <= l; i++ {
			d = gf2mAdd(d, field.mul(lambda[i], syn[nStep-int(i)]))
		}

		if d == 0 {
			m++
			continue
		}

		t2 := make([]uint16, len(lambda))
		copy(t2, lambda)

		coeff := field.mul(d, field.inv(bVal))
		for i := range b {
			if i+m < len(lambda) && b[i] != 0 {
				lambda[i+m] = gf2mAdd(lambda[i+m], field.mul(coeff, b[i]))
			}
		}

		if 2*l <= uint(nStep) {
			l = uint(nStep) + 1 - l
			copy(b, t2)
			bVal = d
			m = 1
		} else {
			m++
		}
	}
	return lambda[:l+1]
}

// bchChienSearch enumerates positions 0..n-1 and reports those where
// Lambda(alpha^i) = 0. Lambda's roots are the inverse locators alpha^(-e),
// so a root at alpha^i locates an error at position (n-i) mod n, not at i.
func bchChienSearch(field *gf2mField, lambda []uint16, n uint) []uint {
	var roots []uint
	for i := uint(0); i < n; i++ {
		x := field.alog[i%field.order]
		var acc uint16
		xp := uint16(1)
		for _, c := range lambda {
			acc = gf2mAdd(acc, field.mul(c, xp))
			xp = field.mul(xp, x)
		}
		if acc == 0 {
			roots = append(roots, (n-i)%n)
		}
	}
	return roots
}
