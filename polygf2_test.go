package codectk

import "testing"

func polyGF2FromBits(capacity int, bits []int) polyGF2 {
	p := newPolyGF2(capacity)
	for i, b := range bits {
		if b != 0 {
			p.setCoeff(i, 1)
		}
	}
	return p
}

func TestPolyGF2AddIsXor(t *testing.T) {
	a := polyGF2FromBits(8, []int{1, 1, 0, 1})
	b := polyGF2FromBits(8, []int{1, 0, 0, 1, 1})
	result := newPolyGF2(8)
	result.add(&a, &b)

	want := []int{0, 1, 0, 0, 1}
	for i, w := range want {
		if result.getCoeff(i) != w {
			t.Fatalf("coeff %d = %d, want %d", i, result.getCoeff(i), w)
		}
	}
}

func TestPolyGF2MulDivRoundTrip(t *testing.T) {
	// (x+1)(x^2+x+1) = x^3 + 1 over GF(2): x^3+x^2+x + x^2+x+1 = x^3+1.
	a := polyGF2FromBits(8, []int{1, 1})       // x+1
	b := polyGF2FromBits(8, []int{1, 1, 1})    // x^2+x+1
	prod := newPolyGF2(8)
	prod.mul(&a, &b)

	want := polyGF2FromBits(8, []int{1, 0, 0, 1}) // x^3+1
	if prod.deg != want.deg {
		t.Fatalf("deg = %d, want %d", prod.deg, want.deg)
	}
	for i := 0; i <= want.deg; i++ {
		if prod.getCoeff(i) != want.getCoeff(i) {
			t.Fatalf("coeff %d = %d, want %d", i, prod.getCoeff(i), want.getCoeff(i))
		}
	}

	q := newPolyGF2(8)
	r := newPolyGF2(8)
	if err := polyGF2DivRem(&q, &r, &prod, &b); err != nil {
		t.Fatalf("divRem: %v", err)
	}
	if r.deg != -1 {
		t.Fatalf("remainder deg = %d, want -1 (exact division)", r.deg)
	}
	for i := 0; i <= a.deg; i++ {
		if q.getCoeff(i) != a.getCoeff(i) {
			t.Fatalf("quotient coeff %d = %d, want %d", i, q.getCoeff(i), a.getCoeff(i))
		}
	}
}

func TestPolyGF2DivByZeroIsError(t *testing.T) {
	a := polyGF2FromBits(8, []int{1, 1})
	zero := newPolyGF2(8)
	q := newPolyGF2(8)
	r := newPolyGF2(8)
	if err := polyGF2DivRem(&q, &r, &a, &zero); err != ErrDivByZeroPoly {
		t.Fatalf("divRem by zero: got %v, want ErrDivByZeroPoly", err)
	}
}

func TestPolyGF2GCD(t *testing.T) {
	// gcd(x^3+1, x+1) = x+1, since (x+1) divides x^3+1.
	a := polyGF2FromBits(8, []int{1, 0, 0, 1})
	b := polyGF2FromBits(8, []int{1, 1})
	g := newPolyGF2(8)
	polyGF2GCD(&g, &a, &b)

	if g.deg != 1 || g.getCoeff(0) != 1 || g.getCoeff(1) != 1 {
		t.Fatalf("gcd deg=%d coeffs unexpected", g.deg)
	}
}
