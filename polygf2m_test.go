package codectk

import "testing"

func TestPolyGF2MEvalHorner(t *testing.T) {
	f, err := newGF2MField(4, 0x13)
	if err != nil {
		t.Fatalf("newGF2MField: %v", err)
	}
	// p(x) = x^2 + 1
	p := newPolyGF2M(f, 4)
	p.setCoeff(0, 1)
	p.setCoeff(2, 1)

	x := f.alog[3]
	want := gf2mAdd(f.mul(x, x), 1)
	if got := p.eval(x); got != want {
		t.Fatalf("eval = %d, want %d", got, want)
	}
}

func TestPolyGF2MDeriv(t *testing.T) {
	f, err := newGF2MField(4, 0x13)
	if err != nil {
		t.Fatalf("newGF2MField: %v", err)
	}
	// p(x) = x^3 + x^2 + x + 1; deriv = 3x^2 + 2x + 1 = x^2 + 1 (char 2).
	p := newPolyGF2M(f, 4)
	for i := 0; i <= 3; i++ {
		p.setCoeff(i, 1)
	}
	d := newPolyGF2M(f, 4)
	d.deriv(&p)

	if d.deg != 2 || d.getCoeff(0) != 1 || d.getCoeff(1) != 0 || d.getCoeff(2) != 1 {
		t.Fatalf("deriv = deg %d coeffs [%d,%d,%d], want deg 2 [1,0,1]",
			d.deg, d.getCoeff(0), d.getCoeff(1), d.getCoeff(2))
	}
}

func TestPolyGF2MInvModRoundTrip(t *testing.T) {
	f, err := newGF2MField(4, 0x13)
	if err != nil {
		t.Fatalf("newGF2MField: %v", err)
	}
	// m(x) = x^2 + x + alog[1], an arbitrary degree-2 modulus.
	m := newPolyGF2M(f, 3)
	m.setCoeff(0, f.alog[1])
	m.setCoeff(1, 1)
	m.setCoeff(2, 1)

	// a(x) = x + 1, coprime to m (different degree, nonzero constant).
	a := newPolyGF2M(f, 3)
	a.setCoeff(0, 1)
	a.setCoeff(1, 1)

	inv := newPolyGF2M(f, 3)
	if err := polyGF2MInvMod(&inv, &a, &m); err != nil {
		t.Fatalf("invMod: %v", err)
	}

	prod := newPolyGF2M(f, 6)
	prod.mul(&a, &inv)
	rem := newPolyGF2M(f, 6)
	if err := polyGF2MMod(&rem, &prod, &m); err != nil {
		t.Fatalf("mod: %v", err)
	}
	if rem.deg != 0 || rem.coeff[0] != 1 {
		t.Fatalf("a*inv(a) mod m = deg %d coeff0 %d, want the constant 1", rem.deg, rem.coeff[0])
	}
}

func TestPolyGF2MInvModNotCoprime(t *testing.T) {
	f, err := newGF2MField(4, 0x13)
	if err != nil {
		t.Fatalf("newGF2MField: %v", err)
	}
	m := newPolyGF2M(f, 3)
	m.setCoeff(0, f.alog[1])
	m.setCoeff(1, 1)
	m.setCoeff(2, 1)

	inv := newPolyGF2M(f, 3)
	if err := polyGF2MInvMod(&inv, &m, &m); err != ErrNotCoprime {
		t.Fatalf("invMod(m, m): got %v, want ErrNotCoprime", err)
	}
}
