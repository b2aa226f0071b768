package codectk

// bchPrimitivePolys gives a fixed irreducible (primitive) reducing
// polynomial for each field degree m in [2,16]. Every GF(2^m) context in
// this module, BCH's own field and Goppa's field alike, derives its
// reducing polynomial from this table rather than hard-coding one.
var bchPrimitivePolys = map[uint]uint16{
	2: 0x7, 3: 0xB, 4: 0x13, 5: 0x25, 6: 0x43, 7: 0x89, 8: 0x11D,
	9: 0x211, 10: 0x409, 11: 0x805, 12: 0x1053, 13: 0x201B,
	14: 0x4443, 15: 0x8003, 16: 0x100B,
}

// gf2mField is a GF(2^m) field context: table-generated antilog/log tables
// plus the parameters used to build them.
type gf2mField struct {
	m       uint
	alog    []uint16 // antilog table, extended to 2*order entries
	log     []uint16 // log table, size 2^m; log[0] is undefined (sentinel)
	prim    uint16
	modPoly uint16
	order   uint // 2^m - 1
}

const logUndefined = 0xFFFF

// gf2mBackend is a swappable vtable for field ops: a process-wide variable
// written once and read thereafter. The default path is the table-based
// implementation; the indirection lets an alternative backend (e.g. a
// carryless-multiply path for a given m) replace it without touching any
// caller.
type gf2mVtbl struct {
	mul func(f *gf2mField, a, b uint16) uint16
	inv func(f *gf2mField, a uint16) uint16
	sqr func(f *gf2mField, a uint16) uint16
}

var gf2mBackend = gf2mVtbl{
	mul: gf2mMulTable,
	inv: gf2mInvTable,
	sqr: gf2mSqrTable,
}

// polyMulMod multiplies two GF(2) polynomials modulo an m-bit irreducible
// polynomial, used only while building the log/antilog tables.
func polyMulMod(a, b uint16, modPoly uint16, m uint) uint16 {
	var result uint16
	mask := uint16((1 << m) - 1)
	for b != 0 {
		if b&1 != 0 {
			result ^= a
		}
		b >>= 1
		a <<= 1
		if a&(1<<m) != 0 {
			a ^= modPoly
		}
	}
	return result & mask
}

// newGF2MField builds a GF(2^m) field context from m and a reducing
// polynomial, verifying the polynomial is primitive (produces a full cycle
// of length 2^m-1). Grounded on original_source/src/gf2m.c's
// gf2m_ctx_init.
func newGF2MField(m uint, modPoly uint16) (*gf2mField, error) {
	if m < 2 || m > 16 {
		return nil, NewValidationError("m", int(m), "codectk: field degree m out of range [2,16]", EINVAL)
	}
	fieldSize := uint(1) << m
	order := fieldSize - 1

	f := &gf2mField{m: m, prim: 2, modPoly: modPoly, order: order}
	f.alog = make([]uint16, 2*order)
	f.log = make([]uint16, fieldSize)
	for i := range f.log {
		f.log[i] = logUndefined
	}

	x := uint16(1)
	for i := uint(0); i < order; i++ {
		f.alog[i] = x
		f.log[x] = uint16(i)
		x = polyMulMod(x, f.prim, modPoly, m)
	}
	for i := order; i < 2*order; i++ {
		f.alog[i] = f.alog[i-order]
	}

	// A merely irreducible (but non-primitive) modPoly still forms a field,
	// so x^order == 1 always holds (Lagrange) and is not by itself evidence
	// of primitivity. The real test is that x generates the full cyclic
	// group: every nonzero element must have received a log entry.
	for a := uint(1); a < fieldSize; a++ {
		if f.log[a] == logUndefined {
			return nil, ErrNotPrimitive
		}
	}
	return f, nil
}

// newBCHField builds the GF(2^m) field using the fixed primitive polynomial
// table, the path every BCH and Goppa operation uses.
func newBCHField(m uint) (*gf2mField, error) {
	modPoly, ok := bchPrimitivePolys[m]
	if !ok {
		return nil, NewValidationError("m", int(m), "codectk: field degree m out of range [2,16]", EINVAL)
	}
	return newGF2MField(m, modPoly)
}

func gf2mAdd(a, b uint16) uint16 { return a ^ b }

func gf2mMulTable(f *gf2mField, a, b uint16) uint16 {
	if a == 0 || b == 0 {
		return 0
	}
	sum := uint(f.log[a]) + uint(f.log[b])
	return f.alog[sum%f.order]
}

func gf2mInvTable(f *gf2mField, a uint16) uint16 {
	if a == 0 {
		return 0 // undefined; caller must guard
	}
	return f.alog[f.order-uint(f.log[a])]
}

func gf2mSqrTable(f *gf2mField, a uint16) uint16 {
	return gf2mMulTable(f, a, a)
}

func (f *gf2mField) mul(a, b uint16) uint16 { return gf2mBackend.mul(f, a, b) }
func (f *gf2mField) inv(a uint16) uint16    { return gf2mBackend.inv(f, a) }
func (f *gf2mField) sqr(a uint16) uint16    { return gf2mBackend.sqr(f, a) }

// pow raises a field element to an integer power via square-and-multiply.
func (f *gf2mField) pow(a uint16, exp uint) uint16 {
	if exp == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	result := uint16(1)
	base := a
	for exp > 0 {
		if exp&1 != 0 {
			result = f.mul(result, base)
		}
		base = f.sqr(base)
		exp >>= 1
	}
	return result
}
