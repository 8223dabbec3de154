package blend

// Op represents a compositing operator.
//
// OpSourceOver works on straight alpha, lerping each channel toward the
// source; the remaining operators are the Porter-Duff set on premultiplied
// 0-255 channels.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
type Op uint8

const (
	OpSourceOver      Op = iota // S + D*(1-Sa) [default]
	OpClear                     // 0
	OpSource                    // S
	OpDestination               // D
	OpDestinationOver           // S*(1-Da) + D
	OpSourceIn                  // S*Da
	OpDestinationIn             // D*Sa
	OpSourceOut                 // S*(1-Da)
	OpDestinationOut            // D*(1-Sa)
	OpSourceAtop                // S*Da + D*(1-Sa)
	OpDestinationAtop           // S*(1-Da) + D*Sa
	OpXor                       // S*(1-Da) + D*(1-Sa)
	OpPlus                      // S + D (clamped)
)

// opFn is the signature for premultiplied blend operations; all values 0-255.
type opFn func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// opFunc returns the blend function for the operator. OpSourceOver is
// handled by the caller's straight-alpha path and maps to the premultiplied
// equivalent here for completeness.
func opFunc(op Op) opFn {
	switch op {
	case OpClear:
		return opClear
	case OpSource:
		return opSource
	case OpDestination:
		return opDestination
	case OpDestinationOver:
		return opDestinationOver
	case OpSourceIn:
		return opSourceIn
	case OpDestinationIn:
		return opDestinationIn
	case OpSourceOut:
		return opSourceOut
	case OpDestinationOut:
		return opDestinationOut
	case OpSourceAtop:
		return opSourceAtop
	case OpDestinationAtop:
		return opDestinationAtop
	case OpXor:
		return opXor
	case OpPlus:
		return opPlus
	default:
		return opSourceOverPremul
	}
}

func opClear(_, _, _, _, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func opSource(sr, sg, sb, sa, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func opDestination(_, _, _, _, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

func opSourceOverPremul(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	ia := 255 - sa
	return addClamp(sr, mulDiv255(dr, ia)),
		addClamp(sg, mulDiv255(dg, ia)),
		addClamp(sb, mulDiv255(db, ia)),
		addClamp(sa, mulDiv255(da, ia))
}

func opDestinationOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	ia := 255 - da
	return addClamp(mulDiv255(sr, ia), dr),
		addClamp(mulDiv255(sg, ia), dg),
		addClamp(mulDiv255(sb, ia), db),
		addClamp(mulDiv255(sa, ia), da)
}

func opSourceIn(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func opDestinationIn(_, _, _, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

func opSourceOut(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	ia := 255 - da
	return mulDiv255(sr, ia), mulDiv255(sg, ia), mulDiv255(sb, ia), mulDiv255(sa, ia)
}

func opDestinationOut(_, _, _, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	ia := 255 - sa
	return mulDiv255(dr, ia), mulDiv255(dg, ia), mulDiv255(db, ia), mulDiv255(da, ia)
}

func opSourceAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, isa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, isa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, isa)),
		addClamp(mulDiv255(sa, da), mulDiv255(da, isa))
}

func opDestinationAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	ida := 255 - da
	return addClamp(mulDiv255(sr, ida), mulDiv255(dr, sa)),
		addClamp(mulDiv255(sg, ida), mulDiv255(dg, sa)),
		addClamp(mulDiv255(sb, ida), mulDiv255(db, sa)),
		addClamp(mulDiv255(sa, ida), mulDiv255(da, sa))
}

func opXor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	isa := 255 - sa
	ida := 255 - da
	return addClamp(mulDiv255(sr, ida), mulDiv255(dr, isa)),
		addClamp(mulDiv255(sg, ida), mulDiv255(dg, isa)),
		addClamp(mulDiv255(sb, ida), mulDiv255(db, isa)),
		addClamp(mulDiv255(sa, ida), mulDiv255(da, isa))
}

func opPlus(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}
