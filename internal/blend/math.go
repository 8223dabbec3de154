// Fast math for alpha blending. The div255 family avoids integer division;
// see Alvy Ray Smith's technical memos (http://alvyray.com/Memos/).
package blend

// div255 divides x by 255 using a fast shift approximation. The maximum
// error is +1 for some inputs, imperceptible in coverage blending.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// div255Exact divides x by 255 exactly without division (Alvy Ray Smith's
// formula). Used where bit-exact results are required, such as full-coverage
// opaque fills that must replace the destination exactly.
func div255Exact(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255, fast approximation.
func mulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint16(a) * uint16(b)))
}

// mulDiv255Exact multiplies two bytes and divides by 255 exactly.
func mulDiv255Exact(a, b uint8) uint8 {
	return uint8(div255Exact(uint16(a) * uint16(b)))
}

// lerp255 interpolates from d to s by t/255, exact at both endpoints.
func lerp255(d, s, t uint8) uint8 {
	return uint8(div255Exact(uint16(d)*uint16(255-t) + uint16(s)*uint16(t)))
}

// addClamp adds two bytes, saturating at 255.
func addClamp(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
