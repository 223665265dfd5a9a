package render

// Quantize converts a color channel with nominal range [0, 1] to 8 bits.
//
// The scaled value is truncated, not rounded: Quantize(0.5) is 127. Values
// outside the range clamp to 0 or 255 and NaN maps to 0.
func Quantize(c float64) uint8 {
	v := c * 255.0
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
