package hal

// RGB565 packs 8-bit channels into 16bpp: rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888From565 expands a 16bpp pixel back to 8-bit channels.
func RGB888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// PutRGB565 stores p little-endian at pixel (x, y) of an RGB565 buffer.
// Out-of-range coordinates are ignored.
func PutRGB565(buf []byte, stride, w, h, x, y int, p uint16) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	off := y*stride + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func fillRGB565(buf []byte, p uint16) {
	lo := byte(p)
	hi := byte(p >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

// RGB565ToRGBA expands packed little-endian RGB565 pixels from src into
// opaque RGBA bytes in dst. It stops at whichever buffer runs out first and
// returns the number of pixels converted.
func RGB565ToRGBA(dst, src []byte) int {
	n := 0
	for i := 0; i+1 < len(src) && n*4+3 < len(dst); i += 2 {
		r, g, b := RGB888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := n * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
		n++
	}
	return n
}

// RGB565BigEndian copies little-endian RGB565 pixels from src to dst in the
// byte order SPI panels expect. It returns the number of pixels copied.
func RGB565BigEndian(dst, src []byte) int {
	n := 0
	for i := 0; i+1 < len(src) && i+1 < len(dst); i += 2 {
		dst[i] = src[i+1]
		dst[i+1] = src[i]
		n++
	}
	return n
}
