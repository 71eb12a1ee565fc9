package dice

// Glyphs for a common anode display: bit 0 through 6 are segments a through g,
// bit 7 is the decimal point. A cleared bit lights the segment.
const Blank = 0b11111111

var digitGlyphs = [10]byte{
	0b11000000, // 0
	0b11111001, // 1
	0b10100100, // 2
	0b10110000, // 3
	0b10011001, // 4
	0b10010010, // 5
	0b10000010, // 6
	0b11111000, // 7
	0b10000000, // 8
	0b10010000, // 9
}

// Letters are rendered the same regardless of case, in whichever case looks
// best on seven segments.
var letterGlyphs = [26]byte{
	0b10001000, // A
	0b10000011, // b
	0b11000110, // C
	0b10100001, // d
	0b10000110, // E
	0b10001110, // F
	0b10000010, // G
	0b10001001, // H
	0b11111001, // I
	0b11100001, // J
	0b10000101, // K
	0b11000111, // L
	0b11001000, // M
	0b10101011, // n
	0b10100011, // o
	0b10001100, // P
	0b10011000, // q
	0b10101111, // r
	0b10010010, // S
	0b10000111, // t
	0b11000001, // U
	0b11100011, // v
	0b10000001, // W
	0b10110110, // X (three bars)
	0b10010001, // Y
	0b10100100, // Z
}

// Glyph returns the segment pattern for c. Characters without a pattern,
// including space, are blank.
func Glyph(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return digitGlyphs[c-'0']
	case c >= 'A' && c <= 'Z':
		return letterGlyphs[c-'A']
	case c >= 'a' && c <= 'z':
		return letterGlyphs[c-'a']
	default:
		return Blank
	}
}
