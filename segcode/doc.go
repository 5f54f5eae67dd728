// Package segcode provides the segment code format and symbol table for
// seven-segment digits driven by the segmux package.
//
// A Code holds one bit per segment plus the decimal point. The table is laid
// out for common-anode displays, so a cleared bit lights its segment:
//
//	 AAA        bit 0: A    bit 4: E
//	F   B       bit 1: B    bit 5: F
//	 GGG        bit 2: C    bit 6: G
//	E   C       bit 3: D    bit 7: DP
//	 DDD  DP
//
// Symbols are addressed by index:
//
//	 0-9   decimal digits
//	10-35  letters A..Z (K, X alias H; V aliases U; Z aliases 2; M and W cannot be shown)
//	36     blank
//	37     dash
//	38     decimal point
//	39-49  / = ? [ \ ] ^ _ u | °
//
// Example usage:
//
//	// Look up the glyph for 'E'
//	c := segcode.Encode(segcode.SymbolFor('E'))
//
//	// Light the decimal point
//	c = c.WithDP(true)
//
//	// Segment A lit?
//	println(c.Lit(segcode.SegA))
package segcode
