// Package text measures and paints chart labels.
//
// A Source pairs two views of one font file: the x/image opentype font,
// which yields ink bounds and rasterized glyphs, and the go-text font, which
// is shaped with HarfBuzz to obtain the advance width of a string. Strings
// are NFC-normalized before either step so that precomposed and decomposed
// labels measure and draw identically.
//
//	src := text.Default()
//	ext := src.Measure("Apples", 10)
//	src.Draw(img, "Apples", 12, 40, 10, color.Black)
package text
