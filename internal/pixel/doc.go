// Package pixel defines the pixel sample used by the transform engine and the
// one-time mutation guard that wraps it.
//
// A Pixel is a grid coordinate plus an 8-bit RGBA colour. Colours are kept as
// color.NRGBA: channels are stored exactly as decoded, never premultiplied by
// alpha, so two transparent pixels with different RGB values stay distinct.
//
// Two pixels are equal only when both position and colour match; equality
// never goes through the textual form.
//
// # Guards
//
// A Guard decorates a Pixel so that at most one SetColor call succeeds. Every
// later write is silently dropped. Guards satisfy the Pixel interface, so code
// that only sees a Pixel cannot tell the difference; IsGuarded and Changed
// probe for the capability explicitly.
//
// Guards carry per-pass state. Wrap a grid immediately before a pass and
// unwrap it immediately after; a guard kept across passes would suppress
// legitimate writes in the next one.
package pixel
