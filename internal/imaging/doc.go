// Package imaging reads and writes the image files the transform engine works
// on, and describes colours for reporting.
//
// It is the file-facing edge of the tool: decoding happens here, the decoded
// image is handed to package grid, and the transformed grid is written back
// here. Nothing in this package mutates pixels.
//
// # Supported Formats
//
// Decoding goes through github.com/disintegration/imaging, which reads PNG,
// JPEG, GIF, BMP and TIFF. WebP decoding is registered from
// golang.org/x/image/webp. JPEG EXIF orientation is applied on load so the
// grid's coordinate system matches what a viewer shows.
//
// Encoding chooses the format from the destination extension (PNG, JPEG,
// GIF, BMP, TIFF). WebP cannot be written.
//
// # Coordinate System
//
// Images keep their own bounds. Package grid normalises coordinates so that
// (0,0) is the top-left pixel regardless of the image's Min point.
//
// # Color Representation
//
// Colors are reported in several forms:
//   - Hex: "#RRGGBBAA", alpha included
//   - RGBA: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// Hex parsing and HSL conversion use github.com/lucasb-eyer/go-colorful.
package imaging
