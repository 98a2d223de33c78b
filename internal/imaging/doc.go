// Package imaging provides the decode, color-mode and resize primitives used by
// the optimizer.
//
// This package wraps the standard image decoders (JPEG, PNG, GIF, plus WebP from
// golang.org/x/image) and github.com/disintegration/imaging. It knows nothing
// about quality tiers or output formats; callers decide what to do with the
// decoded pixels.
//
// # Color Modes
//
// Go does not carry a "mode" on decoded images the way some imaging toolkits do,
// so [Mode] derives one from the concrete image type and its opacity:
//   - RGB: opaque true-color images (*image.RGBA/*image.NRGBA with no transparent pixel)
//   - RGBA: true-color images with at least one non-opaque pixel
//   - L: grayscale (*image.Gray, *image.Gray16)
//   - LA: alpha-only or gray+alpha data (*image.Alpha, *image.Alpha16)
//   - P: paletted images (*image.Paletted)
//   - CMYK: *image.CMYK (Adobe CMYK JPEGs)
//   - YCbCr: *image.YCbCr (ordinary JPEGs)
//
// The PNG decoder returns *image.RGBA for plain RGB files, so opacity is checked
// rather than trusting the type alone.
//
// # Conversions
//
// [FlattenToRGB] composites transparent modes over a background color and
// returns an opaque image. [ConvertKeepAlpha] keeps transparency for RGBA and LA,
// expands palettes to RGBA and leaves everything else opaque. Both return
// *image.NRGBA so downstream encoders see a single pixel layout.
//
// # Resizing
//
// [Resizer] has three implementations: [LanczosResizer] (disintegration/imaging),
// [BildResizer] (anthonynsimon/bild) and [NfntResizer] (nfnt/resize). All of
// them use a Lanczos filter.
// [FitWidth] computes proportional target dimensions with integer math, so the
// height is always rounded down.
package imaging
