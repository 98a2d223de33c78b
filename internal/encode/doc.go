// Package encode turns prepared images into compressed JPEG and WebP bytes.
//
// # JPEG Encoders
//
// Two JPEG encoders are available through [NewJPEGEncoder]:
//
//   - "vips" ([VipsJPEGEncoder]) hands the image to libvips through h2non/bimg
//     and writes a progressive JPEG with optimized Huffman tables and no
//     metadata. This is the default.
//   - "native" ([NativeJPEGEncoder]) uses the Go standard encoder through
//     disintegration/imaging. The output is baseline, not progressive, and is
//     meant for hosts without libvips.
//
// The libvips encoder needs cgo and the vips pkg-config package. Building with
// -tags novips drops that dependency: [VipsJPEGEncoder] then fails every
// encode with ErrVipsUnavailable and [VipsAvailable] reports false, while the
// native and WebP encoders keep working.
//
// # WebP Encoder
//
// [WebPEncoder] writes lossy WebP through chai2010/webp. Images with alpha keep
// their alpha channel.
//
// # Inspection
//
// [InspectJPEG] walks the JPEG marker segments up to the first frame header and
// reports dimensions, component count and whether the frame is progressive. It
// does not decode any pixel data.
package encode
