// Package optimize recompresses images in place and writes WebP siblings.
//
// Both operations pick their parameters from the size of the file they read
// (see [SelectTier]): bigger files get lower quality and a tighter width cap.
//
// [Optimizer.OptimizeJPEG] flattens transparency onto a background, resizes,
// and replaces the file with a JPEG at the same path, even when the path ends
// in .png. [Optimizer.CreateWebP] keeps transparency, resizes, and writes a
// .webp file next to its input. Neither operation keeps a backup; writes go
// through a temporary file so a failed encode leaves the original untouched.
package optimize
