// Package batch drives the optimizer over a list of image paths.
//
// Files are processed one at a time in list order. A missing file is skipped
// with a warning; a file that fails to optimize is logged and skipped; a WebP
// failure keeps the JPEG result. Nothing stops the loop except cancellation of
// the context, which is checked between files.
//
// Progress lines and the final summary are written to the runner's output
// (stdout by default). Diagnostics go to the zap logger.
package batch
