package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/image-optimizer/internal/display"
)

var rule = strings.Repeat("=", 60)

// WriteSummary prints the totals block and the closing instructions.
func WriteSummary(w io.Writer, s *Stats) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total original size: %s\n", display.FormatMB(s.OriginalBytes))
	fmt.Fprintf(w, "Total optimized size: %s\n", display.FormatMB(s.OptimizedBytes))
	fmt.Fprintf(w, "Total WebP size: %s\n", display.FormatMB(s.WebPBytes))
	fmt.Fprintf(w, "Overall reduction: %s\n", display.FormatPercent(s.OverallReduction()))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Optimization complete!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "1. Review the optimized images")
	fmt.Fprintln(w, "2. Replace originals with optimized versions if satisfied")
	fmt.Fprintln(w, "3. Update HTML/CSS to use WebP with fallbacks")
}
