package batch

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-optimizer/internal/display"
	"github.com/ironsheep/image-optimizer/internal/encode"
	"github.com/ironsheep/image-optimizer/internal/optimize"
)

// fakeProcessor returns canned results keyed by path.
type fakeProcessor struct {
	jpeg     map[string]*optimize.Result
	webp     map[string]*optimize.Result
	jpegErr  map[string]error
	webpErr  map[string]error
	webpSeen []string
}

func (f *fakeProcessor) OptimizeJPEG(path string) (*optimize.Result, error) {
	if err := f.jpegErr[path]; err != nil {
		return nil, err
	}
	return f.jpeg[path], nil
}

func (f *fakeProcessor) CreateWebP(path string) (*optimize.Result, error) {
	f.webpSeen = append(f.webpSeen, path)
	if err := f.webpErr[path]; err != nil {
		return nil, err
	}
	return f.webp[path], nil
}

func writeSized(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestRun_ConsoleOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeSized(t, dir, "9.jpg", 2*display.MiB)

	proc := &fakeProcessor{
		jpeg: map[string]*optimize.Result{path: {
			Path: path, Tier: optimize.Tier{Quality: 75, MaxWidth: 1920}, Resized: true,
			BeforeBytes: 2 * display.MiB, AfterBytes: display.MiB / 2,
		}},
		webp: map[string]*optimize.Result{path: {
			Path: path, BeforeBytes: display.MiB / 2, AfterBytes: display.MiB / 4,
		}},
	}

	var out bytes.Buffer
	stats := NewRunner(proc, WithOutput(&out)).Run(context.Background(), []string{path})

	want := "Starting image optimization...\n" +
		"\n" +
		"  Resized to 1920px width\n" +
		"✓ " + path + "\n" +
		"  Original: 2.00 MB → Optimized: 0.50 MB (75.0% reduction)\n" +
		"  WebP: 0.25 MB (50.0% reduction from original)\n" +
		"\n" +
		strings.Repeat("=", 60) + "\n" +
		"Total original size: 2.00 MB\n" +
		"Total optimized size: 0.50 MB\n" +
		"Total WebP size: 0.25 MB\n" +
		"Overall reduction: 87.5%\n" +
		strings.Repeat("=", 60) + "\n" +
		"\n" +
		"Optimization complete!\n" +
		"\n" +
		"Next steps:\n" +
		"1. Review the optimized images\n" +
		"2. Replace originals with optimized versions if satisfied\n" +
		"3. Update HTML/CSS to use WebP with fallbacks\n"

	if out.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out.String(), want)
	}
	if stats.Optimized != 1 || stats.WebP != 1 {
		t.Errorf("counts: optimized=%d webp=%d, want 1/1", stats.Optimized, stats.WebP)
	}
	if stats.Err() != nil {
		t.Errorf("Err() should be nil, got %v", stats.Err())
	}
	if stats.Files[0].Status != StatusOptimized {
		t.Errorf("Status: got %s, want optimized", stats.Files[0].Status)
	}
}

func TestRun_MissingFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	proc := &fakeProcessor{}

	var out bytes.Buffer
	stats := NewRunner(proc, WithOutput(&out)).Run(context.Background(), []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.jpg"),
	})

	if stats.Missing != 2 || stats.Processed() != 0 {
		t.Errorf("Missing=%d Processed=%d, want 2/0", stats.Missing, stats.Processed())
	}
	if stats.OriginalBytes != 0 || stats.OptimizedBytes != 0 || stats.WebPBytes != 0 {
		t.Error("totals should be unchanged by missing files")
	}
	if strings.Contains(out.String(), "✓") {
		t.Error("no success lines expected")
	}
	if !strings.Contains(out.String(), "Overall reduction: 0.0%") {
		t.Errorf("empty run should report 0.0%%, got:\n%s", out.String())
	}
	if stats.Err() != nil {
		t.Error("missing files are not errors")
	}
}

func TestRun_FailureContinues(t *testing.T) {
	dir := t.TempDir()
	bad := writeSized(t, dir, "bad.jpg", 1000)
	good := writeSized(t, dir, "good.jpg", 4000)

	proc := &fakeProcessor{
		jpegErr: map[string]error{bad: errors.New("failed to decode image: unexpected EOF")},
		jpeg:    map[string]*optimize.Result{good: {Path: good, BeforeBytes: 4000, AfterBytes: 1000}},
		webp:    map[string]*optimize.Result{good: {Path: good, BeforeBytes: 1000, AfterBytes: 500}},
	}

	var out bytes.Buffer
	stats := NewRunner(proc, WithOutput(&out)).Run(context.Background(), []string{bad, good})

	if stats.Failed != 1 || stats.Optimized != 1 {
		t.Errorf("Failed=%d Optimized=%d, want 1/1", stats.Failed, stats.Optimized)
	}
	// The failed file's size still counts toward the original total.
	if stats.OriginalBytes != 5000 {
		t.Errorf("OriginalBytes: got %d, want 5000", stats.OriginalBytes)
	}
	if stats.OptimizedBytes != 1000 || stats.WebPBytes != 500 {
		t.Errorf("OptimizedBytes=%d WebPBytes=%d, want 1000/500", stats.OptimizedBytes, stats.WebPBytes)
	}
	if len(stats.Errors()) != 1 {
		t.Errorf("Errors: got %d, want 1", len(stats.Errors()))
	}
	if stats.Files[0].Status != StatusFailed || stats.Files[0].Error == "" {
		t.Errorf("bad file report: %+v", stats.Files[0])
	}
	if strings.Contains(out.String(), "✓ "+bad) {
		t.Error("failed file should not be reported as optimized")
	}
	if !strings.Contains(out.String(), "Error optimizing "+bad+": failed to decode image: unexpected EOF\n") {
		t.Errorf("missing error line in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "✓ "+good) {
		t.Error("good file should be processed after the failure")
	}
	if len(proc.webpSeen) != 1 || proc.webpSeen[0] != good {
		t.Errorf("webp should only run after a successful optimize, got %v", proc.webpSeen)
	}
}

func TestRun_WebPFailureKeepsJPEG(t *testing.T) {
	dir := t.TempDir()
	path := writeSized(t, dir, "me.jpg", 3000)

	proc := &fakeProcessor{
		jpeg:    map[string]*optimize.Result{path: {Path: path, BeforeBytes: 3000, AfterBytes: 1500}},
		webpErr: map[string]error{path: errors.New("failed to encode webp")},
	}

	var out bytes.Buffer
	stats := NewRunner(proc, WithOutput(&out)).Run(context.Background(), []string{path})

	if stats.Optimized != 1 || stats.WebP != 0 || stats.WebPFailed != 1 {
		t.Errorf("Optimized=%d WebP=%d WebPFailed=%d, want 1/0/1", stats.Optimized, stats.WebP, stats.WebPFailed)
	}
	if stats.OptimizedBytes != 1500 || stats.WebPBytes != 0 {
		t.Errorf("OptimizedBytes=%d WebPBytes=%d, want 1500/0", stats.OptimizedBytes, stats.WebPBytes)
	}
	if stats.Files[0].Status != StatusPartial || stats.Files[0].JPEG == nil {
		t.Errorf("report should keep the jpeg result: %+v", stats.Files[0])
	}
	if strings.Contains(out.String(), "WebP:") {
		t.Error("no WebP line expected")
	}
	if !strings.Contains(out.String(), "Error creating WebP for "+path+": failed to encode webp\n") {
		t.Errorf("missing webp error line in output:\n%s", out.String())
	}
	// With WebP enabled the reduction is measured against the WebP total.
	if stats.OverallReduction() != 100 {
		t.Errorf("OverallReduction: got %.1f, want 100.0", stats.OverallReduction())
	}
}

func TestRun_WithoutWebP(t *testing.T) {
	dir := t.TempDir()
	path := writeSized(t, dir, "a.jpg", 1000)

	proc := &fakeProcessor{
		jpeg: map[string]*optimize.Result{path: {Path: path, BeforeBytes: 1000, AfterBytes: 400}},
	}

	var out bytes.Buffer
	stats := NewRunner(proc, WithOutput(&out), WithoutWebP()).Run(context.Background(), []string{path})

	if len(proc.webpSeen) != 0 {
		t.Error("CreateWebP should not be called")
	}
	if stats.OverallReduction() != 60 {
		t.Errorf("OverallReduction: got %.1f, want 60.0", stats.OverallReduction())
	}
	if !strings.Contains(out.String(), "Overall reduction: 60.0%") {
		t.Errorf("summary should use optimized total, got:\n%s", out.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeSized(t, dir, "a.jpg", 1000)
	proc := &fakeProcessor{
		jpeg: map[string]*optimize.Result{path: {Path: path, BeforeBytes: 1000, AfterBytes: 400}},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	stats := NewRunner(proc, WithOutput(&out)).Run(ctx, []string{path})

	if !stats.Interrupted {
		t.Error("Interrupted should be set")
	}
	if stats.Optimized != 0 {
		t.Error("no file should be processed after cancellation")
	}
	if !strings.Contains(out.String(), "Optimization complete!") {
		t.Error("summary should still be printed")
	}
}

func TestRun_Directory(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	stats := NewRunner(&fakeProcessor{}, WithOutput(&out)).Run(context.Background(), []string{dir})

	if stats.Failed != 1 {
		t.Errorf("a directory should count as a failure, got Failed=%d", stats.Failed)
	}
}

func TestRun_RealOptimizer(t *testing.T) {
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	good := filepath.Join(dir, "good.png")
	f, err := os.Create(good)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	f.Close()

	corrupt := writeSized(t, dir, "corrupt.jpg", 100)
	missing := filepath.Join(dir, "missing.jpg")

	o := optimize.New(optimize.WithJPEGEncoder(encode.NativeJPEGEncoder{}),
		optimize.WithBackground(color.White))

	var out bytes.Buffer
	stats := NewRunner(o, WithOutput(&out)).Run(context.Background(), []string{missing, corrupt, good})

	if stats.Missing != 1 || stats.Failed != 1 || stats.Optimized != 1 || stats.WebP != 1 {
		t.Errorf("Missing=%d Failed=%d Optimized=%d WebP=%d, want 1/1/1/1",
			stats.Missing, stats.Failed, stats.Optimized, stats.WebP)
	}
	if _, err := os.Stat(filepath.Join(dir, "good.webp")); err != nil {
		t.Errorf("webp sibling missing: %v", err)
	}
	if !strings.Contains(out.String(), "Error optimizing "+corrupt+": failed to decode image") {
		t.Errorf("missing error line for %s in:\n%s", corrupt, out.String())
	}
	if !strings.Contains(out.String(), "✓ "+good) {
		t.Errorf("expected success line for %s in:\n%s", good, out.String())
	}
}
