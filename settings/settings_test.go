package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.ZoomMode != "page" {
		t.Errorf("Expected default zoom_mode page, got %q", d.ZoomMode)
	}
	if d.ZoomFactor != 2 {
		t.Errorf("Expected default zoom_factor 2, got %f", d.ZoomFactor)
	}
	if d.RightToLeft || d.BottomToTop || d.VerticalPan {
		t.Error("Expected direction flags to default to false")
	}
}

func TestResolvePrecedence(t *testing.T) {
	global := &Partial{
		ZoomMode:   strPtr("contentwidth"),
		ZoomFactor: f64Ptr(3),
		OverlapH:   f64Ptr(10),
	}
	doc := &Partial{
		ZoomMode:    strPtr("column"),
		RightToLeft: boolPtr(true),
	}

	got := Resolve(doc, global)
	want := Settings{
		ZoomMode:    "column", // per-document wins
		ZoomFactor:  3,        // global fills the gap
		OverlapH:    10,
		OverlapV:    0, // built-in default
		RightToLeft: true,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNilLayers(t *testing.T) {
	if diff := cmp.Diff(Defaults(), Resolve(nil, nil)); diff != "" {
		t.Errorf("Resolve(nil, nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")

	f := &File{
		Global: Partial{ZoomMode: strPtr("page"), OverlapV: f64Ptr(5)},
	}
	f.Set("/books/a.pdf", Partial{
		ZoomMode:    strPtr("contentwidth"),
		RightToLeft: boolPtr(true),
	})

	if err := f.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := loaded.For("/books/a.pdf")
	if got.ZoomMode != "contentwidth" {
		t.Errorf("Expected per-document zoom_mode contentwidth, got %q", got.ZoomMode)
	}
	if !got.RightToLeft {
		t.Error("Expected per-document right_to_left true")
	}
	if got.OverlapV != 5 {
		t.Errorf("Expected global overlap_v 5, got %f", got.OverlapV)
	}
	if got.ZoomFactor != 2 {
		t.Errorf("Expected built-in zoom_factor 2, got %f", got.ZoomFactor)
	}

	other := loaded.For("/books/unknown.pdf")
	if other.ZoomMode != "page" {
		t.Errorf("Expected global zoom_mode page for unknown document, got %q", other.ZoomMode)
	}
}

func TestLoadMissingFile(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if diff := cmp.Diff(Defaults(), f.For("anything")); diff != "" {
		t.Errorf("Missing file should resolve to defaults (-want +got):\n%s", diff)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("global: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed settings file")
	}
}
