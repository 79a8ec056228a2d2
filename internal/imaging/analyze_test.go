package imaging

import (
	"image/color"
	"reflect"
	"testing"
)

func TestAnalyze_SolidRedPNG(t *testing.T) {
	data := encodePNG(t, solidImage(t, 2, 3, color.RGBA{255, 0, 0, 255}))

	d, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	report := Analyze(d)

	if report.Dimensions.Width != 2 {
		t.Errorf("Width: got %d, want 2", report.Dimensions.Width)
	}
	if report.Dimensions.Height != 3 {
		t.Errorf("Height: got %d, want 3", report.Dimensions.Height)
	}
	if report.Format != "png" {
		t.Errorf("Format: got %s, want png", report.Format)
	}
	if report.Mode != "RGB" {
		t.Errorf("Mode: got %s, want RGB", report.Mode)
	}
	if report.Orientation != OrientationPortrait {
		t.Errorf("Orientation: got %s, want %s", report.Orientation, OrientationPortrait)
	}
	if report.AspectRatio != 0.67 {
		t.Errorf("AspectRatio: got %v, want 0.67", report.AspectRatio)
	}
	if report.Colors.UniqueColors != 1 {
		t.Errorf("UniqueColors: got %d, want 1", report.Colors.UniqueColors)
	}
	if report.Colors.Approximate {
		t.Error("Approximate should be false for a 6-pixel image")
	}
	if len(report.Colors.Dominant) != 1 || report.Colors.Dominant[0] != "#ff0000" {
		t.Errorf("Dominant: got %v, want [#ff0000]", report.Colors.Dominant)
	}
	if report.Summary != "2x3 png image in RGB mode" {
		t.Errorf("Summary: got %q", report.Summary)
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		width, height int
		want          string
	}{
		{3, 2, OrientationLandscape},
		{2, 3, OrientationPortrait},
		{2, 2, OrientationSquare},
		{1, 1, OrientationSquare},
		{640, 480, OrientationLandscape},
		{480, 640, OrientationPortrait},
	}

	for _, tt := range tests {
		d := &Decoded{Width: tt.width, Height: tt.height}
		if got := Orientation(d); got != tt.want {
			t.Errorf("Orientation(%dx%d): got %s, want %s", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestOrientation_ConsistentWithDimensions(t *testing.T) {
	// The classification must always agree with the width/height
	// comparison, whatever the dimensions.
	for w := 1; w <= 8; w++ {
		for h := 1; h <= 8; h++ {
			d := &Decoded{Width: w, Height: h}
			got := Orientation(d)
			switch {
			case w > h && got != OrientationLandscape:
				t.Errorf("%dx%d: got %s, want landscape", w, h, got)
			case w < h && got != OrientationPortrait:
				t.Errorf("%dx%d: got %s, want portrait", w, h, got)
			case w == h && got != OrientationSquare:
				t.Errorf("%dx%d: got %s, want square", w, h, got)
			}
		}
	}
}

func TestClassifyOrientation(t *testing.T) {
	d, err := Decode(encodePNG(t, solidImage(t, 4, 2, color.RGBA{0, 0, 0, 255})))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	result := ClassifyOrientation(d)
	if result.Orientation != OrientationLandscape {
		t.Errorf("Orientation: got %s, want %s", result.Orientation, OrientationLandscape)
	}
	if result.Dimensions.Width != 4 || result.Dimensions.Height != 2 {
		t.Errorf("Dimensions: got %dx%d, want 4x2", result.Dimensions.Width, result.Dimensions.Height)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	data := encodePNG(t, patternImage(t, 8, 8))

	d1, err := Decode(data)
	if err != nil {
		t.Fatalf("first Decode failed: %v", err)
	}
	d2, err := Decode(data)
	if err != nil {
		t.Fatalf("second Decode failed: %v", err)
	}

	r1 := Analyze(d1)
	r2 := Analyze(d2)

	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("reports differ across identical inputs:\n%+v\n%+v", r1, r2)
	}
}
