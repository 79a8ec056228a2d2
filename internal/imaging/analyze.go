package imaging

import (
	"fmt"
	"math"
)

// Orientation values returned by Orientation and embedded in Report.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
	OrientationSquare    = "square"
)

// Dimensions holds an image's pixel dimensions.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ColorSummary is the condensed color census embedded in Report.
type ColorSummary struct {
	// UniqueColors is the number of distinct RGB values seen in the
	// scanned pixels.
	UniqueColors int `json:"unique_colors"`

	// Approximate is true when the census scanned a downsampled copy
	// instead of every pixel.
	Approximate bool `json:"approximate"`

	// Dominant lists the most frequent colors as "#rrggbb" hex strings,
	// most frequent first.
	Dominant []string `json:"dominant"`
}

// Report is the full descriptive report for one image.
type Report struct {
	Dimensions  Dimensions   `json:"dimensions"`
	Format      string       `json:"format"`
	Mode        string       `json:"mode"`
	Orientation string       `json:"orientation"`
	AspectRatio float64      `json:"aspect_ratio"`
	Colors      ColorSummary `json:"colors"`
	Summary     string       `json:"summary"`
}

// Analyze derives the full descriptive report from a decoded image.
//
// The report is a pure function of d: repeated calls on the same
// decoded image produce identical reports, and d is not retained or
// mutated. The embedded color summary uses the default sample limit,
// so very large images report an approximate unique-color count.
func Analyze(d *Decoded) *Report {
	aspect := 0.0
	if d.Height > 0 {
		aspect = math.Round(float64(d.Width)/float64(d.Height)*100) / 100
	}

	census := CountColors(d, DefaultSampleLimit, 3)
	dominant := make([]string, 0, len(census.Dominant))
	for _, c := range census.Dominant {
		dominant = append(dominant, c.Hex)
	}

	return &Report{
		Dimensions:  Dimensions{Width: d.Width, Height: d.Height},
		Format:      d.Format,
		Mode:        d.Mode,
		Orientation: Orientation(d),
		AspectRatio: aspect,
		Colors: ColorSummary{
			UniqueColors: census.UniqueColors,
			Approximate:  census.Approximate,
			Dominant:     dominant,
		},
		Summary: fmt.Sprintf("%dx%d %s image in %s mode", d.Width, d.Height, d.Format, d.Mode),
	}
}

// OrientationResult wraps the orientation classification for the wire.
type OrientationResult struct {
	Orientation string     `json:"orientation"`
	Dimensions  Dimensions `json:"dimensions"`
}

// Orientation classifies an image's coarse aspect: wider than tall is
// landscape, taller than wide is portrait, equal is square.
func Orientation(d *Decoded) string {
	switch {
	case d.Width > d.Height:
		return OrientationLandscape
	case d.Width < d.Height:
		return OrientationPortrait
	default:
		return OrientationSquare
	}
}

// ClassifyOrientation returns the orientation with the dimensions that
// produced it.
func ClassifyOrientation(d *Decoded) *OrientationResult {
	return &OrientationResult{
		Orientation: Orientation(d),
		Dimensions:  Dimensions{Width: d.Width, Height: d.Height},
	}
}
