package imaging

import (
	"math"

	"github.com/anthonynsimon/bild/effect"
)

// Text-likelihood classifications. These are heuristic labels, not OCR
// results.
const (
	TextLikely   = "likely"
	TextPossible = "possible"
	TextUnlikely = "unlikely"
	TextUnknown  = "unknown"
)

// Heuristic thresholds. Tuned by eye against screenshots and photos;
// exact values are not load-bearing.
const (
	contrastHigh   = 200
	contrastMedium = 100
	contrastLikely = 150

	// Rendered text sits in a band of edge density: sparser is usually
	// flat fill, denser is usually photographic texture.
	edgeDensityMin = 0.05
	edgeDensityMax = 0.40

	// edgeLevel is the luminance above which an edge-map pixel counts
	// as an edge.
	edgeLevel = 64

	// minTextPixels is the smallest image the edge statistics are
	// meaningful for; below it the heuristic answers "unknown".
	minTextPixels = 64
)

// TextInfo is the heuristic text-likelihood report for one image.
type TextInfo struct {
	Mode          string  `json:"mode"`            // Color mode of the source image
	GrayscaleMin  int     `json:"grayscale_min"`   // Darkest luminance (0-255)
	GrayscaleMax  int     `json:"grayscale_max"`   // Brightest luminance (0-255)
	Contrast      int     `json:"contrast"`        // GrayscaleMax - GrayscaleMin
	ContrastLevel string  `json:"contrast_level"`  // "high", "medium", or "low"
	EdgeDensity   float64 `json:"edge_density"`    // Fraction of edge pixels (0-1)
	Likelihood    string  `json:"text_likelihood"` // likely/possible/unlikely/unknown
	Confidence    float64 `json:"confidence"`      // 0-1, 0 when unknown
	Note          string  `json:"note"`
}

// ExtractTextInfo estimates whether an image contains rendered text.
//
// The estimate combines two statistics over the decoded pixels: the
// luminance contrast (text needs foreground/background separation) and
// the edge density of the image (glyph strokes produce a characteristic
// amount of edges). It is best-effort and never authoritative; images
// too small to measure yield "unknown" rather than an error.
func ExtractTextInfo(d *Decoded) *TextInfo {
	gray := effect.Grayscale(d.Image)

	min, max := 255, 0
	bounds := gray.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v16, _, _, _ := gray.At(x, y).RGBA()
			v := int(v16 >> 8)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if max < min {
		// Zero-pixel image; decoders do not produce these, but keep the
		// extrema well-formed.
		min, max = 0, 0
	}
	contrast := max - min

	level := "low"
	switch {
	case contrast > contrastHigh:
		level = "high"
	case contrast > contrastMedium:
		level = "medium"
	}

	info := &TextInfo{
		Mode:          d.Mode,
		GrayscaleMin:  min,
		GrayscaleMax:  max,
		Contrast:      contrast,
		ContrastLevel: level,
		Note:          "heuristic estimate from contrast and edge statistics; use an OCR tool to extract actual text",
	}

	if d.Width*d.Height < minTextPixels {
		info.Likelihood = TextUnknown
		info.Confidence = 0
		return info
	}

	info.EdgeDensity = edgeDensity(d)

	switch {
	case contrast >= contrastLikely && info.EdgeDensity >= edgeDensityMin && info.EdgeDensity <= edgeDensityMax:
		info.Likelihood = TextLikely
		// Peak confidence at the middle of the density band.
		mid := (edgeDensityMin + edgeDensityMax) / 2
		conf := 1.0 - math.Abs(info.EdgeDensity-mid)/mid
		if conf < 0.5 {
			conf = 0.5
		}
		info.Confidence = math.Round(conf*100) / 100
	case contrast >= contrastMedium:
		info.Likelihood = TextPossible
		info.Confidence = 0.4
	default:
		info.Likelihood = TextUnlikely
		info.Confidence = 0.2
	}

	return info
}

// edgeDensity returns the fraction of pixels the edge detector marks as
// edges.
func edgeDensity(d *Decoded) float64 {
	edges := effect.EdgeDetection(d.Image, 1.0)

	bounds := edges.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}

	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := edges.At(x, y).RGBA()
			if int(r>>8) > edgeLevel {
				count++
			}
		}
	}

	return math.Round(float64(count)/float64(total)*1000) / 1000
}
