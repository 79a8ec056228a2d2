package imaging

import (
	"math"
	"sort"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Census defaults. Both are tunable; neither is part of the wire
// contract beyond being the values applied when a request omits them.
const (
	// DefaultSampleLimit caps the number of pixels scanned by a color
	// census (512x512). Larger images are downsampled first.
	DefaultSampleLimit = 262144

	// DefaultTopColors is the dominant-color list length when the
	// request does not specify one.
	DefaultTopColors = 5
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// DominantColor is one entry of a census's frequency ranking.
type DominantColor struct {
	Hex        string   `json:"hex"`        // Hex color "#rrggbb"
	RGB        RGBColor `json:"rgb"`        // RGB components
	Count      int      `json:"count"`      // Scanned pixels with this color
	Percentage float64  `json:"percentage"` // Share of scanned pixels (0-100)
}

// ColorCensus is the result of a unique-color count over an image.
type ColorCensus struct {
	// UniqueColors is the number of distinct RGB values among the
	// scanned pixels. Exact when Approximate is false.
	UniqueColors int `json:"unique_colors"`

	// Approximate is true when the image exceeded the sample limit and
	// a uniformly downsampled copy was scanned instead.
	Approximate bool `json:"approximate"`

	// TotalPixels is the pixel count of the original image.
	TotalPixels int `json:"total_pixels"`

	// SampledPixels is the number of pixels actually scanned. Dominant
	// counts sum to this value.
	SampledPixels int `json:"sampled_pixels"`

	// Dominant lists the most frequent colors, highest count first.
	// Ties are broken by first-seen scan order (row-major from the
	// top-left pixel).
	Dominant []DominantColor `json:"dominant"`

	// Note is set when the census is approximate.
	Note string `json:"note,omitempty"`
}

// CountColors counts distinct colors and ranks the most frequent ones.
//
// Alpha is ignored: pixels are compared by their 8-bit RGB value, the
// equivalent of converting to RGB before counting. When the image has
// more pixels than sampleLimit, the scan runs over a nearest-neighbor
// downsampled copy so cost stays bounded; the result is then marked
// approximate. Non-positive sampleLimit and topN fall back to the
// package defaults.
func CountColors(d *Decoded, sampleLimit, topN int) *ColorCensus {
	if sampleLimit <= 0 {
		sampleLimit = DefaultSampleLimit
	}
	if topN <= 0 {
		topN = DefaultTopColors
	}

	src := d.Image
	totalPixels := d.Width * d.Height
	approximate := false

	if totalPixels > sampleLimit {
		// Uniform downsample: scale both axes by the same factor so the
		// sample preserves the spatial color distribution.
		factor := math.Sqrt(float64(sampleLimit) / float64(totalPixels))
		w := int(float64(d.Width) * factor)
		h := int(float64(d.Height) * factor)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		src = imaging.Resize(src, w, h, imaging.NearestNeighbor)
		approximate = true
	}

	bounds := src.Bounds()
	sampled := bounds.Dx() * bounds.Dy()

	counts := make(map[uint32]int)
	firstSeen := make(map[uint32]int)
	order := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			key := uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(b>>8)
			if _, seen := counts[key]; !seen {
				firstSeen[key] = order
			}
			counts[key]++
			order++
		}
	}

	ranked := make([]DominantColor, 0, len(counts))
	for key, cnt := range counts {
		r := uint8(key >> 16)
		g := uint8(key >> 8)
		b := uint8(key)
		hex := colorful.Color{
			R: float64(r) / 255.0,
			G: float64(g) / 255.0,
			B: float64(b) / 255.0,
		}.Hex()

		ranked = append(ranked, DominantColor{
			Hex:        hex,
			RGB:        RGBColor{R: r, G: g, B: b},
			Count:      cnt,
			Percentage: math.Round(float64(cnt)/float64(sampled)*1000) / 10,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		ki := uint32(ranked[i].RGB.R)<<16 | uint32(ranked[i].RGB.G)<<8 | uint32(ranked[i].RGB.B)
		kj := uint32(ranked[j].RGB.R)<<16 | uint32(ranked[j].RGB.G)<<8 | uint32(ranked[j].RGB.B)
		return firstSeen[ki] < firstSeen[kj]
	})

	unique := len(ranked)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	note := ""
	if approximate {
		note = "image exceeds the sample limit; counts are from a uniform downsample and approximate"
	}

	return &ColorCensus{
		UniqueColors:  unique,
		Approximate:   approximate,
		TotalPixels:   totalPixels,
		SampledPixels: sampled,
		Dominant:      ranked,
		Note:          note,
	}
}
