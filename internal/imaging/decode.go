package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Decoded is an in-memory pixel buffer plus the metadata derived while
// decoding it. It is constructed per request and never cached or shared
// across requests, so concurrent requests need no locking.
type Decoded struct {
	// Image is the decoded pixel data. The concrete type depends on the
	// source format (e.g., *image.RGBA, *image.Paletted, *image.YCbCr).
	Image image.Image

	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the decoder-reported format name: "png", "jpeg", "gif",
	// "webp", "bmp", or "tiff".
	Format string

	// Mode is the coarse color mode: "RGB", "RGBA", "grayscale",
	// "palette", or "CMYK".
	Mode string
}

// imageMagic lists the leading byte signatures of the supported formats.
// A payload starting with one of these is treated as raw image bytes
// rather than base64 text.
var imageMagic = [][]byte{
	{0x89, 'P', 'N', 'G'},        // PNG
	{0xFF, 0xD8, 0xFF},           // JPEG
	[]byte("GIF87a"),             // GIF
	[]byte("GIF89a"),             // GIF
	[]byte("RIFF"),               // WebP (RIFF container)
	[]byte("BM"),                 // BMP
	{'I', 'I', 0x2A, 0x00},       // TIFF little-endian
	{'M', 'M', 0x00, 0x2A},       // TIFF big-endian
}

// Normalize converts an image payload into raw image bytes.
//
// Accepted inputs:
//   - raw image bytes (recognized by their format magic number)
//   - base64 text, standard or URL alphabet, padded or not
//   - a data URI ("data:image/png;base64,....")
//
// Returns KindInvalidInput when the payload is empty or matches none of
// the accepted encodings. Normalize never inspects pixel data; whether
// the bytes are a valid image is decided by Decode.
func Normalize(payload []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, invalidInputf("empty image payload")
	}

	// Data URI: keep only the base64 body.
	if bytes.HasPrefix(trimmed, []byte("data:")) {
		idx := bytes.Index(trimmed, []byte(";base64,"))
		if idx < 0 {
			return nil, invalidInputf("data URI without base64 payload")
		}
		trimmed = trimmed[idx+len(";base64,"):]
		if len(trimmed) == 0 {
			return nil, invalidInputf("data URI with empty base64 payload")
		}
	} else {
		for _, magic := range imageMagic {
			if bytes.HasPrefix(trimmed, magic) {
				return trimmed, nil
			}
		}
	}

	// Base64 bodies may arrive with embedded line breaks.
	compact := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', ' ':
			return -1
		}
		return r
	}, string(trimmed))

	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if raw, err := enc.DecodeString(compact); err == nil {
			return raw, nil
		}
	}

	return nil, invalidInputf("payload is neither raw image bytes nor valid base64")
}

// Decode parses raw image bytes into a Decoded value.
//
// Supported formats are PNG, JPEG, GIF, WebP, BMP, and TIFF. Bytes that
// no registered decoder accepts yield KindDecodeError.
func Decode(data []byte) (*Decoded, error) {
	if len(data) == 0 {
		return nil, invalidInputf("empty image payload")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeErrorf("cannot decode image: %v", err)
	}

	bounds := img.Bounds()
	return &Decoded{
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
		Mode:   colorMode(img),
	}, nil
}

// DecodePayload normalizes an image payload and decodes it in one step.
// This is the single entry point the tool handlers use.
func DecodePayload(payload []byte) (*Decoded, error) {
	raw, err := Normalize(payload)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// colorMode maps a decoded image's concrete type to a coarse color mode.
//
// Truecolor images without transparency report "RGB" even when the
// in-memory representation carries an alpha channel; an opaque buffer
// and an RGB buffer are indistinguishable to the analyses here.
func colorMode(img image.Image) string {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return "grayscale"
	case *image.Paletted:
		return "palette"
	case *image.YCbCr:
		return "RGB"
	case *image.CMYK:
		return "CMYK"
	}
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return "RGB"
	}
	return "RGBA"
}
