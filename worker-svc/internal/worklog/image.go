package worklog

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"
)

const (
	maxEdge     = 1024
	jpegQuality = 70
)

// FitJPEG re-encodes a photo as JPEG, scaled down to fit within 1024x1024
// while keeping its aspect ratio. Images already inside the box are only
// re-encoded, never upscaled.
func FitJPEG(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxEdge || height > maxEdge {
		scale := float64(maxEdge) / float64(width)
		if height > width {
			scale = float64(maxEdge) / float64(height)
		}
		scaledWidth := int(float64(width) * scale)
		scaledHeight := int(float64(height) * scale)

		dst := image.NewRGBA(image.Rect(0, 0, scaledWidth, scaledHeight))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL wraps JPEG bytes in the base64 form the upload endpoint expects.
func DataURL(jpegData []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegData)
}

// JPEGName swaps the original extension for .jpg since every upload is
// re-encoded.
func JPEGName(original string) string {
	if dot := strings.LastIndex(original, "."); dot > 0 {
		original = original[:dot]
	}
	return original + ".jpg"
}
