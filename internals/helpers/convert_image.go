package helper

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// NormalizeImage decodes data (so non-images are rejected) and, when either
// side exceeds maxDim, scales it down keeping the aspect ratio. The result
// is encoded in the format implied by ext.
func NormalizeImage(data []byte, ext string, maxDim int) ([]byte, error) {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return data, nil
	}

	resized := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
