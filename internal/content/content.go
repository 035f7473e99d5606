// Package content classifies uploaded binary content by byte signature and
// produces thumbnails for image garments.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/erazemk/garderoba/internal/model"
)

// ErrUnknownType is returned when a payload's byte signature does not match
// any supported content type.
var ErrUnknownType = errors.New("unrecognized content type")

// typeForMIME maps sniffed MIME types to the internal type vocabulary.
var typeForMIME = map[string]string{
	"image/jpeg":      model.TypeImage,
	"image/png":       model.TypeImage,
	"image/webp":      model.TypeImage,
	"image/gif":       model.TypeImage,
	"audio/mpeg":      model.TypeAudio,
	"video/mp4":       model.TypeVideo,
	"application/pdf": model.TypePDF,
}

// mimeForType maps internal types to the Content-Type used when serving.
var mimeForType = map[string]string{
	model.TypeImage: "image/jpeg",
	model.TypeAudio: "audio/mpeg",
	model.TypeVideo: "video/mp4",
	model.TypePDF:   "application/pdf",
}

// Classify sniffs the payload's actual type from its bytes (not trusting
// client headers) and returns the matching internal type.
func Classify(data []byte) (string, error) {
	detected := http.DetectContentType(data)
	typ, ok := typeForMIME[detected]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownType, detected)
	}
	return typ, nil
}

// MIMEForType returns the Content-Type header value for an internal type.
func MIMEForType(typ string) string {
	if mime, ok := mimeForType[typ]; ok {
		return mime
	}
	return "application/octet-stream"
}

// MaxThumbnailDim is the maximum width or height of generated thumbnails.
const MaxThumbnailDim = 256

// JPEGQuality is the compression quality for thumbnail output.
const JPEGQuality = 85

// Thumbnail decodes image data, downscales it so neither dimension exceeds
// maxDim, and re-encodes it as JPEG.
func Thumbnail(data []byte, maxDim int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, maxDim)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// downscale resizes the image so neither dimension exceeds maxDim.
// Uses high-quality Catmull-Rom interpolation.
// Returns the original image if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	// Register decoders (jpeg is registered by default, but be explicit).
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
