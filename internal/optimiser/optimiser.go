package optimiser

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"

	"github.com/chai2010/webp"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	_ "golang.org/x/image/webp"
)

type Optimiser struct{}

// compile-time check: *Optimiser must satisfy port.Optimiser
var _ port.Optimiser = (*Optimiser)(nil)

func NewOptimiser() *Optimiser {
	log.Println("initialising optimiser...")
	return &Optimiser{}
}

// CompressImage takes an input image stream (JPEG, PNG or WebP) and returns
// a byte slice holding the lossy WebP @ quality=80 conversion.
func (o *Optimiser) CompressImage(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("optimiser: failed to decode image: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("optimiser: failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}

// OptimisePDF runs pdfcpu over the file at inPath, writing the losslessly
// optimised result to outPath.
func (o *Optimiser) OptimisePDF(inPath, outPath string) error {
	if err := api.OptimizeFile(inPath, outPath, nil); err != nil {
		return fmt.Errorf("optimiser: pdfcpu optimization failed: %w", err)
	}
	return nil
}
