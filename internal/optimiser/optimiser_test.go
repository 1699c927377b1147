package optimiser

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	_ "golang.org/x/image/webp"
)

// helper: generate a 2x2 red PNG, return its bytes.Reader and error
func generatePNG() (io.Reader, error) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	// fill with red
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

// helper: generate a 2x2 green JPEG, return its bytes.Reader and error
func generateJPEG() (io.Reader, error) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

func TestCompressImagePNG(t *testing.T) {
	r, err := generatePNG()
	if err != nil {
		t.Fatalf("failed to generate PNG: %v", err)
	}

	o := NewOptimiser()
	out, err := o.CompressImage(r)
	if err != nil {
		t.Fatalf("CompressImage(png) error: %v", err)
	}
	// output must be decodable as WebP
	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output not decodable: %v", err)
	}
	if format != "webp" {
		t.Errorf("output format = %q; want webp", format)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("output bounds = %v; want 2x2", b)
	}
}

func TestCompressImageJPEG(t *testing.T) {
	r, err := generateJPEG()
	if err != nil {
		t.Fatalf("failed to generate JPEG: %v", err)
	}

	o := NewOptimiser()
	out, err := o.CompressImage(r)
	if err != nil {
		t.Fatalf("CompressImage(jpeg) error: %v", err)
	}
	if _, format, err := image.Decode(bytes.NewReader(out)); err != nil || format != "webp" {
		t.Errorf("output format = %q, err = %v; want webp, nil", format, err)
	}
}

func TestCompressImage_InvalidData(t *testing.T) {
	o := NewOptimiser()
	_, err := o.CompressImage(strings.NewReader("definitely not an image"))
	if err == nil || !strings.Contains(err.Error(), "failed to decode image") {
		t.Errorf("expected decode error, got %v", err)
	}
}
