package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 120, 40, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{40, 120, 200, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestProcessJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	if len(result.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestProcessPNGConvertedToJPEG(t *testing.T) {
	data := createTestPNG(100, 100)
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg (photos are always stored as JPEG), got %s", result.MIME)
	}
}

func TestProcessDownscale(t *testing.T) {
	data := createTestJPEG(2048, 1536)
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process large photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, bounds.Dx(), bounds.Dy())
	}
}

func TestProcessSmallPhotoNotUpscaled(t *testing.T) {
	data := createTestJPEG(60, 40)
	result, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process small photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 60 || bounds.Dy() != 40 {
		t.Errorf("small photo should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessInvalidFormat(t *testing.T) {
	_, err := Process(bytes.NewReader([]byte("not a photo")))
	if err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestProcessGIFRejected(t *testing.T) {
	// GIF magic bytes.
	_, err := Process(bytes.NewReader([]byte("GIF89a...")))
	if err == nil {
		t.Error("expected error for GIF")
	}
}
