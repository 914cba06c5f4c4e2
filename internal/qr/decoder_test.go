package qr

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// encodeQR renders content into a PNG-encoded QR code image.
func encodeQR(t *testing.T, content string) *bytes.Buffer {
	t.Helper()
	matrix, err := qrcode.NewQRCodeWriter().Encode(content, gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	if err != nil {
		t.Fatalf("failed to encode QR code: %v", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, matrix); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return &buf
}

func TestDecode_ValidPayload(t *testing.T) {
	img := encodeQR(t, `{"product_name":"Widget","quantity":12,"price":4.99}`)

	payload, err := Decode(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.ProductName != "Widget" {
		t.Errorf("expected product name 'Widget', got %q", payload.ProductName)
	}
	if payload.Quantity != 12 {
		t.Errorf("expected quantity 12, got %d", payload.Quantity)
	}
	if payload.Price != 4.99 {
		t.Errorf("expected price 4.99, got %v", payload.Price)
	}
}

func TestDecode_NotJSON(t *testing.T) {
	img := encodeQR(t, "https://example.com/not-json")

	_, err := Decode(img)
	if !errors.Is(err, ErrNotJSON) {
		t.Errorf("expected ErrNotJSON, got %v", err)
	}
}

func TestDecode_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing product_name", `{"quantity":12,"price":4.99}`},
		{"missing quantity", `{"product_name":"Widget","price":4.99}`},
		{"missing price", `{"product_name":"Widget","quantity":12}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := encodeQR(t, tt.content)
			_, err := Decode(img)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestDecode_ZeroValuesAreNotMissing(t *testing.T) {
	img := encodeQR(t, `{"product_name":"","quantity":0,"price":0}`)

	payload, err := Decode(img)
	if err != nil {
		t.Fatalf("present-but-zero keys should decode, got %v", err)
	}
	if payload.Quantity != 0 || payload.Price != 0 {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestDecode_NotAnImage(t *testing.T) {
	_, err := Decode(strings.NewReader("this is not an image"))
	if !errors.Is(err, ErrUnreadableImage) {
		t.Errorf("expected ErrUnreadableImage, got %v", err)
	}
}

func TestDecode_ImageWithoutQRCode(t *testing.T) {
	// A blank image decodes fine as PNG but carries no QR code.
	blank, err := gozxing.NewBitMatrix(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, blank); err != nil {
		t.Fatal(err)
	}

	_, err = Decode(&buf)
	if !errors.Is(err, ErrNoQRCode) {
		t.Errorf("expected ErrNoQRCode, got %v", err)
	}
}
