// Package qr decodes uploaded QR code images into intake payloads. The QR
// content must be a JSON object carrying product_name, quantity and price;
// anything else is a decode error and no mutation happens downstream.
package qr

import (
	"encoding/json"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

var (
	ErrUnreadableImage = errors.New("failed to process QR code image")
	ErrNoQRCode        = errors.New("no QR code found or unreadable QR code")
	ErrNotJSON         = errors.New("QR code does not contain valid JSON")
	ErrMissingFields   = errors.New("QR code does not contain the required fields (product_name, quantity, price)")
)

// Payload is the decoded QR content.
type Payload struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// The pointer fields distinguish a missing key from a zero value.
type rawPayload struct {
	ProductName *string  `json:"product_name"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

// Decode reads a PNG or JPEG image and extracts the product payload from
// the first QR code it contains.
func Decode(r io.Reader) (Payload, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Payload{}, ErrUnreadableImage
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return Payload{}, ErrUnreadableImage
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return Payload{}, ErrNoQRCode
	}

	return parsePayload([]byte(result.GetText()))
}

func parsePayload(data []byte) (Payload, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return Payload{}, ErrNotJSON
	}
	if raw.ProductName == nil || raw.Quantity == nil || raw.Price == nil {
		return Payload{}, ErrMissingFields
	}
	return Payload{
		ProductName: *raw.ProductName,
		Quantity:    *raw.Quantity,
		Price:       *raw.Price,
	}, nil
}
