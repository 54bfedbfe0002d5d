package promptpay

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Renderer turns an encoded payload into a displayable image.
type Renderer interface {
	Render(payload string) ([]byte, error)
}

// PNGRenderer renders payloads as PNG images. The zero value renders at
// the default size.
type PNGRenderer struct {
	Size int
}

func (r PNGRenderer) Render(payload string) ([]byte, error) {
	size := r.Size
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("render qr image: %w", err)
	}
	return png, nil
}
