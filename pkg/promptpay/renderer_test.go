package promptpay

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPNGRendererProducesPNG(t *testing.T) {
	payload, err := Encode("BANK001", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	png, err := PNGRenderer{}.Render(payload)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG image")
	}
}
