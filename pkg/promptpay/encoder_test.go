package promptpay

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func TestEncodeDeterministic(t *testing.T) {
	amount := mustDecimal(t, "1250.00")

	first, err := Encode("BANK001", amount)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := Encode("BANK001", amount)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs produced different payloads:\n%s\n%s", first, second)
	}
}

func TestEncodeFieldLayout(t *testing.T) {
	payload, err := Encode("BANK001", mustDecimal(t, "1250.00"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if !strings.HasPrefix(payload, "000201") {
		t.Errorf("payload format field missing: %s", payload)
	}
	if !strings.Contains(payload, "0107BANK001") {
		t.Errorf("bank id sub-field missing: %s", payload)
	}
	if !strings.Contains(payload, "0016A000000677010111") {
		t.Errorf("application id sub-field missing: %s", payload)
	}
	if !strings.Contains(payload, "54071250.00") {
		t.Errorf("amount field missing: %s", payload)
	}
	if !strings.Contains(payload, "5303764") {
		t.Errorf("currency field missing: %s", payload)
	}
	if !regexp.MustCompile(`6304[0-9A-F]{4}$`).MatchString(payload) {
		t.Errorf("checksum trailer malformed: %s", payload)
	}
}

func TestEncodeAmountChangeTouchesOnlyAmountAndChecksum(t *testing.T) {
	before, err := Encode("BANK001", mustDecimal(t, "1250.00"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	after, err := Encode("BANK001", mustDecimal(t, "1250.01"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if before == after {
		t.Fatal("different amounts produced identical payloads")
	}
	if !strings.Contains(after, "0107BANK001") {
		t.Errorf("bank field changed with the amount: %s", after)
	}
	if !strings.Contains(after, "54071250.01") {
		t.Errorf("amount field not updated: %s", after)
	}
	if before[:strings.Index(before, "5407")] != after[:strings.Index(after, "5407")] {
		t.Error("fields before the amount changed with the amount")
	}
	if before[len(before)-4:] == after[len(after)-4:] {
		t.Error("checksum did not change with the amount")
	}
}

func TestEncodeZeroAmount(t *testing.T) {
	payload, err := Encode("BANK001", decimal.Zero)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(payload, "54040.00") {
		t.Errorf("zero amount not encoded as 0.00: %s", payload)
	}
}

func TestEncodeRejectsInvalidAmounts(t *testing.T) {
	cases := []struct {
		name   string
		amount string
	}{
		{"negative", "-5.00"},
		{"three fractional digits", "1.005"},
		{"sub-satang precision", "0.001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode("BANK001", mustDecimal(t, tc.amount))
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("amount %s: got %v, want ErrInvalidAmount", tc.amount, err)
			}
		})
	}
}

func TestEncodeAcceptsTrailingZeroPrecision(t *testing.T) {
	// 1.250 carries only two significant fractional digits.
	payload, err := Encode("BANK001", mustDecimal(t, "1.250"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(payload, "54041.25") {
		t.Errorf("amount not normalized to two digits: %s", payload)
	}
}

func TestEncodeOverlongBankID(t *testing.T) {
	_, err := Encode(strings.Repeat("A", 100), decimal.Zero)
	if !errors.Is(err, ErrEncodingFault) {
		t.Fatalf("got %v, want ErrEncodingFault", err)
	}
}

func TestChecksumDetectsSingleCharacterTampering(t *testing.T) {
	payload, err := Encode("BANK001", mustDecimal(t, "1250.00"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	body := payload[:len(payload)-4]
	original := crc16([]byte(body))
	if fmt.Sprintf("%04X", original) != payload[len(payload)-4:] {
		t.Fatalf("trailer does not match recomputed checksum for %s", payload)
	}

	for i := 0; i < len(body); i++ {
		mutated := []byte(body)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if crc16(mutated) == original {
			t.Errorf("mutation at index %d not detected", i)
		}
	}
}
