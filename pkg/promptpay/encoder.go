// Package promptpay encodes PromptPay-style payment payloads for QR
// rendering. A payload is a sequence of tag-length-value fields in a
// fixed order, terminated by a CRC-16 checksum, so that re-encoding the
// same bank id and amount always reproduces the identical string.
package promptpay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	tagPayloadFormat   = "00"
	tagMerchantAccount = "29"
	tagCurrency        = "53"
	tagAmount          = "54"
	tagCRC             = "63"

	subTagAID    = "00"
	subTagBankID = "01"

	payloadFormatValue = "01"
	applicationID      = "A000000677010111"
	currencyTHB        = "764"
)

var (
	// ErrInvalidAmount is returned for a negative amount or one carrying
	// more than two fractional digits. Amounts are never silently rounded.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrEncodingFault is returned when a field value cannot be carried by
	// the two-digit length prefix. Inputs that satisfy the transaction
	// invariants never trigger it; seeing it means a bug upstream.
	ErrEncodingFault = errors.New("payload encoding fault")
)

// Encode builds the payment payload for the given bank id and amount.
// Field order is fixed: payload format, merchant account (application id
// and bank id sub-fields), amount, currency, checksum. The checksum is
// computed over everything preceding it plus the checksum tag and length
// themselves, with the value still empty.
func Encode(bankID string, amount decimal.Decimal) (string, error) {
	if amount.IsNegative() || !amount.Equal(amount.Truncate(2)) {
		return "", ErrInvalidAmount
	}

	account, err := field(subTagAID, applicationID)
	if err != nil {
		return "", err
	}
	bank, err := field(subTagBankID, bankID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, f := range [][2]string{
		{tagPayloadFormat, payloadFormatValue},
		{tagMerchantAccount, account + bank},
		{tagAmount, amount.StringFixed(2)},
		{tagCurrency, currencyTHB},
	} {
		enc, err := field(f[0], f[1])
		if err != nil {
			return "", err
		}
		b.WriteString(enc)
	}

	b.WriteString(tagCRC)
	b.WriteString("04")
	return b.String() + fmt.Sprintf("%04X", crc16([]byte(b.String()))), nil
}

// field renders one tag-length-value triple with a two-digit length.
func field(tag, value string) (string, error) {
	if len(value) > 99 {
		return "", fmt.Errorf("%w: field %s value is %d bytes, limit is 99", ErrEncodingFault, tag, len(value))
	}
	return fmt.Sprintf("%s%02d%s", tag, len(value), value), nil
}
