package brcode

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	tagPayloadFormat   = "00"
	tagMerchantAccount = "26"
	tagCategoryCode    = "52"
	tagCurrency        = "53"
	tagAmount          = "54"
	tagCountryCode     = "58"
	tagMerchantName    = "59"
	tagMerchantCity    = "60"
	tagAdditionalData  = "62"
	tagCRC             = "63"

	tagAccountGUI        = "00"
	tagAccountKey        = "01"
	tagReferenceLabel    = "05"
	payloadFormat        = "01"
	pixGUI               = "BR.GOV.BCB.PIX"
	categoryCode         = "0000"
	currencyBRL          = "986"
	countryCode          = "BR"
	staticReferenceLabel = "***"

	crcPrefix = tagCRC + "04"
)

// MaxKeyLength is the longest normalized key that still fits field 26.
const MaxKeyLength = maxFieldLength - len(pixGUI) - 8

type field struct {
	tag   string
	value string
}

// Assemble stops at the "6304" prefix. A nil amount omits field 54.
func Assemble(keyValue string, amount *decimal.Decimal, m Merchant) (string, error) {
	account, err := encodeFields(
		field{tagAccountGUI, pixGUI},
		field{tagAccountKey, keyValue},
	)
	if err != nil {
		return "", err
	}
	additional, err := EncodeField(tagReferenceLabel, staticReferenceLabel)
	if err != nil {
		return "", err
	}

	fields := []field{
		{tagPayloadFormat, payloadFormat},
		{tagMerchantAccount, account},
		{tagCategoryCode, categoryCode},
		{tagCurrency, currencyBRL},
	}
	if amount != nil {
		fields = append(fields, field{tagAmount, FormatAmount(*amount)})
	}
	fields = append(fields,
		field{tagCountryCode, countryCode},
		field{tagMerchantName, m.Name},
		field{tagMerchantCity, m.City},
		field{tagAdditionalData, additional},
	)

	body, err := encodeFields(fields...)
	if err != nil {
		return "", err
	}
	return body + crcPrefix, nil
}

func encodeFields(fields ...field) (string, error) {
	var b strings.Builder
	for _, f := range fields {
		enc, err := EncodeField(f.tag, f.value)
		if err != nil {
			return "", err
		}
		b.WriteString(enc)
	}
	return b.String(), nil
}
