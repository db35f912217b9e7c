// Package brcode builds static PIX BR Code payloads.
package brcode

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Request struct {
	Key          string
	Amount       string
	MerchantName string
	MerchantCity string
}

type Payload struct {
	Key      PixKey
	Amount   *decimal.Decimal
	Merchant Merchant
	CRC      string
	Text     string
}

type Generator struct {
	FallbackName string
	FallbackCity string
}

func NewGenerator(fallbackName, fallbackCity string) *Generator {
	return &Generator{FallbackName: fallbackName, FallbackCity: fallbackCity}
}

// Build validates req before encoding any field.
func (g *Generator) Build(req Request) (*Payload, error) {
	if strings.TrimSpace(req.Key) == "" {
		return nil, ErrEmptyKey
	}
	amount, hasAmount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	p := &Payload{
		Key:      ClassifyKey(req.Key),
		Merchant: SanitizeMerchant(req.MerchantName, req.MerchantCity, g.FallbackName, g.FallbackCity),
	}
	if hasAmount {
		p.Amount = &amount
	}

	body, err := Assemble(p.Key.Value, p.Amount, p.Merchant)
	if err != nil {
		return nil, err
	}
	p.CRC = CRC16(body)
	p.Text = body + p.CRC
	return p, nil
}

func (g *Generator) Generate(req Request) (string, error) {
	p, err := g.Build(req)
	if err != nil {
		return "", err
	}
	return p.Text, nil
}

var defaultGenerator Generator

func Generate(req Request) (string, error) {
	return defaultGenerator.Generate(req)
}
