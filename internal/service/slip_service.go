package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/anyulbade/pix-brcode-service/internal/brcode"
	"github.com/anyulbade/pix-brcode-service/internal/model"
	"github.com/anyulbade/pix-brcode-service/internal/qrcode"
	"github.com/anyulbade/pix-brcode-service/internal/templates"
)

var slipTemplate = template.Must(template.New("slip").Funcs(template.FuncMap{
	"toLower": strings.ToLower,
}).Parse(templates.PaymentSlip))

type SlipService struct {
	renderer *qrcode.Renderer
}

func NewSlipService(renderer *qrcode.Renderer) *SlipService {
	return &SlipService{renderer: renderer}
}

type SlipData struct {
	GeneratedAt  string
	MerchantName string
	MerchantCity string
	Amount       string
	KeyKind      string
	CRC          string
	Payload      string
	QRCodeURL    template.URL
	QRSize       int
}

func (s *SlipService) QRCode(charge *model.Charge, size int) ([]byte, error) {
	return s.renderer.PNG(charge.Payload, size)
}

func (s *SlipService) RenderHTML(charge *model.Charge) (string, error) {
	img, err := s.renderer.PNG(charge.Payload, 0)
	if err != nil {
		return "", fmt.Errorf("render qr code: %w", err)
	}

	data := SlipData{
		GeneratedAt:  time.Now().Format("02/01/2006 15:04"),
		MerchantName: charge.MerchantName,
		MerchantCity: charge.MerchantCity,
		KeyKind:      charge.KeyKind,
		CRC:          charge.CRC,
		Payload:      charge.Payload,
		QRCodeURL:    template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img)),
		QRSize:       s.renderer.Size(),
	}
	if charge.Amount != nil {
		data.Amount = brcode.FormatAmount(*charge.Amount)
	}

	var buf bytes.Buffer
	if err := slipTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
