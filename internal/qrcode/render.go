package qrcode

import (
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

const (
	MinSize     = 128
	MaxSize     = 1024
	DefaultSize = 256
)

var ErrEmptyPayload = errors.New("qrcode: empty payload")

type Renderer struct {
	size int
}

func NewRenderer(size int) *Renderer {
	if size == 0 {
		size = DefaultSize
	}
	return &Renderer{size: clamp(size)}
}

// PNG clamps size to [MinSize, MaxSize]; 0 means the renderer default.
func (r *Renderer) PNG(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if size == 0 {
		size = r.size
	}
	img, err := qr.Encode(payload, qr.Medium, clamp(size))
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return img, nil
}

func (r *Renderer) Size() int {
	return r.size
}

func clamp(size int) int {
	switch {
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}
