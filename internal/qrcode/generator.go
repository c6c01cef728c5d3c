package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const (
	// DefaultSize размер изображения по умолчанию в пикселях
	DefaultSize = 300

	// MaxPayloadLen максимальная длина данных для QR-кода версии 7
	// с уровнем коррекции ошибок L
	MaxPayloadLen = 154
)

// Ошибки
var (
	ErrEmptyPayload    = errors.New("пустые данные для QR-кода")
	ErrPayloadTooLarge = errors.New("данные превышают ёмкость QR-кода")
)

// Generate генерирует QR-код в виде PNG-изображения
func Generate(data string, size int) ([]byte, error) {
	if data == "" {
		return nil, ErrEmptyPayload
	}
	if len(data) > MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}

	if size <= 0 {
		size = DefaultSize
	}

	// Создаем QR-код
	qrCode, err := qr.Encode(data, qr.L, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования QR-кода: %w", err)
	}

	// Изменяем размер QR-кода
	qrCode, err = barcode.Scale(qrCode, size, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка изменения размера QR-кода: %w", err)
	}

	// Кодируем QR-код в PNG
	var buf bytes.Buffer
	if err := png.Encode(&buf, qrCode); err != nil {
		return nil, fmt.Errorf("ошибка кодирования PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// GenerateBase64 генерирует QR-код и возвращает его в виде base64-строки
// для встраивания в веб-страницу
func GenerateBase64(data string, size int) (string, error) {
	image, err := Generate(data, size)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(image), nil
}

// IsValidPayload проверяет данные для QR-кода
func IsValidPayload(data string) bool {
	return data != "" && len(data) <= MaxPayloadLen
}
