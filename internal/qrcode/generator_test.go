package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"URL", "https://example.com"},
		{"PlainText", "Ваш текст здесь"},
		{"Phone", "+79991234567"},
		{"WiFi", "YOUR_WIFI_NAME;WPA;PASSWORD"},
		{"MaxLength", strings.Repeat("a", MaxPayloadLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image, err := Generate(tt.data, DefaultSize)
			require.NoError(t, err)
			require.NotEmpty(t, image)

			// Результат должен быть валидным PNG нужного размера
			decoded, err := png.Decode(bytes.NewReader(image))
			require.NoError(t, err)
			bounds := decoded.Bounds()
			assert.Equal(t, DefaultSize, bounds.Dx())
			assert.Equal(t, DefaultSize, bounds.Dy())
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected error
	}{
		{"Empty", "", ErrEmptyPayload},
		{"TooLong", strings.Repeat("a", MaxPayloadLen+1), ErrPayloadTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image, err := Generate(tt.data, DefaultSize)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, image)
		})
	}
}

func TestGenerateCustomSize(t *testing.T) {
	image, err := Generate("https://example.com", 600)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(image))
	require.NoError(t, err)
	assert.Equal(t, 600, decoded.Bounds().Dx())
}

func TestGenerateDefaultSize(t *testing.T) {
	// Нулевой или отрицательный размер заменяется размером по умолчанию
	image, err := Generate("https://example.com", 0)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(image))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, decoded.Bounds().Dx())
}

func TestGenerateBase64(t *testing.T) {
	encoded, err := GenerateBase64("https://example.com", DefaultSize)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	// Base64-строка должна декодироваться в тот же PNG
	image, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(image))
	assert.NoError(t, err)
}

func TestIsValidPayload(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected bool
	}{
		{"Empty", "", false},
		{"Single", "a", true},
		{"URL", "https://example.com", true},
		{"MaxLength", strings.Repeat("a", MaxPayloadLen), true},
		{"TooLong", strings.Repeat("a", MaxPayloadLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidPayload(tt.data))
		})
	}
}
