package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already safe", input: "foto_01.jpg", expected: "foto_01.jpg"},
		{name: "lowercased", input: "IMG_1234.JPG", expected: "img_1234.jpg"},
		{name: "trimmed", input: "  foto.png  ", expected: "foto.png"},
		{name: "spaces collapse to one underscore", input: "minha foto  nova.jpg", expected: "minha_foto_nova.jpg"},
		{name: "accents replaced", input: "portão-da-cava.jpg", expected: "port_o-da-cava.jpg"},
		{name: "mixed run collapses once", input: "a/&%b.png", expected: "a_b.png"},
		{name: "all invalid collapses to underscore", input: "@#$", expected: "_"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeFilename(tt.input))
		})
	}
}

func TestSafeFilename_Properties(t *testing.T) {
	inputs := []string{
		"foto.jpg",
		"IMG 9999 (cópia).JPEG",
		strings.Repeat("x", 500),
		strings.Repeat("ã", 300),
		"../../etc/passwd",
		"relatório final — cava norte.png",
	}

	for _, in := range inputs {
		out := SafeFilename(in)

		assert.LessOrEqual(t, len(out), 120)
		for _, r := range out {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
				r == '_' || r == '.' || r == '-'
			assert.True(t, valid, "unexpected rune %q in %q", r, out)
		}
		assert.Equal(t, out, SafeFilename(out), "sanitizer must be idempotent")
	}
}
