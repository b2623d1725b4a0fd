package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Basmati Rice 5kg":  "basmati-rice-5kg",
		"Dairy & Eggs":      "dairy-eggs",
		"  Trimmed  Name  ": "trimmed-name",
		"Café au Lait":      "caf-au-lait",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, Slugify(input))
	}
}

func TestGenerateReceiptNo(t *testing.T) {
	no := GenerateReceiptNo()

	assert.True(t, strings.HasPrefix(no, "RCP-"))
	assert.Len(t, no, 12)
	assert.NotEqual(t, no, GenerateReceiptNo())
}
