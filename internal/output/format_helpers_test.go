package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "£1234.57", FormatCurrency(1234.567))
	assert.Equal(t, "£0.00", FormatCurrency(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "23.47%", FormatPercent(0.2347))
	assert.Equal(t, "3.90%", FormatPercent(0.039))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "100.00%", FormatPercent(1))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.03", FormatRate(0.03))
}
