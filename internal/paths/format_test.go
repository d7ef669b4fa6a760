package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "600", FormatNumber(600))
	assert.Equal(t, "21.5", FormatNumber(21.5))
	assert.Equal(t, "0.13", FormatNumber(0.1+0.03))
	assert.Equal(t, "-1", FormatNumber(-1))
}
