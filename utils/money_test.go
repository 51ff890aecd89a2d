package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consogab-me/utils"
)

func TestFormatFCFA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0 FCFA"},
		{500, "500 FCFA"},
		{5000, "5 000 FCFA"},
		{12500, "12 500 FCFA"},
		{1250000, "1 250 000 FCFA"},
		{-7500, "-7 500 FCFA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.FormatFCFA(tt.amount))
	}
}
