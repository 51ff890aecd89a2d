package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consogab-me/utils"
)

func TestMapColorToName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want string
	}{
		{"blue", "bleu"},
		{"Blue", "bleu"},
		{" red ", "rouge"},
		{"navy", "bleu marine"},
		{"grey", "gris"},
		{"gray", "gris"},
		{"gold", "doré"},
		{"fuchsia", "fuchsia"}, // unknown ids pass through lowercased
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.MapColorToName(tt.id), "id %q", tt.id)
	}
}

func TestMapNameToColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "blue", utils.MapNameToColor("Bleu"))
	assert.Equal(t, "navy", utils.MapNameToColor("bleu marine"))
	assert.Equal(t, "silver", utils.MapNameToColor("argenté"))
	assert.Equal(t, "fuchsia", utils.MapNameToColor("Fuchsia"))
}

func TestColorMappingRoundTrip(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"blue", "red", "green", "black", "white", "navy", "gold", "silver"} {
		assert.Equal(t, id, utils.MapNameToColor(utils.MapColorToName(id)))
	}
}

func TestIsValidCondition(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.IsValidCondition("Neuf"))
	assert.True(t, utils.IsValidCondition(" Très bon état "))
	assert.False(t, utils.IsValidCondition("neuf"), "conditions are case-sensitive display values")
	assert.False(t, utils.IsValidCondition("Cassé"))
	assert.False(t, utils.IsValidCondition(""))
}

func TestNormalizeAvailability(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en_stock", utils.NormalizeAvailability("En stock"))
	assert.Equal(t, "sur_commande", utils.NormalizeAvailability("Sur commande"))
	assert.Equal(t, "epuise", utils.NormalizeAvailability("Épuisé"))
	assert.Equal(t, "en_stock", utils.NormalizeAvailability("en_stock"))
}

func TestCapitalizeWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bleu Marine", utils.CapitalizeWords("bleu marine"))
	assert.Equal(t, "Rouge", utils.CapitalizeWords("ROUGE"))
	assert.Equal(t, "", utils.CapitalizeWords(""))
}
