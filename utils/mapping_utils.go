package utils

import (
	"strings"
)

// MapColorToName maps color ids to their French display names
// Input is normalized to lowercase before mapping
// Returns lowercase French name
func MapColorToName(colorID string) string {
	colorLower := strings.ToLower(strings.TrimSpace(colorID))

	colorMap := map[string]string{
		"blue":      "bleu",
		"red":       "rouge",
		"green":     "vert",
		"black":     "noir",
		"white":     "blanc",
		"yellow":    "jaune",
		"orange":    "orange",
		"pink":      "rose",
		"purple":    "violet",
		"brown":     "marron",
		"gray":      "gris",
		"grey":      "gris",
		"beige":     "beige",
		"navy":      "bleu marine",
		"turquoise": "turquoise",
		"gold":      "doré",
		"silver":    "argenté",
	}

	if name, exists := colorMap[colorLower]; exists {
		return name
	}

	// If not found, return the lowercase input as-is
	return colorLower
}

// MapNameToColor maps French color names back to their ids
// Input is normalized to lowercase before mapping
func MapNameToColor(name string) string {
	nameLower := strings.ToLower(strings.TrimSpace(name))

	nameMap := map[string]string{
		"bleu":        "blue",
		"rouge":       "red",
		"vert":        "green",
		"noir":        "black",
		"blanc":       "white",
		"jaune":       "yellow",
		"orange":      "orange",
		"rose":        "pink",
		"violet":      "purple",
		"marron":      "brown",
		"gris":        "gray",
		"beige":       "beige",
		"bleu marine": "navy",
		"turquoise":   "turquoise",
		"doré":        "gold",
		"argenté":     "silver",
	}

	if id, exists := nameMap[nameLower]; exists {
		return id
	}

	return nameLower
}

// ValidConditions is the fixed set of accepted product conditions
var ValidConditions = map[string]bool{
	"Neuf":          true,
	"Comme neuf":    true,
	"Très bon état": true,
	"Bon état":      true,
	"État correct":  true,
	"Pour pièces":   true,
	"Reconditionné": true,
}

// IsValidCondition reports whether the condition value is one of the fixed set
func IsValidCondition(condition string) bool {
	return ValidConditions[strings.TrimSpace(condition)]
}

// NormalizeAvailability normalizes availability values to standard ids
// "En stock" -> "en_stock", "Sur commande" -> "sur_commande"
func NormalizeAvailability(v string) string {
	lower := strings.ToLower(strings.TrimSpace(v))
	lower = strings.ReplaceAll(lower, " ", "_")
	switch lower {
	case "en_stock", "sur_commande", "epuise", "épuisé":
		if lower == "épuisé" {
			return "epuise"
		}
		return lower
	}
	return lower
}

// CapitalizeWords capitalizes the first letter of each word
func CapitalizeWords(s string) string {
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, word := range words {
		r := []rune(word)
		if len(r) > 0 {
			words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
		}
	}
	return strings.Join(words, " ")
}
