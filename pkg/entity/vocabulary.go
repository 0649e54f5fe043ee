package entity

type Mood struct {
	Glyph string `json:"glyph"`
	Label string `json:"label"`
}

type Color struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

var MorningMoods = []Mood{
	{Glyph: "😊", Label: "Très bien"},
	{Glyph: "🙂", Label: "Bien"},
	{Glyph: "😐", Label: "Neutre"},
	{Glyph: "😔", Label: "Pas terrible"},
	{Glyph: "😞", Label: "Difficile"},
}

var EveningFeelings = []Mood{
	{Glyph: "😊", Label: "Excellente"},
	{Glyph: "🙂", Label: "Bonne"},
	{Glyph: "😐", Label: "Correcte"},
	{Glyph: "😔", Label: "Difficile"},
	{Glyph: "😞", Label: "Très difficile"},
}

var Palette = []Color{
	{Hex: "#ef4444", Name: "Rouge"},
	{Hex: "#f97316", Name: "Orange"},
	{Hex: "#eab308", Name: "Jaune"},
	{Hex: "#22c55e", Name: "Vert"},
	{Hex: "#3b82f6", Name: "Bleu"},
	{Hex: "#8b5cf6", Name: "Violet"},
	{Hex: "#ec4899", Name: "Rose"},
}

func IsMorningMood(glyph string) bool {
	return hasGlyph(MorningMoods, glyph)
}

func IsEveningFeeling(glyph string) bool {
	return hasGlyph(EveningFeelings, glyph)
}

func IsPaletteColor(hex string) bool {
	for _, c := range Palette {
		if c.Hex == hex {
			return true
		}
	}
	return false
}

func hasGlyph(moods []Mood, glyph string) bool {
	for _, m := range moods {
		if m.Glyph == glyph {
			return true
		}
	}
	return false
}
