package domain

import "testing"

func TestAnalyzeMood(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantMood Mood
	}{
		{
			name:     "positive",
			text:     "# Dia Incrível\n\nEstou muito feliz e animado hoje! Que dia fantástico.",
			wantMood: MoodPositive,
		},
		{
			name:     "negative",
			text:     "# Dia Ruim\n\nMe sinto triste e frustrado. Foi um dia péssimo.",
			wantMood: MoodNegative,
		},
		{
			name:     "neutral",
			text:     "# Apenas um Dia\n\nO dia foi normal, sem grandes eventos.",
			wantMood: MoodNeutral,
		},
		{
			name:     "english and case insensitive",
			text:     "HAPPY and GRATEFUL",
			wantMood: MoodPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mood, pos, neg := AnalyzeMood(tt.text)
			if mood != tt.wantMood {
				t.Errorf("mood = %s (pos=%d neg=%d), want %s", mood, pos, neg, tt.wantMood)
			}
		})
	}
}

func TestAnalyzeMood_NeutralHasNoScores(t *testing.T) {
	_, pos, neg := AnalyzeMood("O dia foi normal, sem grandes eventos.")
	if pos != 0 || neg != 0 {
		t.Errorf("expected zero scores, got pos=%d neg=%d", pos, neg)
	}
}
