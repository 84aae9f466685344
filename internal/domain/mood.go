package domain

import "strings"

// Mood is the coarse sentiment of an entry
type Mood string

const (
	MoodPositive Mood = "Positive"
	MoodNegative Mood = "Negative"
	MoodNeutral  Mood = "Neutral"
)

// Keyword lists are Portuguese and English, matching what users write
var (
	PositiveWords = []string{
		"feliz", "alegre", "amor", "animado", "ótimo", "bom", "incrível", "fantástico", "sucesso", "grato", "orgulhoso",
		"happy", "joy", "love", "excited", "great", "good", "amazing", "fantastic", "success", "grateful", "proud",
	}
	NegativeWords = []string{
		"triste", "raiva", "chateado", "ruim", "péssimo", "ódio", "deprimido", "terrível", "frustrado", "medo", "ansioso",
		"sad", "angry", "upset", "bad", "awful", "hate", "depressed", "terrible", "frustrated", "fear", "anxious",
	}
)

// MoodReport is the result of analysing one entry
type MoodReport struct {
	EntryID       string `json:"entry_id"`
	Filename      string `json:"filename"`
	Mood          Mood   `json:"mood"`
	PositiveScore int    `json:"positive_score"`
	NegativeScore int    `json:"negative_score"`
}

// AnalyzeMood counts how many keywords of each list occur in text.
// Each keyword counts once regardless of repetitions.
func AnalyzeMood(text string) (mood Mood, positive, negative int) {
	lower := strings.ToLower(text)
	positive = countPresent(lower, PositiveWords)
	negative = countPresent(lower, NegativeWords)

	switch {
	case positive > negative:
		mood = MoodPositive
	case negative > positive:
		mood = MoodNegative
	default:
		mood = MoodNeutral
	}
	return mood, positive, negative
}

func countPresent(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
