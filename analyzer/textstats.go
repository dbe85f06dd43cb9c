package analyzer

import (
	"math"
	"strings"
)

// TextStats holds the token counts every readability formula is built on.
// Computed once per analysis and shared read-only across analyzers.
type TextStats struct {
	Words         []string
	Sentences     []string
	WordCount     int
	SentenceCount int
	SyllableCount int
	Polysyllables int
}

// ComputeTextStats tokenizes plain text into the primitive counts.
func ComputeTextStats(text string) TextStats {
	words := strings.Fields(text)

	sentences := splitSentences(text)

	syllables := 0
	polysyllables := 0
	for _, w := range words {
		s := CountSyllables(w)
		syllables += s
		if s >= 3 {
			polysyllables++
		}
	}

	return TextStats{
		Words:         words,
		Sentences:     sentences,
		WordCount:     len(words),
		SentenceCount: len(sentences),
		SyllableCount: syllables,
		Polysyllables: polysyllables,
	}
}

// splitSentences splits on terminal punctuation, discarding empty fragments.
func splitSentences(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			sentences = append(sentences, strings.TrimSpace(f))
		}
	}
	return sentences
}

// CountSyllables estimates syllables in a single word. Words of three
// characters or fewer count as one syllable; longer words count
// vowel-cluster groups with a minimum of one.
func CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'))
	}))
	if word == "" {
		return 0
	}
	if len(word) <= 3 {
		return 1
	}

	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if count == 0 {
		count = 1
	}
	return count
}

// AvgSentenceLength returns words per sentence, 0 when there are no sentences.
func (ts TextStats) AvgSentenceLength() float64 {
	if ts.SentenceCount == 0 {
		return 0
	}
	return float64(ts.WordCount) / float64(ts.SentenceCount)
}

// AvgSyllablesPerWord returns syllables per word, 0 when there are no words.
func (ts TextStats) AvgSyllablesPerWord() float64 {
	if ts.WordCount == 0 {
		return 0
	}
	return float64(ts.SyllableCount) / float64(ts.WordCount)
}

// FleschReadingEase computes the Flesch score, clamped to [0,100].
func (ts TextStats) FleschReadingEase() float64 {
	if ts.WordCount == 0 || ts.SentenceCount == 0 {
		return 0
	}
	score := 206.835 - 1.015*ts.AvgSentenceLength() - 84.6*ts.AvgSyllablesPerWord()
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// FleschKincaidGrade computes the grade-level formula, unclamped.
func (ts TextStats) FleschKincaidGrade() float64 {
	if ts.WordCount == 0 || ts.SentenceCount == 0 {
		return 0
	}
	return 0.39*ts.AvgSentenceLength() + 11.8*ts.AvgSyllablesPerWord() - 15.59
}

// SMOGIndex is defined only for samples of at least 30 sentences;
// shorter samples report 0 rather than an extrapolated value.
func (ts TextStats) SMOGIndex() float64 {
	if ts.SentenceCount < 30 {
		return 0
	}
	return 1.0430*math.Sqrt(float64(ts.Polysyllables)*(30.0/float64(ts.SentenceCount))) + 3.1291
}

// DaleChallScore approximates Dale-Chall using word length in place of
// the familiar-word list.
func (ts TextStats) DaleChallScore() float64 {
	if ts.WordCount == 0 || ts.SentenceCount == 0 {
		return 0
	}
	long := 0
	for _, w := range ts.Words {
		if len(w) > 6 {
			long++
		}
	}
	pctLong := float64(long) / float64(ts.WordCount) * 100
	return 0.1579*pctLong + 0.0496*ts.AvgSentenceLength()
}

// readabilityLevel buckets a Flesch score into a reader-facing label.
func readabilityLevel(score float64) string {
	switch {
	case score >= 90:
		return "very_easy"
	case score >= 80:
		return "easy"
	case score >= 70:
		return "fairly_easy"
	case score >= 60:
		return "standard"
	case score >= 50:
		return "fairly_difficult"
	case score >= 30:
		return "difficult"
	default:
		return "very_difficult"
	}
}
