package analyzer

import (
	"math"
	"strings"
	"testing"
)

func TestComputeTextStatsBasicCounts(t *testing.T) {
	stats := ComputeTextStats("The cat sat. The dog ran.")

	if stats.WordCount != 6 {
		t.Errorf("Expected 6 words, got %d", stats.WordCount)
	}
	if stats.SentenceCount != 2 {
		t.Errorf("Expected 2 sentences, got %d", stats.SentenceCount)
	}
	if stats.SyllableCount != 6 {
		t.Errorf("Expected 6 syllables, got %d", stats.SyllableCount)
	}
	if avg := stats.AvgSentenceLength(); avg != 3 {
		t.Errorf("Expected average sentence length 3, got %f", avg)
	}
}

func TestFleschClampedToHundred(t *testing.T) {
	// Raw formula gives ~119.19 for this sample; the score must clamp.
	stats := ComputeTextStats("The cat sat. The dog ran.")
	if score := stats.FleschReadingEase(); score != 100 {
		t.Errorf("Expected clamped Flesch score 100, got %f", score)
	}
}

func TestFleschFormula(t *testing.T) {
	// Longer words pull the score down into the unclamped range.
	stats := ComputeTextStats("Comprehensive readability analysis requires careful statistical evaluation procedures.")
	expected := 206.835 - 1.015*stats.AvgSentenceLength() - 84.6*stats.AvgSyllablesPerWord()
	got := stats.FleschReadingEase()
	if expected < 0 {
		expected = 0
	}
	if math.Abs(got-expected) > 0.01 {
		t.Errorf("Expected Flesch %f, got %f", expected, got)
	}
	if got < 0 || got > 100 {
		t.Errorf("Flesch score %f outside [0,100]", got)
	}
}

func TestZeroInputProducesZeroNotNaN(t *testing.T) {
	stats := ComputeTextStats("")

	checks := map[string]float64{
		"AvgSentenceLength":   stats.AvgSentenceLength(),
		"AvgSyllablesPerWord": stats.AvgSyllablesPerWord(),
		"FleschReadingEase":   stats.FleschReadingEase(),
		"FleschKincaidGrade":  stats.FleschKincaidGrade(),
		"SMOGIndex":           stats.SMOGIndex(),
		"DaleChallScore":      stats.DaleChallScore(),
	}
	for name, v := range checks {
		if math.IsNaN(v) || v != 0 {
			t.Errorf("%s on empty input: expected 0, got %f", name, v)
		}
	}
}

func TestSMOGRequiresThirtySentences(t *testing.T) {
	short := ComputeTextStats("Fundamentally complicated. Extraordinarily difficult. Absolutely impossible.")
	if smog := short.SMOGIndex(); smog != 0 {
		t.Errorf("SMOG below 30 sentences must be 0, got %f", smog)
	}

	// 30 polysyllabic sentences put the formula in range.
	long := ComputeTextStats(strings.Repeat("Fundamentally complicated analysis. ", 30))
	if smog := long.SMOGIndex(); smog <= 0 {
		t.Errorf("SMOG with 30 sentences should be positive, got %f", smog)
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"the", 1},
		{"a", 1},
		{"hello", 2},
		{"readability", 5},
		{"strength", 1},
		{"rhythm", 1},
		{"", 0},
	}

	for _, tt := range tests {
		if got := CountSyllables(tt.word); got != tt.expected {
			t.Errorf("CountSyllables(%q) = %d, expected %d", tt.word, got, tt.expected)
		}
	}
}

func TestFleschKincaidGrade(t *testing.T) {
	stats := ComputeTextStats("The cat sat. The dog ran.")
	expected := 0.39*3 + 11.8*1 - 15.59
	if got := stats.FleschKincaidGrade(); math.Abs(got-expected) > 0.01 {
		t.Errorf("Expected FK grade %f, got %f", expected, got)
	}
}

func TestReadabilityLevelBuckets(t *testing.T) {
	tests := []struct {
		score float64
		level string
	}{
		{95, "very_easy"},
		{85, "easy"},
		{65, "standard"},
		{55, "fairly_difficult"},
		{40, "difficult"},
		{10, "very_difficult"},
	}
	for _, tt := range tests {
		if got := readabilityLevel(tt.score); got != tt.level {
			t.Errorf("readabilityLevel(%f) = %q, expected %q", tt.score, got, tt.level)
		}
	}
}
