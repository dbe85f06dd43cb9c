package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

// PhraseExtractor supplies noun-phrase candidates and topic terms for a
// block of plain text. Implementations must be deterministic: the keyword
// engine takes the first qualifying phrase it returns.
type PhraseExtractor interface {
	NounPhrases(text string) []string
	TopicTerms(text string) []string
}

// ruleBasedExtractor is the default extractor: stop-word filtered bigram
// and trigram frequency, ranked by count with first-occurrence tie-breaks.
type ruleBasedExtractor struct {
	stopWords map[string]bool
}

// NewPhraseExtractor returns the default rule-based extractor.
func NewPhraseExtractor() PhraseExtractor {
	return &ruleBasedExtractor{stopWords: defaultStopWords()}
}

var nonWordRe = regexp.MustCompile(`[^\w]`)

func cleanWord(word string) string {
	return nonWordRe.ReplaceAllString(strings.ToLower(word), "")
}

type phraseCandidate struct {
	phrase string
	count  int
	first  int // index of first occurrence, for deterministic ordering
}

// NounPhrases returns candidate phrases ordered by frequency, then by
// position of first occurrence.
func (e *ruleBasedExtractor) NounPhrases(text string) []string {
	words := strings.Fields(text)

	counts := make(map[string]*phraseCandidate)

	add := func(phrase string, pos int) {
		if c, ok := counts[phrase]; ok {
			c.count++
		} else {
			counts[phrase] = &phraseCandidate{phrase: phrase, count: 1, first: pos}
		}
	}

	for i := 0; i < len(words)-1; i++ {
		w1 := cleanWord(words[i])
		w2 := cleanWord(words[i+1])
		if len(w1) > 2 && len(w2) > 2 && !e.stopWords[w1] && !e.stopWords[w2] {
			add(w1+" "+w2, i)
		}
	}

	for i := 0; i < len(words)-2; i++ {
		w1 := cleanWord(words[i])
		w2 := cleanWord(words[i+1])
		w3 := cleanWord(words[i+2])
		if len(w1) > 2 && len(w2) > 2 && len(w3) > 2 &&
			!e.stopWords[w1] && !e.stopWords[w3] {
			add(w1+" "+w2+" "+w3, i)
		}
	}

	ordered := make([]*phraseCandidate, 0, len(counts))
	for _, c := range counts {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].first < ordered[j].first
	})

	phrases := make([]string, 0, len(ordered))
	for _, c := range ordered {
		phrases = append(phrases, c.phrase)
	}
	return phrases
}

// TopicTerms returns single terms scored by frequency times length, which
// favors distinctive vocabulary over filler.
func (e *ruleBasedExtractor) TopicTerms(text string) []string {
	words := strings.Fields(text)

	type termScore struct {
		term  string
		score int
		first int
	}

	freq := make(map[string]*termScore)
	for i, raw := range words {
		w := cleanWord(raw)
		if len(w) <= 4 || e.stopWords[w] {
			continue
		}
		if t, ok := freq[w]; ok {
			t.score += len(w)
		} else {
			freq[w] = &termScore{term: w, score: len(w), first: i}
		}
	}

	ordered := make([]*termScore, 0, len(freq))
	for _, t := range freq {
		ordered = append(ordered, t)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].score != ordered[j].score {
			return ordered[i].score > ordered[j].score
		}
		return ordered[i].first < ordered[j].first
	})

	terms := make([]string, 0, len(ordered))
	for _, t := range ordered {
		terms = append(terms, t.term)
	}
	return terms
}

func defaultStopWords() map[string]bool {
	words := []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
		"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
		"how", "man", "new", "now", "old", "see", "two", "way", "who", "its",
		"did", "yes", "have", "been", "were", "they", "them", "then", "than",
		"this", "that", "these", "those", "with", "will", "would", "could",
		"should", "from", "into", "onto", "over", "under", "about", "after",
		"before", "between", "through", "during", "without", "within", "your",
		"their", "there", "here", "when", "where", "which", "while", "what",
		"more", "most", "some", "such", "only", "also", "very", "just", "each",
		"other", "many", "much", "both", "being", "doing", "because", "does",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
