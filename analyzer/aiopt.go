package analyzer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// declarativePatterns match sentence openings that state facts directly,
// the style AI answer engines favor when quoting sources.
var declarativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(The|This|These|Those|It|There)\s`),
	regexp.MustCompile(`^[A-Z][a-z]+\s+(is|are|was|were|has|have|can|will)\s`),
}

var ordinalMarkers = []string{"first", "1.", "step 1", "•", "- "}

func analyzeAIOptimization(doc *goquery.Document, stats TextStats) AIOptimizationAnalysis {
	ai := AIOptimizationAnalysis{}

	for _, sentence := range stats.Sentences {
		for _, pattern := range declarativePatterns {
			if pattern.MatchString(sentence) {
				ai.DeclarativeSentences++
				break
			}
		}
	}
	if stats.SentenceCount > 0 {
		ai.DeclarativeRatio = float64(ai.DeclarativeSentences) / float64(stats.SentenceCount)
	}

	firstParagraph := strings.TrimSpace(doc.Find("p").First().Text())
	ai.KeyPointsUpfront = keyPointsUpfront(firstParagraph)

	ai.HasFAQSection = hasFAQHeading(doc)
	ai.FeaturedSnippetReady = ai.HasFAQSection || snippetFriendlyList(doc)

	ai.Recommendations = aiRecommendations(ai)
	return ai
}

// keyPointsUpfront checks whether the opening paragraph front-loads an
// answer: substantial, and structured by a colon, bullet or ordinal.
func keyPointsUpfront(firstParagraph string) bool {
	if len(firstParagraph) <= 50 {
		return false
	}
	if strings.Contains(firstParagraph, ":") {
		return true
	}
	lower := strings.ToLower(firstParagraph)
	for _, marker := range ordinalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func hasFAQHeading(doc *goquery.Document) bool {
	found := false
	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(s.Text())
		if strings.Contains(text, "faq") || strings.Contains(text, "frequently asked") || strings.Contains(text, "?") {
			found = true
			return false
		}
		return true
	})
	return found
}

// snippetFriendlyList looks for an ordered list paired with how-to or
// step language, the classic featured-snippet shape.
func snippetFriendlyList(doc *goquery.Document) bool {
	if doc.Find("ol").Length() == 0 {
		return false
	}
	body := strings.ToLower(doc.Find("body").Text())
	return strings.Contains(body, "how to") || strings.Contains(body, "step")
}

func aiRecommendations(ai AIOptimizationAnalysis) []string {
	var recs []string

	if ai.DeclarativeRatio < 0.3 {
		recs = append(recs, "Use more direct, declarative sentences that AI engines can quote")
	}
	if !ai.KeyPointsUpfront {
		recs = append(recs, "State the key answer in the first paragraph")
	}
	if !ai.FeaturedSnippetReady {
		recs = append(recs, "Add an FAQ section or a numbered how-to list for snippet eligibility")
	}

	return recs
}
