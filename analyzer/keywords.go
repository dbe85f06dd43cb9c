package analyzer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Density thresholds, expressed as percentages of total words.
const (
	stuffingThreshold   = 3.0
	naturalDensityLow   = 0.5
	naturalDensityHigh  = 2.5
	primaryKeywordFinal = "content"
)

// relatedTermsTable maps topic substrings to fixed related-term
// suggestions. The first matching entry wins.
var relatedTermsTable = []struct {
	topic string
	terms []string
}{
	{"marketing", []string{"digital strategy", "brand awareness", "conversion rate", "audience targeting"}},
	{"seo", []string{"search rankings", "organic traffic", "backlink profile", "on-page optimization"}},
	{"health", []string{"wellness tips", "medical research", "healthy lifestyle", "preventive care"}},
	{"fitness", []string{"workout routine", "strength training", "exercise plan", "recovery"}},
	{"finance", []string{"investment strategy", "budget planning", "financial goals", "savings rate"}},
	{"technology", []string{"software tools", "automation", "digital transformation", "tech trends"}},
	{"food", []string{"recipe ideas", "meal planning", "nutrition facts", "cooking techniques"}},
	{"travel", []string{"destination guide", "travel tips", "itinerary planning", "local culture"}},
	{"education", []string{"learning resources", "study techniques", "online courses", "skill development"}},
	{"business", []string{"growth strategy", "market analysis", "customer retention", "revenue streams"}},
}

// resolvePrimaryKeyword picks the keyword used by every downstream stage:
// the caller-supplied target, else the first multi-word phrase longer than
// three characters, else a literal fallback.
func resolvePrimaryKeyword(target string, phrases []string) string {
	if kw := strings.TrimSpace(target); kw != "" {
		return kw
	}
	for _, p := range phrases {
		if strings.Contains(p, " ") && len(p) > 3 {
			return p
		}
	}
	return primaryKeywordFinal
}

func analyzeKeywords(doc *goquery.Document, text string, stats TextStats, extractor PhraseExtractor, target, pageURL string) KeywordAnalysis {
	phrases := extractor.NounPhrases(text)
	primary := resolvePrimaryKeyword(target, phrases)

	lowerText := strings.ToLower(text)
	lowerKeyword := strings.ToLower(primary)

	occurrences := 0
	density := 0.0
	if stats.WordCount > 0 && lowerKeyword != "" {
		occurrences = strings.Count(lowerText, lowerKeyword)
		density = float64(occurrences) / float64(stats.WordCount) * 100
	}

	titleText := strings.TrimSpace(doc.Find("title").First().Text())
	if titleText == "" {
		titleText = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	firstParagraph := doc.Find("p").First().Text()

	var headingText strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		headingText.WriteString(s.Text())
		headingText.WriteString(" ")
	})

	metaDesc, _ := doc.Find("meta[name='description']").Attr("content")

	hyphenated := strings.ReplaceAll(lowerKeyword, " ", "-")

	ka := KeywordAnalysis{
		PrimaryKeyword:     primary,
		Occurrences:        occurrences,
		WordCount:          stats.WordCount,
		Density:            density,
		StuffingAlert:      density > stuffingThreshold,
		NaturalIntegration: density >= naturalDensityLow && density <= naturalDensityHigh,
		InTitle:            containsFold(titleText, primary),
		InFirstParagraph:   containsFold(firstParagraph, primary),
		InHeadings:         containsFold(headingText.String(), primary),
		InMetaDescription:  containsFold(metaDesc, primary),
		InURL:              pageURL != "" && strings.Contains(strings.ToLower(pageURL), hyphenated),
		SecondaryKeywords:  secondaryKeywords(phrases, lowerKeyword),
		LSIKeywords:        capStrings(extractor.TopicTerms(text), 10),
		RelatedTerms:       lookupRelatedTerms(lowerKeyword),
		Research:           classifyKeyword(lowerKeyword),
	}

	ka.Recommendations = keywordRecommendations(ka)
	return ka
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func secondaryKeywords(phrases []string, primary string) []string {
	out := make([]string, 0, 5)
	for _, p := range phrases {
		if strings.EqualFold(p, primary) {
			continue
		}
		out = append(out, p)
		if len(out) == 5 {
			break
		}
	}
	return out
}

func capStrings(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func lookupRelatedTerms(keyword string) []string {
	for _, entry := range relatedTermsTable {
		if strings.Contains(keyword, entry.topic) {
			return entry.terms
		}
	}
	return []string{}
}

// classifyKeyword is a coarse heuristic keyed on keyword length and
// canonical intent markers. It stands in for real keyword research data.
func classifyKeyword(keyword string) KeywordResearch {
	words := len(strings.Fields(keyword))

	research := KeywordResearch{Intent: "informational"}

	switch {
	case words <= 1:
		research.SearchVolume = "high"
		research.Difficulty = "hard"
	case words <= 3:
		research.SearchVolume = "medium"
		research.Difficulty = "medium"
	default:
		research.SearchVolume = "low"
		research.Difficulty = "easy"
	}

	switch {
	case strings.Contains(keyword, "how to"):
		research.Intent = "informational"
	case strings.Contains(keyword, "buy") || strings.Contains(keyword, "price") || strings.Contains(keyword, "cheap"):
		research.Intent = "transactional"
	case strings.Contains(keyword, "best") || strings.Contains(keyword, "review") || strings.Contains(keyword, "top"):
		research.Intent = "commercial"
	case strings.Contains(keyword, "login") || strings.Contains(keyword, "sign in"):
		research.Intent = "navigational"
	}

	return research
}

func keywordRecommendations(ka KeywordAnalysis) []string {
	var recs []string

	if ka.StuffingAlert {
		recs = append(recs, fmt.Sprintf("Keyword density is %.1f%% - reduce repetition of \"%s\" to avoid stuffing", ka.Density, ka.PrimaryKeyword))
	} else if ka.Density < naturalDensityLow && ka.WordCount > 0 {
		recs = append(recs, fmt.Sprintf("Use \"%s\" more often - current density %.1f%% is below the natural range", ka.PrimaryKeyword, ka.Density))
	}
	if !ka.InTitle {
		recs = append(recs, "Include the primary keyword in the page title")
	}
	if !ka.InFirstParagraph {
		recs = append(recs, "Mention the primary keyword in the opening paragraph")
	}
	if !ka.InHeadings {
		recs = append(recs, "Work the primary keyword into at least one heading")
	}

	return recs
}
