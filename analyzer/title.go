package analyzer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// powerWords are headline words with measurable click-through impact.
var powerWords = []string{
	"ultimate", "essential", "proven", "complete", "definitive",
	"powerful", "effective", "simple", "free", "best", "guide",
}

var digitPattern = regexp.MustCompile(`\d`)

func analyzeTitle(doc *goquery.Document, primaryKeyword string) TitleAnalysis {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	ta := TitleAnalysis{
		Title:      title,
		Length:     len(title),
		HasTitle:   len(title) > 0,
		PowerWords: []string{},
	}

	lower := strings.ToLower(title)
	ta.ContainsKeyword = ta.HasTitle && containsFold(title, primaryKeyword)
	ta.ContainsNumber = digitPattern.MatchString(title)
	for _, w := range powerWords {
		if strings.Contains(lower, w) {
			ta.PowerWords = append(ta.PowerWords, w)
		}
	}

	// Length buckets carry the bulk of the score; keyword and style
	// signals adjust within the bucket.
	score := 0
	if ta.HasTitle {
		switch {
		case ta.Length >= 30 && ta.Length <= 60:
			score = 70
		case ta.Length < 30:
			score = 40
		default:
			score = 50
		}
		if ta.ContainsKeyword {
			score += 15
		}
		if ta.ContainsNumber {
			score += 5
		}
		if len(ta.PowerWords) > 0 {
			score += 10
		}
	}
	ta.Score = clampScore(score)

	return ta
}
