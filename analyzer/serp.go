package analyzer

import (
	"fmt"
	"math"
	"strings"
)

// ContentMetrics are the caller-side numbers compared against the
// competitor averages.
type ContentMetrics struct {
	WordCount        int
	ImageCount       int
	HeadingCount     int
	ReadabilityScore float64
	KeywordDensity   float64
}

// competitorSnapshot returns the simulated competitor set for a keyword.
// The records are a fixed fixture with template-interpolated titles; they
// are deterministic per keyword and are never fetched from a live source.
// Keep this behind the function boundary so a real data source could be
// swapped in without touching the comparison math.
func competitorSnapshot(keyword string) []CompetitorRecord {
	kw := titleCase(keyword)
	return []CompetitorRecord{
		{Title: fmt.Sprintf("%s: The Complete Guide", kw), WordCount: 2450, ImageCount: 8, HeadingCount: 12, Backlinks: 340, DomainAuthority: 72, ContentScore: 88},
		{Title: fmt.Sprintf("10 Things You Should Know About %s", kw), WordCount: 1820, ImageCount: 6, HeadingCount: 11, Backlinks: 210, DomainAuthority: 65, ContentScore: 82},
		{Title: fmt.Sprintf("How to Master %s in 2024", kw), WordCount: 2100, ImageCount: 5, HeadingCount: 9, Backlinks: 180, DomainAuthority: 58, ContentScore: 79},
		{Title: fmt.Sprintf("%s Explained for Beginners", kw), WordCount: 1350, ImageCount: 4, HeadingCount: 7, Backlinks: 95, DomainAuthority: 51, ContentScore: 74},
		{Title: fmt.Sprintf("Why %s Matters More Than Ever", kw), WordCount: 1600, ImageCount: 3, HeadingCount: 8, Backlinks: 120, DomainAuthority: 47, ContentScore: 71},
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func compareWithCompetitors(keyword string, metrics ContentMetrics) SERPComparison {
	competitors := competitorSnapshot(keyword)

	avg := CompetitorAverages{}
	for _, c := range competitors {
		avg.WordCount += float64(c.WordCount)
		avg.ImageCount += float64(c.ImageCount)
		avg.HeadingCount += float64(c.HeadingCount)
		avg.DomainAuthority += float64(c.DomainAuthority)
		avg.ContentScore += float64(c.ContentScore)
	}
	n := float64(len(competitors))
	avg.WordCount /= n
	avg.ImageCount /= n
	avg.HeadingCount /= n
	avg.DomainAuthority /= n
	avg.ContentScore /= n

	score := comparativeScore(metrics, avg)

	return SERPComparison{
		Keyword:             keyword,
		Competitors:         competitors,
		Averages:            avg,
		ComparativeScore:    score,
		CompetitivePosition: competitivePosition(score),
		RankingPotential:    rankingPotential(score),
		Simulated:           true,
	}
}

// comparativeScore starts at a neutral 50 and applies signed, weighted
// adjustments for each metric delta against the competitor averages.
func comparativeScore(m ContentMetrics, avg CompetitorAverages) int {
	score := 50

	switch {
	case float64(m.WordCount) >= avg.WordCount:
		score += 10
	case float64(m.WordCount) < avg.WordCount*0.7:
		score -= 10
	}

	switch {
	case float64(m.ImageCount) >= avg.ImageCount:
		score += 8
	case m.ImageCount == 0:
		score -= 8
	}

	switch {
	case float64(m.HeadingCount) >= avg.HeadingCount:
		score += 7
	case float64(m.HeadingCount) < avg.HeadingCount/2:
		score -= 7
	}

	switch {
	case m.ReadabilityScore >= 60:
		score += 10
	case m.ReadabilityScore < 40:
		score -= 10
	}

	switch {
	case m.KeywordDensity >= naturalDensityLow && m.KeywordDensity <= naturalDensityHigh:
		score += 5
	case m.KeywordDensity > stuffingThreshold:
		score -= 10
	}

	return clampScore(score)
}

// competitivePosition maps the comparative score onto a 1-10 SERP slot,
// 1 being the strongest.
func competitivePosition(score int) int {
	pos := int(math.Round(float64(100-score) / 10.0))
	if pos < 1 {
		pos = 1
	}
	if pos > 10 {
		pos = 10
	}
	return pos
}

func rankingPotential(score int) string {
	switch {
	case score >= 70:
		return "high"
	case score >= 45:
		return "medium"
	default:
		return "low"
	}
}
