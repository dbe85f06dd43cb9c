package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Paragraph-length buckets, in words.
const (
	shortParagraphWords = 50
	longParagraphWords  = 150
	wallOfTextWords     = 300
)

// claimMarkers are phrases that introduce an assertion readers expect a
// source for.
var claimMarkers = []string{
	"research shows", "studies show", "studies have shown", "according to",
	"statistics show", "data shows", "survey found", "experts say",
	"scientists found", "evidence suggests",
}

// uniqueValueMarkers indicate first-hand or original material.
var uniqueValueMarkers = []string{
	"in my experience", "we tested", "our research", "case study",
	"i found", "our analysis", "first-hand", "original research",
}

// timeMarkers date the content; their absence marks it evergreen.
var timeMarkers = []string{
	"today", "yesterday", "this year", "this month", "this week",
	"last year", "last month", "last week", "recently", "currently",
	"right now", "breaking",
}

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

func analyzeContent(doc *goquery.Document, text string, stats TextStats) ContentQualityAnalysis {
	ca := ContentQualityAnalysis{}

	flesch := stats.FleschReadingEase()
	ca.Readability = ReadabilityReport{
		WordCount:         stats.WordCount,
		SentenceCount:     stats.SentenceCount,
		SyllableCount:     stats.SyllableCount,
		AvgSentenceLength: stats.AvgSentenceLength(),
		FleschScore:       flesch,
		FleschKincaid:     stats.FleschKincaidGrade(),
		SMOGIndex:         stats.SMOGIndex(),
		DaleChall:         stats.DaleChallScore(),
		Level:             readabilityLevel(flesch),
	}

	ca.Structure = analyzeStructure(doc)
	ca.Scannability = analyzeScannability(doc, ca.Structure.WallsOfText)
	ca.Citations = analyzeCitations(doc)
	ca.Comprehensiveness = analyzeComprehensiveness(text, stats.WordCount)

	ca.Recommendations = contentRecommendations(ca)
	return ca
}

func analyzeStructure(doc *goquery.Document) ContentStructure {
	cs := ContentStructure{HeadingLevels: []int{}}

	paragraphs := doc.Find("p")
	cs.ParagraphCount = paragraphs.Length()

	paragraphs.Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		words := len(strings.Fields(text))

		if i == 0 {
			cs.HasIntroduction = len(text) > 100
		}
		if i == paragraphs.Length()-1 {
			cs.HasConclusion = len(text) > 100
		}

		switch {
		case words > wallOfTextWords:
			cs.WallsOfText++
		case words > longParagraphWords:
			cs.LongParagraphs++
		case words <= shortParagraphWords:
			cs.ShortParagraphs++
		}
	})

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		if len(name) == 2 && name[0] == 'h' {
			cs.HeadingLevels = append(cs.HeadingLevels, int(name[1]-'0'))
		}
	})
	cs.ValidHeadingOrder = validHeadingOrder(cs.HeadingLevels)

	return cs
}

// validHeadingOrder rejects any downward jump of more than one level,
// e.g. an H3 directly after an H1.
func validHeadingOrder(levels []int) bool {
	for i := 1; i < len(levels); i++ {
		if levels[i]-levels[i-1] > 1 {
			return false
		}
	}
	return true
}

func analyzeScannability(doc *goquery.Document, wallsOfText int) Scannability {
	sc := Scannability{
		Lists:       doc.Find("ul, ol").Length(),
		Subheadings: doc.Find("h2, h3").Length(),
		BoldCount:   doc.Find("b, strong").Length(),
		ItalicCount: doc.Find("i, em").Length(),
	}

	score := 50
	score += minInt(sc.Lists*5, 25)
	score += minInt(sc.Subheadings*4, 20)
	score += minInt(sc.BoldCount*2, 10)
	score += minInt(sc.ItalicCount, 5)
	score -= 10 * wallsOfText

	sc.Score = clampScore(score)
	return sc
}

func analyzeCitations(doc *goquery.Document) CitationReport {
	cr := CitationReport{ClaimsWithoutCitation: []string{}}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); strings.HasPrefix(href, "http") {
			cr.OutboundLinks++
		}
	})

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		lower := strings.ToLower(text)
		for _, marker := range claimMarkers {
			if strings.Contains(lower, marker) && s.Find("a").Length() == 0 {
				cr.ClaimsWithoutCitation = append(cr.ClaimsWithoutCitation, truncate(text, 80))
				break
			}
		}
	})

	return cr
}

func analyzeComprehensiveness(text string, wordCount int) Comprehensiveness {
	c := Comprehensiveness{WordCount: wordCount}

	switch {
	case wordCount >= 2000:
		c.Level = "comprehensive"
	case wordCount >= 1000:
		c.Level = "moderate"
	default:
		c.Level = "basic"
	}

	lower := strings.ToLower(text)
	for _, marker := range uniqueValueMarkers {
		if strings.Contains(lower, marker) {
			c.HasUniqueValue = true
			break
		}
	}

	c.IsEvergreen = true
	for _, marker := range timeMarkers {
		if strings.Contains(lower, marker) {
			c.IsEvergreen = false
			break
		}
	}
	if c.IsEvergreen && yearPattern.MatchString(text) {
		c.IsEvergreen = false
	}

	return c
}

func contentRecommendations(ca ContentQualityAnalysis) []string {
	var recs []string

	if ca.Readability.FleschScore < 50 && ca.Readability.WordCount > 0 {
		recs = append(recs, "Shorten sentences and prefer simpler words to improve readability")
	}
	if !ca.Structure.HasIntroduction {
		recs = append(recs, "Open with a substantial introduction paragraph")
	}
	if !ca.Structure.HasConclusion {
		recs = append(recs, "Close with a conclusion that summarizes key takeaways")
	}
	if ca.Structure.WallsOfText > 0 {
		recs = append(recs, fmt.Sprintf("Break up %d very long paragraph(s) into shorter ones", ca.Structure.WallsOfText))
	}
	if !ca.Structure.ValidHeadingOrder {
		recs = append(recs, "Fix heading order - do not skip levels (e.g. H1 to H3)")
	}
	if len(ca.Citations.ClaimsWithoutCitation) > 0 {
		recs = append(recs, fmt.Sprintf("%d claim(s) reference research without citing a source", len(ca.Citations.ClaimsWithoutCitation)))
	}
	if ca.Comprehensiveness.Level == "basic" {
		recs = append(recs, "Expand the content - pages under 1000 words rarely cover a topic fully")
	}

	return recs
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
