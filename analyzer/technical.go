package analyzer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Resource-count thresholds for the load-time estimate.
const (
	slowImageCount     = 15
	slowScriptCount    = 10
	moderateImageCount = 8
	moderateScriptCount = 5
	moderateStyleCount  = 4
)

// credentialMarkers signal author expertise in the page text.
var credentialMarkers = []string{
	"phd", "md", "certified", "licensed", "years of experience",
	"professor", "researcher", "specialist",
}

var bylinePattern = regexp.MustCompile(`(?i)\bby\s+[A-Z][a-z]+(\s+[A-Z][a-z]+)?`)

func analyzeTechnical(doc *goquery.Document, text string) TechnicalAnalysis {
	ta := TechnicalAnalysis{}

	doc.Find("meta[name='viewport']").Each(func(_ int, s *goquery.Selection) {
		ta.HasViewport = true
		if content, exists := s.Attr("content"); exists && strings.Contains(strings.ToLower(content), "width=device-width") {
			ta.MobileResponsive = true
		}
	})

	ta.ImageCount = doc.Find("img").Length()
	ta.StylesheetCount = doc.Find("link[rel='stylesheet']").Length()
	ta.ScriptCount = doc.Find("script[src]").Length()
	ta.EstimatedLoadTime = estimateLoadTime(ta.ImageCount, ta.StylesheetCount, ta.ScriptCount)

	ta.EEAT = analyzeEEAT(doc, text)

	ta.Recommendations = technicalRecommendations(ta)
	return ta
}

// estimateLoadTime buckets page weight by resource counts. It is a static
// approximation; no resources are fetched.
func estimateLoadTime(images, stylesheets, scripts int) string {
	switch {
	case images > slowImageCount || scripts > slowScriptCount:
		return "slow"
	case images > moderateImageCount || scripts > moderateScriptCount || stylesheets > moderateStyleCount:
		return "moderate"
	default:
		return "fast"
	}
}

// analyzeEEAT reads trust signals straight from the document so the
// technical extractor stays independent of the link extractor.
func analyzeEEAT(doc *goquery.Document, text string) EEATSignals {
	signals := EEATSignals{AuthorityOutbound: countAuthorityLinks(doc)}

	if doc.Find("[rel='author'], [class*='author'], [itemprop='author']").Length() > 0 {
		signals.HasAuthorBio = true
	} else if bylinePattern.MatchString(text) {
		signals.HasAuthorBio = true
	}

	signals.HasDates = doc.Find("time, [datetime], [itemprop='datePublished']").Length() > 0

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		lower := strings.ToLower(href)
		if strings.Contains(lower, "about") || strings.Contains(lower, "contact") {
			signals.HasAboutOrContact = true
			return false
		}
		return true
	})

	lowerText := strings.ToLower(text)
	for _, marker := range credentialMarkers {
		if strings.Contains(lowerText, marker) {
			signals.HasCredentials = true
			break
		}
	}

	return signals
}

func technicalRecommendations(ta TechnicalAnalysis) []string {
	var recs []string

	if !ta.MobileResponsive {
		recs = append(recs, "Add a viewport meta tag with width=device-width for mobile support")
	}
	if ta.EstimatedLoadTime == "slow" {
		recs = append(recs, "Reduce the number of images and scripts to improve load time")
	}
	if !ta.EEAT.HasAuthorBio {
		recs = append(recs, "Add an author byline or bio to establish expertise")
	}
	if !ta.EEAT.HasDates {
		recs = append(recs, "Show a publish or updated date")
	}

	return recs
}
