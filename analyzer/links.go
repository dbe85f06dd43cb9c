package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// authorityDomains is a fixed allowlist of high-authority registrable
// domains. Membership is a substring match in either direction so that
// subdomains and country variants still count.
var authorityDomains = []string{
	"wikipedia.org", "nih.gov", "cdc.gov", "who.int", "harvard.edu",
	"stanford.edu", "mit.edu", "nature.com", "sciencedirect.com",
	"nytimes.com", "bbc.com", "reuters.com", "forbes.com", "gov.uk",
}

// genericAnchorPhrases are anchor texts that carry no descriptive value.
var genericAnchorPhrases = []string{"here", "click", "link", "click here", "read more", "this"}

// statPattern matches a percentage or a number with a magnitude unit,
// the kind of figure that should carry a citation.
var statPattern = regexp.MustCompile(`\d+(\.\d+)?\s*(%|percent|million|billion|thousand)`)

func analyzeLinks(doc *goquery.Document, baseURL string) LinkAnalysis {
	la := LinkAnalysis{
		AnchorTypes:      map[string]int{"generic": 0, "brand": 0, "descriptive": 0, "exactMatch": 0},
		ExternalDomains:  []string{},
		MissingCitations: []string{},
	}

	seenAnchors := make(map[string]bool)
	seenDomains := make(map[string]bool)
	lowerBase := strings.ToLower(baseURL)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "javascript:") {
			return
		}

		anchor := strings.TrimSpace(s.Text())
		la.TotalAnchors++
		if !seenAnchors[strings.ToLower(anchor)] {
			seenAnchors[strings.ToLower(anchor)] = true
			la.DistinctAnchors++
		}

		if isGenericAnchor(anchor) {
			la.GenericAnchors++
		} else if len(anchor) > 3 {
			la.RelevantAnchors++
		}
		la.AnchorTypes[classifyAnchor(anchor)]++

		if isInternalLink(href, lowerBase) {
			la.InternalLinks++
			return
		}
		if strings.HasPrefix(href, "http") {
			la.ExternalLinks++
			domain := registrableDomain(href)
			if domain != "" && !seenDomains[domain] {
				seenDomains[domain] = true
				la.ExternalDomains = append(la.ExternalDomains, domain)
			}
			if isAuthorityDomain(domain) {
				la.AuthorityLinks++
			}
		}
	})

	if la.TotalAnchors > 0 {
		la.AnchorDiversity = float64(la.DistinctAnchors) / float64(la.TotalAnchors) * 100
	}

	la.MissingCitations = findMissingCitations(doc)
	la.Recommendations = linkRecommendations(la)
	return la
}

func isInternalLink(href, lowerBase string) bool {
	if strings.HasPrefix(href, "http") {
		return lowerBase != "" && strings.Contains(strings.ToLower(href), lowerBase)
	}
	// Relative paths resolve against the page itself.
	return true
}

// registrableDomain pulls the host out of an absolute URL, dropping any
// www prefix. Malformed URLs yield an empty string.
func registrableDomain(href string) string {
	rest := href
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
	}
	if idx := strings.IndexAny(rest, "/?#"); idx >= 0 {
		rest = rest[:idx]
	}
	rest = strings.TrimPrefix(strings.ToLower(rest), "www.")
	if !strings.Contains(rest, ".") {
		return ""
	}
	return rest
}

// countAuthorityLinks counts outbound links to allowlisted domains.
func countAuthorityLinks(doc *goquery.Document) int {
	count := 0
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if strings.HasPrefix(href, "http") && isAuthorityDomain(registrableDomain(href)) {
			count++
		}
	})
	return count
}

func isAuthorityDomain(domain string) bool {
	if domain == "" {
		return false
	}
	for _, auth := range authorityDomains {
		if strings.Contains(domain, auth) || strings.Contains(auth, domain) {
			return true
		}
	}
	return false
}

func isGenericAnchor(anchor string) bool {
	lower := strings.ToLower(strings.TrimSpace(anchor))
	for _, phrase := range genericAnchorPhrases {
		if lower == phrase {
			return true
		}
	}
	return false
}

// classifyAnchor buckets anchor text by length. This is deliberately an
// approximation, not a semantic classification.
func classifyAnchor(anchor string) string {
	switch {
	case isGenericAnchor(anchor):
		return "generic"
	case len(anchor) < 10:
		return "brand"
	case len(anchor) > 20:
		return "descriptive"
	default:
		return "exactMatch"
	}
}

// findMissingCitations flags paragraphs that quote a statistic without
// linking a source, capped at five.
func findMissingCitations(doc *goquery.Document) []string {
	flagged := []string{}
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if statPattern.MatchString(text) && s.Find("a").Length() == 0 {
			flagged = append(flagged, truncate(text, 80))
		}
		return len(flagged) < 5
	})
	return flagged
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func linkRecommendations(la LinkAnalysis) []string {
	var recs []string

	if la.InternalLinks == 0 {
		recs = append(recs, "Add internal links to related pages")
	}
	if la.ExternalLinks == 0 {
		recs = append(recs, "Link out to authoritative sources to support your claims")
	} else if la.AuthorityLinks == 0 {
		recs = append(recs, "None of your external links point to recognized authority domains")
	}
	if la.GenericAnchors > 0 {
		recs = append(recs, fmt.Sprintf("Replace %d generic anchor(s) like \"click here\" with descriptive text", la.GenericAnchors))
	}
	if len(la.MissingCitations) > 0 {
		recs = append(recs, fmt.Sprintf("%d paragraph(s) cite statistics without linking a source", len(la.MissingCitations)))
	}

	return recs
}
