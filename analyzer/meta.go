package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// urlStopWords is the fixed list checked against URL slugs.
var urlStopWords = []string{"the", "a", "an", "and", "or", "but", "of", "in", "on", "at", "to", "for"}

func analyzeMeta(doc *goquery.Document, primaryKeyword, pageURL string) MetaAnalysis {
	ma := MetaAnalysis{KeywordPosition: "none"}

	ma.Title = strings.TrimSpace(doc.Find("title").First().Text())
	ma.TitleLength = len(ma.Title)
	ma.HasTitle = ma.TitleLength > 0

	if ma.HasTitle {
		lowerTitle := strings.ToLower(ma.Title)
		lowerKw := strings.ToLower(primaryKeyword)
		if idx := strings.Index(lowerTitle, lowerKw); idx >= 0 {
			ma.KeywordInTitle = true
			ma.KeywordPosition = titlePosition(idx, len(ma.Title))
		}
	}

	ma.Description, _ = doc.Find("meta[name='description']").Attr("content")
	ma.DescriptionLength = len(ma.Description)
	ma.HasDescription = ma.DescriptionLength > 0
	ma.KeywordInDesc = ma.HasDescription && containsFold(ma.Description, primaryKeyword)

	if canonical, exists := doc.Find("link[rel='canonical']").Attr("href"); exists {
		ma.HasCanonical = true
		ma.CanonicalURL = canonical
	}

	var schemaErr bool
	ma.SchemaMarkup, schemaErr = parseSchemaMarkup(doc)

	ma.Headings = HeadingCounts{
		H1: doc.Find("h1").Length(),
		H2: doc.Find("h2").Length(),
		H3: doc.Find("h3").Length(),
		H4: doc.Find("h4").Length(),
		H5: doc.Find("h5").Length(),
		H6: doc.Find("h6").Length(),
	}
	ma.ProperHierarchy = ma.Headings.H1 == 1 && ma.Headings.H2 >= 1

	ma.URL = analyzeURL(pageURL, primaryKeyword)

	ma.Recommendations = metaRecommendations(ma, schemaErr)
	return ma
}

// titlePosition buckets a keyword's character offset within the title.
func titlePosition(index, titleLen int) string {
	if titleLen == 0 {
		return "none"
	}
	ratio := float64(index) / float64(titleLen)
	switch {
	case ratio < 0.3:
		return "beginning"
	case ratio > 0.7:
		return "end"
	default:
		return "middle"
	}
}

// parseSchemaMarkup reads JSON-LD blocks. A malformed block degrades to
// an advisory rather than an error: the second return reports whether any
// block failed to parse.
func parseSchemaMarkup(doc *goquery.Document) (SchemaMarkup, bool) {
	sm := SchemaMarkup{}
	parseFailed := false

	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		var payload interface{}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			parseFailed = true
			return
		}
		sm.Present = true
		sm.Types = append(sm.Types, schemaTypes(payload)...)
	})

	return sm, parseFailed
}

// schemaTypes pulls @type values out of a decoded JSON-LD payload.
func schemaTypes(payload interface{}) []string {
	var types []string
	switch v := payload.(type) {
	case map[string]interface{}:
		switch t := v["@type"].(type) {
		case string:
			types = append(types, t)
		case []interface{}:
			for _, entry := range t {
				if s, ok := entry.(string); ok {
					types = append(types, s)
				}
			}
		}
	case []interface{}:
		for _, entry := range v {
			types = append(types, schemaTypes(entry)...)
		}
	}
	return types
}

func analyzeURL(pageURL, primaryKeyword string) URLAnalysis {
	ua := URLAnalysis{}
	if pageURL == "" {
		return ua
	}

	lower := strings.ToLower(pageURL)
	ua.HasQueryParams = strings.Contains(lower, "?")

	path := lower
	if idx := strings.Index(path, "://"); idx >= 0 {
		path = path[idx+3:]
	}
	if idx := strings.Index(path, "/"); idx >= 0 {
		path = path[idx:]
	} else {
		path = "/"
	}
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	ua.Length = len(path)

	segments := strings.Split(strings.Trim(path, "/"), "/")
	ua.Slug = segments[len(segments)-1]

	for _, part := range strings.FieldsFunc(ua.Slug, func(r rune) bool { return r == '-' || r == '_' }) {
		for _, stop := range urlStopWords {
			if part == stop {
				ua.HasStopWords = true
			}
		}
	}

	hyphenated := strings.ReplaceAll(strings.ToLower(primaryKeyword), " ", "-")
	ua.ContainsKeyword = hyphenated != "" && strings.Contains(path, hyphenated)

	ua.IsSEOFriendly = ua.Length < 100 && !ua.HasStopWords && !ua.HasQueryParams
	return ua
}

func metaRecommendations(ma MetaAnalysis, schemaErr bool) []string {
	var recs []string

	if !ma.HasTitle {
		recs = append(recs, "Add a title tag")
	} else if ma.TitleLength < 30 || ma.TitleLength > 60 {
		recs = append(recs, "Keep the title between 30 and 60 characters")
	}
	if !ma.HasDescription {
		recs = append(recs, "Add a meta description")
	} else if ma.DescriptionLength < 120 || ma.DescriptionLength > 160 {
		recs = append(recs, "Keep the meta description between 120 and 160 characters")
	}
	if !ma.HasCanonical {
		recs = append(recs, "Add a canonical link tag")
	}
	if schemaErr {
		recs = append(recs, "A JSON-LD block failed to parse - validate your structured data")
	} else if !ma.SchemaMarkup.Present {
		recs = append(recs, "Add JSON-LD structured data (e.g. Article schema)")
	}
	if !ma.ProperHierarchy {
		recs = append(recs, "Use exactly one H1 followed by H2 sections")
	}

	return recs
}
