package analyzer

import (
	"fmt"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func analyzeMedia(doc *goquery.Document) MediaAnalysis {
	ma := MediaAnalysis{}

	images := doc.Find("img")
	ma.Images.Count = images.Length()

	images.Each(func(_ int, s *goquery.Selection) {
		if alt, exists := s.Attr("alt"); exists && strings.TrimSpace(alt) != "" {
			ma.Images.WithAlt++
		} else {
			ma.Images.MissingAltText++
		}

		src, _ := s.Attr("src")
		if hasOptimizedFilename(src) {
			ma.Images.OptimizedFilenames++
		}
		if hasOversizedFormat(src) {
			ma.Images.OversizedFormats++
		}
	})

	if ma.Images.Count > 0 {
		ma.Images.AltCoverage = float64(ma.Images.WithAlt) / float64(ma.Images.Count) * 100
	}

	ma.VideoEmbeds = doc.Find("video, iframe[src*='youtube'], iframe[src*='vimeo']").Length()

	ma.Recommendations = mediaRecommendations(ma)
	return ma
}

// hasOptimizedFilename applies a naming heuristic: descriptive names are
// longer than ten characters, are not camera-style "img" prefixes, and
// use hyphens rather than underscores.
func hasOptimizedFilename(src string) bool {
	if src == "" {
		return false
	}
	base := path.Base(src)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	lower := strings.ToLower(base)
	return len(base) > 10 && !strings.HasPrefix(lower, "img") && !strings.Contains(base, "_")
}

// hasOversizedFormat flags formats that are rarely appropriate for photos
// on the web.
func hasOversizedFormat(src string) bool {
	lower := strings.ToLower(src)
	if idx := strings.IndexAny(lower, "?#"); idx >= 0 {
		lower = lower[:idx]
	}
	return strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".bmp")
}

func mediaRecommendations(ma MediaAnalysis) []string {
	var recs []string

	if ma.Images.Count == 0 {
		recs = append(recs, "Add at least one relevant image to support the content")
		return recs
	}
	if ma.Images.MissingAltText > 0 {
		recs = append(recs, fmt.Sprintf("Add alt text to %d image(s)", ma.Images.MissingAltText))
	}
	if ma.Images.OversizedFormats > 0 {
		recs = append(recs, fmt.Sprintf("Convert %d image(s) from PNG/BMP to a compressed web format", ma.Images.OversizedFormats))
	}
	if ma.Images.OptimizedFilenames < ma.Images.Count {
		recs = append(recs, "Use descriptive, hyphenated image filenames")
	}

	return recs
}
