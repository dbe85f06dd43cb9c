package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// analyzeSocialPreview reads Open Graph and Twitter card tags and
// synthesizes the preview a share would actually render, falling back to
// the title and meta description when the tags are absent.
func analyzeSocialPreview(doc *goquery.Document, meta MetaAnalysis) SocialPreview {
	sp := SocialPreview{}

	sp.OGTitle = metaProperty(doc, "og:title")
	sp.OGDescription = metaProperty(doc, "og:description")
	sp.OGImage = metaProperty(doc, "og:image")
	sp.TwitterCard, _ = doc.Find("meta[name='twitter:card']").Attr("content")

	sp.PreviewTitle = sp.OGTitle
	if sp.PreviewTitle == "" {
		sp.PreviewTitle = meta.Title
	}
	sp.PreviewTitle = truncatePreview(sp.PreviewTitle, 60)

	sp.PreviewDesc = sp.OGDescription
	if sp.PreviewDesc == "" {
		sp.PreviewDesc = meta.Description
	}
	sp.PreviewDesc = truncatePreview(sp.PreviewDesc, 160)

	sp.Complete = sp.OGTitle != "" && sp.OGDescription != "" && sp.OGImage != ""
	return sp
}

func metaProperty(doc *goquery.Document, property string) string {
	content, _ := doc.Find("meta[property='" + property + "']").Attr("content")
	return strings.TrimSpace(content)
}

func truncatePreview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-3]) + "..."
}
