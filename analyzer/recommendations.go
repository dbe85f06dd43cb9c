package analyzer

import "fmt"

// maxRecommendations bounds the output list. The tail is truncated, so
// callers needing exhaustive findings must read the per-analyzer
// recommendation strings instead.
const maxRecommendations = 12

type recommendationRule struct {
	when  func(*AnalysisResult) bool
	build func(*AnalysisResult) Recommendation
}

// recommendationRules is evaluated in order: critical rules first, then
// important, then suggestions. Ordering is significant because the output
// is truncated.
var recommendationRules = []recommendationRule{
	// --- critical ---
	{
		when: func(r *AnalysisResult) bool { return r.Keywords.Occurrences == 0 },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecCritical, Category: "keywords", Impact: ImpactHigh,
				Title:          "Primary keyword missing from content",
				Description:    fmt.Sprintf("The keyword \"%s\" does not appear anywhere in the body text.", r.Keywords.PrimaryKeyword),
				SpecificAction: "Work the keyword naturally into the title, introduction and at least one heading",
			}
		},
	},
	{
		when: func(r *AnalysisResult) bool { return r.Keywords.StuffingAlert },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecCritical, Category: "keywords", Impact: ImpactHigh,
				Title:          "Keyword stuffing detected",
				Description:    fmt.Sprintf("Density of %.1f%% exceeds the 3%% threshold and risks a ranking penalty.", r.Keywords.Density),
				SpecificAction: "Replace repeated instances with synonyms or related terms",
			}
		},
	},
	{
		when: func(r *AnalysisResult) bool { return !r.Technical.MobileResponsive },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecCritical, Category: "technical", Impact: ImpactHigh,
				Title:            "No mobile optimization",
				Description:      "The page has no responsive viewport meta tag; mobile users get a desktop layout.",
				SpecificAction:   "Add a viewport meta tag",
				WhereToImplement: "document <head>",
				ExampleText:      `<meta name="viewport" content="width=device-width, initial-scale=1">`,
				TargetElement:    "meta[name=viewport]",
			}
		},
	},
	// --- important ---
	{
		when: func(r *AnalysisResult) bool {
			return !r.Meta.HasTitle || r.Meta.TitleLength < 30 || r.Meta.TitleLength > 60
		},
		build: func(r *AnalysisResult) Recommendation {
			rec := Recommendation{
				Type: RecImportant, Category: "meta", Impact: ImpactHigh,
				Title:            "Title tag needs work",
				WhereToImplement: "document <head>",
				TargetElement:    "title",
			}
			if !r.Meta.HasTitle {
				rec.Description = "The page has no title tag."
				rec.SpecificAction = "Add a 30-60 character title that leads with the primary keyword"
			} else {
				rec.Description = fmt.Sprintf("Title is %d characters; 30-60 displays fully in search results.", r.Meta.TitleLength)
				rec.SpecificAction = "Rewrite the title to fit the 30-60 character window"
			}
			return rec
		},
	},
	{
		when: func(r *AnalysisResult) bool {
			return !r.Meta.HasDescription || r.Meta.DescriptionLength < 120 || r.Meta.DescriptionLength > 160
		},
		build: func(r *AnalysisResult) Recommendation {
			rec := Recommendation{
				Type: RecImportant, Category: "meta", Impact: ImpactMedium,
				Title:            "Meta description needs work",
				WhereToImplement: "document <head>",
				TargetElement:    "meta[name=description]",
			}
			if !r.Meta.HasDescription {
				rec.Description = "No meta description; search engines will synthesize one."
				rec.SpecificAction = "Write a 120-160 character description including the primary keyword"
			} else {
				rec.Description = fmt.Sprintf("Description is %d characters; 120-160 is the display sweet spot.", r.Meta.DescriptionLength)
				rec.SpecificAction = "Adjust the description length to 120-160 characters"
			}
			return rec
		},
	},
	{
		when: func(r *AnalysisResult) bool { return r.Links.AuthorityLinks < 2 },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecImportant, Category: "links", Impact: ImpactMedium,
				Title:          "Too few authority links",
				Description:    fmt.Sprintf("Only %d link(s) point to recognized authority domains.", r.Links.AuthorityLinks),
				SpecificAction: "Cite at least two high-authority sources (journals, government or university sites)",
			}
		},
	},
	{
		when: func(r *AnalysisResult) bool { return r.Media.Images.MissingAltText > 0 },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecImportant, Category: "media", Impact: ImpactMedium,
				Title:          "Images missing alt text",
				Description:    fmt.Sprintf("%d of %d image(s) have no alt attribute.", r.Media.Images.MissingAltText, r.Media.Images.Count),
				SpecificAction: "Describe each image's content in its alt attribute",
				TargetElement:  "img",
			}
		},
	},
	{
		when: func(r *AnalysisResult) bool { return !r.Technical.EEAT.HasAuthorBio },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecImportant, Category: "eeat", Impact: ImpactMedium,
				Title:          "No author attribution",
				Description:    "The page shows no author byline or bio, weakening expertise signals.",
				SpecificAction: "Add a byline and short author bio with credentials",
			}
		},
	},
	{
		when: func(r *AnalysisResult) bool { return !r.Meta.SchemaMarkup.Present },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecImportant, Category: "meta", Impact: ImpactMedium,
				Title:            "No structured data",
				Description:      "No JSON-LD schema was found; rich results need it.",
				SpecificAction:   "Add an Article or FAQPage JSON-LD block",
				WhereToImplement: "document <head>",
				TargetElement:    "script[type=application/ld+json]",
			}
		},
	},
	// --- suggestions ---
	{
		when: func(r *AnalysisResult) bool {
			return r.Content.Readability.WordCount > 0 && r.Content.Readability.FleschScore < 60
		},
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecSuggestion, Category: "readability", Impact: ImpactMedium,
				Title:          "Readability below target",
				Description:    fmt.Sprintf("Flesch score of %.0f reads as %s for a general audience.", r.Content.Readability.FleschScore, r.Content.Readability.Level),
				SpecificAction: "Shorten sentences and swap complex words for plain ones",
			}
		},
	},
	{
		when: func(r *AnalysisResult) bool { return !r.AIOptimization.FeaturedSnippetReady },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecSuggestion, Category: "aiOptimization", Impact: ImpactLow,
				Title:          "Not positioned for AI answers",
				Description:    "The page lacks the FAQ or step-list structure that AI search engines quote.",
				SpecificAction: "Add an FAQ section or a numbered how-to list",
			}
		},
	},
	{
		when: func(r *AnalysisResult) bool { return !r.AIOptimization.KeyPointsUpfront },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecSuggestion, Category: "aiOptimization", Impact: ImpactLow,
				Title:          "Key points buried",
				Description:    "The opening paragraph does not front-load the answer.",
				SpecificAction: "Summarize the main takeaway in the first paragraph",
				Position:       "first paragraph",
			}
		},
	},
	{
		when: func(r *AnalysisResult) bool { return r.Content.Comprehensiveness.WordCount < 1000 },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecSuggestion, Category: "content", Impact: ImpactLow,
				Title:          "Content is thin",
				Description:    fmt.Sprintf("%d words; competitive pages on most topics run well past 1000.", r.Content.Comprehensiveness.WordCount),
				SpecificAction: "Expand coverage with examples, data and answers to follow-up questions",
			}
		},
	},
	{
		when: func(r *AnalysisResult) bool { return !r.SocialPreview.Complete },
		build: func(r *AnalysisResult) Recommendation {
			return Recommendation{
				Type: RecSuggestion, Category: "meta", Impact: ImpactLow,
				Title:            "Incomplete social preview",
				Description:      "Open Graph title, description or image is missing; shares will render poorly.",
				SpecificAction:   "Add og:title, og:description and og:image tags",
				WhereToImplement: "document <head>",
			}
		},
	},
}

// generateRecommendations walks the fixed rule table, then appends at most
// one recommendation per flagged paragraph, and truncates to the cap.
func generateRecommendations(r *AnalysisResult) []Recommendation {
	recs := make([]Recommendation, 0, maxRecommendations)

	for _, rule := range recommendationRules {
		if rule.when(r) {
			recs = append(recs, rule.build(r))
		}
	}

	recs = append(recs, paragraphRecommendations(r)...)

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// paragraphRecommendations emits one recommendation per paragraph flagged
// for an unlinked statistic or an unsourced claim. A paragraph flagged by
// both scans contributes only once.
func paragraphRecommendations(r *AnalysisResult) []Recommendation {
	seen := make(map[string]bool)
	var recs []Recommendation

	for _, snippet := range r.Links.MissingCitations {
		if seen[snippet] {
			continue
		}
		seen[snippet] = true
		recs = append(recs, Recommendation{
			Type: RecSuggestion, Category: "citations", Impact: ImpactLow,
			Title:          "Statistic without a source",
			Description:    "A paragraph quotes a figure without linking where it came from.",
			SpecificAction: "Link the original source of the statistic",
			ExampleText:    snippet,
			Position:       "paragraph",
		})
	}

	for _, snippet := range r.Content.Citations.ClaimsWithoutCitation {
		if seen[snippet] {
			continue
		}
		seen[snippet] = true
		recs = append(recs, Recommendation{
			Type: RecSuggestion, Category: "citations", Impact: ImpactLow,
			Title:          "Claim without a citation",
			Description:    "A paragraph references research without citing it.",
			SpecificAction: "Cite the study or report behind the claim",
			ExampleText:    snippet,
			Position:       "paragraph",
		})
	}

	return recs
}
