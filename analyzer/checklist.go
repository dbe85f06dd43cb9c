package analyzer

// buildChecklist evaluates a fixed pass/fail table over the extractor
// outputs. Items are ordered by category for stable presentation.
func buildChecklist(r *AnalysisResult) ChecklistResult {
	items := []ChecklistItem{
		{Name: "Primary keyword in title", Category: "keywords", Passed: r.Keywords.InTitle},
		{Name: "Primary keyword in first paragraph", Category: "keywords", Passed: r.Keywords.InFirstParagraph},
		{Name: "Keyword density in natural range", Category: "keywords", Passed: r.Keywords.NaturalIntegration},
		{Name: "No keyword stuffing", Category: "keywords", Passed: !r.Keywords.StuffingAlert},
		{Name: "Title between 30 and 60 characters", Category: "meta", Passed: r.Meta.TitleLength >= 30 && r.Meta.TitleLength <= 60},
		{Name: "Meta description present", Category: "meta", Passed: r.Meta.HasDescription},
		{Name: "Canonical tag present", Category: "meta", Passed: r.Meta.HasCanonical},
		{Name: "Structured data present", Category: "meta", Passed: r.Meta.SchemaMarkup.Present},
		{Name: "Single H1 with H2 sections", Category: "structure", Passed: r.Meta.ProperHierarchy},
		{Name: "Heading levels in order", Category: "structure", Passed: r.Content.Structure.ValidHeadingOrder},
		{Name: "Introduction paragraph present", Category: "structure", Passed: r.Content.Structure.HasIntroduction},
		{Name: "Internal links present", Category: "links", Passed: r.Links.InternalLinks > 0},
		{Name: "Authority sources linked", Category: "links", Passed: r.Links.AuthorityLinks > 0},
		{Name: "All images have alt text", Category: "media", Passed: r.Media.Images.MissingAltText == 0},
		{Name: "Mobile viewport configured", Category: "technical", Passed: r.Technical.MobileResponsive},
		{Name: "Author attribution present", Category: "technical", Passed: r.Technical.EEAT.HasAuthorBio},
		{Name: "Featured snippet ready", Category: "ai", Passed: r.AIOptimization.FeaturedSnippetReady},
		{Name: "Content over 1000 words", Category: "content", Passed: r.Content.Comprehensiveness.WordCount >= 1000},
	}

	passed := 0
	for _, item := range items {
		if item.Passed {
			passed++
		}
	}

	return ChecklistResult{Items: items, Passed: passed, Total: len(items)}
}
