package analyzer

import "testing"

func TestCalculateScoresZeroValue(t *testing.T) {
	var r AnalysisResult
	sb := calculateScores(&r)

	if sb.Keywords != 10 {
		t.Errorf("Expected keyword score 10, got %d", sb.Keywords)
	}
	if sb.Links != 25 {
		t.Errorf("Expected link score 25, got %d", sb.Links)
	}
	if sb.Citations != 40 {
		t.Errorf("Expected citation score 40, got %d", sb.Citations)
	}
	if sb.Images != 40 {
		t.Errorf("Expected image score 40, got %d", sb.Images)
	}
	if sb.SEO != 12 {
		t.Errorf("Expected SEO category 12, got %d", sb.SEO)
	}
	if sb.Authority != 20 {
		t.Errorf("Expected authority category 20, got %d", sb.Authority)
	}
	if sb.TechnicalCategory != 20 {
		t.Errorf("Expected technical category 20, got %d", sb.TechnicalCategory)
	}
	if sb.Overall != 11 {
		t.Errorf("Expected overall 11, got %d", sb.Overall)
	}
}

func TestScoresWithinRange(t *testing.T) {
	r := AnalysisResult{
		Keywords: KeywordAnalysis{
			PrimaryKeyword: "content marketing", InTitle: true, InFirstParagraph: true,
			InHeadings: true, Density: 1.5,
		},
		Links: LinkAnalysis{
			InternalLinks: 3, ExternalLinks: 2, AuthorityLinks: 2, AnchorDiversity: 80,
		},
		Meta: MetaAnalysis{
			HasTitle: true, TitleLength: 45, HasDescription: true, DescriptionLength: 140,
			KeywordInTitle: true, HasCanonical: true,
			SchemaMarkup: SchemaMarkup{Present: true}, ProperHierarchy: true,
		},
		Content: ContentQualityAnalysis{
			Readability: ReadabilityReport{FleschScore: 70, WordCount: 2200},
			Structure:   ContentStructure{HasIntroduction: true, HasConclusion: true, ValidHeadingOrder: true},
			Scannability: Scannability{Score: 85},
			Citations:    CitationReport{OutboundLinks: 3},
			Comprehensiveness: Comprehensiveness{Level: "comprehensive"},
		},
		Media: MediaAnalysis{Images: ImageReport{Count: 4, WithAlt: 4, OptimizedFilenames: 4}},
		Technical: TechnicalAnalysis{
			MobileResponsive: true, EstimatedLoadTime: "fast",
			EEAT: EEATSignals{HasAuthorBio: true, AuthorityOutbound: 2, HasDates: true,
				HasAboutOrContact: true, HasCredentials: true},
		},
		AIOptimization: AIOptimizationAnalysis{
			DeclarativeRatio: 0.6, KeyPointsUpfront: true,
			FeaturedSnippetReady: true, HasFAQSection: true,
		},
	}

	sb := calculateScores(&r)

	all := []int{
		sb.Keywords, sb.Links, sb.Meta, sb.Content, sb.Citations, sb.Images,
		sb.Technical, sb.EEAT, sb.AIReadiness,
		sb.SEO, sb.Readability, sb.Authority, sb.TechnicalCategory, sb.AIOptimization,
		sb.Overall,
	}
	for i, s := range all {
		if s < 0 || s > 100 {
			t.Errorf("Score index %d out of range: %d", i, s)
		}
	}

	if sb.Keywords != 100 || sb.Meta != 100 || sb.Content != 100 ||
		sb.Citations != 100 || sb.Images != 100 || sb.Technical != 100 ||
		sb.EEAT != 100 || sb.AIReadiness != 100 {
		t.Errorf("Expected maxed sub-scores, got %+v", sb)
	}
	if sb.Overall != 100 {
		t.Errorf("Expected overall 100, got %d", sb.Overall)
	}
}

func TestRoundMean(t *testing.T) {
	if got := roundMean(10, 25, 0); got != 12 {
		t.Errorf("roundMean(10,25,0) = %d, expected 12", got)
	}
	if got := roundMean(40, 0); got != 20 {
		t.Errorf("roundMean(40,0) = %d, expected 20", got)
	}
	if got := roundMean(100); got != 100 {
		t.Errorf("roundMean(100) = %d, expected 100", got)
	}
}

func TestCitationPenaltyFloor(t *testing.T) {
	claims := make([]string, 6)
	score := citationScore(CitationReport{ClaimsWithoutCitation: claims}, LinkAnalysis{})
	if score != 0 {
		t.Errorf("Expected penalty floored at 0, got %d", score)
	}
}

func TestImageScoreNoImagesNeutral(t *testing.T) {
	if got := imageScore(ImageReport{}); got != 40 {
		t.Errorf("Expected neutral 40 with no images, got %d", got)
	}
	partial := imageScore(ImageReport{Count: 2, WithAlt: 1, MissingAltText: 1})
	if partial != 65 {
		t.Errorf("Expected 30+20+15 = 65, got %d", partial)
	}
}
