package analyzer

import "math"

// Category weights for the overall score.
const (
	weightSEO         = 0.25
	weightReadability = 0.20
	weightAuthority   = 0.20
	weightTechnical   = 0.20
	weightAI          = 0.15
)

// calculateScores reduces every extractor output into the nine sub-scores,
// five category roll-ups and the overall score. Each sub-score is an
// additive rule list whose caps sum to at most 100, so no clamping is
// needed to keep the [0,100] contract. Components are rounded before the
// weighted combination, and the overall is rounded again.
func calculateScores(r *AnalysisResult) ScoreBreakdown {
	sb := ScoreBreakdown{
		Keywords:    keywordScore(r.Keywords),
		Links:       linkScore(r.Links),
		Meta:        metaScore(r.Meta),
		Content:     contentScore(r.Content),
		Citations:   citationScore(r.Content.Citations, r.Links),
		Images:      imageScore(r.Media.Images),
		Technical:   technicalScore(r.Technical, r.Meta),
		EEAT:        eeatScore(r.Technical.EEAT),
		AIReadiness: aiReadinessScore(r.AIOptimization),
	}

	sb.SEO = roundMean(sb.Keywords, sb.Links, sb.Meta)
	sb.Readability = sb.Content
	sb.Authority = roundMean(sb.Citations, sb.EEAT)
	sb.TechnicalCategory = roundMean(sb.Technical, sb.Images)
	sb.AIOptimization = sb.AIReadiness

	overall := weightSEO*float64(sb.SEO) +
		weightReadability*float64(sb.Readability) +
		weightAuthority*float64(sb.Authority) +
		weightTechnical*float64(sb.TechnicalCategory) +
		weightAI*float64(sb.AIOptimization)
	sb.Overall = int(math.Round(overall))

	return sb
}

func roundMean(scores ...int) int {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

func keywordScore(ka KeywordAnalysis) int {
	score := 0
	if ka.PrimaryKeyword != "" {
		score += 20
	}
	if ka.InTitle {
		score += 25
	}
	if ka.InFirstParagraph {
		score += 15
	}
	if ka.InHeadings {
		score += 15
	}
	if ka.Density > naturalDensityLow && ka.Density < stuffingThreshold {
		score += 15
	}
	if !ka.StuffingAlert {
		score += 10
	}
	return score
}

func linkScore(la LinkAnalysis) int {
	score := 0
	if la.InternalLinks > 0 {
		score += 15
	}
	if la.ExternalLinks > 0 {
		score += 15
	}
	switch {
	case la.AuthorityLinks >= 2:
		score += 25
	case la.AuthorityLinks == 1:
		score += 15
	}
	if la.AnchorDiversity >= 50 {
		score += 20
	}
	if la.GenericAnchors == 0 {
		score += 15
	}
	if len(la.MissingCitations) == 0 {
		score += 10
	}
	return score
}

func metaScore(ma MetaAnalysis) int {
	score := 0
	if ma.HasTitle {
		score += 20
	}
	if ma.TitleLength >= 30 && ma.TitleLength <= 60 {
		score += 10
	}
	if ma.HasDescription {
		score += 20
	}
	if ma.DescriptionLength >= 120 && ma.DescriptionLength <= 160 {
		score += 10
	}
	if ma.KeywordInTitle {
		score += 10
	}
	if ma.HasCanonical {
		score += 10
	}
	if ma.SchemaMarkup.Present {
		score += 10
	}
	if ma.ProperHierarchy {
		score += 10
	}
	return score
}

func contentScore(ca ContentQualityAnalysis) int {
	score := 0
	switch {
	case ca.Readability.FleschScore >= 60:
		score += 20
	case ca.Readability.FleschScore >= 50:
		score += 10
	}
	switch {
	case ca.Readability.WordCount >= 1000:
		score += 15
	case ca.Readability.WordCount >= 600:
		score += 10
	}
	if ca.Structure.HasIntroduction {
		score += 15
	}
	if ca.Structure.HasConclusion {
		score += 10
	}
	switch {
	case ca.Scannability.Score >= 70:
		score += 20
	case ca.Scannability.Score >= 50:
		score += 10
	}
	if ca.Structure.ValidHeadingOrder {
		score += 10
	}
	if ca.Comprehensiveness.Level == "comprehensive" {
		score += 10
	}
	return score
}

func citationScore(cr CitationReport, la LinkAnalysis) int {
	score := 0
	switch {
	case cr.OutboundLinks >= 2:
		score += 30
	case cr.OutboundLinks == 1:
		score += 15
	}
	if la.AuthorityLinks >= 1 {
		score += 30
	}
	if penalty := 10 * len(cr.ClaimsWithoutCitation); penalty < 40 {
		score += 40 - penalty
	}
	return score
}

func imageScore(ir ImageReport) int {
	// A page without images has neither a media asset nor an alt-text
	// problem; it scores a flat neutral value.
	if ir.Count == 0 {
		return 40
	}

	score := 30
	switch {
	case ir.MissingAltText == 0:
		score += 40
	case ir.WithAlt > 0:
		score += 20
	}
	if ir.OptimizedFilenames*2 >= ir.Count {
		score += 15
	}
	if ir.OversizedFormats == 0 {
		score += 15
	}
	return score
}

func technicalScore(ta TechnicalAnalysis, ma MetaAnalysis) int {
	score := 0
	if ta.MobileResponsive {
		score += 40
	}
	switch ta.EstimatedLoadTime {
	case "fast":
		score += 30
	case "moderate":
		score += 15
	}
	if ma.HasCanonical {
		score += 15
	}
	if ma.SchemaMarkup.Present {
		score += 15
	}
	return score
}

func eeatScore(s EEATSignals) int {
	score := 0
	if s.HasAuthorBio {
		score += 30
	}
	switch {
	case s.AuthorityOutbound >= 2:
		score += 25
	case s.AuthorityOutbound == 1:
		score += 15
	}
	if s.HasDates {
		score += 15
	}
	if s.HasAboutOrContact {
		score += 15
	}
	if s.HasCredentials {
		score += 15
	}
	return score
}

func aiReadinessScore(ai AIOptimizationAnalysis) int {
	score := 0
	switch {
	case ai.DeclarativeRatio >= 0.5:
		score += 25
	case ai.DeclarativeRatio >= 0.3:
		score += 15
	}
	if ai.KeyPointsUpfront {
		score += 25
	}
	if ai.FeaturedSnippetReady {
		score += 25
	}
	if ai.HasFAQSection {
		score += 25
	}
	return score
}
