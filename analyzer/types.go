package analyzer

import "time"

// AnalysisInput is the single-use input to an analysis run.
type AnalysisInput struct {
	Content       string `json:"content"`
	URL           string `json:"url,omitempty"`
	TargetKeyword string `json:"targetKeyword,omitempty"`
}

// AnalysisResult aggregates every analyzer output for one document.
type AnalysisResult struct {
	Keywords           KeywordAnalysis        `json:"keywords"`
	Links              LinkAnalysis           `json:"links"`
	Meta               MetaAnalysis           `json:"meta"`
	Content            ContentQualityAnalysis `json:"content"`
	Media              MediaAnalysis          `json:"media"`
	Technical          TechnicalAnalysis      `json:"technical"`
	AIOptimization     AIOptimizationAnalysis `json:"aiOptimization"`
	Title              TitleAnalysis          `json:"title"`
	Checklist          ChecklistResult        `json:"checklist"`
	SocialPreview      SocialPreview          `json:"socialPreview"`
	SERP               SERPComparison         `json:"serpComparison"`
	Scores             ScoreBreakdown         `json:"scores"`
	Recommendations    []Recommendation       `json:"recommendations"`
	RealTimeValidation RealTimeValidation     `json:"realTimeValidation"`
}

// RealTimeValidation carries the only time-dependent field in a result.
type RealTimeValidation struct {
	LastAnalyzed time.Time `json:"lastAnalyzed"`
}

// KeywordAnalysis describes primary keyword usage across the document.
type KeywordAnalysis struct {
	PrimaryKeyword     string          `json:"primaryKeyword"`
	Occurrences        int             `json:"occurrences"`
	WordCount          int             `json:"wordCount"`
	Density            float64         `json:"density"`
	StuffingAlert      bool            `json:"stuffingAlert"`
	NaturalIntegration bool            `json:"naturalIntegration"`
	InTitle            bool            `json:"inTitle"`
	InFirstParagraph   bool            `json:"inFirstParagraph"`
	InHeadings         bool            `json:"inHeadings"`
	InMetaDescription  bool            `json:"inMetaDescription"`
	InURL              bool            `json:"inUrl"`
	SecondaryKeywords  []string        `json:"secondaryKeywords"`
	LSIKeywords        []string        `json:"lsiKeywords"`
	RelatedTerms       []string        `json:"relatedTerms"`
	Research           KeywordResearch `json:"research"`
	Recommendations    []string        `json:"recommendations"`
}

// KeywordResearch is a coarse volume/difficulty/intent classification.
type KeywordResearch struct {
	SearchVolume string `json:"searchVolume"` // high, medium, low
	Difficulty   string `json:"difficulty"`   // hard, medium, easy
	Intent       string `json:"intent"`       // informational, transactional, commercial, navigational
}

// LinkAnalysis describes the hyperlink and anchor-text profile.
type LinkAnalysis struct {
	InternalLinks    int            `json:"internalLinks"`
	ExternalLinks    int            `json:"externalLinks"`
	AuthorityLinks   int            `json:"authorityLinks"`
	ExternalDomains  []string       `json:"externalDomains"`
	TotalAnchors     int            `json:"totalAnchors"`
	DistinctAnchors  int            `json:"distinctAnchors"`
	AnchorDiversity  float64        `json:"anchorDiversity"`
	RelevantAnchors  int            `json:"relevantAnchors"`
	GenericAnchors   int            `json:"genericAnchors"`
	AnchorTypes      map[string]int `json:"anchorTypes"`
	MissingCitations []string       `json:"missingCitations"`
	Recommendations  []string       `json:"recommendations"`
}

// MetaAnalysis describes metadata and heading structure.
type MetaAnalysis struct {
	Title             string        `json:"title"`
	TitleLength       int           `json:"titleLength"`
	HasTitle          bool          `json:"hasTitle"`
	KeywordInTitle    bool          `json:"keywordInTitle"`
	KeywordPosition   string        `json:"keywordPosition"` // none, beginning, middle, end
	Description       string        `json:"description"`
	DescriptionLength int           `json:"descriptionLength"`
	HasDescription    bool          `json:"hasDescription"`
	KeywordInDesc     bool          `json:"keywordInDescription"`
	HasCanonical      bool          `json:"hasCanonical"`
	CanonicalURL      string        `json:"canonicalUrl,omitempty"`
	SchemaMarkup      SchemaMarkup  `json:"schemaMarkup"`
	Headings          HeadingCounts `json:"headings"`
	ProperHierarchy   bool          `json:"properHierarchy"`
	URL               URLAnalysis   `json:"url"`
	Recommendations   []string      `json:"recommendations"`
}

// SchemaMarkup reports JSON-LD structured data found in the document.
type SchemaMarkup struct {
	Present bool     `json:"present"`
	Types   []string `json:"types,omitempty"`
}

type HeadingCounts struct {
	H1 int `json:"h1"`
	H2 int `json:"h2"`
	H3 int `json:"h3"`
	H4 int `json:"h4"`
	H5 int `json:"h5"`
	H6 int `json:"h6"`
}

// URLAnalysis describes the target URL's slug quality.
type URLAnalysis struct {
	Slug            string `json:"slug"`
	Length          int    `json:"length"`
	HasStopWords    bool   `json:"hasStopWords"`
	ContainsKeyword bool   `json:"containsKeyword"`
	HasQueryParams  bool   `json:"hasQueryParams"`
	IsSEOFriendly   bool   `json:"isSeoFriendly"`
}

// ContentQualityAnalysis bundles readability and structural signals.
type ContentQualityAnalysis struct {
	Readability       ReadabilityReport `json:"readability"`
	Structure         ContentStructure  `json:"structure"`
	Scannability      Scannability      `json:"scannability"`
	Citations         CitationReport    `json:"citations"`
	Comprehensiveness Comprehensiveness `json:"comprehensiveness"`
	Recommendations   []string          `json:"recommendations"`
}

// ReadabilityReport carries the computed readability formulas.
type ReadabilityReport struct {
	WordCount         int     `json:"wordCount"`
	SentenceCount     int     `json:"sentenceCount"`
	SyllableCount     int     `json:"syllableCount"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	FleschScore       float64 `json:"fleschScore"`
	FleschKincaid     float64 `json:"fleschKincaidGrade"`
	SMOGIndex         float64 `json:"smogIndex"`
	DaleChall         float64 `json:"daleChallScore"`
	Level             string  `json:"level"`
}

type ContentStructure struct {
	ParagraphCount    int   `json:"paragraphCount"`
	HasIntroduction   bool  `json:"hasIntroduction"`
	HasConclusion     bool  `json:"hasConclusion"`
	ShortParagraphs   int   `json:"shortParagraphs"`
	LongParagraphs    int   `json:"longParagraphs"`
	WallsOfText       int   `json:"wallsOfText"`
	HeadingLevels     []int `json:"headingLevels"`
	ValidHeadingOrder bool  `json:"validHeadingOrder"`
}

type Scannability struct {
	Score       int `json:"score"`
	Lists       int `json:"lists"`
	Subheadings int `json:"subheadings"`
	BoldCount   int `json:"boldCount"`
	ItalicCount int `json:"italicCount"`
}

// CitationReport flags claim language lacking an outbound link.
type CitationReport struct {
	OutboundLinks         int      `json:"outboundLinks"`
	ClaimsWithoutCitation []string `json:"claimsWithoutCitation"`
}

type Comprehensiveness struct {
	WordCount      int    `json:"wordCount"`
	Level          string `json:"level"` // basic, moderate, comprehensive
	HasUniqueValue bool   `json:"hasUniqueValue"`
	IsEvergreen    bool   `json:"isEvergreen"`
}

// MediaAnalysis describes images and embedded media.
type MediaAnalysis struct {
	Images          ImageReport `json:"images"`
	VideoEmbeds     int         `json:"videoEmbeds"`
	Recommendations []string    `json:"recommendations"`
}

type ImageReport struct {
	Count              int     `json:"count"`
	WithAlt            int     `json:"withAlt"`
	MissingAltText     int     `json:"missingAltText"`
	AltCoverage        float64 `json:"altCoverage"`
	OptimizedFilenames int     `json:"optimizedFilenames"`
	OversizedFormats   int     `json:"oversizedFormats"`
}

// TechnicalAnalysis covers mobile, load-weight and E-E-A-T signals.
type TechnicalAnalysis struct {
	HasViewport       bool        `json:"hasViewport"`
	MobileResponsive  bool        `json:"mobileResponsive"`
	ImageCount        int         `json:"imageCount"`
	StylesheetCount   int         `json:"stylesheetCount"`
	ScriptCount       int         `json:"scriptCount"`
	EstimatedLoadTime string      `json:"estimatedLoadTime"` // fast, moderate, slow
	EEAT              EEATSignals `json:"eeat"`
	Recommendations   []string    `json:"recommendations"`
}

type EEATSignals struct {
	HasAuthorBio      bool `json:"hasAuthorBio"`
	HasDates          bool `json:"hasDates"`
	HasAboutOrContact bool `json:"hasAboutOrContact"`
	HasCredentials    bool `json:"hasCredentials"`
	AuthorityOutbound int  `json:"authorityOutboundLinks"`
}

// AIOptimizationAnalysis covers AI-search readiness signals.
type AIOptimizationAnalysis struct {
	DeclarativeSentences int      `json:"declarativeSentences"`
	DeclarativeRatio     float64  `json:"declarativeRatio"`
	KeyPointsUpfront     bool     `json:"keyPointsUpfront"`
	FeaturedSnippetReady bool     `json:"featuredSnippetReady"`
	HasFAQSection        bool     `json:"hasFaqSection"`
	Recommendations      []string `json:"recommendations"`
}

// TitleAnalysis is the auxiliary headline assessment.
type TitleAnalysis struct {
	Title           string   `json:"title"`
	Length          int      `json:"length"`
	HasTitle        bool     `json:"hasTitle"`
	ContainsKeyword bool     `json:"containsKeyword"`
	ContainsNumber  bool     `json:"containsNumber"`
	PowerWords      []string `json:"powerWords"`
	Score           int      `json:"score"`
}

// ChecklistResult is the pass/fail evaluation table.
type ChecklistResult struct {
	Items  []ChecklistItem `json:"items"`
	Passed int             `json:"passed"`
	Total  int             `json:"total"`
}

type ChecklistItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Passed   bool   `json:"passed"`
}

// SocialPreview synthesizes how the page renders when shared.
type SocialPreview struct {
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
	OGImage       string `json:"ogImage"`
	TwitterCard   string `json:"twitterCard"`
	PreviewTitle  string `json:"previewTitle"`
	PreviewDesc   string `json:"previewDescription"`
	Complete      bool   `json:"complete"`
}

// CompetitorRecord is one simulated SERP competitor. The values are a
// fixed fixture, not fetched from any live source.
type CompetitorRecord struct {
	Title           string `json:"title"`
	WordCount       int    `json:"wordCount"`
	ImageCount      int    `json:"imageCount"`
	HeadingCount    int    `json:"headingCount"`
	Backlinks       int    `json:"backlinks"`
	DomainAuthority int    `json:"domainAuthority"`
	ContentScore    int    `json:"contentScore"`
}

type CompetitorAverages struct {
	WordCount       float64 `json:"wordCount"`
	ImageCount      float64 `json:"imageCount"`
	HeadingCount    float64 `json:"headingCount"`
	DomainAuthority float64 `json:"domainAuthority"`
	ContentScore    float64 `json:"contentScore"`
}

// SERPComparison compares caller content against the simulated set.
type SERPComparison struct {
	Keyword             string             `json:"keyword"`
	Competitors         []CompetitorRecord `json:"competitors"`
	Averages            CompetitorAverages `json:"averages"`
	ComparativeScore    int                `json:"comparativeScore"`
	CompetitivePosition int                `json:"competitivePosition"` // 1 (best) to 10
	RankingPotential    string             `json:"rankingPotential"`    // high, medium, low
	Simulated           bool               `json:"simulated"`
}

// ScoreBreakdown holds sub-scores, category roll-ups and the overall score.
type ScoreBreakdown struct {
	Keywords    int `json:"keywords"`
	Links       int `json:"links"`
	Meta        int `json:"meta"`
	Content     int `json:"content"`
	Citations   int `json:"citations"`
	Images      int `json:"images"`
	Technical   int `json:"technical"`
	EEAT        int `json:"eeat"`
	AIReadiness int `json:"aiReadiness"`

	SEO               int `json:"seo"`
	Readability       int `json:"readability"`
	Authority         int `json:"authority"`
	TechnicalCategory int `json:"technicalCategory"`
	AIOptimization    int `json:"aiOptimization"`
	Overall           int `json:"overall"`
}

// Recommendation is one prioritized, actionable finding.
type Recommendation struct {
	Type             string `json:"type"` // critical, important, suggestion
	Category         string `json:"category"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Impact           string `json:"impact"` // high, medium, low
	SpecificAction   string `json:"specificAction,omitempty"`
	WhereToImplement string `json:"whereToImplement,omitempty"`
	ExampleText      string `json:"exampleText,omitempty"`
	TargetElement    string `json:"targetElement,omitempty"`
	Position         string `json:"position,omitempty"`
}

// Recommendation types.
const (
	RecCritical   = "critical"
	RecImportant  = "important"
	RecSuggestion = "suggestion"
)

// Impact levels.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)
