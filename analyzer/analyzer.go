package analyzer

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagegrade/backend/stats"
)

// Cache entry with expiration
type cacheEntry struct {
	result    *AnalysisResult
	timestamp time.Time
}

// CacheStats provides statistics about the analyzer's cache
type CacheStats struct {
	Entries     int           `json:"entries"`
	CacheHits   int           `json:"cacheHits"`
	CacheMisses int           `json:"cacheMisses"`
	CacheTTL    time.Duration `json:"cacheTTL"`
}

// Analyzer grades a single HTML document. A run is a pure computation
// over the parsed document; the only shared state is the result cache.
type Analyzer struct {
	phrases         PhraseExtractor
	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	stats           *stats.Storage
}

// New creates a new Analyzer instance
func New(dataDir string) (*Analyzer, error) {
	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	analyzer := &Analyzer{
		phrases:         NewPhraseExtractor(),
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    500,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		stats:           statsStorage,
	}

	go analyzer.periodicCleanup()

	return analyzer, nil
}

// SetPhraseExtractor swaps the noun-phrase oracle, e.g. for tests or a
// smarter NLP backend.
func (a *Analyzer) SetPhraseExtractor(pe PhraseExtractor) {
	a.phrases = pe
}

// periodicCleanup removes expired cache entries periodically
func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		a.cleanup()
	}
}

// cleanup removes expired entries and enforces the cache size limit
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	if len(a.cache) > a.maxCacheSize {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(a.cache))

		for key, entry := range a.cache {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})

		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}

	a.lastCleanup = now
}

// SetCacheTTL sets the cache TTL
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// ClearCache clears the result cache
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// cacheKey derives a unique key from every analysis-relevant input.
func cacheKey(input AnalysisInput) string {
	hash := md5.Sum([]byte(input.Content + "\x00" + input.URL + "\x00" + input.TargetKeyword))
	return hex.EncodeToString(hash[:])
}

// GetCacheStats returns statistics about the cache
func (a *Analyzer) GetCacheStats() CacheStats {
	current := a.stats.GetCurrentStats()

	a.cacheMutex.RLock()
	entries := len(a.cache)
	ttl := a.cacheTTL
	a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:     entries,
		CacheHits:   current.CacheHits,
		CacheMisses: current.CacheMisses,
		CacheTTL:    ttl,
	}
}

// IsCached checks whether an input has an unexpired cached result
func (a *Analyzer) IsCached(input AnalysisInput) bool {
	key := cacheKey(input)
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[key]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// Analyze grades the supplied content, serving cached results when the
// exact same input was analyzed recently.
func (a *Analyzer) Analyze(input AnalysisInput) (*AnalysisResult, error) {
	if time.Since(a.lastCleanup) > a.cleanupInterval {
		go a.cleanup()
	}

	key := cacheKey(input)
	a.cacheMutex.RLock()
	if entry, found := a.cache[key]; found && time.Since(entry.timestamp) < a.cacheTTL {
		a.stats.IncrementStats(0, 1, 0, 0)
		a.cacheMutex.RUnlock()
		return entry.result, nil
	}
	a.cacheMutex.RUnlock()

	a.stats.IncrementStats(0, 0, 1, 0)

	result, err := a.run(input)
	if err != nil {
		a.stats.IncrementStats(0, 0, 0, 1)
		return nil, err
	}
	a.stats.IncrementStats(1, 0, 0, 0)

	a.cacheMutex.Lock()
	a.cache[key] = cacheEntry{result: result, timestamp: time.Now()}
	a.cacheMutex.Unlock()

	return result, nil
}

// run performs one full analysis pass. The document is parsed once and
// text statistics are computed once; extractors that share no ordering
// dependency run concurrently against the immutable document.
func (a *Analyzer) run(input AnalysisInput) (*AnalysisResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	bodyText := strings.TrimSpace(doc.Find("body").Text())
	textStats := ComputeTextStats(bodyText)

	result := &AnalysisResult{}

	// Keyword analysis runs first: the primary keyword feeds the meta
	// analyzer, scoring and recommendations.
	result.Keywords = analyzeKeywords(doc, bodyText, textStats, a.phrases, input.TargetKeyword, input.URL)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		result.Links = analyzeLinks(doc, input.URL)
	}()
	go func() {
		defer wg.Done()
		result.Media = analyzeMedia(doc)
	}()
	go func() {
		defer wg.Done()
		result.Technical = analyzeTechnical(doc, bodyText)
	}()
	go func() {
		defer wg.Done()
		result.AIOptimization = analyzeAIOptimization(doc, textStats)
	}()
	go func() {
		defer wg.Done()
		result.Content = analyzeContent(doc, bodyText, textStats)
	}()
	result.Meta = analyzeMeta(doc, result.Keywords.PrimaryKeyword, input.URL)
	wg.Wait()

	// Auxiliary analyzers build on the extractor outputs.
	result.Title = analyzeTitle(doc, result.Keywords.PrimaryKeyword)
	result.SocialPreview = analyzeSocialPreview(doc, result.Meta)
	result.SERP = compareWithCompetitors(result.Keywords.PrimaryKeyword, ContentMetrics{
		WordCount:        textStats.WordCount,
		ImageCount:       result.Media.Images.Count,
		HeadingCount:     len(result.Content.Structure.HeadingLevels),
		ReadabilityScore: result.Content.Readability.FleschScore,
		KeywordDensity:   result.Keywords.Density,
	})
	result.Checklist = buildChecklist(result)

	result.Scores = calculateScores(result)
	result.Recommendations = generateRecommendations(result)
	result.RealTimeValidation = RealTimeValidation{LastAnalyzed: time.Now().UTC()}

	return result, nil
}

// GetStats returns the statistics storage instance
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown flushes statistics and releases the cache
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	a.cacheMutex.Lock()
	a.cache = nil
	a.cacheMutex.Unlock()

	return nil
}
