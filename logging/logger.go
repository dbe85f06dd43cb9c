package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// ENV_DEV_MODE gates the detailed statistics view.
	ENV_DEV_MODE = "DEV_MODE"

	statsFile      = "statistics.json"
	maxKeywordLen  = 80
	visitorWindow  = 24 * time.Hour
	popularListLen = 5
)

// Statistics aggregates request-level telemetry for the service: who is
// calling, what keywords they analyze, and how long analyses take.
type Statistics struct {
	UniqueVisitors   map[string]time.Time `json:"uniqueVisitors"`
	AnalysisRequests int                  `json:"analysisRequests"`
	ErrorCount       int                  `json:"errorCount"`
	PopularKeywords  map[string]int       `json:"popularKeywords"`
	AverageLoadTime  float64              `json:"averageLoadTime"`
	TotalLoadTime    float64              `json:"-"`
	RequestCount     int                  `json:"-"`
	LastPersisted    time.Time            `json:"lastPersisted"`
	mutex            sync.RWMutex
}

var (
	stats *Statistics
	once  sync.Once
)

// Initialize creates the singleton, loading any persisted state.
func Initialize() *Statistics {
	once.Do(func() {
		stats = &Statistics{
			UniqueVisitors:  make(map[string]time.Time),
			PopularKeywords: make(map[string]int),
			LastPersisted:   time.Now(),
		}
		if err := stats.Load(); err != nil {
			fmt.Printf("Could not load existing statistics: %v\n", err)
		}
	})
	return stats
}

// TrackVisitor records the caller's IP with the current timestamp.
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UniqueVisitors[ip] = time.Now()
}

// cleanKeyword normalizes a keyword before counting it.
func cleanKeyword(keyword string) string {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if len(keyword) > maxKeywordLen {
		keyword = keyword[:maxKeywordLen]
	}
	return keyword
}

// TrackAnalysis records one analysis request, its keyword and duration.
func (s *Statistics) TrackAnalysis(keyword string, loadTime float64, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.AnalysisRequests++
	if cleaned := cleanKeyword(keyword); cleaned != "" {
		s.PopularKeywords[cleaned]++
	}
	if hasError {
		s.ErrorCount++
	}

	s.TotalLoadTime += loadTime
	s.RequestCount++
	s.AverageLoadTime = s.TotalLoadTime / float64(s.RequestCount)
}

// visitorsInWindow counts IPs seen inside the visitor window. Callers
// must hold the lock.
func (s *Statistics) visitorsInWindow() int {
	cutoff := time.Now().Add(-visitorWindow)
	count := 0
	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}
	return count
}

// errorRate computes the error percentage. Callers must hold the lock.
func (s *Statistics) errorRate() float64 {
	if s.AnalysisRequests == 0 {
		return 0
	}
	return float64(s.ErrorCount) / float64(s.AnalysisRequests) * 100
}

// topKeywords returns the n most analyzed keywords, most frequent first.
// Callers must hold the lock.
func (s *Statistics) topKeywords(n int) map[string]int {
	type entry struct {
		keyword string
		count   int
	}
	entries := make([]entry, 0, len(s.PopularKeywords))
	for k, c := range s.PopularKeywords {
		entries = append(entries, entry{k, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].keyword < entries[j].keyword
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	result := make(map[string]int, len(entries))
	for _, e := range entries {
		result[e.keyword] = e.count
	}
	return result
}

// GetUniqueVisitorsCount returns the visitors seen in the last 24 hours.
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.visitorsInWindow()
}

// GetPopularKeywords returns up to n of the most analyzed keywords.
func (s *Statistics) GetPopularKeywords(n int) map[string]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.topKeywords(n)
}

// GetErrorRate returns the error rate as a percentage.
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.errorRate()
}

// GetStatistics returns the current statistics. Keyword detail is only
// included when DEV_MODE=true.
func (s *Statistics) GetStatistics() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := map[string]interface{}{
		"uniqueVisitors24h": s.visitorsInWindow(),
		"totalRequests":     s.AnalysisRequests,
		"errorRate":         s.errorRate(),
		"averageLoadTime":   s.AverageLoadTime,
	}
	if os.Getenv(ENV_DEV_MODE) == "true" {
		result["popularKeywords"] = s.topKeywords(popularListLen)
	}
	return result
}

// Save persists the statistics to disk.
func (s *Statistics) Save() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.LastPersisted = time.Now()

	file, err := os.Create(statsFile)
	if err != nil {
		return fmt.Errorf("could not create statistics file: %v", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("could not encode statistics: %v", err)
	}
	return nil
}

// Load restores persisted statistics. A missing file is not an error.
func (s *Statistics) Load() error {
	file, err := os.Open(statsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not open statistics file: %v", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(s); err != nil {
		return fmt.Errorf("could not decode statistics: %v", err)
	}
	return nil
}
