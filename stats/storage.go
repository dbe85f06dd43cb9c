package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const (
	statsFileName = "stats.json"
	flushInterval = 5 * time.Minute
	writeThrottle = time.Minute
)

// MonthlyStats holds the engine's operational counters for one month.
type MonthlyStats struct {
	Analyses    int       `json:"analyses"`
	CacheHits   int       `json:"cache_hits"`
	CacheMisses int       `json:"cache_misses"`
	Errors      int       `json:"errors"`
	LastUpdated time.Time `json:"last_updated"`
}

// Storage persists monthly counters as a single JSON file. Writes are
// throttled: increments mark the state dirty and a background goroutine
// flushes on request or on a timer.
type Storage struct {
	mutex     sync.RWMutex
	months    map[string]*MonthlyStats // key: "YYYY-MM"
	filePath  string
	lastWrite time.Time
	flush     chan struct{}
	done      chan struct{}
}

func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{
		months:   make(map[string]*MonthlyStats),
		filePath: filepath.Join(dataDir, statsFileName),
		flush:    make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	go s.flushLoop()

	return s, nil
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	return json.Unmarshal(data, &s.months)
}

// save snapshots the counters under the read lock, then writes through a
// temp file and rename so a crash never leaves a truncated stats file.
func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.months)
	s.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

func (s *Storage) flushLoop() {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.flush:
			s.save()
		case <-ticker.C:
			s.save()
		case <-s.done:
			return
		}
	}
}

// requestWrite schedules a flush without blocking; a pending flush
// absorbs further requests.
func (s *Storage) requestWrite() {
	select {
	case s.flush <- struct{}{}:
	default:
	}
}

// IncrementStats adds the given deltas to the current month's counters.
func (s *Storage) IncrementStats(analyses, cacheHits, cacheMisses, errors int) {
	now := time.Now()
	key := monthKey(now)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	m := s.months[key]
	if m == nil {
		m = &MonthlyStats{}
		s.months[key] = m
	}

	m.Analyses += analyses
	m.CacheHits += cacheHits
	m.CacheMisses += cacheMisses
	m.Errors += errors
	m.LastUpdated = now

	if now.Sub(s.lastWrite) > writeThrottle {
		s.requestWrite()
		s.lastWrite = now
	}
}

// GetCurrentStats returns a copy of the current month's counters.
func (s *Storage) GetCurrentStats() MonthlyStats {
	key := monthKey(time.Now())

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m := s.months[key]; m != nil {
		return *m
	}
	return MonthlyStats{}
}

// GetMonthlyStats returns the counters for a "YYYY-MM" key.
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m := s.months[yearMonth]; m != nil {
		return *m, true
	}
	return MonthlyStats{}, false
}

// GetAllMonths lists every month with counters, newest first.
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.months))
	for key := range s.months {
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// Cleanup drops every month except the current and previous one.
func (s *Storage) Cleanup() {
	now := time.Now()
	keep := map[string]bool{
		monthKey(now):                   true,
		monthKey(now.AddDate(0, -1, 0)): true,
	}

	s.mutex.Lock()
	for key := range s.months {
		if !keep[key] {
			delete(s.months, key)
		}
	}
	s.mutex.Unlock()

	s.requestWrite()
	log.Printf("Retained statistics for %d month(s)", len(keep))
}

// Shutdown stops the flush loop and persists a final snapshot.
func (s *Storage) Shutdown() error {
	close(s.done)
	return s.save()
}
