package engine

import (
	"sync"
	"time"
)

// percentMultiplier converts a ratio to a percentage (0-100).
const percentMultiplier = 100

// ProgressCallback is invoked after each row completes. It receives the
// shared progress tracker; callbacks must not block.
type ProgressCallback func(progress *Progress)

// Progress tracks row completion for one batch run. Thread-safe.
type Progress struct {
	totalRows     int
	processedRows int
	startTime     time.Time

	mu sync.RWMutex
}

// NewProgress creates a tracker for a batch of totalRows rows.
func NewProgress(totalRows int) *Progress {
	return &Progress{totalRows: totalRows, startTime: time.Now()}
}

// AddProcessed increments the processed row count.
func (p *Progress) AddProcessed(rows int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processedRows += rows
}

// Processed returns the number of completed rows.
func (p *Progress) Processed() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.processedRows
}

// Total returns the batch row count.
func (p *Progress) Total() int {
	return p.totalRows
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.totalRows == 0 {
		return 0
	}
	return float64(p.processedRows) / float64(p.totalRows) * percentMultiplier
}

// IsComplete reports whether every row has been processed.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.processedRows >= p.totalRows
}

// ElapsedTime returns the time since the batch started.
func (p *Progress) ElapsedTime() time.Duration {
	return time.Since(p.startTime)
}

// RowsPerSecond returns the processing rate.
func (p *Progress) RowsPerSecond() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	elapsed := time.Since(p.startTime).Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(p.processedRows) / elapsed
}
