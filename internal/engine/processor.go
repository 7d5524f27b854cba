// Package engine orchestrates batch pollution-index calculation over a
// decoded table: per-row identity and concentration extraction, calculator
// fan-out, and success/failure accounting.
//
// The engine holds no shared mutable state across invocations. Each Run call
// accumulates its own result structure, so concurrent batches are safe with
// no locking as long as the standards registry is treated as read-only.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/aquametrics/aquaindex/internal/indices"
	"github.com/aquametrics/aquaindex/internal/ingest"
	"github.com/aquametrics/aquaindex/internal/standards"
)

// Status is the lifecycle state of a batch run.
type Status string

// Batch lifecycle states.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

// DefaultWorkers is the default bound on concurrent row calculations.
const DefaultWorkers = 4

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Configuration errors. These fail the whole batch immediately, since they
// indicate a caller-setup mistake rather than bad row data.
var (
	ErrEmptyRegistry      = constError("standards registry has no parameters")
	ErrNoIndicesRequested = constError("no index calculation requested")
	ErrNilTable           = constError("table cannot be nil")
)

// Options controls one batch run.
type Options struct {
	// CalculateWQI / CalculateHPI / CalculateMI let a caller who has already
	// run capability detection skip indices known to be infeasible. The
	// supplementary CDEG/HEI/PIG indices ride the CalculateHPI flag.
	CalculateWQI bool
	CalculateHPI bool
	CalculateMI  bool

	// Unit is the declared unit of metal concentration cells ("" means ppb).
	Unit string

	// Workers bounds concurrent row calculations; <=0 uses DefaultWorkers.
	Workers int

	// Standards overrides the default registry for this run. Entries
	// replace defaults wholesale, per symbol.
	Standards map[string]standards.ParameterStandard
}

// DefaultOptions enables every index with default concurrency.
func DefaultOptions() Options {
	return Options{
		CalculateWQI: true,
		CalculateHPI: true,
		CalculateMI:  true,
		Workers:      DefaultWorkers,
	}
}

// RowError records one failed row: its 1-based data row index, the station
// identifier when it could be resolved, and a human-readable message.
type RowError struct {
	Row       int    `json:"row"`
	StationID string `json:"station_id,omitempty"`
	Message   string `json:"message"`
}

// StationCalculation aggregates one row's identity with its index results.
// An absent index is a nil field, never a zero value.
type StationCalculation struct {
	Station ingest.Station `json:"station"`

	HPI  *indices.IndexResult `json:"hpi,omitempty"`
	MI   *indices.IndexResult `json:"mi,omitempty"`
	WQI  *indices.IndexResult `json:"wqi,omitempty"`
	CDEG *indices.IndexResult `json:"cdeg,omitempty"`
	HEI  *indices.IndexResult `json:"hei,omitempty"`
	PIG  *indices.IndexResult `json:"pig,omitempty"`

	// Warnings is the advisory validation side-channel for this station.
	Warnings []indices.Warning `json:"warnings,omitempty"`
}

// indexCount returns how many indices were actually computed.
func (c *StationCalculation) indexCount() int {
	n := 0
	for _, r := range []*indices.IndexResult{c.HPI, c.MI, c.WQI, c.CDEG, c.HEI, c.PIG} {
		if r != nil {
			n++
		}
	}
	return n
}

// BatchCalculationResult is the immutable outcome of one batch run.
// Invariants: TotalStations == ProcessedStations + FailedStations and
// len(Calculations) == ProcessedStations.
type BatchCalculationResult struct {
	ID     string `json:"id"`
	Status Status `json:"status"`

	TotalStations     int `json:"total_stations"`
	ProcessedStations int `json:"processed_stations"`
	FailedStations    int `json:"failed_stations"`

	Calculations []StationCalculation `json:"calculations"`
	Errors       []RowError           `json:"errors"`

	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// Processor runs batches. A zero-cost construction; safe for concurrent use.
type Processor struct {
	onProgress ProgressCallback
	logger     zerolog.Logger
}

// NewProcessor creates a batch processor.
func NewProcessor() *Processor {
	return &Processor{logger: log.With().Str("component", "engine").Logger()}
}

// WithProgressCallback sets an optional callback invoked after each row
// completes, for UI updates or logging.
func (p *Processor) WithProgressCallback(callback ProgressCallback) *Processor {
	p.onProgress = callback
	return p
}

// rowOutcome is the result of processing a single row.
type rowOutcome struct {
	calc *StationCalculation
	err  *RowError
}

// Run executes one batch over table and returns the full result
// synchronously. Row-level data errors are recorded and iteration
// continues; only configuration errors abort the call. Input order is
// preserved in Calculations.
func (p *Processor) Run(ctx context.Context, table *ingest.Table, opts Options) (*BatchCalculationResult, error) {
	reg, err := p.validate(table, opts)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	result := &BatchCalculationResult{
		ID:            ulid.Make().String(),
		Status:        StatusPending,
		TotalStations: len(table.Rows),
		StartedAt:     time.Now(),
	}

	p.logger.Info().
		Str("batch_id", result.ID).
		Int("rows", len(table.Rows)).
		Int("workers", workers).
		Msg("batch started")

	result.Status = StatusRunning
	progress := NewProgress(len(table.Rows))

	outcomes := make([]rowOutcome, len(table.Rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range table.Rows {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			outcomes[i] = p.processRow(i, table.Headers, table.Rows[i], reg, opts)
			progress.AddProcessed(1)
			if p.onProgress != nil {
				p.onProgress(progress)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, out := range outcomes {
		switch {
		case out.err != nil:
			result.Errors = append(result.Errors, *out.err)
			result.FailedStations++
		case out.calc != nil:
			result.Calculations = append(result.Calculations, *out.calc)
			result.ProcessedStations++
		}
	}

	result.Status = StatusCompleted
	result.CompletedAt = time.Now()

	p.logger.Info().
		Str("batch_id", result.ID).
		Int("processed", result.ProcessedStations).
		Int("failed", result.FailedStations).
		Dur("elapsed", result.CompletedAt.Sub(result.StartedAt)).
		Msg("batch completed")

	return result, nil
}

// validate checks the caller-supplied configuration and resolves the
// registry for this run.
func (p *Processor) validate(table *ingest.Table, opts Options) (*standards.Registry, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if !opts.CalculateWQI && !opts.CalculateHPI && !opts.CalculateMI {
		return nil, ErrNoIndicesRequested
	}
	if !indices.IsRecognizedUnit(opts.Unit) {
		return nil, fmt.Errorf("%w: %q", indices.ErrInvalidUnit, opts.Unit)
	}

	reg := standards.Default().WithOverrides(opts.Standards)
	if reg.Len() == 0 {
		return nil, ErrEmptyRegistry
	}
	return reg, nil
}

// processRow turns one raw row into a station calculation or a row error.
// At most one error is recorded per row and a failure never stops the batch.
func (p *Processor) processRow(
	idx int,
	headers []string,
	row map[string]string,
	reg *standards.Registry,
	opts Options,
) rowOutcome {
	rowNum := idx + 1

	station, err := ingest.ExtractStation(headers, row)
	if err != nil {
		return rowOutcome{err: &RowError{Row: rowNum, Message: err.Error()}}
	}

	conc, err := ingest.ExtractConcentrations(headers, row, reg, opts.Unit)
	if err != nil {
		// Unit errors are caught in validate; anything surfacing here is
		// still a per-row failure, not a batch abort.
		return rowOutcome{err: &RowError{Row: rowNum, StationID: station.ID, Message: err.Error()}}
	}
	if conc.Len() == 0 {
		return rowOutcome{err: &RowError{
			Row:       rowNum,
			StationID: station.ID,
			Message:   "no parseable numeric value for any recognized parameter",
		}}
	}

	calc := &StationCalculation{Station: station}

	if opts.CalculateHPI {
		calc.HPI = indices.CalculateHPI(conc, reg)
		calc.CDEG = indices.CalculateCDEG(conc, reg)
		calc.HEI = indices.CalculateHEI(conc, reg)
		calc.PIG = indices.CalculatePIG(calc.HPI, calc.HEI)
		calc.Warnings = append(calc.Warnings, indices.ValidateHPIInput(conc, reg)...)
	}
	if opts.CalculateMI {
		calc.MI = indices.CalculateMI(conc, reg)
		if !opts.CalculateHPI {
			calc.Warnings = append(calc.Warnings, indices.ValidateMIInput(conc, reg)...)
		}
	}
	if opts.CalculateWQI {
		calc.WQI = indices.CalculateWQI(conc, reg)
		calc.Warnings = append(calc.Warnings, indices.ValidateWQIInput(conc, reg)...)
	}

	if calc.indexCount() == 0 {
		return rowOutcome{err: &RowError{
			Row:       rowNum,
			StationID: station.ID,
			Message:   "no index could be computed from the available parameters",
		}}
	}

	for _, w := range calc.Warnings {
		p.logger.Warn().
			Int("row", rowNum).
			Str("station", station.ID).
			Str("symbol", w.Symbol).
			Msg(w.Message)
	}

	return rowOutcome{calc: calc}
}
