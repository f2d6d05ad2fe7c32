package numbering

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"logistics-requests/database"
	"logistics-requests/errs"
	"logistics-requests/logger"
	"logistics-requests/models/shipment"

	"gorm.io/gorm"
)

const (
	PrefixAstana    = "AST"
	PrefixIntercity = "INT"

	// MaxAttempts bounds reallocation after unique-constraint conflicts.
	MaxAttempts = 5
)

var (
	ErrNumberExhausted = errors.New("could not allocate a unique request number")
	ErrMalformedNumber = errors.New("malformed request number")
)

// CounterStore hands out per-partition sequence numbers.
// Increment must be atomic with respect to concurrent callers.
type CounterStore interface {
	// Increment returns the next sequence for (prefix, year) inside tx.
	Increment(ctx context.Context, tx *gorm.DB, prefix string, year int) (int, error)
	// Advance moves the counter to at least seq, committed independently of any transaction.
	Advance(ctx context.Context, prefix string, year, seq int) error
}

// Allocator issues {PREFIX}-{YEAR}-{SEQ} request numbers.
type Allocator struct {
	counters    CounterStore
	tx          database.Transactor
	maxAttempts int
}

func NewAllocator(db *gorm.DB) *Allocator {
	return NewAllocatorWith(NewGormCounterStore(db), database.NewTransactor(db))
}

func NewAllocatorWith(counters CounterStore, tx database.Transactor) *Allocator {
	return &Allocator{counters: counters, tx: tx, maxAttempts: MaxAttempts}
}

// PrefixFor maps a category onto its number prefix.
func PrefixFor(category shipment.Category) (string, error) {
	switch category {
	case shipment.CategoryAstana:
		return PrefixAstana, nil
	case shipment.CategoryIntercity:
		return PrefixIntercity, nil
	default:
		return "", errs.Validation("unknown category %q", string(category))
	}
}

// Format renders a request number; the sequence is padded to three digits and widens past 999.
func Format(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%04d-%03d", prefix, year, seq)
}

// Parse splits a request number into its parts.
func Parse(number string) (prefix string, year, seq int, err error) {
	parts := strings.Split(strings.TrimSpace(number), "-")
	if len(parts) != 3 {
		return "", 0, 0, ErrMalformedNumber
	}
	prefix = strings.ToUpper(parts[0])
	if prefix != PrefixAstana && prefix != PrefixIntercity {
		return "", 0, 0, ErrMalformedNumber
	}
	if len(parts[1]) != 4 || len(parts[2]) < 3 {
		return "", 0, 0, ErrMalformedNumber
	}
	if year, err = strconv.Atoi(parts[1]); err != nil {
		return "", 0, 0, ErrMalformedNumber
	}
	if seq, err = strconv.Atoi(parts[2]); err != nil || seq < 1 {
		return "", 0, 0, ErrMalformedNumber
	}
	return prefix, year, seq, nil
}

// Next allocates the next number for category in the year of at.
func (a *Allocator) Next(ctx context.Context, tx *gorm.DB, category shipment.Category, at time.Time) (string, error) {
	prefix, err := PrefixFor(category)
	if err != nil {
		return "", err
	}
	seq, err := a.counters.Increment(ctx, tx, prefix, at.Year())
	if err != nil {
		return "", fmt.Errorf("increment counter %s-%d: %w", prefix, at.Year(), err)
	}
	return Format(prefix, at.Year(), seq), nil
}

// CreateWithNumber allocates a number and runs insert with it in one transaction.
// A unique-constraint conflict advances the counter past the clashing number and retries.
func (a *Allocator) CreateWithNumber(ctx context.Context, category shipment.Category, at time.Time, insert func(tx *gorm.DB, number string) error) (string, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		var number string
		err := a.tx.Transaction(ctx, func(tx *gorm.DB) error {
			n, err := a.Next(ctx, tx, category, at)
			if err != nil {
				return err
			}
			number = n
			return insert(tx, n)
		})
		if err == nil {
			return number, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || number == "" {
			return "", err
		}

		logger.Warning(fmt.Sprintf("Request number %s already taken (attempt %d/%d), reallocating", number, attempt, a.maxAttempts))
		prefix, year, seq, perr := Parse(number)
		if perr != nil {
			return "", perr
		}
		if err := a.counters.Advance(ctx, prefix, year, seq); err != nil {
			return "", fmt.Errorf("advance counter %s-%d: %w", prefix, year, err)
		}
	}
	return "", ErrNumberExhausted
}
