package numbering

import (
	"context"

	"gorm.io/gorm"
)

// GormCounterStore keeps counters in the request_counters table.
type GormCounterStore struct {
	db *gorm.DB
}

func NewGormCounterStore(db *gorm.DB) *GormCounterStore {
	return &GormCounterStore{db: db}
}

// Increment upserts the partition row; the row lock serializes concurrent allocators until commit.
func (s *GormCounterStore) Increment(ctx context.Context, tx *gorm.DB, prefix string, year int) (int, error) {
	if tx == nil {
		tx = s.db
	}
	var seq int
	err := tx.WithContext(ctx).Raw(`
		INSERT INTO request_counters (prefix, year, last_seq, updated_at)
		VALUES (?, ?, 1, NOW())
		ON CONFLICT (prefix, year)
		DO UPDATE SET last_seq = request_counters.last_seq + 1, updated_at = NOW()
		RETURNING last_seq`, prefix, year).Scan(&seq).Error
	return seq, err
}

func (s *GormCounterStore) Advance(ctx context.Context, prefix string, year, seq int) error {
	return s.db.WithContext(ctx).Exec(`
		INSERT INTO request_counters (prefix, year, last_seq, updated_at)
		VALUES (?, ?, ?, NOW())
		ON CONFLICT (prefix, year)
		DO UPDATE SET last_seq = GREATEST(request_counters.last_seq, EXCLUDED.last_seq), updated_at = NOW()`,
		prefix, year, seq).Error
}
