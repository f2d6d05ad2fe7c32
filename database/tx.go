package database

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs fn inside a database transaction.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type GormTransactor struct {
	DB *gorm.DB
}

func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{DB: db}
}

func (t *GormTransactor) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.DB.WithContext(ctx).Transaction(fn)
}
