package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrForeignKey       = errors.New("referenced record does not exist")
	ErrDatabaseInternal = errors.New("database internal error")
)

// Repository is the storage contract shared by every CRUD resource.
//
// Methods taking a *gorm.DB run against that session, so callers can compose
// several calls (and validation queries) in one transaction.
type Repository[M any] interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	List(tx *gorm.DB) ([]M, error)
	FindByID(tx *gorm.DB, id int64) (*M, error)
	Create(tx *gorm.DB, row *M) error
	Save(tx *gorm.DB, row *M) error
	Delete(tx *gorm.DB, row *M) error
}
