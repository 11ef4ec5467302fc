package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cadastro-pessoas/pkg/core/repository/dao"
)

// GormRepository implements dao.Repository for any GORM model whose primary key is "id".
type GormRepository[M any] struct {
	db *gorm.DB
}

var _ dao.Repository[struct{}] = (*GormRepository[struct{}])(nil)

func NewGormRepository[M any](db *gorm.DB) *GormRepository[M] {
	return &GormRepository[M]{db: db}
}

// Transaction runs fn in a transaction bound to ctx. Errors returned by fn are
// passed back untouched so callers keep their own error types.
func (r *GormRepository[M]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// List returns every row in primary key order.
func (r *GormRepository[M]) List(tx *gorm.DB) ([]M, error) {
	rows := make([]M, 0)
	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: list query failed", wrapGormError(err))
	}
	return rows, nil
}

func (r *GormRepository[M]) FindByID(tx *gorm.DB, id int64) (*M, error) {
	var row M
	if err := tx.First(&row, id).Error; err != nil {
		return nil, wrapGormError(err)
	}
	return &row, nil
}

func (r *GormRepository[M]) Create(tx *gorm.DB, row *M) error {
	if err := tx.Create(row).Error; err != nil {
		return wrapGormError(err)
	}
	return nil
}

// Save writes every column of row, including nil ones.
func (r *GormRepository[M]) Save(tx *gorm.DB, row *M) error {
	if err := tx.Omit(clause.Associations).Save(row).Error; err != nil {
		return wrapGormError(err)
	}
	return nil
}

func (r *GormRepository[M]) Delete(tx *gorm.DB, row *M) error {
	result := tx.Delete(row)
	if result.Error != nil {
		return wrapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return dao.ErrNotFound
	}
	return nil
}
