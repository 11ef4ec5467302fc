package crud

import (
	"context"

	"gorm.io/gorm"
)

// Hooks are per-resource checks run inside the write transaction, before the
// row is built (create) or changed (update). A non-nil error aborts the request
// and rolls the transaction back.
type Hooks[M, C, U any] interface {
	PreCreate(ctx context.Context, payload *C, tx *gorm.DB) error
	PreUpdate(ctx context.Context, payload *U, tx *gorm.DB, existing *M) error
}

// NopHooks accepts everything. Embed it to implement only one of the methods.
type NopHooks[M, C, U any] struct{}

func (NopHooks[M, C, U]) PreCreate(context.Context, *C, *gorm.DB) error {
	return nil
}

func (NopHooks[M, C, U]) PreUpdate(context.Context, *U, *gorm.DB, *M) error {
	return nil
}

// DeleteHook is optionally implemented by a Hooks value to run before a row is deleted.
type DeleteHook[M any] interface {
	PreDelete(ctx context.Context, tx *gorm.DB, existing *M) error
}
