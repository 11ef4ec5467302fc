package crud

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"gorm.io/gorm"

	apierrors "cadastro-pessoas/pkg/common/errors"
	"cadastro-pessoas/pkg/common/validation"
)

// Create 校验 -> PreCreate -> 写入，返回 201
func (rt *Router[M, C, U, R]) Create(ctx context.Context, c *app.RequestContext) {
	var payload C
	if err := validation.BindAndValidate(c, &payload); err != nil {
		abort(c, err)
		return
	}

	var row M
	err := rt.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := rt.hooks.PreCreate(ctx, &payload, tx); err != nil {
			return err
		}
		row = rt.cfg.New(&payload)
		return rt.repo.Create(tx, &row)
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(consts.StatusCreated, rt.cfg.Read(&row))
}

// List returns every row ordered by id. No pagination.
func (rt *Router[M, C, U, R]) List(ctx context.Context, c *app.RequestContext) {
	rows, err := rt.repo.List(rt.db.WithContext(ctx))
	if err != nil {
		abort(c, err)
		return
	}

	out := make([]R, 0, len(rows))
	for i := range rows {
		out = append(out, rt.cfg.Read(&rows[i]))
	}
	c.JSON(consts.StatusOK, out)
}

func (rt *Router[M, C, U, R]) Get(ctx context.Context, c *app.RequestContext) {
	id, err := ParseID(c)
	if err != nil {
		abort(c, err)
		return
	}

	row, err := rt.repo.FindByID(rt.db.WithContext(ctx), id)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(consts.StatusOK, rt.cfg.Read(row))
}

// Update applies only the fields present in the body. PreUpdate sees the row
// as stored, before any field is copied.
func (rt *Router[M, C, U, R]) Update(ctx context.Context, c *app.RequestContext) {
	id, err := ParseID(c)
	if err != nil {
		abort(c, err)
		return
	}

	var payload U
	if err := validation.BindAndValidate(c, &payload); err != nil {
		abort(c, err)
		return
	}

	var row *M
	err = rt.repo.Transaction(ctx, func(tx *gorm.DB) error {
		existing, err := rt.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if err := rt.hooks.PreUpdate(ctx, &payload, tx, existing); err != nil {
			return err
		}
		rt.cfg.Apply(existing, &payload)
		if err := rt.repo.Save(tx, existing); err != nil {
			return err
		}
		row = existing
		return nil
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(consts.StatusOK, rt.cfg.Read(row))
}

// Delete 返回 204，不存在时 404
func (rt *Router[M, C, U, R]) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := ParseID(c)
	if err != nil {
		abort(c, err)
		return
	}

	err = rt.repo.Transaction(ctx, func(tx *gorm.DB) error {
		existing, err := rt.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if dh, ok := rt.hooks.(DeleteHook[M]); ok {
			if err := dh.PreDelete(ctx, tx, existing); err != nil {
				return err
			}
		}
		return rt.repo.Delete(tx, existing)
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.SetStatusCode(consts.StatusNoContent)
}

// ParseID reads the ":id" path parameter.
func ParseID(c *app.RequestContext) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apierrors.NewValidation("invalid id", apierrors.FieldError{
			Field: "id",
			Error: "must be an integer",
		})
	}
	return id, nil
}

// abort hands err to the error middleware, which renders the response.
func abort(c *app.RequestContext, err error) {
	_ = c.Error(err)
	c.Abort()
}
