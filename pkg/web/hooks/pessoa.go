package hooks

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"

	apierrors "cadastro-pessoas/pkg/common/errors"
	core "cadastro-pessoas/pkg/core/model"
	"cadastro-pessoas/pkg/core/repository/dao"
	"cadastro-pessoas/pkg/web/crud"
	"cadastro-pessoas/pkg/web/model"
)

type PessoaHooks struct {
	Repo dao.PessoaRepository
}

var (
	_ crud.Hooks[core.Pessoa, model.PessoaCreate, model.PessoaUpdate] = (*PessoaHooks)(nil)
	_ crud.DeleteHook[core.Pessoa]                                    = (*PessoaHooks)(nil)
)

func NewPessoaHooks(repo dao.PessoaRepository) *PessoaHooks {
	return &PessoaHooks{Repo: repo}
}

// PreCreate 检查邮箱重复；未提供邮箱时不检查
func (h *PessoaHooks) PreCreate(_ context.Context, payload *model.PessoaCreate, tx *gorm.DB) error {
	if payload.Email == nil {
		return nil
	}

	exists, err := h.Repo.IsEmailExists(tx, *payload.Email, 0)
	if err != nil {
		return err
	}
	if exists {
		return apierrors.NewValidation("e-mail já cadastrado", apierrors.FieldError{
			Field: "email",
			Error: "already registered",
		})
	}
	return nil
}

// PreUpdate only checks when the email actually changes, and never against
// the person being updated.
func (h *PessoaHooks) PreUpdate(_ context.Context, payload *model.PessoaUpdate, tx *gorm.DB, existing *core.Pessoa) error {
	if !payload.Email.Present() {
		return nil
	}
	if existing.Email != nil && *existing.Email == payload.Email.Value {
		return nil
	}

	exists, err := h.Repo.IsEmailExists(tx, payload.Email.Value, existing.ID)
	if err != nil {
		return err
	}
	if exists {
		return apierrors.NewValidation("e-mail já em uso", apierrors.FieldError{
			Field: "email",
			Error: "already in use",
		})
	}
	return nil
}

// PreDelete unlinks the person's addresses; they are kept.
func (h *PessoaHooks) PreDelete(ctx context.Context, tx *gorm.DB, existing *core.Pessoa) error {
	n, err := h.Repo.UnlinkEnderecos(tx, existing.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		hlog.CtxInfof(ctx, "unlinked %d enderecos from pessoa id=%d", n, existing.ID)
	}
	return nil
}
