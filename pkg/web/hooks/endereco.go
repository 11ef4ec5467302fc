package hooks

import (
	"context"

	"gorm.io/gorm"

	apierrors "cadastro-pessoas/pkg/common/errors"
	core "cadastro-pessoas/pkg/core/model"
	"cadastro-pessoas/pkg/core/repository/dao"
	"cadastro-pessoas/pkg/web/crud"
	"cadastro-pessoas/pkg/web/model"
)

// EnderecoHooks keeps id_pessoa pointing at an existing person.
type EnderecoHooks struct {
	Pessoas dao.PessoaRepository
}

var _ crud.Hooks[core.Endereco, model.EnderecoCreate, model.EnderecoUpdate] = (*EnderecoHooks)(nil)

func NewEnderecoHooks(pessoas dao.PessoaRepository) *EnderecoHooks {
	return &EnderecoHooks{Pessoas: pessoas}
}

func (h *EnderecoHooks) PreCreate(_ context.Context, payload *model.EnderecoCreate, tx *gorm.DB) error {
	if payload.IDPessoa == nil {
		return nil
	}
	return h.checkPessoa(tx, *payload.IDPessoa)
}

// PreUpdate: null unlinks and is always accepted; an unchanged link is not rechecked.
func (h *EnderecoHooks) PreUpdate(_ context.Context, payload *model.EnderecoUpdate, tx *gorm.DB, existing *core.Endereco) error {
	if !payload.IDPessoa.Present() {
		return nil
	}
	if existing.IDPessoa != nil && *existing.IDPessoa == payload.IDPessoa.Value {
		return nil
	}
	return h.checkPessoa(tx, payload.IDPessoa.Value)
}

func (h *EnderecoHooks) checkPessoa(tx *gorm.DB, id int64) error {
	exists, err := h.Pessoas.Exists(tx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apierrors.NewValidation("pessoa não encontrada", apierrors.FieldError{
			Field: "id_pessoa",
			Error: "does not exist",
		})
	}
	return nil
}
