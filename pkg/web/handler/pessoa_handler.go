package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"gorm.io/gorm"

	"cadastro-pessoas/pkg/core/repository/dao"
	"cadastro-pessoas/pkg/web/crud"
	"cadastro-pessoas/pkg/web/model"
)

// PessoaHandler serves the person endpoints that are not plain CRUD.
type PessoaHandler struct {
	db   *gorm.DB
	repo dao.PessoaRepository
}

func NewPessoaHandler(db *gorm.DB, repo dao.PessoaRepository) *PessoaHandler {
	return &PessoaHandler{db: db, repo: repo}
}

// GetWithEnderecos GET /pessoas/:id/enderecos
func (h *PessoaHandler) GetWithEnderecos(ctx context.Context, c *app.RequestContext) {
	id, err := crud.ParseID(c)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	pessoa, err := h.repo.FindWithEnderecos(h.db.WithContext(ctx), id)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(consts.StatusOK, model.ReadPessoaComEnderecos(pessoa))
}

