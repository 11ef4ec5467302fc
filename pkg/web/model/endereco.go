package model

import (
	"cadastro-pessoas/pkg/common/patch"
	core "cadastro-pessoas/pkg/core/model"
)

type (
	EnderecoCreate struct {
		Logradouro *string `json:"logradouro" validate:"omitempty,max=120"`
		Numero     *int    `json:"numero"`
		Estado     *string `json:"estado" validate:"omitempty,len=2"`
		Cidade     *string `json:"cidade" validate:"omitempty,max=120"`
		Bairro     *string `json:"bairro" validate:"omitempty,max=120"`
		IDPessoa   *int64  `json:"id_pessoa"` // 创建时即可关联 pessoa
	}

	// EnderecoUpdate: "id_pessoa": null unlinks the address.
	EnderecoUpdate struct {
		Logradouro patch.Optional[string] `json:"logradouro" validate:"omitempty,max=120"`
		Numero     patch.Optional[int]    `json:"numero"`
		Estado     patch.Optional[string] `json:"estado" validate:"omitempty,len=2"`
		Cidade     patch.Optional[string] `json:"cidade" validate:"omitempty,max=120"`
		Bairro     patch.Optional[string] `json:"bairro" validate:"omitempty,max=120"`
		IDPessoa   patch.Optional[int64]  `json:"id_pessoa"`
	}

	EnderecoRead struct {
		ID         int64   `json:"id"`
		Logradouro *string `json:"logradouro"`
		Numero     *int    `json:"numero"`
		Estado     *string `json:"estado"`
		Cidade     *string `json:"cidade"`
		Bairro     *string `json:"bairro"`
		IDPessoa   *int64  `json:"id_pessoa"`
	}
)

func NewEndereco(in *EnderecoCreate) core.Endereco {
	return core.Endereco{
		Logradouro: in.Logradouro,
		Numero:     in.Numero,
		Estado:     in.Estado,
		Cidade:     in.Cidade,
		Bairro:     in.Bairro,
		IDPessoa:   in.IDPessoa,
	}
}

func ApplyEndereco(e *core.Endereco, in *EnderecoUpdate) {
	in.Logradouro.ApplyTo(&e.Logradouro)
	in.Numero.ApplyTo(&e.Numero)
	in.Estado.ApplyTo(&e.Estado)
	in.Cidade.ApplyTo(&e.Cidade)
	in.Bairro.ApplyTo(&e.Bairro)
	in.IDPessoa.ApplyTo(&e.IDPessoa)
}

func ReadEndereco(e *core.Endereco) EnderecoRead {
	return EnderecoRead{
		ID:         e.ID,
		Logradouro: e.Logradouro,
		Numero:     e.Numero,
		Estado:     e.Estado,
		Cidade:     e.Cidade,
		Bairro:     e.Bairro,
		IDPessoa:   e.IDPessoa,
	}
}
