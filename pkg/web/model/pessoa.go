package model

import (
	"cadastro-pessoas/pkg/common/patch"
	"cadastro-pessoas/pkg/common/validation"
	core "cadastro-pessoas/pkg/core/model"
)

// 请求/响应数据结构
type (
	PessoaCreate struct {
		Nome  string  `json:"nome" validate:"required,min=2,max=120"`
		Idade *int    `json:"idade" validate:"omitempty,min=0,max=200"`
		Email *string `json:"email" validate:"omitempty,max=120"`
	}

	// PessoaUpdate only changes the fields present in the body.
	PessoaUpdate struct {
		Nome  patch.Optional[string] `json:"nome" validate:"omitempty,min=2,max=120"`
		Idade patch.Optional[int]    `json:"idade" validate:"omitempty,min=0,max=200"`
		Email patch.Optional[string] `json:"email" validate:"omitempty,max=120"`
	}

	PessoaRead struct {
		ID    int64   `json:"id"`
		Nome  string  `json:"nome"`
		Idade *int    `json:"idade"`
		Email *string `json:"email"`
	}

	PessoaComEnderecos struct {
		PessoaRead
		Enderecos []EnderecoRead `json:"enderecos"`
	}
)

// Validate rejects clearing nome, which is NOT NULL.
func (p *PessoaUpdate) Validate() error {
	if p.Nome.Set && p.Nome.Null {
		return validation.CustomValidationErrors{
			{Field: "nome", Message: "must not be null"},
		}
	}
	return nil
}

func NewPessoa(in *PessoaCreate) core.Pessoa {
	return core.Pessoa{
		Nome:  in.Nome,
		Idade: in.Idade,
		Email: in.Email,
	}
}

func ApplyPessoa(p *core.Pessoa, in *PessoaUpdate) {
	if in.Nome.Present() {
		p.Nome = in.Nome.Value
	}
	in.Idade.ApplyTo(&p.Idade)
	in.Email.ApplyTo(&p.Email)
}

func ReadPessoa(p *core.Pessoa) PessoaRead {
	return PessoaRead{
		ID:    p.ID,
		Nome:  p.Nome,
		Idade: p.Idade,
		Email: p.Email,
	}
}

func ReadPessoaComEnderecos(p *core.Pessoa) PessoaComEnderecos {
	enderecos := make([]EnderecoRead, 0, len(p.Enderecos))
	for i := range p.Enderecos {
		enderecos = append(enderecos, ReadEndereco(&p.Enderecos[i]))
	}
	return PessoaComEnderecos{
		PessoaRead: ReadPessoa(p),
		Enderecos:  enderecos,
	}
}
