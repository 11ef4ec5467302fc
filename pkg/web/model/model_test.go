package model

import (
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "cadastro-pessoas/pkg/common/errors"
	"cadastro-pessoas/pkg/common/validation"
	core "cadastro-pessoas/pkg/core/model"
)

func ptr[T any](v T) *T { return &v }

func TestPessoaCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"valid", `{"nome":"Ana","email":"a@x.com"}`, ""},
		{"nome missing", `{"email":"a@x.com"}`, "nome"},
		{"nome too short", `{"nome":"A"}`, "nome"},
		{"idade negative", `{"nome":"Ana","idade":-1}`, "idade"},
		{"idade too high", `{"nome":"Ana","idade":201}`, "idade"},
		{"idade zero", `{"nome":"Ana","idade":0}`, ""},
		{"null email", `{"nome":"Ana","email":null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in PessoaCreate
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			err := validation.Struct(&in)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			detail := apierrors.DetailOf(err)
			require.NotNil(t, detail)
			require.NotEmpty(t, detail.Errors)
			assert.Equal(t, tt.field, detail.Errors[0].Field)
		})
	}
}

func TestPessoaUpdateValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"empty", `{}`, ""},
		{"idade only", `{"idade":30}`, ""},
		{"clear idade", `{"idade":null}`, ""},
		{"nome too short", `{"nome":"A"}`, "nome"},
		{"nome empty", `{"nome":""}`, "nome"},
		{"nome null", `{"nome":null}`, "nome"},
		{"idade negative", `{"idade":-1}`, "idade"},
		{"idade too high", `{"idade":201}`, "idade"},
		{"idade upper bound", `{"idade":200}`, ""},
		{"email too long", `{"email":"` + strings.Repeat("a", 121) + `"}`, "email"},
		{"email at limit", `{"email":"` + strings.Repeat("a", 120) + `"}`, ""},
		{"clear email", `{"email":null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in PessoaUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			err := validation.Struct(&in)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apierrors.IsValidation(err))
			assert.Equal(t, tt.field, apierrors.DetailOf(err).Errors[0].Field)
		})
	}
}

func TestEnderecoEstadoLength(t *testing.T) {
	var create EnderecoCreate
	require.NoError(t, json.Unmarshal([]byte(`{"estado":"SPX"}`), &create))
	assert.Error(t, validation.Struct(&create))

	var update EnderecoUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"estado":"S"}`), &update))
	err := validation.Struct(&update)
	require.Error(t, err)
	assert.Equal(t, "estado", apierrors.DetailOf(err).Errors[0].Field)

	update = EnderecoUpdate{}
	require.NoError(t, json.Unmarshal([]byte(`{"estado":"RJ","id_pessoa":null}`), &update))
	assert.NoError(t, validation.Struct(&update))
}

func TestEnderecoUpdateValidation(t *testing.T) {
	long := strings.Repeat("r", 121)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"logradouro too long", `{"logradouro":"` + long + `"}`, "logradouro"},
		{"cidade too long", `{"cidade":"` + long + `"}`, "cidade"},
		{"logradouro null", `{"logradouro":null}`, ""},
		{"logradouro empty", `{"logradouro":""}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in EnderecoUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			err := validation.Struct(&in)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.field, apierrors.DetailOf(err).Errors[0].Field)
		})
	}
}

func TestApplyPessoaKeepsOmittedFields(t *testing.T) {
	p := core.Pessoa{ID: 1, Nome: "Ana", Idade: ptr(20), Email: ptr("a@x.com")}

	var in PessoaUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"idade":30}`), &in))
	ApplyPessoa(&p, &in)

	assert.Equal(t, "Ana", p.Nome)
	assert.Equal(t, 30, *p.Idade)
	assert.Equal(t, "a@x.com", *p.Email)

	in = PessoaUpdate{}
	require.NoError(t, json.Unmarshal([]byte(`{"email":null}`), &in))
	ApplyPessoa(&p, &in)
	assert.Nil(t, p.Email)
	assert.Equal(t, 30, *p.Idade)
}

func TestApplyEnderecoUnlinks(t *testing.T) {
	e := core.Endereco{ID: 3, Cidade: ptr("SP"), IDPessoa: ptr(int64(7))}

	var in EnderecoUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"id_pessoa":null}`), &in))
	ApplyEndereco(&e, &in)

	assert.Nil(t, e.IDPessoa)
	assert.Equal(t, "SP", *e.Cidade)
}

func TestReadPessoaComEnderecos(t *testing.T) {
	p := core.Pessoa{ID: 1, Nome: "Ana"}
	out, err := json.Marshal(ReadPessoaComEnderecos(&p))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"nome":"Ana","idade":null,"email":null,"enderecos":[]}`, string(out))
}
