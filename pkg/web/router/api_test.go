// pkg/web/router/api_test.go
package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastro-pessoas/pkg/common/testutil"
	"cadastro-pessoas/pkg/web/model"
	"cadastro-pessoas/pkg/web/router"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPI(t *testing.T) *server.Hertz {
	t.Helper()
	h := server.New()
	router.RegisterAPIs(h, testutil.TestConfig(), testutil.NewSQLiteDB(t))
	return h
}

func call(h *server.Hertz, method, url, body string) *ut.ResponseRecorder {
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	return ut.PerformRequest(h.Engine, method, url, b,
		ut.Header{Key: "Content-Type", Value: "application/json"},
		ut.Header{Key: "User-Agent", Value: "api-test"},
	)
}

func decode[T any](t *testing.T, w *ut.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func createPessoa(t *testing.T, h *server.Hertz, body string) model.PessoaRead {
	t.Helper()
	w := call(h, consts.MethodPost, "/pessoas", body)
	require.Equal(t, consts.StatusCreated, w.Code, w.Body.String())
	return decode[model.PessoaRead](t, w)
}

func TestHealthCheckRoute(t *testing.T) {
	h := newAPI(t)

	w := call(h, consts.MethodGet, "/", "")
	assert.Equal(t, consts.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = call(h, consts.MethodGet, "/health", "")
	assert.Equal(t, consts.StatusOK, w.Code)
	assert.NotEmpty(t, w.Result().Header.Get("X-Request-ID"))
}

func TestEndToEndScenario(t *testing.T) {
	h := newAPI(t)

	ana := createPessoa(t, h, `{"nome":"Ana","email":"a@x.com"}`)
	assert.NotZero(t, ana.ID)
	assert.Nil(t, ana.Idade)
	assert.Equal(t, "a@x.com", *ana.Email)

	w := call(h, consts.MethodPost, "/pessoas", `{"nome":"Outra Ana","email":"a@x.com"}`)
	assert.Equal(t, consts.StatusBadRequest, w.Code)
	assert.Equal(t, "e-mail já cadastrado", decode[apiError](t, w).Message)

	w = call(h, consts.MethodPatch, fmt.Sprintf("/pessoas/%d", ana.ID), `{"idade":30}`)
	require.Equal(t, consts.StatusOK, w.Code, w.Body.String())
	patched := decode[model.PessoaRead](t, w)
	assert.Equal(t, 30, *patched.Idade)
	assert.Equal(t, "Ana", patched.Nome)
	assert.Equal(t, "a@x.com", *patched.Email)

	w = call(h, consts.MethodPost, "/enderecos", fmt.Sprintf(`{"cidade":"SP","id_pessoa":%d}`, ana.ID))
	require.Equal(t, consts.StatusCreated, w.Code, w.Body.String())
	endereco := decode[model.EnderecoRead](t, w)
	assert.Equal(t, ana.ID, *endereco.IDPessoa)

	w = call(h, consts.MethodPost, "/enderecos", `{"id_pessoa":999999}`)
	assert.Equal(t, consts.StatusBadRequest, w.Code)
	assert.Equal(t, "pessoa não encontrada", decode[apiError](t, w).Message)
}

func TestPessoaEmailRules(t *testing.T) {
	h := newAPI(t)

	// any number of people without email
	createPessoa(t, h, `{"nome":"Sem Email 1"}`)
	createPessoa(t, h, `{"nome":"Sem Email 2","email":null}`)

	ana := createPessoa(t, h, `{"nome":"Ana","email":"a@x.com"}`)
	bia := createPessoa(t, h, `{"nome":"Bia","email":"b@x.com"}`)

	// own email
	w := call(h, consts.MethodPatch, fmt.Sprintf("/pessoas/%d", ana.ID), `{"email":"a@x.com"}`)
	assert.Equal(t, consts.StatusOK, w.Code)

	// someone else's
	w = call(h, consts.MethodPatch, fmt.Sprintf("/pessoas/%d", ana.ID), `{"email":"b@x.com"}`)
	assert.Equal(t, consts.StatusBadRequest, w.Code)
	assert.Equal(t, "e-mail já em uso", decode[apiError](t, w).Message)

	// brand new
	w = call(h, consts.MethodPatch, fmt.Sprintf("/pessoas/%d", bia.ID), `{"email":"bia@novo.com"}`)
	require.Equal(t, consts.StatusOK, w.Code)
	assert.Equal(t, "bia@novo.com", *decode[model.PessoaRead](t, w).Email)

	// the freed address can be taken again
	createPessoa(t, h, `{"nome":"Caio","email":"b@x.com"}`)
}

func TestPessoaValidation(t *testing.T) {
	h := newAPI(t)
	ana := createPessoa(t, h, `{"nome":"Ana"}`)

	for _, body := range []string{
		`{}`,
		`{"nome":"A"}`,
		`{"nome":"Ana","idade":-1}`,
		`{"nome":"Ana","idade":201}`,
	} {
		w := call(h, consts.MethodPost, "/pessoas", body)
		assert.Equal(t, consts.StatusBadRequest, w.Code, body)
	}

	url := fmt.Sprintf("/pessoas/%d", ana.ID)
	for _, body := range []string{
		`{"nome":null}`,
		`{"idade":-1}`,
		`{"idade":201}`,
		`{"email":"` + strings.Repeat("e", 121) + `"}`,
		`{"idade":"trinta"}`,
		`{"nome":`,
	} {
		w := call(h, consts.MethodPatch, url, body)
		assert.Equal(t, consts.StatusBadRequest, w.Code, body)
	}

	w := call(h, consts.MethodPatch, url, "")
	require.Equal(t, consts.StatusOK, w.Code, "empty body changes nothing")
	assert.Equal(t, ana, decode[model.PessoaRead](t, w))

	w = call(h, consts.MethodPatch, url, `{}`)
	require.Equal(t, consts.StatusOK, w.Code)
	assert.Equal(t, ana, decode[model.PessoaRead](t, w))
}

func TestNotFound(t *testing.T) {
	h := newAPI(t)

	for _, prefix := range []string{"/pessoas", "/enderecos"} {
		url := prefix + "/424242"
		assert.Equal(t, consts.StatusNotFound, call(h, consts.MethodGet, url, "").Code, url)
		assert.Equal(t, consts.StatusNotFound, call(h, consts.MethodPatch, url, `{}`).Code, url)
		assert.Equal(t, consts.StatusNotFound, call(h, consts.MethodDelete, url, "").Code, url)
	}
}

func TestEnderecoLinking(t *testing.T) {
	h := newAPI(t)
	ana := createPessoa(t, h, `{"nome":"Ana"}`)

	w := call(h, consts.MethodPost, "/enderecos", `{"logradouro":"Rua A","estado":"PE","id_pessoa":null}`)
	require.Equal(t, consts.StatusCreated, w.Code)
	endereco := decode[model.EnderecoRead](t, w)
	assert.Nil(t, endereco.IDPessoa)
	url := fmt.Sprintf("/enderecos/%d", endereco.ID)

	w = call(h, consts.MethodPatch, url, `{"id_pessoa":999999}`)
	assert.Equal(t, consts.StatusBadRequest, w.Code)

	w = call(h, consts.MethodPatch, url, `{"logradouro":"`+strings.Repeat("r", 121)+`"}`)
	assert.Equal(t, consts.StatusBadRequest, w.Code)

	w = call(h, consts.MethodPatch, url, fmt.Sprintf(`{"id_pessoa":%d}`, ana.ID))
	require.Equal(t, consts.StatusOK, w.Code)
	assert.Equal(t, ana.ID, *decode[model.EnderecoRead](t, w).IDPessoa)

	w = call(h, consts.MethodGet, fmt.Sprintf("/pessoas/%d/enderecos", ana.ID), "")
	require.Equal(t, consts.StatusOK, w.Code)
	assert.Len(t, decode[model.PessoaComEnderecos](t, w).Enderecos, 1)

	w = call(h, consts.MethodPatch, url, `{"id_pessoa":null}`)
	require.Equal(t, consts.StatusOK, w.Code)
	unlinked := decode[model.EnderecoRead](t, w)
	assert.Nil(t, unlinked.IDPessoa)
	assert.Equal(t, "Rua A", *unlinked.Logradouro)
}

func TestDeletePessoaUnlinksEnderecos(t *testing.T) {
	h := newAPI(t)
	ana := createPessoa(t, h, `{"nome":"Ana"}`)

	w := call(h, consts.MethodPost, "/enderecos", fmt.Sprintf(`{"cidade":"SP","id_pessoa":%d}`, ana.ID))
	require.Equal(t, consts.StatusCreated, w.Code)
	endereco := decode[model.EnderecoRead](t, w)

	w = call(h, consts.MethodDelete, fmt.Sprintf("/pessoas/%d", ana.ID), "")
	require.Equal(t, consts.StatusNoContent, w.Code)

	w = call(h, consts.MethodGet, fmt.Sprintf("/enderecos/%d", endereco.ID), "")
	require.Equal(t, consts.StatusOK, w.Code)
	assert.Nil(t, decode[model.EnderecoRead](t, w).IDPessoa)
}

func TestListIsOrderedAndNeverNull(t *testing.T) {
	h := newAPI(t)

	w := call(h, consts.MethodGet, "/pessoas", "")
	assert.JSONEq(t, `[]`, w.Body.String())

	first := createPessoa(t, h, `{"nome":"Primeira"}`)
	second := createPessoa(t, h, `{"nome":"Segunda"}`)

	list := decode[[]model.PessoaRead](t, call(h, consts.MethodGet, "/pessoas", ""))
	require.Len(t, list, 2)
	assert.Equal(t, []int64{first.ID, second.ID}, []int64{list[0].ID, list[1].ID})
}

func TestInvalidID(t *testing.T) {
	h := newAPI(t)

	w := call(h, consts.MethodGet, "/pessoas/abc", "")
	assert.Equal(t, consts.StatusBadRequest, w.Code)
}

func TestDocsRoutes(t *testing.T) {
	h := newAPI(t)

	w := call(h, consts.MethodGet, "/docs/routes", "")
	require.Equal(t, consts.StatusOK, w.Code)

	grouped := decode[map[string][]struct {
		Method string `json:"method"`
		Path   string `json:"path"`
	}](t, w)
	assert.Len(t, grouped["pessoas"], 6)
	assert.Len(t, grouped["enderecos"], 5)
	assert.Len(t, grouped["health"], 2)
}
