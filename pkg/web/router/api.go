package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"gorm.io/gorm"

	"cadastro-pessoas/pkg/common/config"
	core "cadastro-pessoas/pkg/core/model"
	dao "cadastro-pessoas/pkg/core/repository/dao/impl"
	"cadastro-pessoas/pkg/web/crud"
	"cadastro-pessoas/pkg/web/handler"
	"cadastro-pessoas/pkg/web/hooks"
	"cadastro-pessoas/pkg/web/middleware"
	"cadastro-pessoas/pkg/web/model"
)

// RegisterAPIs 注册所有API路由
func RegisterAPIs(h *server.Hertz, cfg *config.Config, db *gorm.DB) {
	// 初始化Handler实例
	pessoaRepo := dao.NewGormPessoaRepository(db)
	healthHandler := handler.NewHealthCheckHandler(db)
	pessoaHandler := handler.NewPessoaHandler(db, pessoaRepo)

	// 注册全局中间件（按执行顺序）
	h.Use(
		middleware.RecoveryMiddleware(cfg),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.ErrorHandlerMiddleware(),
		middleware.SecurityCheckMiddleware(cfg.Middleware.Security),
		middleware.TimeoutMiddleware(cfg.Middleware.Timeout.RequestTimeout),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
		middleware.RateLimitMiddleware(
			cfg.Middleware.RateLimit.Rate,
			cfg.Middleware.RateLimit.Interval,
		),
	)

	// 基础接口组
	h.GET("/", healthHandler.Liveness)
	h.GET("/health", healthHandler.AdvancedHealthCheck)

	// 业务接口组
	pessoas := crud.Register(h, db, crud.Config[core.Pessoa, model.PessoaCreate, model.PessoaUpdate, model.PessoaRead]{
		Prefix:     "/pessoas",
		Tags:       []string{"pessoas"},
		Hooks:      hooks.NewPessoaHooks(pessoaRepo),
		New:        model.NewPessoa,
		Apply:      model.ApplyPessoa,
		Read:       model.ReadPessoa,
		Repository: pessoaRepo,
	})
	h.GET("/pessoas/:id/enderecos", pessoaHandler.GetWithEnderecos)

	enderecos := crud.Register(h, db, crud.Config[core.Endereco, model.EnderecoCreate, model.EnderecoUpdate, model.EnderecoRead]{
		Prefix: "/enderecos",
		Tags:   []string{"enderecos"},
		Hooks:  hooks.NewEnderecoHooks(pessoaRepo),
		New:    model.NewEndereco,
		Apply:  model.ApplyEndereco,
		Read:   model.ReadEndereco,
	})

	docsHandler := handler.NewDocsHandler(pessoas, enderecos)
	docsHandler.Add(crud.RouteInfo{Method: consts.MethodGet, Path: "/pessoas/:id/enderecos", Tags: []string{"pessoas"}})
	docsHandler.Add(crud.RouteInfo{Method: consts.MethodGet, Path: "/", Tags: []string{"health"}})
	docsHandler.Add(crud.RouteInfo{Method: consts.MethodGet, Path: "/health", Tags: []string{"health"}})
	h.GET("/docs/routes", docsHandler.Routes)
}
