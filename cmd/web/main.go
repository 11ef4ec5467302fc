package main

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"cadastro-pessoas/pkg/common/config"
	"cadastro-pessoas/pkg/common/logging"
	"cadastro-pessoas/pkg/core/model"
	"cadastro-pessoas/pkg/web/router"
)

func main() {
	// 初始化配置
	cfg, err := config.Load()
	if err != nil {
		hlog.Fatalf("Failed to load config: %v", err)
	}
	logging.Setup(cfg.Log)

	// 初始化数据库连接
	db, err := cfg.InitDB()
	if err != nil {
		hlog.Fatalf("Failed to initialize database: %v", err)
	}

	// 建表（幂等，无迁移系统）
	if err := model.AutoMigrate(db); err != nil {
		hlog.Fatalf("Failed to create schema: %v", err)
	}

	// 创建Hertz实例；panic 由 RecoveryMiddleware 统一处理，不用 server.Default 自带的 recovery
	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(int(cfg.Middleware.Security.MaxBodySize)),
	)

	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	// 注册路由
	router.RegisterAPIs(h, cfg, db)

	hlog.Infof("cadastro-pessoas listening on %s (env=%s, db=%s)", cfg.Server.Address, cfg.Env, cfg.Database.Driver)

	// 启动服务
	h.Spin()
}
