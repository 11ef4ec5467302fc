// Package crud builds the five standard endpoints (create, list, get, partial
// update, delete) for a GORM model from its transfer schemas and hooks.
package crud

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
	"gorm.io/gorm"

	"cadastro-pessoas/pkg/core/repository/dao"
	impl "cadastro-pessoas/pkg/core/repository/dao/impl"
)

// Config describes one resource.
//
//	M: persisted model    C: create schema
//	U: update schema      R: read schema
type Config[M, C, U, R any] struct {
	Prefix string   // e.g. "/pessoas"
	Tags   []string // documentation grouping

	Hooks Hooks[M, C, U] // nil means NopHooks

	New   func(*C) M   // build a row from a create payload
	Apply func(*M, *U) // copy the fields present in an update payload
	Read  func(*M) R   // read projection

	// Repository overrides the default GORM repository for M.
	Repository dao.Repository[M]
}

// RouteInfo is one registered endpoint, used by the docs listing.
type RouteInfo struct {
	Method string   `json:"method"`
	Path   string   `json:"path"`
	Tags   []string `json:"tags"`
}

// Router holds the handlers for one resource.
type Router[M, C, U, R any] struct {
	cfg    Config[M, C, U, R]
	db     *gorm.DB
	repo   dao.Repository[M]
	hooks  Hooks[M, C, U]
	routes []RouteInfo
}

// New builds the handlers without registering them.
func New[M, C, U, R any](db *gorm.DB, cfg Config[M, C, U, R]) *Router[M, C, U, R] {
	if cfg.New == nil || cfg.Apply == nil || cfg.Read == nil {
		panic("crud: New, Apply and Read must be set for " + cfg.Prefix)
	}

	rt := &Router[M, C, U, R]{
		cfg:   cfg,
		db:    db,
		repo:  cfg.Repository,
		hooks: cfg.Hooks,
	}
	if rt.repo == nil {
		rt.repo = impl.NewGormRepository[M](db)
	}
	if rt.hooks == nil {
		rt.hooks = NopHooks[M, C, U]{}
	}
	return rt
}

// Register mounts the CRUD endpoints under cfg.Prefix.
func Register[M, C, U, R any](r route.IRouter, db *gorm.DB, cfg Config[M, C, U, R]) *Router[M, C, U, R] {
	rt := New(db, cfg)

	g := r.Group(cfg.Prefix)
	rt.handle(g, consts.MethodPost, "", rt.Create)
	rt.handle(g, consts.MethodGet, "", rt.List)
	rt.handle(g, consts.MethodGet, "/:id", rt.Get)
	rt.handle(g, consts.MethodPatch, "/:id", rt.Update)
	rt.handle(g, consts.MethodDelete, "/:id", rt.Delete)

	return rt
}

func (rt *Router[M, C, U, R]) handle(g *route.RouterGroup, method, relativePath string, h app.HandlerFunc) {
	g.Handle(method, relativePath, h)
	rt.routes = append(rt.routes, RouteInfo{
		Method: method,
		Path:   rt.cfg.Prefix + relativePath,
		Tags:   rt.cfg.Tags,
	})
}

// Routes lists the endpoints registered by Register.
func (rt *Router[M, C, U, R]) Routes() []RouteInfo {
	return rt.routes
}

// Prefix returns the mount point of the resource.
func (rt *Router[M, C, U, R]) Prefix() string {
	return rt.cfg.Prefix
}
