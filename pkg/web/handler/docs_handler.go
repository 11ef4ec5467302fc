package handler

import (
	"context"
	"sort"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"cadastro-pessoas/pkg/web/crud"
)

// RouteLister is satisfied by every *crud.Router.
type RouteLister interface {
	Routes() []crud.RouteInfo
}

type DocsHandler struct {
	routers []RouteLister
	extra   []crud.RouteInfo
}

func NewDocsHandler(routers ...RouteLister) *DocsHandler {
	return &DocsHandler{routers: routers}
}

// Add documents a route registered outside the crud routers.
func (h *DocsHandler) Add(info crud.RouteInfo) {
	h.extra = append(h.extra, info)
}

// Routes GET /docs/routes，按 tag 分组
func (h *DocsHandler) Routes(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, h.Grouped())
}

func (h *DocsHandler) Grouped() map[string][]crud.RouteInfo {
	grouped := make(map[string][]crud.RouteInfo)

	all := append([]crud.RouteInfo{}, h.extra...)
	for _, r := range h.routers {
		all = append(all, r.Routes()...)
	}

	for _, info := range all {
		tags := info.Tags
		if len(tags) == 0 {
			tags = []string{"default"}
		}
		for _, tag := range tags {
			grouped[tag] = append(grouped[tag], info)
		}
	}

	for _, routes := range grouped {
		sort.SliceStable(routes, func(i, j int) bool {
			return routes[i].Path < routes[j].Path
		})
	}
	return grouped
}
