// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

// Package admin exposes the store and settings administration API.
package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jcodagnone/storelocator/geocode"
	"github.com/jcodagnone/storelocator/observability"
	"github.com/jcodagnone/storelocator/settings"
	"github.com/jcodagnone/storelocator/store"
)

// DeleteTokenHeader carries the token authorizing a store deletion.
const DeleteTokenHeader = "X-Delete-Token"

// TokenIssuer hands out delete tokens along with store records.
type TokenIssuer interface {
	Token(id int64) string
}

// Options wires a Server. Gatherer and MarkerDir are optional.
type Options struct {
	Stores    *store.Service
	Settings  settings.Repository
	Tokens    TokenIssuer
	Metrics   *observability.Metrics
	Gatherer  prometheus.Gatherer
	MarkerDir string
}

type Server struct {
	stores    *store.Service
	settings  settings.Repository
	tokens    TokenIssuer
	metrics   *observability.Metrics
	gatherer  prometheus.Gatherer
	markerDir string
}

func NewServer(opts Options) *Server {
	return &Server{
		stores:    opts.Stores,
		settings:  opts.Settings,
		tokens:    opts.Tokens,
		metrics:   opts.Metrics,
		gatherer:  opts.Gatherer,
		markerDir: opts.MarkerDir,
	}
}

// Handler returns the router with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.Default()

	r.GET("/api/stores", s.listStores)
	r.POST("/api/stores", s.createStore)
	r.GET("/api/stores/:id", s.getStore)
	r.PUT("/api/stores/:id", s.updateStore)
	r.DELETE("/api/stores/:id", s.deleteStore)

	r.GET("/api/settings", s.getSettings)
	r.POST("/api/settings", s.saveSettings)
	r.GET("/api/settings/languages", s.listOptions(settings.Languages))
	r.GET("/api/settings/regions", s.listOptions(settings.Regions))
	r.GET("/api/settings/zoom-levels", s.listOptions(settings.ZoomLevels()))
	r.GET("/api/settings/markers", s.listMarkers)

	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	return r
}

func (s *Server) Run(addr string) error {
	log.Printf("Admin API listening on %s", addr)

	return s.Handler().Run(addr)
}

type storeView struct {
	*store.Store
	DeleteToken string `json:"delete_token,omitempty"`
}

func (s *Server) view(st *store.Store) storeView {
	v := storeView{Store: st}
	if s.tokens != nil {
		v.DeleteToken = s.tokens.Token(st.ID)
	}

	return v
}

func (s *Server) listStores(ctx *gin.Context) {
	var filter store.ListFilter

	if v := ctx.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid active parameter"})

			return
		}

		filter.Active = &active
	}

	for param, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := ctx.Query(param)
		if v == "" {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param + " parameter"})

			return
		}

		*dst = n
	}

	page, err := s.stores.List(ctx.Request.Context(), filter)
	if err != nil {
		writeError(ctx, err)

		return
	}

	views := make([]storeView, 0, len(page.Stores))
	for _, st := range page.Stores {
		views = append(views, s.view(st))
	}

	ctx.JSON(http.StatusOK, gin.H{"stores": views, "total": page.Total})
}

func storeID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})

		return 0, false
	}

	return id, true
}

func (s *Server) getStore(ctx *gin.Context) {
	id, ok := storeID(ctx)
	if !ok {
		return
	}

	st, err := s.stores.Get(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, s.view(st))
}

func (s *Server) createStore(ctx *gin.Context) {
	s.saveStore(ctx, store.ModeCreate, 0, http.StatusCreated)
}

func (s *Server) updateStore(ctx *gin.Context) {
	id, ok := storeID(ctx)
	if !ok {
		return
	}

	s.saveStore(ctx, store.ModeUpdate, id, http.StatusOK)
}

func (s *Server) saveStore(ctx *gin.Context, mode store.Mode, id int64, status int) {
	var in store.Input
	if err := ctx.ShouldBind(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	cfg, err := s.settings.Load(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)

		return
	}

	res, err := s.stores.Save(ctx.Request.Context(), cfg, store.SaveRequest{Mode: mode, ID: id, Input: in})
	if err != nil {
		writeError(ctx, err)

		return
	}

	ctx.JSON(status, gin.H{
		"store":       s.view(res.Store),
		"message":     res.Message,
		"clear_input": res.ClearInput,
	})
}

func (s *Server) deleteStore(ctx *gin.Context) {
	id, ok := storeID(ctx)
	if !ok {
		return
	}

	if err := s.stores.Delete(ctx.Request.Context(), id, ctx.GetHeader(DeleteTokenHeader)); err != nil {
		writeError(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// writeError maps the store pipeline errors to a status and a displayable
// message. Other errors are logged and reported as 500.
func writeError(ctx *gin.Context, err error) {
	var (
		vErr *store.ValidationError
		gErr *geocode.GeocodingError
		pErr *store.PersistenceError
	)

	switch {
	case errors.As(err, &vErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message(), "fields": vErr.Fields})
	case errors.As(err, &gErr):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gErr.Type.Message(), "kind": gErr.Type.String()})
	case errors.As(err, &pErr) && pErr.Kind == store.DeleteFailed:
		ctx.JSON(http.StatusForbidden, gin.H{"error": pErr.Kind.Message(), "kind": pErr.Kind.String()})
	case errors.As(err, &pErr):
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": pErr.Kind.Message(), "kind": pErr.Kind.String()})
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": store.ErrNotFound.Error()})
	default:
		log.Printf("admin request failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
