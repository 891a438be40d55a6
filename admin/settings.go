// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jcodagnone/storelocator/settings"
)

type warningView struct {
	Kind    settings.Warning `json:"kind"`
	Message string           `json:"message"`
}

func (s *Server) getSettings(ctx *gin.Context) {
	cfg, err := s.settings.Load(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, cfg)
}

// saveSettings accepts either a form post or a flat JSON object of strings.
// Checkboxes are true when their key is present.
func (s *Server) saveSettings(ctx *gin.Context) {
	raw := settings.Raw{}

	if ctx.ContentType() == gin.MIMEJSON {
		if err := ctx.ShouldBindJSON(&raw); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}
	} else {
		if err := ctx.Request.ParseForm(); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		for key, values := range ctx.Request.PostForm {
			if len(values) > 0 {
				raw[key] = values[0]
			}
		}
	}

	cfg, defaulted := settings.Sanitize(raw)

	for _, key := range defaulted {
		s.metrics.SettingDefaulted(key)
	}

	if err := s.settings.Save(ctx.Request.Context(), cfg); err != nil {
		writeError(ctx, err)

		return
	}

	warnings := []warningView{}
	for _, w := range defaulted.Warnings() {
		warnings = append(warnings, warningView{Kind: w, Message: w.Message()})
	}

	ctx.JSON(http.StatusOK, gin.H{"settings": cfg, "warnings": warnings, "defaulted": defaulted})
}

func (s *Server) listOptions(options []settings.Option) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, options)
	}
}

func (s *Server) listMarkers(ctx *gin.Context) {
	markers, err := settings.AvailableMarkers(s.markerDir)
	if err != nil {
		writeError(ctx, err)

		return
	}

	if markers == nil {
		markers = []string{}
	}

	ctx.JSON(http.StatusOK, markers)
}
