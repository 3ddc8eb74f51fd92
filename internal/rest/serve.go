// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package rest serves the HTTP front door: multipart image upload in,
// binary-raster PNG out, plus preset listing and a diagnostic false-color
// endpoint. It is the outer surface spec.md §6 describes as "an external
// collaborator"; the core engine never imports it.
package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duotone-engine/inkraster/internal/diag"
	"github.com/duotone-engine/inkraster/internal/ingest"
	"github.com/duotone-engine/inkraster/internal/preset"
	"github.com/duotone-engine/inkraster/internal/raster"
	"github.com/duotone-engine/inkraster/internal/rlog"
	"github.com/duotone-engine/inkraster/internal/workpool"
)

// Server wires the engine's cache and worker pool into gin handlers: the
// cache skips re-running Analyze for a repeated (image, preset) pair, and
// the pool caps how many of those expensive calls run at once regardless
// of how many requests gin is serving concurrently (spec.md §5).
type Server struct {
	cache  *raster.AnalysisCache
	pool   *workpool.Pool
	logger *rlog.Logger
}

// NewServer returns a Server with a fresh analysis cache and a worker pool
// sized by workpool.Size().
func NewServer(logger *rlog.Logger) *Server {
	if logger == nil {
		logger = rlog.New()
	}
	return &Server{cache: raster.NewAnalysisCache(), pool: workpool.New(), logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api/v1")
	{
		api.GET("/ping", s.getPing)
		api.GET("/presets", s.getPresets)
		api.POST("/transform", s.postTransform)
		api.POST("/diag/foreground", s.postDiagForeground)
	}
	return r
}

// Run starts the HTTP server on addr (gin's default is 0.0.0.0:8080).
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (s *Server) getPresets(c *gin.Context) {
	c.JSON(http.StatusOK, preset.All())
}

func (s *Server) postTransform(c *gin.Context) {
	presetID := c.DefaultPostForm("preset", preset.DefaultID)
	cfg := preset.Resolve(presetID)

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image field: " + err.Error()})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Decode through encode is the CPU-heavy section (spec.md §5); the pool
	// caps how many requests run it at once regardless of how many gin is
	// serving concurrently.
	s.pool.Run(func() {
		rgb, err := ingest.Decode(data)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		key := raster.NewAnalysisKey(rgb, cfg.ID)
		analysis, ok := s.cache.Get(key)
		if !ok {
			analysis, err = raster.Analyze(rgb, cfg, s.logger.Writer())
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			s.cache.Put(key, analysis)
		}

		result, err := raster.Render(analysis, cfg, raster.FrameModulation{}, s.logger.Writer())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		png, err := ingest.EncodePNG(result.Binary)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("X-Ink-White-Ratio", fmtFloat(result.Metrics.WhiteRatio))
		c.Header("X-Ink-Component-Count", fmtInt(result.Metrics.ComponentCount))
		c.Header("X-Ink-Fallback-Segmentation", fmtBool(result.Metrics.FallbackSegmentation))
		c.Data(http.StatusOK, "image/png", png)
	})
}

func (s *Server) postDiagForeground(c *gin.Context) {
	presetID := c.DefaultPostForm("preset", preset.DefaultID)
	cfg := preset.Resolve(presetID)

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image field: " + err.Error()})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.pool.Run(func() {
		rgb, err := ingest.Decode(data)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		analysis, err := raster.Analyze(rgb, cfg, s.logger.Writer())
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		png, err := ingest.EncodeFalseColorPNG(rgb.W, rgb.H, diag.ColorAtFunc(analysis.Foreground.Mask.Pix))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	})
}
