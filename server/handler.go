package server

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"airbnb-dashboard/models"
	"airbnb-dashboard/render"
	"airbnb-dashboard/utils"
)

// Pipeline is what the handlers need from the dashboard service.
type Pipeline interface {
	Figures(ctx context.Context) ([]models.ChartDescription, error)
	Map(ctx context.Context) (*models.MarkerSet, error)
}

type DashboardHandler struct {
	pipeline Pipeline
	logger   *utils.Logger
}

func NewDashboardHandler(pipeline Pipeline, logger *utils.Logger) *DashboardHandler {
	return &DashboardHandler{pipeline: pipeline, logger: logger}
}

// Index renders the dashboard page with every figure.
func (h *DashboardHandler) Index(c *gin.Context) {
	figures, err := h.pipeline.Figures(c.Request.Context())
	if err != nil {
		h.fail(c, "build figures", err)
		return
	}

	figuresJSON, err := render.PlotlyFigures(figures)
	if err != nil {
		h.fail(c, "encode figures", err)
		return
	}

	ids := make([]string, len(figures))
	for i, f := range figures {
		ids[i] = f.ID
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"ids":         ids,
		"figuresJSON": template.JS(figuresJSON),
	})
}

// Map returns the listings map as a standalone HTML page.
func (h *DashboardHandler) Map(c *gin.Context) {
	set, err := h.pipeline.Map(c.Request.Context())
	if err != nil {
		h.fail(c, "build markers", err)
		return
	}

	var buf bytes.Buffer
	if err := render.MapHTML(&buf, set); err != nil {
		h.fail(c, "render map", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Figures returns the plotly figures as JSON.
func (h *DashboardHandler) Figures(c *gin.Context) {
	figures, err := h.pipeline.Figures(c.Request.Context())
	if err != nil {
		h.fail(c, "build figures", err)
		return
	}

	figuresJSON, err := render.PlotlyFigures(figures)
	if err != nil {
		h.fail(c, "encode figures", err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", figuresJSON)
}

// Markers returns the marker set as JSON.
func (h *DashboardHandler) Markers(c *gin.Context) {
	set, err := h.pipeline.Map(c.Request.Context())
	if err != nil {
		h.fail(c, "build markers", err)
		return
	}
	c.JSON(http.StatusOK, set)
}

func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *DashboardHandler) fail(c *gin.Context, action string, err error) {
	h.logger.Error("[server] %s %s: %s: %v", c.Request.Method, c.Request.URL.Path, action, err)
	c.String(http.StatusInternalServerError, "internal server error")
}
