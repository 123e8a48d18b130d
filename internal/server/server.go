// Package server exposes the generated map over HTTP for browser preview:
// an embedded Leaflet page plus the dot and polygon layers as GeoJSON.
package server

import (
	"context"
	_ "embed"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mikeasilva/dot-density-map/internal/dots"
	"github.com/mikeasilva/dot-density-map/internal/geom"
)

//go:embed index.html
var indexHTML []byte

// LegendEntry describes one category for the browser legend.
type LegendEntry struct {
	Column string `json:"column"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Dots   int    `json:"dots"`
}

type Server struct {
	e            *echo.Echo
	index        *geom.Index
	dotsJSON     []byte
	featuresJSON []byte
	legend       []LegendEntry
}

// New builds the server over an already-generated map. The GeoJSON payloads
// are encoded once up front; the handlers only serve bytes.
func New(features []*geom.Feature, d []dots.Dot, legend []LegendEntry) (*Server, error) {
	dotsJSON, err := dots.MarshalGeoJSON(d)
	if err != nil {
		return nil, err
	}
	featuresJSON, err := geom.FeaturesGeoJSON(features)
	if err != nil {
		return nil, err
	}
	s := &Server{
		index:        geom.NewIndex(features),
		dotsJSON:     dotsJSON,
		featuresJSON: featuresJSON,
		legend:       legend,
	}
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.GET("/", s.handleIndex)
	e.GET("/api/dots", s.handleDots)
	e.GET("/api/features", s.handleFeatures)
	e.GET("/api/feature", s.handleFeatureAt)
	e.GET("/api/legend", s.handleLegend)
	e.GET("/healthz", s.handleHealth)
	s.e = e
	return s, nil
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// Echo exposes the router for handler tests.
func (s *Server) Echo() *echo.Echo { return s.e }

func (s *Server) handleIndex(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexHTML)
}

func (s *Server) handleDots(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, s.dotsJSON)
}

func (s *Server) handleFeatures(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, s.featuresJSON)
}

func (s *Server) handleLegend(c echo.Context) error {
	return c.JSON(http.StatusOK, s.legend)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// handleFeatureAt resolves the feature under a lon/lat point through the
// spatial index and returns its id, name and dot counts.
func (s *Server) handleFeatureAt(c echo.Context) error {
	lon, err1 := strconv.ParseFloat(c.QueryParam("lon"), 64)
	lat, err2 := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err1 != nil || err2 != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "lon and lat query parameters are required")
	}
	ft := s.index.At(lon, lat)
	if ft == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no feature at point")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"id":     ft.ID,
		"name":   ft.Name,
		"counts": ft.Counts,
	})
}
