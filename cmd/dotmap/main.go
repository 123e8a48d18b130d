package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikeasilva/dot-density-map/internal/config"
	"github.com/mikeasilva/dot-density-map/internal/dots"
	"github.com/mikeasilva/dot-density-map/internal/geom"
	"github.com/mikeasilva/dot-density-map/internal/server"
	"github.com/mikeasilva/dot-density-map/internal/tui"
)

func main() {
	configPath := flag.String("config", "dotmap.yaml", "path to the run configuration")
	serve := flag.Bool("serve", false, "serve the map over HTTP instead of the terminal viewer")
	outPath := flag.String("o", "", "write the generated dots as GeoJSON to this path")
	seedFlag := flag.Int64("seed", 0, "override the configured seed")
	methodFlag := flag.String("method", "", "override the configured method (regular|random)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "method":
			cfg.Method = *methodFlag
		}
	})
	method, err := dots.ParseMethod(cfg.Method)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	features, skipped, err := geom.LoadFeatures(cfg.Features, cfg.IDProperty)
	if err != nil {
		log.Fatalf("load features: %v", err)
	}
	if skipped > 0 {
		log.Printf("skipped %d non-polygonal feature(s) in %s", skipped, cfg.Features)
	}
	log.Printf("loaded %d feature(s) from %s", len(features), cfg.Features)

	table, err := geom.LoadCounts(cfg.Counts, cfg.KeyColumn, cfg.Columns())
	if err != nil {
		log.Fatalf("load counts: %v", err)
	}
	unmatchedFeatures, unmatchedRows, err := geom.JoinCounts(features, table, cfg.UnitPerDot)
	if err != nil {
		log.Fatalf("join counts: %v", err)
	}
	if unmatchedFeatures > 0 || unmatchedRows > 0 {
		log.Printf("join: %d feature(s) without counts, %d row(s) without a feature",
			unmatchedFeatures, unmatchedRows)
	}

	start := time.Now()
	results := dots.GenerateAll(features, cfg.Columns(), method, cfg.Seed, cfg.Workers)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Printf("feature %s: %v", r.Feature.ID, r.Err)
		}
	}
	all := dots.Collect(results)
	log.Printf("generated %d dot(s) over %d feature(s) in %s (%d failed, method=%s, 1 dot = %g)",
		len(all), len(features), time.Since(start).Round(time.Millisecond), failed, method, cfg.UnitPerDot)

	if *outPath != "" {
		data, err := dots.MarshalGeoJSON(all)
		if err != nil {
			log.Fatalf("encode dots: %v", err)
		}
		if err := os.WriteFile(*outPath, data, 0o644); err != nil {
			log.Fatalf("write %s: %v", *outPath, err)
		}
		log.Printf("wrote %s", *outPath)
	}

	switch {
	case *serve:
		runServer(cfg, features, all)
	case *outPath == "":
		runTUI(cfg, features, results, method)
	}
}

func runServer(cfg *config.Config, features []*geom.Feature, all []dots.Dot) {
	perCat := make(map[string]int)
	for _, d := range all {
		perCat[d.Category]++
	}
	legend := make([]server.LegendEntry, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		legend = append(legend, server.LegendEntry{
			Column: c.Column,
			Label:  c.Label,
			Color:  c.Color,
			Dots:   perCat[c.Column],
		})
	}
	s, err := server.New(features, all, legend)
	if err != nil {
		log.Fatalf("server: %v", err)
	}
	go func() {
		if err := s.Start(cfg.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()
	log.Printf("serving on %s", cfg.Listen)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func runTUI(cfg *config.Config, features []*geom.Feature, results []dots.Result, method dots.Method) {
	cats := make([]tui.Category, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		cats = append(cats, tui.Category{Column: c.Column, Label: c.Label, Color: c.Color})
	}
	m := tui.New(features, results, cats, method, cfg.Seed, cfg.Workers)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
