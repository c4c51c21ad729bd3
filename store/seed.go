package store

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const defaultStitches = 1000

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the static catalog loaded once at startup.
type Seed struct {
	Designs []models.Design
	Reviews []models.Review
}

type seedDesign struct {
	models.Design `yaml:",inline"`
	Price         float64 `yaml:"price"`
}

type seedFile struct {
	Designs []seedDesign    `yaml:"designs"`
	Reviews []models.Review `yaml:"reviews"`
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) (Seed, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}

	seed := Seed{Reviews: f.Reviews}
	for _, sd := range f.Designs {
		d := sd.Design
		d.Price = decimal.NewFromFloat(sd.Price)
		seed.Designs = append(seed.Designs, d)
	}
	return seed, nil
}

// LoadSeed reads a seed file from path, or the built-in catalog when path
// is empty.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return ParseSeed(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return ParseSeed(data)
}

// Load waits delay (the artificial startup pause, usually zero), installs
// the seed designs and reviews and marks the store ready.
func (s *Store) Load(ctx context.Context, seed Seed, delay time.Duration) error {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	designs := make([]models.Design, 0, len(seed.Designs))
	for _, d := range seed.Designs {
		d = d.Clone()
		if d.Description == "" {
			d.Description = d.Title
		}
		if d.Stitches == 0 {
			d.Stitches = defaultStitches
		}
		designs = append(designs, d)
	}

	s.mu.Lock()
	s.designs = designs
	s.reviews = append([]models.Review{}, seed.Reviews...)
	s.ready = true
	s.mu.Unlock()

	log.Printf("📦 Catalog loaded: %d designs, %d reviews", len(designs), len(seed.Reviews))
	s.emit(Change{Kind: ChangeLoaded})
	return nil
}
