// Package catalog loads the building catalog from bundled files or Postgres
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/randytsao24/decomap/internal/models"
)

var validate = validator.New()

// record is one building as written in a dataset file. Coordinates are
// pointers so a missing lat or lng fails validation instead of reading as 0.
type record struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Address     string   `json:"address" yaml:"address" validate:"required"`
	Lat         *float64 `json:"lat" yaml:"lat" validate:"required,gte=-90,lte=90"`
	Lng         *float64 `json:"lng" yaml:"lng" validate:"required,gte=-180,lte=180"`
	Architect   string   `json:"architect" yaml:"architect"`
	Year        int      `json:"year" yaml:"year" validate:"omitempty,gte=1800,lte=2100"`
	Description string   `json:"description" yaml:"description"`
	ImageURL    string   `json:"image_url" yaml:"image_url" validate:"omitempty,url"`
}

type dataset struct {
	Buildings []record `json:"buildings" yaml:"buildings"`
}

// FileRepository reads the catalog from a JSON or YAML file on every load
type FileRepository struct {
	fsys fs.FS
	path string
}

// NewFileRepository reads path from fsys. The format follows the extension.
func NewFileRepository(fsys fs.FS, path string) *FileRepository {
	return &FileRepository{fsys: fsys, path: path}
}

func (r *FileRepository) LoadBuildings(ctx context.Context) ([]models.Building, error) {
	data, err := fs.ReadFile(r.fsys, r.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data, path.Ext(r.path))
}

// Parse decodes and validates a dataset. ext is ".json", ".yaml" or ".yml".
// File order is kept.
func Parse(data []byte, ext string) ([]models.Building, error) {
	var ds dataset

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("parsing catalog JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("parsing catalog YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	buildings := make([]models.Building, 0, len(ds.Buildings))
	for i, rec := range ds.Buildings {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%q): %w", i, rec.ID, err)
		}
		buildings = append(buildings, rec.building())
	}
	return buildings, nil
}

func (rec record) building() models.Building {
	return models.Building{
		ID:          rec.ID,
		Name:        rec.Name,
		Address:     rec.Address,
		Location:    models.Coordinate{Lat: *rec.Lat, Lng: *rec.Lng},
		Architect:   rec.Architect,
		Year:        rec.Year,
		Description: rec.Description,
		ImageURL:    rec.ImageURL,
	}
}
