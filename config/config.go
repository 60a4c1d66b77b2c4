package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/royalcat/rastermap/osmload"
	"github.com/royalcat/rastermap/raster"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen       string       `yaml:"listen"`
	Map          string       `yaml:"map"`
	TilesDir     string       `yaml:"tiles-dir"`
	OtelEndpoint string       `yaml:"otel-endpoint"`
	Raster       RasterConfig `yaml:"raster"`
	Highways     []string     `yaml:"highways"`
}

type RasterConfig struct {
	Root struct {
		ULLon float64 `yaml:"ullon"`
		ULLat float64 `yaml:"ullat"`
		LRLon float64 `yaml:"lrlon"`
		LRLat float64 `yaml:"lrlat"`
	} `yaml:"root"`
	TileSize float64 `yaml:"tile-size"`
	MaxDepth int     `yaml:"max-depth"`
}

func (c RasterConfig) ToRaster() raster.Config {
	return raster.Config{
		Root: raster.Box{
			ULLon: c.Root.ULLon,
			ULLat: c.Root.ULLat,
			LRLon: c.Root.LRLon,
			LRLat: c.Root.LRLat,
		},
		TileSize: c.TileSize,
		MaxDepth: c.MaxDepth,
	}
}

func Default() Config {
	def := raster.ConfigDefault()

	var rc RasterConfig
	rc.Root.ULLon = def.Root.ULLon
	rc.Root.ULLat = def.Root.ULLat
	rc.Root.LRLon = def.Root.LRLon
	rc.Root.LRLat = def.Root.LRLat
	rc.TileSize = def.TileSize
	rc.MaxDepth = def.MaxDepth

	return Config{
		Listen:   ":4567",
		TilesDir: "img",
		Raster:   rc,
		Highways: slices.Clone(osmload.DefaultHighways),
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values.
func Load(file string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", file, err)
	}
	if _, err := raster.New(cfg.Raster.ToRaster()); err != nil {
		return cfg, fmt.Errorf("invalid raster config: %w", err)
	}
	return cfg, nil
}
