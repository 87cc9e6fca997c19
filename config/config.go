// Package config holds the environment-backed process configuration.
// Everything that shapes generation itself (cardinality, policies,
// sizes) travels as explicit arguments instead, so runs stay
// reproducible.
package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	// CatalogDir is where generated catalogs are written and read.
	CatalogDir string `env:"CATALOG_DIR" envDefault:"./out"`

	// RenderDir is where MIDI renderings are written.
	RenderDir string `env:"RENDER_DIR" envDefault:"./render"`

	// ServeAddr is the catalog search server's listen address.
	ServeAddr string `env:"SERVE_ADDR" envDefault:":8080"`

	// S3Bucket/S3Region configure the publish hand-off. Publishing is
	// refused when the bucket is unset.
	S3Bucket string `env:"S3_BUCKET"`
	S3Region string `env:"S3_REGION" envDefault:"us-east-1"`
}

func Load() Config {
	var c Config
	if err := env.Parse(&c); err != nil {
		panic("Could not parse environment: " + err.Error())
	}
	return c
}
