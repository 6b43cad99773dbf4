package fretmap

import (
	"github.com/rs/zerolog"

	"github.com/fretmap/fretmap/pkg/registry"
	"github.com/fretmap/fretmap/pkg/resolver"
	"github.com/fretmap/fretmap/pkg/validation"
)

// config holds the assembled configuration for a Fretmap instance
type config struct {
	registry       registry.Registry
	ruleConfig     validation.RuleConfig
	resolverConfig resolver.Config
	logger         *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		ruleConfig:     validation.DefaultRuleConfig(),
		resolverConfig: resolver.DefaultConfig(),
	}
}

// Option is a function that configures a Fretmap instance
type Option func(*config) error

// WithRegistry configures the registry backing the pipeline. Without it an
// empty in-memory registry is used.
func WithRegistry(reg registry.Registry) Option {
	return func(c *config) error {
		c.registry = reg
		return nil
	}
}

// WithRuleConfig configures the business rule bounds.
func WithRuleConfig(cfg validation.RuleConfig) Option {
	return func(c *config) error {
		c.ruleConfig = cfg
		return nil
	}
}

// WithResolverConfig configures the resolver thresholds.
func WithResolverConfig(cfg resolver.Config) Option {
	return func(c *config) error {
		c.resolverConfig = cfg
		return nil
	}
}

// WithLogger configures the logger attached to pipeline contexts.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
