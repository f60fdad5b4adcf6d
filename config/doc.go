// Package config loads and validates the run configuration of the confgraph
// command: graph parameters, output path, logging and metrics.
//
// Files are YAML (gopkg.in/yaml.v3, unknown keys rejected). Values are
// validated with go-playground/validator struct tags; any failure is reported
// as ErrInvalidConfig naming the offending yaml key, e.g.
//
//	config: invalid configuration: graph.max_degree: must be at least 1
package config
