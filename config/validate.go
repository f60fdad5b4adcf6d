// SPDX-License-Identifier: MIT
// Package: confgraph/config
//
// validate.go - struct-tag validation and error formatting.

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/confgraph/builder"
	"github.com/katalvlaran/confgraph/export"
)

// validate is shared; validator.Validate is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report yaml keys instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "idscheme", func(fl validator.FieldLevel) bool {
		_, ok := builder.IDSchemeByName(fl.Field().String())
		return ok
	})
	mustRegister(v, "exportpath", func(fl validator.FieldLevel) bool {
		path := fl.Field().String()
		if path == StdoutPath {
			return true
		}
		_, _, err := export.ParsePath(path)
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("config: register %q: %v", tag, err))
	}
}

// Validate checks every field constraint and reports the first failure.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	e := verrs[0]
	// Namespace is "Config.graph.size"; drop the root type name.
	_, field, _ := strings.Cut(e.Namespace(), ".")

	var msg string
	switch e.Tag() {
	case "min":
		msg = "must be at least " + e.Param()
	case "gt":
		msg = "must be greater than " + e.Param()
	case "oneof":
		msg = "must be one of [" + e.Param() + "]"
	case "endswith":
		msg = "must end with " + e.Param()
	case "idscheme":
		msg = fmt.Sprintf("unknown id scheme %q (decimal, hex, base36, excel, prefix:<p>)", e.Value())
	case "exportpath":
		msg = fmt.Sprintf("unsupported output extension in %q (.yaml, .yml, .json, optional .sz)", e.Value())
	default:
		msg = "validation failed (" + e.Tag() + ")"
	}

	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, msg)
}
