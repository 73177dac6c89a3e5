// SPDX-License-Identifier: MIT

package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/pwbench/pipeline"
	"github.com/katalvlaran/pwbench/sorting"
)

// validate carries the custom name checks for sort selections.
var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := sorting.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("criterion", func(fl validator.FieldLevel) bool {
		_, err := sorting.ParseCriterion(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("scenario", func(fl validator.FieldLevel) bool {
		_, err := pipeline.ParseScenario(fl.Field().String())
		return err == nil
	})
}
