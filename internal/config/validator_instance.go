package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/coachmark/pkg/coachmark"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	targetIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("target_id", func(fl validator.FieldLevel) bool {
			return targetIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("term_color", func(fl validator.FieldLevel) bool {
			return coachmark.ValidColor(fl.Field().String())
		})

		_ = v.RegisterValidation("weight", func(fl validator.FieldLevel) bool {
			return isWeight(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

func isWeight(s string) bool {
	for _, w := range coachmark.Weights {
		if strings.EqualFold(s, string(w)) {
			return true
		}
	}
	return false
}
