package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	cmerrors "github.com/alexisbeaulieu97/coachmark/pkg/errors"
)

// convertValidationError normalizes validator errors into tour validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return cmerrors.NewValidationError(field, msg, err)
	}

	return cmerrors.NewValidationError("tour", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace, leaving the
// path as it is written in the file, e.g. "marks[2].background".
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForMark(index int, field string) string {
	return fmt.Sprintf("marks[%d].%s", index, field)
}
