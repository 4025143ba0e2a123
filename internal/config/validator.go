package config

import (
	"fmt"

	cmerrors "github.com/alexisbeaulieu97/coachmark/pkg/errors"
)

// ValidateTour performs schema and cross-field validation on a tour.
func ValidateTour(tour *Tour) error {
	if tour == nil {
		return cmerrors.NewValidationError("tour", "tour is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(tour); err != nil {
		return convertValidationError(err)
	}

	orders := make(map[int]int, len(tour.Marks))
	targets := make(map[string]int, len(tour.Marks))

	for i, mark := range tour.Marks {
		if prev, exists := orders[mark.Order]; exists {
			return cmerrors.NewValidationError(fieldForMark(i, "order"), fmt.Sprintf("order %d already used by marks[%d]", mark.Order, prev), nil)
		}
		if prev, exists := targets[mark.Target]; exists {
			return cmerrors.NewValidationError(fieldForMark(i, "target"), fmt.Sprintf("target %q already marked by marks[%d]", mark.Target, prev), nil)
		}
		orders[mark.Order] = i
		targets[mark.Target] = i
	}

	return nil
}

// ValidateTargets checks that every mark names a region in known.
func ValidateTargets(tour *Tour, known []string) error {
	if tour == nil {
		return nil
	}
	index := make(map[string]struct{}, len(known))
	for _, k := range known {
		index[k] = struct{}{}
	}
	for _, mark := range tour.Marks {
		if _, ok := index[mark.Target]; !ok {
			return cmerrors.NewTargetError(mark.Target, mark.Order, nil)
		}
	}
	return nil
}
