// Package services holds the business rules of the school back office. Each
// service validates its input, delegates to a store and returns affected-row
// counts unchanged so that "not found" stays a zero-change success.
//
// Services defined in this package:
//   - StaffRoleService: staff roles and the default role seed
//   - ClassService, SectionService: the class/section hierarchy
//   - StaffService, StudentService: person records and their archive lifecycle
//   - BusRouteService, BusStopService: transport routes and stops
//   - FeeStructureService, FeeService: expected and materialized fees
//   - SettingsService: the opaque settings document
//   - HealthService: store reachability
package services

import (
	"fmt"
	"strings"

	"github.com/yigit/schoolfm/internal/pkg/apperrors"
)

// validateID rejects non-positive keys before they reach the store.
func validateID(id int64, entity string) error {
	if id <= 0 {
		return apperrors.NewValidationError("id", fmt.Sprintf("invalid %s ID", entity))
	}
	return nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, field+" cannot be empty")
	}
	return nil
}

func requirePositive(field string, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError(field, field+" must be greater than 0")
	}
	return nil
}

func optionalPositive(field string, id *int64) error {
	if id == nil {
		return nil
	}
	return requirePositive(field, *id)
}

func requireNonNegative(field string, amount float64) error {
	if amount < 0 {
		return apperrors.NewValidationError(field, field+" must be at least 0")
	}
	return nil
}
