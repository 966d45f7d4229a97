// internal/core/domain/status.go
package domain

import "fmt"

// API-facing status strings differ from the persisted ones for stock records.
// Translation is done by total functions with exhaustive case coverage so a
// new status cannot silently fall through a lookup table.

// APIStockStatus is the wire representation of a stock status.
type APIStockStatus string

const (
	APIStockValid    APIStockStatus = "valid"
	APIStockDefect   APIStockStatus = "defect"
	APIStockNotFound APIStockStatus = "not_found"
)

// StockStatusToAPI translates a persisted stock status to its API form.
func StockStatusToAPI(s StockStatus) (APIStockStatus, error) {
	switch s {
	case StockValid:
		return APIStockValid, nil
	case StockDefect:
		return APIStockDefect, nil
	case StockNotFound:
		return APIStockNotFound, nil
	default:
		return "", fmt.Errorf("unknown stock status %q", s)
	}
}

// StockStatusFromAPI translates an API stock status to its persisted form.
func StockStatusFromAPI(s APIStockStatus) (StockStatus, error) {
	switch s {
	case APIStockValid:
		return StockValid, nil
	case APIStockDefect:
		return StockDefect, nil
	case APIStockNotFound:
		return StockNotFound, nil
	default:
		return "", fmt.Errorf("%w: unknown stock status %q", ErrValidation, s)
	}
}

// StockStatusToTaskTarget translates a persisted stock status to the task
// target wire form, which spells NotFound without an underscore.
func StockStatusToTaskTarget(s StockStatus) (string, error) {
	switch s {
	case StockValid:
		return "valid", nil
	case StockDefect:
		return "defect", nil
	case StockNotFound:
		return "notfound", nil
	default:
		return "", fmt.Errorf("unknown stock status %q", s)
	}
}

// AcceptanceStockFromAPI translates an intake stock status. Acceptances may
// only place items into Valid or Defect.
func AcceptanceStockFromAPI(s APIStockStatus) (StockStatus, error) {
	switch s {
	case APIStockValid:
		return StockValid, nil
	case APIStockDefect:
		return StockDefect, nil
	default:
		return "", fmt.Errorf("%w: acceptance stock must be valid or defect, got %q", ErrValidation, s)
	}
}
