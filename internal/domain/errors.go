package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyName  = errors.New("name must not be empty")
	ErrEmptyTitle = errors.New("title must not be empty")
	ErrBadColor   = errors.New("invalid color")
)

// GatewayError represents a failed call to the persistence gateway
type GatewayError struct {
	Op     string // Operation: "create_category", "safe_order", etc.
	ID     string // Optional: entity ID the call concerned
	Status int    // HTTP status, 0 for transport failures
	Err    error  // Underlying error
}

func (e *GatewayError) Error() string {
	switch {
	case e.ID != "" && e.Status != 0:
		return fmt.Sprintf("gateway %s [%s]: status %d", e.Op, e.ID, e.Status)
	case e.Status != 0:
		return fmt.Sprintf("gateway %s: status %d", e.Op, e.Status)
	case e.ID != "":
		return fmt.Sprintf("gateway %s [%s]: %v", e.Op, e.ID, e.Err)
	default:
		return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
	}
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
