package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals creates a binder that decodes the DataStar signal payload into v.
// Unknown signals are ignored; missing ones leave fields at their zero value.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseSignals, err)
		}
		return nil
	}
}
