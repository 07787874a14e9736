package binder

import (
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

const datastarHeader = "Datastar-Request"

// Signals decodes the Datastar signal store into v. GET requests carry it in
// the datastar query parameter, other methods in the JSON body.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get(datastarHeader) != "true" {
			return ErrBinderNotApplicable
		}
		if r.Method == http.MethodGet && !r.URL.Query().Has("datastar") {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrFailedToReadSignals, err)
		}
		return nil
	}
}
