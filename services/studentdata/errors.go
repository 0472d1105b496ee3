package studentdata

import (
	"errors"
	"fmt"

	"hacview-backend/lib/scrapers/homeaccess"
)

// The three failure kinds the presentation layer distinguishes. The
// web UIs still collapse them into one coarse message for the user,
// but logs and metrics keep the kind.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrExtraction     = errors.New("extraction failed")
	ErrTransport      = errors.New("transport failed")
)

// Classify wraps a pipeline error with its failure kind. Anything
// that isn't a rejected login or missing markup — connection errors,
// timeouts, unparseable responses — counts as transport.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, homeaccess.ErrLoginFailed):
		return fmt.Errorf("%w: %s", ErrAuthentication, err)
	case errors.Is(err, homeaccess.ErrMissingElement):
		return fmt.Errorf("%w: %s", ErrExtraction, err)
	default:
		return fmt.Errorf("%w: %s", ErrTransport, err)
	}
}
