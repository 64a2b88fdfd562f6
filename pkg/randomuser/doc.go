// Package randomuser is a minimal client for the randomuser.me profile API.
//
// The client issues a single GET per Fetch with the configured batch size and
// nationality allow-list, and validates the decoded body before returning it:
// a response either yields fully populated Result values or an error. There
// is no retry and no client-side timeout; cancel the context to abandon a
// request.
//
//	c := randomuser.New(randomuser.WithResults(24))
//	results, err := c.Fetch(ctx)
//	switch {
//	case errors.Is(err, randomuser.ErrRequestFailed):
//	case errors.Is(err, randomuser.ErrUnexpectedStatus):
//	case errors.Is(err, randomuser.ErrInvalidShape):
//	}
package randomuser
