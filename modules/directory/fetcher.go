package directory

import (
	"context"

	"github.com/dmitrymomot/userdir/pkg/randomuser"
)

// Fetcher loads one batch of users.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]User, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]User, error)

func (f FetcherFunc) FetchUsers(ctx context.Context) ([]User, error) {
	return f(ctx)
}

// ResultSource is satisfied by *randomuser.Client.
type ResultSource interface {
	Fetch(ctx context.Context) ([]randomuser.Result, error)
}

// FromRandomUser adapts a randomuser client. Its errors pass through
// unchanged so callers can match randomuser sentinels.
func FromRandomUser(src ResultSource) Fetcher {
	return FetcherFunc(func(ctx context.Context) ([]User, error) {
		results, err := src.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		users := make([]User, 0, len(results))
		for _, r := range results {
			users = append(users, userFromResult(r))
		}
		return users, nil
	})
}
