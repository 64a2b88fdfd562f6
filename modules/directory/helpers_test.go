package directory_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/userdir/modules/directory"
)

var (
	ann = directory.User{
		ID: "u-ann", FirstName: "Ann", LastName: "Lee", Nationality: "US",
		Email: "a@x.com", Phone: "555-0101", AvatarURL: "https://img.example/ann.jpg",
		City: "Reno", Country: "USA", Age: 30,
	}
	bo = directory.User{
		ID: "u-bo", FirstName: "Bo", LastName: "Ng", Nationality: "GB",
		Email: "b@y.com", Phone: "016977 0123", AvatarURL: "https://img.example/bo.jpg",
		City: "Hull", Country: "UK", Age: 22,
	}
)

func static(users ...directory.User) directory.Fetcher {
	return directory.FetcherFunc(func(context.Context) ([]directory.User, error) {
		return users, nil
	})
}

// batch24 returns 24 users cycling through four nationalities; one US record
// uses a lowercase code.
func batch24() []directory.User {
	nats := []string{"US", "GB", "FR", "us"}
	users := make([]directory.User, 0, 24)
	for i := range 24 {
		users = append(users, directory.User{
			ID:          fmt.Sprintf("id-%02d", i),
			FirstName:   fmt.Sprintf("First%02d", i),
			LastName:    "Last",
			Nationality: nats[i%len(nats)],
			Email:       fmt.Sprintf("user%02d@example.com", i),
			Phone:       "000",
			AvatarURL:   "https://img.example/x.jpg",
			City:        "City",
			Country:     "Country",
			Age:         20 + i,
		})
	}
	return users
}
