package directory

import (
	"strings"

	"github.com/dmitrymomot/userdir/pkg/sanitizer"
	"github.com/dmitrymomot/userdir/pkg/validator"
)

// maxQueryLength bounds the search signal accepted from the browser.
const maxQueryLength = 200

// Criteria is the state of the search input and the nationality selector at
// the time of one UI event. JSON tags match the page signals.
type Criteria struct {
	Query       string `json:"query"`
	Nationality string `json:"nat"`
}

// Validate checks the criteria against the configured nationality list.
// An empty list accepts any nationality.
func (c Criteria) Validate(nationalities []string) error {
	rules := []validator.Rule{
		validator.MaxLenString("query", c.Query, maxQueryLength),
	}
	if len(nationalities) > 0 {
		rules = append(rules, validator.OneOfFold("nat", strings.TrimSpace(c.Nationality), nationalities))
	}
	return validator.Apply(rules...)
}

var normalizeQuery = sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)

// Filter returns the users matching c, in their original order. The
// result never shares a backing array with users.
func Filter(users []User, c Criteria) []User {
	query := normalizeQuery(c.Query)
	nat := strings.TrimSpace(c.Nationality)

	out := make([]User, 0, len(users))
	for _, u := range users {
		if query != "" && !strings.Contains(searchText(u), query) {
			continue
		}
		if nat != "" && !strings.EqualFold(u.Nationality, nat) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// searchText is the lowercased composite the query is matched against.
func searchText(u User) string {
	return strings.ToLower(strings.Join([]string{
		u.FirstName, u.LastName, u.Email, u.City, u.Country,
	}, " "))
}
