package randomuser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/userdir/pkg/validator"
)

// Decode reads a response body and validates it. Any structural problem,
// including a single malformed record, fails the whole batch with ErrInvalidShape.
func Decode(r io.Reader) ([]Result, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, errors.Join(ErrInvalidShape, err)
	}

	if resp.Results == nil {
		if resp.Error != "" {
			return nil, errors.Join(ErrInvalidShape, fmt.Errorf("api error: %s", resp.Error))
		}
		return nil, errors.Join(ErrInvalidShape, errors.New(`missing "results" field`))
	}

	results := *resp.Results
	for i, res := range results {
		if err := Validate(i, res); err != nil {
			return nil, errors.Join(ErrInvalidShape, err)
		}
	}
	return results, nil
}

// Validate checks one record. i is used to build field paths such as
// "results[3].name.first".
func Validate(i int, r Result) error {
	field := func(name string) string {
		return fmt.Sprintf("results[%d].%s", i, name)
	}

	rules := []validator.Rule{
		validator.Present(field("name"), r.Name != nil),
		validator.RequiredString(field("email"), r.Email),
		validator.RequiredString(field("phone"), r.Phone),
		validator.Present(field("picture"), r.Picture != nil),
		validator.Present(field("location"), r.Location != nil),
		validator.Present(field("dob"), r.Dob != nil),
		validator.LenString(field("nat"), r.Nat, 2),
	}
	if r.Name != nil {
		rules = append(rules,
			validator.RequiredString(field("name.first"), r.Name.First),
			validator.RequiredString(field("name.last"), r.Name.Last),
		)
	}
	if r.Picture != nil {
		rules = append(rules, validator.ValidURL(field("picture.large"), r.Picture.Large))
	}
	if r.Location != nil {
		rules = append(rules,
			validator.RequiredString(field("location.city"), r.Location.City),
			validator.RequiredString(field("location.country"), r.Location.Country),
		)
	}
	if r.Dob != nil {
		rules = append(rules, validator.MinNum(field("dob.age"), r.Dob.Age, 0))
	}

	return validator.Apply(rules...)
}
