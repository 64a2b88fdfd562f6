package directory

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/userdir/pkg/qrcode"
	"github.com/dmitrymomot/userdir/pkg/randomuser"
)

// User is one fetched profile. Values are never mutated after a fetch.
type User struct {
	ID          string
	FirstName   string
	LastName    string
	Nationality string
	Email       string
	Phone       string
	AvatarURL   string
	City        string
	Country     string
	Age         int
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Contact converts the user into vCard properties.
func (u User) Contact() qrcode.Contact {
	return qrcode.Contact{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		City:      u.City,
		Country:   u.Country,
		PhotoURL:  u.AvatarURL,
	}
}

// userFromResult maps a validated API record. Records without a login UUID
// get a random one; IDs only address cards and QR codes.
func userFromResult(r randomuser.Result) User {
	u := User{
		ID:          uuid.NewString(),
		Email:       r.Email,
		Phone:       r.Phone,
		Nationality: r.Nat,
	}
	if r.Login != nil && r.Login.UUID != "" {
		u.ID = r.Login.UUID
	}
	if r.Name != nil {
		u.FirstName, u.LastName = r.Name.First, r.Name.Last
	}
	if r.Picture != nil {
		u.AvatarURL = r.Picture.Large
	}
	if r.Location != nil {
		u.City, u.Country = r.Location.City, r.Location.Country
	}
	if r.Dob != nil {
		u.Age = r.Dob.Age
	}
	return u
}
