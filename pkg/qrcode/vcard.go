package qrcode

import "strings"

// Contact is the subset of vCard properties the directory exports.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	City      string
	Country   string
	PhotoURL  string
}

var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", `\,`,
	";", `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// VCard serializes c as a vCard 3.0 document with CRLF line endings.
// Empty properties are omitted.
func VCard(c Contact) string {
	esc := vcardEscaper.Replace

	var b strings.Builder
	line := func(parts ...string) {
		for _, p := range parts {
			b.WriteString(p)
		}
		b.WriteString("\r\n")
	}

	line("BEGIN:VCARD")
	line("VERSION:3.0")
	line("N:", esc(c.LastName), ";", esc(c.FirstName), ";;;")
	line("FN:", esc(strings.TrimSpace(c.FirstName+" "+c.LastName)))
	if c.Email != "" {
		line("EMAIL;TYPE=INTERNET:", esc(c.Email))
	}
	if c.Phone != "" {
		line("TEL;TYPE=CELL:", esc(c.Phone))
	}
	if c.City != "" || c.Country != "" {
		line("ADR;TYPE=HOME:;;;", esc(c.City), ";;;", esc(c.Country))
	}
	if c.PhotoURL != "" {
		line("PHOTO;VALUE=URI:", c.PhotoURL)
	}
	line("END:VCARD")
	return b.String()
}

// GenerateContact encodes the vCard of c as a PNG QR code.
func GenerateContact(c Contact, size int) ([]byte, error) {
	if strings.TrimSpace(c.FirstName+c.LastName) == "" {
		return nil, ErrEmptyContent
	}
	return Generate(VCard(c), size)
}
