// Package qrcode renders contact cards as QR code PNG images.
//
// Contact describes a person; VCard serializes it as a vCard 3.0 document and
// GenerateContact encodes that document with github.com/skip2/go-qrcode.
// Phones scanning the code offer to save the contact:
//
//	png, err := qrcode.GenerateContact(qrcode.Contact{
//		FirstName: "Ann",
//		LastName:  "Lee",
//		Email:     "ann.lee@example.com",
//	}, 256)
//
// Generate encodes arbitrary text. Errors are package-level sentinels to be
// compared with errors.Is.
package qrcode
