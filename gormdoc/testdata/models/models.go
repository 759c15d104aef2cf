// Package models declares the documented model structs for the tests.
package models

// User is a registered account.
type User struct {
	UID   uint
	Login string
}

// Device is a hardware token enrolled by a user.
type Device struct {
	ID     uint
	Serial string
}
