// Package sample holds declarations for the collector tests: plain
// functions, constructors, methods, documented fields and an embedding
// diamond.
package sample

import "errors"

// ErrBadSize reports an impossible geometry.
var ErrBadSize = errors.New("bad size")

// Resize scales an image in place.
//
// :param w: Target width
// :type w: int
// :param h: Target height, no type
// :type missing: string
// :param opts: Rendering options,
//     one per line
// :return: nothing useful
// :rtype: error
// :raises ErrBadSize: when w is negative
// :raises ErrBadSize: when h is negative
func Resize(w, h int, opts ...string) error {
	if w < 0 || h < 0 {
		return ErrBadSize
	}
	return nil
}

// Connect opens a session.
//
// Args:
//     addr (string): Server address
//     retries: Retry count
//         before giving up
// Returns:
//     error: nil on success
// Raises:
//     ErrTimeout: when the server is unreachable
func Connect(addr string, retries int) error {
	_ = addr
	_ = retries
	return nil
}

// plain has no doc markers at all.
func plain(a int) int { return a }

// Account is a registered user account.
type Account struct {
	// Login is the unique login name.
	Login string
	quota int // private byte budget
}

// NewAccount creates an account.
//
// :param login: Unique login name
// :type login: string
func NewAccount(login string) *Account {
	return &Account{Login: login}
}

// Deactivate disables the account.
//
// :param reason: Audit trail note
func (a *Account) Deactivate(reason string) {
	_ = reason
}

// Quota returns the remaining byte budget.
func (a *Account) Quota() int { return a.quota }

// Ticket is a support ticket.
//
// :param subject: One-line summary
// :type subject: string
type Ticket struct {
	Subject string
}

func NewTicket(subject string) *Ticket {
	return &Ticket{Subject: subject}
}

// Marker carries no behavior.
type Marker struct{}

// Device is the root of the peripheral hierarchy.
type Device struct {
	ID string
}

// Keyboard is a key-entry device.
type Keyboard struct {
	Device
	Keys int
}

// Mouse is a pointing device.
type Mouse struct {
	Device
	Buttons int
}

// ComboDevice is a keyboard with an integrated mouse.
type ComboDevice struct {
	Keyboard
	Mouse
}
