package domain

import "time"

// Account is the persisted credential record. PasswordHash and Salt are
// 64-character hex strings; the salt is generated once at creation and
// reused for every subsequent password change. Verified defaults to false
// and nothing in this service ever flips it.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Salt         string
	Verified     bool
	DateCreated  time.Time
	LastLogin    time.Time
	Admin        bool
}
