package model

import "time"

// User is a registered account, keyed by the provider identity.
type User struct {
	ID        string
	GoogleID  string
	Email     string
	Name      string
	Picture   string
	CreatedAt time.Time
}
