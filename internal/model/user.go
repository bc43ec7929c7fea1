package model

import "time"

// User is a registered account. Password holds the bcrypt hash, never
// plaintext, and must not be serialized.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Age       int
	Phone     string
	Diseases  []string
	CreatedAt time.Time
}
