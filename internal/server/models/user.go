// Package models defines the server-side entities persisted by the store.
package models

import "time"

// User is a registered account. Password holds the bcrypt digest.
type User struct {
	ID        string
	UserName  string
	Email     string
	Password  string
	CreatedAt time.Time
}
