package models

// User represents a row of the users table.
type User struct {
	ID       int64  `json:"id" db:"id"`       // Primary key
	Name     string `json:"name" db:"name"`   // Display name
	Email    string `json:"email" db:"email"` // Unique login email
	Password string `json:"-" db:"password"`  // bcrypt hash, never serialized
}
