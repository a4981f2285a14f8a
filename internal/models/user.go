package models

// User represents the columns of the users table this service reads.
type User struct {
	UserID      string `db:"user_id"`
	DisplayName string `db:"display_name"`
}
