package entity

import "time"

// Contact is append only.
type Contact struct {
	ContactID   string    `db:"contact_id"`
	UserPhone   string    `db:"user_phone"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	DateOfBirth time.Time `db:"date_of_birth"`
	Email       string    `db:"email"`
	Gender      *string   `db:"gender"`
	Comment     string    `db:"comment"`
	CreatedAt   time.Time `db:"created_at"`
}
