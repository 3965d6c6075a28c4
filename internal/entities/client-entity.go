package entities

import "time"

type Client struct {
	ID        uint64     `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Phone     *string    `json:"phone" db:"phone"`
	Email     *string    `json:"email" db:"email"`
	Notes     *string    `json:"notes" db:"notes"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	DeletedAt *time.Time `json:"deleted_at" db:"deleted_at"`
}
