package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PhoneNumber  string
	Cpf          string
	Username     string
	PasswordHash string
	IsAdmin      bool
	SectorID     string
	CreatedAt    time.Time
}

// UserDetail joins the user with its sector.
type UserDetail struct {
	User
	Sector Sector
}

type Sector struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
