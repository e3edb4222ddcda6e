package model

import "time"

const RoleAdmin = "admin"

// User is a staff member allowed to operate dashboards.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
