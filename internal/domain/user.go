package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "A"
	RoleManager Role = "M"
	RoleCrew    Role = "C"
)

type User struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	PasswordHash      string    `json:"-"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	Role              Role      `json:"role"`
	EmailNotification bool      `json:"emailNotification"`
	PushNotification  bool      `json:"pushNotification"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	Version           int32     `json:"-"`
}
