package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User models a registered account. Clients own orders; admins manage the
// catalog.
type User struct {
	ID           int64     `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Roles        []string  `json:"roles" bson:"roles"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
