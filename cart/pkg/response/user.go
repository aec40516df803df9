package response

import (
	"strings"

	"github.com/google/uuid"
)

// User is the shape consumed from the user service. The cart only ever uses
// ID; role and status gating belongs to the caller, not the aggregate.
type User struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
	Status string    `json:"status"`
}

func (u User) IsActive() bool {
	return strings.EqualFold(u.Status, "active")
}

func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Role, "admin")
}

func (u User) IsUser() bool {
	return strings.EqualFold(u.Role, "user")
}
