package model

import "github.com/google/uuid"

// Principal is the authenticated identity resolved from the access token.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}

func (p Principal) IsAdmin() bool    { return p.Role == RoleAdmin }
func (p Principal) IsAgent() bool    { return p.Role == RoleAgent }
func (p Principal) IsCustomer() bool { return p.Role == RoleCustomer }
