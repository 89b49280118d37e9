package entity

import "github.com/google/uuid"

// Principal is the authenticated caller, passed explicitly into usecases.
type Principal struct {
	UserID      uuid.UUID
	Email       string
	RoleID      int
	Permissions []string
	TokenID     string
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.RoleID == RoleIDAdmin
}

// Can reports whether the principal holds permission. Admins hold all.
func (p *Principal) Can(permission string) bool {
	if p == nil {
		return false
	}
	if p.IsAdmin() {
		return true
	}
	for _, granted := range p.Permissions {
		if granted == permission {
			return true
		}
	}
	return false
}
