package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Actor identifies the caller of a service operation: the authenticated user
// plus the role claim attached to the request.
type Actor struct {
	UserID string
	Role   UserRole
}

// IsAdmin reports whether the actor carries the administrative role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
