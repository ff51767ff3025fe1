package domain

import "time"

// UserRole defines the possible roles a caller can present.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAgent    UserRole = "AGENT"
	RoleSupplier UserRole = "SUPPLIER"
	RoleStaff    UserRole = "STAFF"
	RoleAdmin    UserRole = "ADMIN"
)

// ValidUserRole reports whether r is one of the known roles.
func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleCustomer, RoleAgent, RoleSupplier, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// User represents an authenticated user of the application in the domain.
type User struct {
	UserID   string   `json:"userID"` // Primary Key (e.g., UUID)
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
