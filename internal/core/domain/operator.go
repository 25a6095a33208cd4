package domain

import "github.com/google/uuid"

type OperatorRole string

const (
	RoleAdmin OperatorRole = "ADMIN"
	RoleStaff OperatorRole = "STAFF"
)

// Operator is a staff actor performing scans and consumptions. Staff see
// only amenities they own; admins see everything.
type Operator struct {
	ID      uuid.UUID
	EventID uuid.UUID
	Name    string
	Role    OperatorRole
}

func (o *Operator) IsAdmin() bool {
	return o.Role == RoleAdmin
}
