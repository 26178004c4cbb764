package models

import "github.com/google/uuid"

// Caller is the authenticated identity a request acts on behalf of.
// IPAddress and UserAgent are copied into audit records.
type Caller struct {
	UserID    uuid.UUID
	Role      string
	IPAddress string
	UserAgent string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

func (c Caller) IsOwner() bool {
	return c.Role == RoleOwner
}

func (c Caller) IsCleaner() bool {
	return c.Role == RoleCleaner
}

// AuditUserID is the user recorded on audit logs; nil for the system caller.
func (c Caller) AuditUserID() *uuid.UUID {
	if c.UserID == uuid.Nil {
		return nil
	}
	id := c.UserID
	return &id
}

// SystemCaller acts with admin rights for command-line operations.
func SystemCaller() Caller {
	return Caller{UserID: uuid.Nil, Role: RoleAdmin, UserAgent: "rentalops-cli"}
}
