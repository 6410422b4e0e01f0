package user

// Status is derived from the activity and verification flags and never stored.
type Status int

const (
	StatusUnspecified Status = iota
	StatusActive
	StatusPendingVerification
	StatusDeactivated
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPendingVerification:
		return "pending_verification"
	case StatusDeactivated:
		return "deactivated"
	default:
		return "unspecified"
	}
}

// DeriveStatus maps the flags to a status. Deactivation takes precedence over verification.
func DeriveStatus(isActive, isVerified bool) Status {
	switch {
	case !isActive:
		return StatusDeactivated
	case !isVerified:
		return StatusPendingVerification
	default:
		return StatusActive
	}
}

type Role int

const (
	RoleUnspecified Role = iota
	RoleCustomer
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleAdmin:
		return "admin"
	default:
		return "unspecified"
	}
}

func DeriveRole(isPrivileged bool) Role {
	if isPrivileged {
		return RoleAdmin
	}
	return RoleCustomer
}
