package userpb

import (
	"fmt"
	"strconv"
)

type UserStatus int32

const (
	UserStatus_UNSPECIFIED UserStatus = iota
	UserStatus_ACTIVE
	UserStatus_PENDING_VERIFICATION
	UserStatus_DEACTIVATED
)

var userStatusNames = map[UserStatus]string{
	UserStatus_UNSPECIFIED:          "USER_STATUS_UNSPECIFIED",
	UserStatus_ACTIVE:               "USER_STATUS_ACTIVE",
	UserStatus_PENDING_VERIFICATION: "USER_STATUS_PENDING_VERIFICATION",
	UserStatus_DEACTIVATED:          "USER_STATUS_DEACTIVATED",
}

func (s UserStatus) String() string {
	return enumString(userStatusNames, s)
}

func (s UserStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *UserStatus) UnmarshalText(b []byte) error {
	return enumParse(userStatusNames, b, s)
}

type UserRole int32

const (
	UserRole_UNSPECIFIED UserRole = iota
	UserRole_CUSTOMER
	UserRole_ADMIN
)

var userRoleNames = map[UserRole]string{
	UserRole_UNSPECIFIED: "USER_ROLE_UNSPECIFIED",
	UserRole_CUSTOMER:    "USER_ROLE_CUSTOMER",
	UserRole_ADMIN:       "USER_ROLE_ADMIN",
}

func (r UserRole) String() string {
	return enumString(userRoleNames, r)
}

func (r UserRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *UserRole) UnmarshalText(b []byte) error {
	return enumParse(userRoleNames, b, r)
}

type SortOrder int32

const (
	SortOrder_UNSPECIFIED SortOrder = iota
	SortOrder_ASC
	SortOrder_DESC
)

var sortOrderNames = map[SortOrder]string{
	SortOrder_UNSPECIFIED: "SORT_ORDER_UNSPECIFIED",
	SortOrder_ASC:         "SORT_ORDER_ASC",
	SortOrder_DESC:        "SORT_ORDER_DESC",
}

func (o SortOrder) String() string {
	return enumString(sortOrderNames, o)
}

func (o SortOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *SortOrder) UnmarshalText(b []byte) error {
	return enumParse(sortOrderNames, b, o)
}

type HealthStatus int32

const (
	HealthStatus_UNSPECIFIED HealthStatus = iota
	HealthStatus_HEALTHY
	HealthStatus_UNHEALTHY
)

var healthStatusNames = map[HealthStatus]string{
	HealthStatus_UNSPECIFIED: "HEALTH_STATUS_UNSPECIFIED",
	HealthStatus_HEALTHY:     "HEALTH_STATUS_HEALTHY",
	HealthStatus_UNHEALTHY:   "HEALTH_STATUS_UNHEALTHY",
}

func (h HealthStatus) String() string {
	return enumString(healthStatusNames, h)
}

func (h HealthStatus) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *HealthStatus) UnmarshalText(b []byte) error {
	return enumParse(healthStatusNames, b, h)
}

func enumString[E ~int32](names map[E]string, e E) string {
	if name, ok := names[e]; ok {
		return name
	}
	return strconv.Itoa(int(e))
}

func enumParse[E ~int32](names map[E]string, b []byte, dst *E) error {
	s := string(b)
	for e, name := range names {
		if name == s {
			*dst = e
			return nil
		}
	}

	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		*dst = E(n)
		return nil
	}

	return fmt.Errorf("unknown enum value %q", s)
}
