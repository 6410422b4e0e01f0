package userpb

import (
	"log/slog"

	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type PhoneNumber struct {
	E164 string `json:"e164,omitempty"`
}

func (p *PhoneNumber) GetE164() string {
	if p == nil {
		return ""
	}
	return p.E164
}

type AuditInfo struct {
	CreatedAt *timestamppb.Timestamp `json:"created_at,omitempty"`
	UpdatedAt *timestamppb.Timestamp `json:"updated_at,omitempty"`
}

func (a *AuditInfo) GetCreatedAt() *timestamppb.Timestamp {
	if a == nil {
		return nil
	}
	return a.CreatedAt
}

func (a *AuditInfo) GetUpdatedAt() *timestamppb.Timestamp {
	if a == nil {
		return nil
	}
	return a.UpdatedAt
}

type User struct {
	ID            string                 `json:"id,omitempty"`
	Email         string                 `json:"email,omitempty"`
	DisplayName   string                 `json:"display_name,omitempty"`
	FirstName     string                 `json:"first_name,omitempty"`
	LastName      string                 `json:"last_name,omitempty"`
	Phone         *PhoneNumber           `json:"phone,omitempty"`
	Status        UserStatus             `json:"status,omitempty"`
	Roles         []UserRole             `json:"roles,omitempty"`
	EmailVerified bool                   `json:"email_verified,omitempty"`
	PhoneVerified bool                   `json:"phone_verified,omitempty"`
	Audit         *AuditInfo             `json:"audit,omitempty"`
	LastLoginAt   *timestamppb.Timestamp `json:"last_login_at,omitempty"`
}

func (u *User) GetAudit() *AuditInfo {
	if u == nil {
		return nil
	}
	return u.Audit
}

func (u *User) GetPhone() *PhoneNumber {
	if u == nil {
		return nil
	}
	return u.Phone
}

type PaginationRequest struct {
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

func (p *PaginationRequest) GetPageSize() int32 {
	if p == nil {
		return 0
	}
	return p.PageSize
}

func (p *PaginationRequest) GetPageToken() string {
	if p == nil {
		return ""
	}
	return p.PageToken
}

type PaginationResponse struct {
	TotalCount    int32  `json:"total_count,omitempty"`
	HasMore       bool   `json:"has_more,omitempty"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

type Sort struct {
	Field string    `json:"field,omitempty"`
	Order SortOrder `json:"order,omitempty"`
}

type CreateUserRequest struct {
	Email       string       `json:"email,omitempty"`
	Password    string       `json:"password,omitempty"`
	FirstName   string       `json:"first_name,omitempty"`
	LastName    string       `json:"last_name,omitempty"`
	DisplayName string       `json:"display_name,omitempty"`
	Phone       *PhoneNumber `json:"phone,omitempty"`
}

func (r *CreateUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", r.Email),
		slog.String("display_name", r.DisplayName),
	)
}

type CreateUserResponse struct {
	User *User `json:"user,omitempty"`
}

type GetUserRequest struct {
	UserID string `json:"user_id,omitempty"`
}

type GetUserResponse struct {
	User *User `json:"user,omitempty"`
}

type GetUserByEmailRequest struct {
	Email string `json:"email,omitempty"`
}

type GetUserByEmailResponse struct {
	User *User `json:"user,omitempty"`
}

type UpdateUserRequest struct {
	UserID     string                 `json:"user_id,omitempty"`
	User       *User                  `json:"user,omitempty"`
	UpdateMask *fieldmaskpb.FieldMask `json:"update_mask,omitempty"`
}

func (r *UpdateUserRequest) GetMaskPaths() []string {
	if r == nil || r.UpdateMask == nil {
		return nil
	}
	return r.UpdateMask.GetPaths()
}

type UpdateUserResponse struct {
	User *User `json:"user,omitempty"`
}

type DeleteUserRequest struct {
	UserID string `json:"user_id,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type DeactivateUserRequest struct {
	UserID string `json:"user_id,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type DeactivateUserResponse struct {
	User *User `json:"user,omitempty"`
}

type ReactivateUserRequest struct {
	UserID string `json:"user_id,omitempty"`
}

type ReactivateUserResponse struct {
	User *User `json:"user,omitempty"`
}

type ListUsersRequest struct {
	Pagination *PaginationRequest `json:"pagination,omitempty"`
	Statuses   []UserStatus       `json:"statuses,omitempty"`
	Sort       *Sort              `json:"sort,omitempty"`
}

type ListUsersResponse struct {
	Users      []*User             `json:"users,omitempty"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

type SearchUsersRequest struct {
	Query      string             `json:"query,omitempty"`
	Pagination *PaginationRequest `json:"pagination,omitempty"`
	Statuses   []UserStatus       `json:"statuses,omitempty"`
	Sort       *Sort              `json:"sort,omitempty"`
}

type SearchUsersResponse struct {
	Users      []*User             `json:"users,omitempty"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

type HealthCheckResponse struct {
	Status     HealthStatus            `json:"status,omitempty"`
	Components map[string]HealthStatus `json:"components,omitempty"`
	Version    string                  `json:"version,omitempty"`
	CheckedAt  *timestamppb.Timestamp  `json:"checked_at,omitempty"`
}
