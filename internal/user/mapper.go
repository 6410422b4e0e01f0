package user

import (
	"strings"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/ferdiebergado/kubodir/internal/userpb"
)

var statusToWire = map[Status]userpb.UserStatus{
	StatusActive:              userpb.UserStatus_ACTIVE,
	StatusPendingVerification: userpb.UserStatus_PENDING_VERIFICATION,
	StatusDeactivated:         userpb.UserStatus_DEACTIVATED,
}

var roleToWire = map[Role]userpb.UserRole{
	RoleCustomer: userpb.UserRole_CUSTOMER,
	RoleAdmin:    userpb.UserRole_ADMIN,
}

// ToWire converts u to its wire form. The password credential is never copied.
func ToWire(u *User) *userpb.User {
	out := &userpb.User{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Status:        statusToWire[u.Status()],
		Roles:         []userpb.UserRole{roleToWire[u.Role()]},
		EmailVerified: u.IsVerified,
		PhoneVerified: false,
	}

	if u.Phone != "" {
		out.Phone = &userpb.PhoneNumber{E164: u.Phone}
	}

	if !u.CreatedAt.IsZero() || !u.UpdatedAt.IsZero() {
		out.Audit = &userpb.AuditInfo{}
		if !u.CreatedAt.IsZero() {
			out.Audit.CreatedAt = timestamppb.New(u.CreatedAt)
		}
		if !u.UpdatedAt.IsZero() {
			out.Audit.UpdatedAt = timestamppb.New(u.UpdatedAt)
		}
	}

	if u.LastLoginAt != nil {
		out.LastLoginAt = timestamppb.New(*u.LastLoginAt)
	}

	return out
}

func usersToWire(users []User) []*userpb.User {
	out := make([]*userpb.User, 0, len(users))
	for i := range users {
		out = append(out, ToWire(&users[i]))
	}
	return out
}

// FromCreateRequest reads the create parameters off the wire request.
func FromCreateRequest(req *userpb.CreateUserRequest) CreateParams {
	return CreateParams{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DisplayName: req.DisplayName,
		Phone:       req.Phone.GetE164(),
	}
}

func fromUpdateRequest(req *userpb.UpdateUserRequest) UpdateParams {
	var patch Patch
	if u := req.User; u != nil {
		patch = Patch{
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			DisplayName: u.DisplayName,
			Phone:       u.GetPhone().GetE164(),
		}
	}

	return UpdateParams{
		ID:    req.UserID,
		Patch: patch,
		Mask:  NewMask(req.GetMaskPaths()),
	}
}

func statusesFromWire(in []userpb.UserStatus) []Status {
	out := make([]Status, 0, len(in))
	for _, ws := range in {
		for s, w := range statusToWire {
			if w == ws {
				out = append(out, s)
			}
		}
	}
	return out
}

func listOptionsFromWire(p *userpb.PaginationRequest, statuses []userpb.UserStatus, sort *userpb.Sort, search string) ListOptions {
	opts := ListOptions{
		PageSize:  p.GetPageSize(),
		PageToken: p.GetPageToken(),
		Statuses:  statusesFromWire(statuses),
		Search:    search,
	}

	if sort != nil {
		opts.SortField = strings.TrimSpace(sort.Field)
		opts.SortDesc = sort.Order == userpb.SortOrder_DESC
	}

	return opts
}

func pageToWire(p *Page) ([]*userpb.User, *userpb.PaginationResponse) {
	return usersToWire(p.Users), &userpb.PaginationResponse{
		TotalCount:    int32(p.TotalCount),
		HasMore:       p.HasMore,
		NextPageToken: p.NextPageToken,
	}
}
