package user

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type SortField string

const (
	SortCreatedAt   SortField = "created_at"
	SortUpdatedAt   SortField = "updated_at"
	SortEmail       SortField = "email"
	SortFirstName   SortField = "first_name"
	SortLastName    SortField = "last_name"
	SortDisplayName SortField = "display_name"
	SortLastLoginAt SortField = "last_login_at"
)

var sortFields = map[SortField]struct{}{
	SortCreatedAt:   {},
	SortUpdatedAt:   {},
	SortEmail:       {},
	SortFirstName:   {},
	SortLastName:    {},
	SortDisplayName: {},
	SortLastLoginAt: {},
}

type Sort struct {
	Field SortField
	Desc  bool
}

// ListOptions is the caller's view of a list or search request.
type ListOptions struct {
	PageSize  int32
	PageToken string
	Statuses  []Status
	SortField string
	SortDesc  bool
	Search    string
}

// Query is a validated filter, ordering and page window.
type Query struct {
	Statuses []Status
	Search   string
	Sort     Sort
	Offset   int
	Limit    int
}

// Page is one window of a query result.
type Page struct {
	Users         []User
	TotalCount    int
	HasMore       bool
	NextPageToken string
}

// ComposeQuery validates opts and resolves defaults.
func ComposeQuery(opts ListOptions) (Query, error) {
	offset, err := DecodePageToken(opts.PageToken)
	if err != nil {
		return Query{}, err
	}

	sort, err := ParseSort(opts.SortField, opts.SortDesc)
	if err != nil {
		return Query{}, err
	}

	return Query{
		Statuses: statusFilter(opts.Statuses),
		Search:   strings.TrimSpace(opts.Search),
		Sort:     sort,
		Offset:   offset,
		Limit:    PageSize(opts.PageSize),
	}, nil
}

// PageSize applies the default and the cap to a requested size.
func PageSize(requested int32) int {
	switch {
	case requested <= 0:
		return DefaultPageSize
	case requested > MaxPageSize:
		return MaxPageSize
	default:
		return int(requested)
	}
}

// ParseSort resolves a sort field and order. An empty field sorts by newest first.
func ParseSort(field string, desc bool) (Sort, error) {
	if field == "" {
		return Sort{Field: SortCreatedAt, Desc: true}, nil
	}

	f := SortField(field)
	if _, ok := sortFields[f]; !ok {
		return Sort{}, fmt.Errorf("%w: %q", ErrInvalidSortField, field)
	}

	return Sort{Field: f, Desc: desc}, nil
}

// EncodePageToken returns the opaque token that resumes a listing at offset.
func EncodePageToken(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// DecodePageToken returns the offset carried by token. An empty token starts at zero.
func DecodePageToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPageToken, err)
	}

	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPageToken, token)
	}

	return offset, nil
}

// NewPage wraps the rows of q with the counters the caller needs to page on.
func NewPage(users []User, total int, q Query) *Page {
	p := &Page{
		Users:      users,
		TotalCount: total,
		HasMore:    len(users) == q.Limit && total > q.Offset+q.Limit,
	}

	if p.HasMore {
		p.NextPageToken = EncodePageToken(q.Offset + q.Limit)
	}

	return p
}

// statusFilter drops unspecified and repeated statuses.
func statusFilter(in []Status) []Status {
	var out []Status
	seen := make(map[Status]bool, len(in))
	for _, s := range in {
		if s == StatusUnspecified || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Matches reports whether u passes the filter of q.
func (q Query) Matches(u *User) bool {
	return q.matchesStatus(u) && q.matchesSearch(u)
}

func (q Query) matchesStatus(u *User) bool {
	if len(q.Statuses) == 0 {
		return true
	}

	for _, s := range q.Statuses {
		if statusPredicate(s, u) {
			return true
		}
	}
	return false
}

func statusPredicate(s Status, u *User) bool {
	switch s {
	case StatusActive:
		return u.IsActive && u.IsVerified
	case StatusPendingVerification:
		return !u.IsVerified
	case StatusDeactivated:
		return !u.IsActive
	default:
		return false
	}
}

func (q Query) matchesSearch(u *User) bool {
	if q.Search == "" {
		return true
	}

	needle := strings.ToLower(q.Search)
	for _, field := range []string{u.Email, u.FirstName, u.LastName, u.DisplayName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Less orders a before b under the sort of q, breaking ties by id.
func (q Query) Less(a, b *User) bool {
	c := compareField(q.Sort.Field, a, b)
	if c == 0 {
		return a.ID < b.ID
	}
	if q.Sort.Desc {
		return c > 0
	}
	return c < 0
}

func compareField(f SortField, a, b *User) int {
	switch f {
	case SortUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case SortEmail:
		return strings.Compare(a.Email, b.Email)
	case SortFirstName:
		return strings.Compare(a.FirstName, b.FirstName)
	case SortLastName:
		return strings.Compare(a.LastName, b.LastName)
	case SortDisplayName:
		return strings.Compare(a.DisplayName, b.DisplayName)
	case SortLastLoginAt:
		return compareOptionalTime(a.LastLoginAt, b.LastLoginAt)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// compareOptionalTime orders missing times last, matching postgres NULLS LAST on ascending order.
func compareOptionalTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
