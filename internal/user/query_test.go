package user_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ferdiebergado/kubodir/internal/model"
	"github.com/ferdiebergado/kubodir/internal/user"
)

func TestPageSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int32
		want int
	}{
		{0, 20},
		{-5, 20},
		{1, 1},
		{100, 100},
		{101, 100},
		{5000, 100},
	}

	for _, tt := range tests {
		if got := user.PageSize(tt.in); got != tt.want {
			t.Errorf("user.PageSize(%d) = %d, want: %d", tt.in, got, tt.want)
		}
	}
}

func TestPageToken(t *testing.T) {
	t.Parallel()

	for _, offset := range []int{0, 20, 1234} {
		tok := user.EncodePageToken(offset)
		got, err := user.DecodePageToken(tok)
		if err != nil {
			t.Fatalf("user.DecodePageToken(%q) = %v, want: %v", tok, err, nil)
		}
		if got != offset {
			t.Errorf("user.DecodePageToken(%q) = %d, want: %d", tok, got, offset)
		}
	}

	if got, err := user.DecodePageToken(""); err != nil || got != 0 {
		t.Errorf("user.DecodePageToken(\"\") = %d, %v, want: 0, nil", got, err)
	}

	for _, bad := range []string{"!!!", "YWJj", user.EncodePageToken(-1)} {
		if _, err := user.DecodePageToken(bad); !errors.Is(err, user.ErrInvalidPageToken) {
			t.Errorf("user.DecodePageToken(%q) = %v, want: %v", bad, err, user.ErrInvalidPageToken)
		}
	}
}

func TestComposeQuery(t *testing.T) {
	t.Parallel()

	q, err := user.ComposeQuery(user.ListOptions{
		Statuses: []user.Status{user.StatusUnspecified, user.StatusActive, user.StatusActive},
		Search:   "  ana ",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(q.Statuses) != 1 || q.Statuses[0] != user.StatusActive {
		t.Errorf("q.Statuses = %v, want: [%v]", q.Statuses, user.StatusActive)
	}

	if q.Search != "ana" {
		t.Errorf("q.Search = %q, want: %q", q.Search, "ana")
	}

	if q.Sort != (user.Sort{Field: user.SortCreatedAt, Desc: true}) {
		t.Errorf("q.Sort = %+v, want: created_at desc", q.Sort)
	}

	if q.Limit != user.DefaultPageSize || q.Offset != 0 {
		t.Errorf("q.Limit, q.Offset = %d, %d, want: %d, 0", q.Limit, q.Offset, user.DefaultPageSize)
	}

	if _, err := user.ComposeQuery(user.ListOptions{SortField: "password_hash"}); !errors.Is(err, user.ErrInvalidSortField) {
		t.Errorf("user.ComposeQuery() = %v, want: %v", err, user.ErrInvalidSortField)
	}

	if _, err := user.ComposeQuery(user.ListOptions{PageToken: "%%"}); !errors.Is(err, user.ErrInvalidPageToken) {
		t.Errorf("user.ComposeQuery() = %v, want: %v", err, user.ErrInvalidPageToken)
	}
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		returned  int
		total     int
		offset    int
		limit     int
		wantMore  bool
		wantToken bool
	}{
		{"first of two pages", 10, 15, 0, 10, true, true},
		{"exact fit", 10, 10, 0, 10, false, false},
		{"last partial page", 5, 15, 10, 10, false, false},
		{"empty", 0, 0, 0, 20, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := user.Query{Offset: tt.offset, Limit: tt.limit}
			p := user.NewPage(make([]user.User, tt.returned), tt.total, q)

			if p.HasMore != tt.wantMore {
				t.Errorf("p.HasMore = %v, want: %v", p.HasMore, tt.wantMore)
			}

			if (p.NextPageToken != "") != tt.wantToken {
				t.Errorf("p.NextPageToken = %q, wantToken: %v", p.NextPageToken, tt.wantToken)
			}

			if p.TotalCount != tt.total {
				t.Errorf("p.TotalCount = %d, want: %d", p.TotalCount, tt.total)
			}
		})
	}
}

func TestQuery_Matches(t *testing.T) {
	t.Parallel()

	active := &user.User{Email: "ana@example.com", FirstName: "Ana", IsActive: true, IsVerified: true}
	pending := &user.User{Email: "ben@example.com", LastName: "Santos", IsActive: true}
	inactive := &user.User{Email: "cy@example.com", DisplayName: "cyborg", IsVerified: true}

	tests := []struct {
		name string
		q    user.Query
		u    *user.User
		want bool
	}{
		{"no filter", user.Query{}, inactive, true},
		{"active only", user.Query{Statuses: []user.Status{user.StatusActive}}, pending, false},
		{"pending or deactivated", user.Query{Statuses: []user.Status{user.StatusPendingVerification, user.StatusDeactivated}}, inactive, true},
		{"pending matches unverified", user.Query{Statuses: []user.Status{user.StatusPendingVerification}}, pending, true},
		{"search email case insensitive", user.Query{Search: "ANA@"}, active, true},
		{"search last name", user.Query{Search: "sant"}, pending, true},
		{"search display name", user.Query{Search: "borg"}, inactive, true},
		{"search miss", user.Query{Search: "zzz"}, active, false},
		{"search honours status", user.Query{Search: "ana", Statuses: []user.Status{user.StatusDeactivated}}, active, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.q.Matches(tt.u); got != tt.want {
				t.Errorf("q.Matches(%v) = %v, want: %v", tt.u.Email, got, tt.want)
			}
		})
	}
}

func TestQuery_Less(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := &user.User{Model: model.Model{ID: "A", CreatedAt: t0}, Email: "b@example.com"}
	b := &user.User{Model: model.Model{ID: "B", CreatedAt: t0.Add(time.Hour)}, Email: "a@example.com"}
	c := &user.User{Model: model.Model{ID: "C", CreatedAt: t0.Add(time.Hour)}, Email: "a@example.com"}

	newestFirst := user.Query{Sort: user.Sort{Field: user.SortCreatedAt, Desc: true}}
	if !newestFirst.Less(b, a) {
		t.Error("newestFirst.Less(b, a) = false, want: true")
	}

	byEmail := user.Query{Sort: user.Sort{Field: user.SortEmail}}
	if !byEmail.Less(b, a) {
		t.Error("byEmail.Less(b, a) = false, want: true")
	}

	if !byEmail.Less(b, c) || byEmail.Less(c, b) {
		t.Error("ties are not broken by id")
	}

	login := t0
	withLogin := &user.User{Model: model.Model{ID: "D"}, LastLoginAt: &login}
	byLogin := user.Query{Sort: user.Sort{Field: user.SortLastLoginAt}}
	if !byLogin.Less(withLogin, a) {
		t.Error("byLogin.Less(withLogin, never logged in) = false, want: true")
	}
}
