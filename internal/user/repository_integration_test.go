//go:build integration

package user_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ferdiebergado/kubodir/internal/platform/db"
	"github.com/ferdiebergado/kubodir/internal/user"
)

func setupRepo(t *testing.T) (*user.SQLRepository, context.Context) {
	t.Helper()

	conn, tx := db.Setup(t)
	return user.NewSQLRepository(conn), db.NewContextWithTx(context.Background(), tx)
}

func TestIntegrationSQLRepository_CreateFindSave(t *testing.T) {
	repo, ctx := setupRepo(t)

	created, err := repo.Create(ctx, user.CreateUserParams{
		Email:        "ana@example.com",
		PasswordHash: "$argon2id$hash",
		DisplayName:  "ana",
		Phone:        "+16502530000",
	})
	if err != nil {
		t.Fatalf("repo.Create() = %v, want: %v", err, nil)
	}

	if !created.IsActive || created.IsVerified {
		t.Errorf("created flags = active %v verified %v, want: active true verified false", created.IsActive, created.IsVerified)
	}

	if _, err := repo.Create(ctx, user.CreateUserParams{Email: "ana@example.com"}); !errors.Is(err, user.ErrDuplicateEmail) {
		t.Fatalf("repo.Create(duplicate) = %v, want: %v", err, user.ErrDuplicateEmail)
	}
}

func TestIntegrationSQLRepository_Lifecycle(t *testing.T) {
	repo, ctx := setupRepo(t)

	created, err := repo.Create(ctx, user.CreateUserParams{Email: "ben@example.com", DisplayName: "ben"})
	if err != nil {
		t.Fatalf("repo.Create() = %v, want: %v", err, nil)
	}

	found, err := repo.Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("repo.Find() = %v, want: %v", err, nil)
	}

	found.LastName = "Cruz"
	found.IsActive = false
	found.UpdatedAt = time.Now().UTC()
	if err := repo.Save(ctx, found); err != nil {
		t.Fatalf("repo.Save() = %v, want: %v", err, nil)
	}

	byEmail, err := repo.FindByEmail(ctx, "ben@example.com")
	if err != nil {
		t.Fatalf("repo.FindByEmail() = %v, want: %v", err, nil)
	}

	if byEmail.LastName != "Cruz" || byEmail.Status() != user.StatusDeactivated {
		t.Errorf("byEmail = %+v, want last name Cruz and deactivated", byEmail)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("repo.Delete() = %v, want: %v", err, nil)
	}

	if err := repo.Delete(ctx, created.ID); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("repo.Delete(again) = %v, want: %v", err, user.ErrNotFound)
	}

	if _, err := repo.Find(ctx, created.ID); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("repo.Find(deleted) = %v, want: %v", err, user.ErrNotFound)
	}
}

func TestIntegrationSQLRepository_Query(t *testing.T) {
	repo, ctx := setupRepo(t)

	for i := range 15 {
		_, err := repo.Create(ctx, user.CreateUserParams{
			Email:       fmt.Sprintf("user%02d@example.com", i),
			DisplayName: fmt.Sprintf("User_%02d", i),
		})
		if err != nil {
			t.Fatalf("repo.Create() = %v, want: %v", err, nil)
		}
	}

	tests := []struct {
		name      string
		opts      user.ListOptions
		wantLen   int
		wantTotal int
	}{
		{"first page", user.ListOptions{PageSize: 10, SortField: "email"}, 10, 15},
		{"last page", user.ListOptions{PageSize: 10, SortField: "email", PageToken: user.EncodePageToken(10)}, 5, 15},
		{"search", user.ListOptions{Search: "user_1"}, 5, 5},
		{"wildcard is literal", user.ListOptions{Search: "%"}, 0, 0},
		{"pending", user.ListOptions{Statuses: []user.Status{user.StatusPendingVerification}}, 15, 15},
		{"deactivated", user.ListOptions{Statuses: []user.Status{user.StatusDeactivated}}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := user.ComposeQuery(tt.opts)
			if err != nil {
				t.Fatalf("user.ComposeQuery() = %v, want: %v", err, nil)
			}

			users, total, err := repo.Query(ctx, q)
			if err != nil {
				t.Fatalf("repo.Query() = %v, want: %v", err, nil)
			}

			if len(users) != tt.wantLen || total != tt.wantTotal {
				t.Errorf("repo.Query() = %d users of %d, want: %d of %d", len(users), total, tt.wantLen, tt.wantTotal)
			}
		})
	}
}
