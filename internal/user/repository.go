package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ferdiebergado/kubodir/internal/pkg/id"
	"github.com/ferdiebergado/kubodir/internal/platform/db"
)

var _ Repository = (*SQLRepository)(nil)

type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

func (r *SQLRepository) exec(ctx context.Context) db.Executor {
	return db.ExecutorFromContext(ctx, r.db)
}

const userColumns = `id, email, first_name, last_name, display_name, phone, password_hash,
is_active, is_verified, is_privileged, created_at, updated_at, last_login_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*User, error) {
	var (
		u         User
		lastLogin sql.NullTime
	)

	err := s.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.DisplayName, &u.Phone, &u.PasswordHash,
		&u.IsActive, &u.IsVerified, &u.IsPrivileged, &u.CreatedAt, &u.UpdatedAt, &lastLogin)
	if err != nil {
		return nil, err
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginAt = &t
	}

	return &u, nil
}

const QueryUserCreate = `
INSERT INTO users (id, email, password_hash, first_name, last_name, display_name, phone)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

func (r *SQLRepository) Create(ctx context.Context, params CreateUserParams) (*User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, QueryUserCreate, id.New(), params.Email, params.PasswordHash,
		params.FirstName, params.LastName, params.DisplayName, params.Phone)

	u, err := scanUser(row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: create user with email %s: %v", ErrQueryFailed, params.Email, err)
	}

	return u, nil
}

const QueryUserFind = "SELECT " + userColumns + " FROM users WHERE id = $1"

func (r *SQLRepository) Find(ctx context.Context, userID string) (*User, error) {
	u, err := scanUser(r.exec(ctx).QueryRowContext(ctx, QueryUserFind, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user with id %s: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}

const QueryUserFindByEmail = "SELECT " + userColumns + " FROM users WHERE email = $1 LIMIT 1"

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(r.exec(ctx).QueryRowContext(ctx, QueryUserFindByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user with email %s: %v", ErrQueryFailed, email, err)
	}
	return u, nil
}

const QueryUserSave = `
UPDATE users
SET first_name = $2, last_name = $3, display_name = $4, phone = $5,
    is_active = $6, is_verified = $7, is_privileged = $8, updated_at = $9, last_login_at = $10
WHERE id = $1
RETURNING ` + userColumns

func (r *SQLRepository) Save(ctx context.Context, u *User) error {
	var lastLogin sql.NullTime
	if u.LastLoginAt != nil {
		lastLogin = sql.NullTime{Time: *u.LastLoginAt, Valid: true}
	}

	row := r.exec(ctx).QueryRowContext(ctx, QueryUserSave, u.ID, u.FirstName, u.LastName, u.DisplayName, u.Phone,
		u.IsActive, u.IsVerified, u.IsPrivileged, u.UpdatedAt, lastLogin)

	saved, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: save user with id %s: %v", ErrQueryFailed, u.ID, err)
	}

	*u = *saved
	return nil
}

const QueryUserDelete = "DELETE FROM users WHERE id = $1"

func (r *SQLRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.exec(ctx).ExecContext(ctx, QueryUserDelete, userID)
	if err != nil {
		return fmt.Errorf("%w: delete user with id %s: %v", ErrQueryFailed, userID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user repository: rows affected: %w", err)
	}

	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Query returns one page of users matching q together with the total match count.
func (r *SQLRepository) Query(ctx context.Context, q Query) ([]User, int, error) {
	where, args := whereClause(q)
	exec := r.exec(ctx)

	var total int
	countSQL := "SELECT COUNT(*) FROM users" + where
	if err := exec.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: count users: %v", ErrQueryFailed, err)
	}

	if total == 0 || q.Offset >= total {
		return []User{}, total, nil
	}

	args = append(args, q.Limit, q.Offset)
	listSQL := "SELECT " + userColumns + " FROM users" + where + orderClause(q.Sort) +
		" LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))

	rows, err := exec.QueryContext(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list users: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	users := make([]User, 0, q.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("user repository: scan row: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("user repository: iterate over user rows: %w", err)
	}

	return users, total, nil
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

var statusSQL = map[Status]string{
	StatusActive:              "(is_active AND is_verified)",
	StatusPendingVerification: "(NOT is_verified)",
	StatusDeactivated:         "(NOT is_active)",
}

// whereClause renders the filter of q with positional arguments.
func whereClause(q Query) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if len(q.Statuses) > 0 {
		preds := make([]string, 0, len(q.Statuses))
		for _, s := range q.Statuses {
			if p, ok := statusSQL[s]; ok {
				preds = append(preds, p)
			}
		}
		if len(preds) > 0 {
			conds = append(conds, "("+strings.Join(preds, " OR ")+")")
		}
	}

	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		n := "$" + strconv.Itoa(len(args))
		conds = append(conds, "(email ILIKE "+n+" OR first_name ILIKE "+n+
			" OR last_name ILIKE "+n+" OR display_name ILIKE "+n+")")
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause renders s. The field is whitelisted by ParseSort.
func orderClause(s Sort) string {
	field := SortCreatedAt
	if _, ok := sortFields[s.Field]; ok {
		field = s.Field
	}

	dir := " ASC"
	if s.Desc {
		dir = " DESC"
	}

	return " ORDER BY " + string(field) + dir + ", id ASC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
