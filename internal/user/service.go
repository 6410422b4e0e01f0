package user

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ferdiebergado/kubodir/internal/pkg/fault"
	"github.com/ferdiebergado/kubodir/internal/pkg/id"
	"github.com/ferdiebergado/kubodir/internal/platform/db"
	"github.com/ferdiebergado/kubodir/internal/platform/event"
	"github.com/ferdiebergado/kubodir/internal/platform/hash"
	"github.com/ferdiebergado/kubodir/internal/platform/validation"
)

const publishTimeout = 5 * time.Second

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (*User, error)
	Find(ctx context.Context, userID string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, userID string) error
	Query(ctx context.Context, q Query) ([]User, int, error)
	Ping(ctx context.Context) error
}

var _ Service = (*service)(nil)

type service struct {
	repo      Repository
	txMgr     db.TxManager
	hasher    hash.Hasher
	validator validation.Validator
	publisher event.Publisher
	now       func() time.Time
}

func NewService(repo Repository, txMgr db.TxManager, hasher hash.Hasher, validator validation.Validator, publisher event.Publisher) *service {
	return &service{
		repo:      repo,
		txMgr:     txMgr,
		hasher:    hasher,
		validator: validator,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*User, error) {
	params.Email = normalizeEmail(params.Email)
	params.DisplayName = strings.TrimSpace(params.DisplayName)

	if errs := s.validator.ValidateStruct(params); errs != nil {
		return nil, fault.New(fault.InvalidArgument, validation.Summary(errs))
	}

	phone, err := NormalizePhone(params.Phone)
	if err != nil {
		return nil, fault.Wrap(fault.InvalidArgument, "phone must be a valid E.164 number", err)
	}

	if params.DisplayName == "" {
		params.DisplayName, _, _ = strings.Cut(params.Email, "@")
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, fault.Wrap(fault.Internal, "hash password", err)
	}

	var created *User
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.FindByEmail(txCtx, params.Email); err == nil {
			return ErrDuplicateEmail
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}

		u, err := s.repo.Create(txCtx, CreateUserParams{
			Email:        params.Email,
			PasswordHash: hashed,
			FirstName:    params.FirstName,
			LastName:     params.LastName,
			DisplayName:  params.DisplayName,
			Phone:        phone,
		})
		if err != nil {
			return err
		}

		created = u
		return nil
	})
	if err != nil {
		return nil, classify(err, "create user")
	}

	slog.Info("User created", "user", created)
	s.publish(ctx, event.UserCreated, created, map[string]any{"email": created.Email})

	return created, nil
}

func (s *service) Get(ctx context.Context, userID string) (*User, error) {
	u, err := s.findByID(ctx, userID)
	if err != nil {
		return nil, classify(err, "get user")
	}
	return u, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, classify(err, "get user by email")
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, params UpdateParams) (*User, error) {
	if params.Mask.Includes(PathPhone, params.Patch) && params.Patch.Phone != "" {
		phone, err := NormalizePhone(params.Patch.Phone)
		if err != nil {
			return nil, fault.Wrap(fault.InvalidArgument, "phone must be a valid E.164 number", err)
		}
		params.Patch.Phone = phone
	}

	var updated *User
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.findByID(txCtx, params.ID)
		if err != nil {
			return err
		}

		params.Mask.Apply(u, params.Patch)
		u.UpdatedAt = s.now().UTC()

		if err := s.repo.Save(txCtx, u); err != nil {
			return err
		}

		updated = u
		return nil
	})
	if err != nil {
		return nil, classify(err, "update user")
	}

	s.publish(ctx, event.UserUpdated, updated, nil)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID, reason string) error {
	var deleted *User
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.findByID(txCtx, userID)
		if err != nil {
			return err
		}

		if err := s.repo.Delete(txCtx, userID); err != nil {
			return err
		}

		deleted = u
		return nil
	})
	if err != nil {
		return classify(err, "delete user")
	}

	slog.Warn("User deleted", "user", deleted, "reason", reason)
	s.publish(ctx, event.UserDeleted, deleted, map[string]any{"reason": reason})

	return nil
}

func (s *service) Deactivate(ctx context.Context, userID, reason string) (*User, error) {
	u, changed, err := s.setActive(ctx, userID, false)
	if err != nil {
		return nil, classify(err, "deactivate user")
	}

	slog.Info("User deactivated", "user", u, "reason", reason)
	if changed {
		s.publish(ctx, event.UserDeactivated, u, map[string]any{"reason": reason})
	}

	return u, nil
}

func (s *service) Reactivate(ctx context.Context, userID string) (*User, error) {
	u, changed, err := s.setActive(ctx, userID, true)
	if err != nil {
		return nil, classify(err, "reactivate user")
	}

	slog.Info("User reactivated", "user", u)
	if changed {
		s.publish(ctx, event.UserReactivated, u, nil)
	}

	return u, nil
}

// setActive toggles the activity flag. Repeating the current state is a no-op.
func (s *service) setActive(ctx context.Context, userID string, active bool) (*User, bool, error) {
	var (
		result  *User
		changed bool
	)

	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.findByID(txCtx, userID)
		if err != nil {
			return err
		}

		result = u
		if u.IsActive == active {
			return nil
		}

		u.IsActive = active
		u.UpdatedAt = s.now().UTC()
		if err := s.repo.Save(txCtx, u); err != nil {
			return err
		}

		changed = true
		return nil
	})

	return result, changed, err
}

func (s *service) List(ctx context.Context, opts ListOptions) (*Page, error) {
	opts.Search = ""
	return s.query(ctx, opts, "list users")
}

func (s *service) Search(ctx context.Context, opts ListOptions) (*Page, error) {
	return s.query(ctx, opts, "search users")
}

func (s *service) query(ctx context.Context, opts ListOptions, op string) (*Page, error) {
	q, err := ComposeQuery(opts)
	if err != nil {
		return nil, classify(err, op)
	}

	users, total, err := s.repo.Query(ctx, q)
	if err != nil {
		return nil, classify(err, op)
	}

	return NewPage(users, total, q), nil
}

func (s *service) publish(ctx context.Context, typ event.Type, u *User, data map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(pubCtx, event.New(typ, u.ID, data)); err != nil {
		slog.Warn("failed to publish event", "type", typ, "user_id", u.ID, "reason", err)
	}
}

// findByID loads a user. Ids that are not ULIDs were never issued and skip the repository.
func (s *service) findByID(ctx context.Context, userID string) (*User, error) {
	if !id.Valid(userID) {
		return nil, ErrNotFound
	}
	return s.repo.Find(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// classify maps repository and input errors to fault kinds.
func classify(err error, op string) error {
	var fe *fault.Error
	switch {
	case errors.As(err, &fe):
		return err
	case errors.Is(err, ErrNotFound):
		return fault.Wrap(fault.NotFound, "user not found", err)
	case errors.Is(err, ErrDuplicateEmail):
		return fault.Wrap(fault.AlreadyExists, "user with this email already exists", err)
	case errors.Is(err, ErrInvalidPageToken):
		return fault.Wrap(fault.InvalidArgument, "invalid page token", err)
	case errors.Is(err, ErrInvalidSortField):
		return fault.Wrap(fault.InvalidArgument, "invalid sort field", err)
	default:
		return fault.Wrap(fault.Internal, op, err)
	}
}
