package user

import (
	"context"
	"errors"

	"github.com/ferdiebergado/kubodir/internal/health"
)

type StubService struct {
	CreateFunc     func(ctx context.Context, params CreateParams) (*User, error)
	GetFunc        func(ctx context.Context, userID string) (*User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*User, error)
	UpdateFunc     func(ctx context.Context, params UpdateParams) (*User, error)
	DeleteFunc     func(ctx context.Context, userID, reason string) error
	DeactivateFunc func(ctx context.Context, userID, reason string) (*User, error)
	ReactivateFunc func(ctx context.Context, userID string) (*User, error)
	ListFunc       func(ctx context.Context, opts ListOptions) (*Page, error)
	SearchFunc     func(ctx context.Context, opts ListOptions) (*Page, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, params CreateParams) (*User, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Get(ctx context.Context, userID string) (*User, error) {
	if s.GetFunc == nil {
		return nil, errors.New("Get() not implemented by stub")
	}
	return s.GetFunc(ctx, userID)
}

func (s *StubService) GetByEmail(ctx context.Context, email string) (*User, error) {
	if s.GetByEmailFunc == nil {
		return nil, errors.New("GetByEmail() not implemented by stub")
	}
	return s.GetByEmailFunc(ctx, email)
}

func (s *StubService) Update(ctx context.Context, params UpdateParams) (*User, error) {
	if s.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, params)
}

func (s *StubService) Delete(ctx context.Context, userID, reason string) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, userID, reason)
}

func (s *StubService) Deactivate(ctx context.Context, userID, reason string) (*User, error) {
	if s.DeactivateFunc == nil {
		return nil, errors.New("Deactivate() not implemented by stub")
	}
	return s.DeactivateFunc(ctx, userID, reason)
}

func (s *StubService) Reactivate(ctx context.Context, userID string) (*User, error) {
	if s.ReactivateFunc == nil {
		return nil, errors.New("Reactivate() not implemented by stub")
	}
	return s.ReactivateFunc(ctx, userID)
}

func (s *StubService) List(ctx context.Context, opts ListOptions) (*Page, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, opts)
}

func (s *StubService) Search(ctx context.Context, opts ListOptions) (*Page, error) {
	if s.SearchFunc == nil {
		return nil, errors.New("Search() not implemented by stub")
	}
	return s.SearchFunc(ctx, opts)
}

type StubRepo struct {
	CreateFunc      func(ctx context.Context, params CreateUserParams) (*User, error)
	FindFunc        func(ctx context.Context, userID string) (*User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*User, error)
	SaveFunc        func(ctx context.Context, u *User) error
	DeleteFunc      func(ctx context.Context, userID string) error
	QueryFunc       func(ctx context.Context, q Query) ([]User, int, error)
	PingFunc        func(ctx context.Context) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateUserParams) (*User, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Find(ctx context.Context, userID string) (*User, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepo) Save(ctx context.Context, u *User) error {
	if r.SaveFunc == nil {
		return errors.New("Save() not implemented by stub")
	}
	return r.SaveFunc(ctx, u)
}

func (r *StubRepo) Delete(ctx context.Context, userID string) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, userID)
}

func (r *StubRepo) Query(ctx context.Context, q Query) ([]User, int, error) {
	if r.QueryFunc == nil {
		return nil, 0, errors.New("Query() not implemented by stub")
	}
	return r.QueryFunc(ctx, q)
}

func (r *StubRepo) Ping(ctx context.Context) error {
	if r.PingFunc == nil {
		return errors.New("Ping() not implemented by stub")
	}
	return r.PingFunc(ctx)
}

type StubHealthChecker struct {
	Report health.Report
}

func (s *StubHealthChecker) Check(context.Context) health.Report {
	return s.Report
}
