package user

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	appctx "github.com/ferdiebergado/kubodir/internal/context"
	"github.com/ferdiebergado/kubodir/internal/health"
	"github.com/ferdiebergado/kubodir/internal/pkg/fault"
	"github.com/ferdiebergado/kubodir/internal/userpb"
)

type Service interface {
	Create(ctx context.Context, params CreateParams) (*User, error)
	Get(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, params UpdateParams) (*User, error)
	Delete(ctx context.Context, userID, reason string) error
	Deactivate(ctx context.Context, userID, reason string) (*User, error)
	Reactivate(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context, opts ListOptions) (*Page, error)
	Search(ctx context.Context, opts ListOptions) (*Page, error)
}

type HealthChecker interface {
	Check(ctx context.Context) health.Report
}

var _ userpb.UserServiceServer = (*Handler)(nil)

// Handler serves user.v1.UserService. Profile, address, verification, password
// and preference methods fall through to the unimplemented server.
type Handler struct {
	userpb.UnimplementedUserServiceServer

	svc    Service
	health HealthChecker
	logger *zap.Logger
}

func NewHandler(svc Service, checker HealthChecker, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		health: checker,
		logger: logger,
	}
}

func (h *Handler) CreateUser(ctx context.Context, req *userpb.CreateUserRequest) (*userpb.CreateUserResponse, error) {
	u, err := h.svc.Create(ctx, FromCreateRequest(req))
	if err != nil {
		return nil, h.fail(ctx, "CreateUser", err)
	}
	return &userpb.CreateUserResponse{User: ToWire(u)}, nil
}

func (h *Handler) GetUser(ctx context.Context, req *userpb.GetUserRequest) (*userpb.GetUserResponse, error) {
	u, err := h.svc.Get(ctx, req.UserID)
	if err != nil {
		return nil, h.fail(ctx, "GetUser", err)
	}
	return &userpb.GetUserResponse{User: ToWire(u)}, nil
}

func (h *Handler) GetUserByEmail(ctx context.Context, req *userpb.GetUserByEmailRequest) (*userpb.GetUserByEmailResponse, error) {
	u, err := h.svc.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, h.fail(ctx, "GetUserByEmail", err)
	}
	return &userpb.GetUserByEmailResponse{User: ToWire(u)}, nil
}

func (h *Handler) UpdateUser(ctx context.Context, req *userpb.UpdateUserRequest) (*userpb.UpdateUserResponse, error) {
	u, err := h.svc.Update(ctx, fromUpdateRequest(req))
	if err != nil {
		return nil, h.fail(ctx, "UpdateUser", err)
	}
	return &userpb.UpdateUserResponse{User: ToWire(u)}, nil
}

func (h *Handler) DeleteUser(ctx context.Context, req *userpb.DeleteUserRequest) (*emptypb.Empty, error) {
	if err := h.svc.Delete(ctx, req.UserID, req.Reason); err != nil {
		return nil, h.fail(ctx, "DeleteUser", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *Handler) DeactivateUser(ctx context.Context, req *userpb.DeactivateUserRequest) (*userpb.DeactivateUserResponse, error) {
	u, err := h.svc.Deactivate(ctx, req.UserID, req.Reason)
	if err != nil {
		return nil, h.fail(ctx, "DeactivateUser", err)
	}
	return &userpb.DeactivateUserResponse{User: ToWire(u)}, nil
}

func (h *Handler) ReactivateUser(ctx context.Context, req *userpb.ReactivateUserRequest) (*userpb.ReactivateUserResponse, error) {
	u, err := h.svc.Reactivate(ctx, req.UserID)
	if err != nil {
		return nil, h.fail(ctx, "ReactivateUser", err)
	}
	return &userpb.ReactivateUserResponse{User: ToWire(u)}, nil
}

func (h *Handler) ListUsers(ctx context.Context, req *userpb.ListUsersRequest) (*userpb.ListUsersResponse, error) {
	page, err := h.svc.List(ctx, listOptionsFromWire(req.Pagination, req.Statuses, req.Sort, ""))
	if err != nil {
		return nil, h.fail(ctx, "ListUsers", err)
	}

	users, pagination := pageToWire(page)
	return &userpb.ListUsersResponse{Users: users, Pagination: pagination}, nil
}

func (h *Handler) SearchUsers(ctx context.Context, req *userpb.SearchUsersRequest) (*userpb.SearchUsersResponse, error) {
	page, err := h.svc.Search(ctx, listOptionsFromWire(req.Pagination, req.Statuses, req.Sort, req.Query))
	if err != nil {
		return nil, h.fail(ctx, "SearchUsers", err)
	}

	users, pagination := pageToWire(page)
	return &userpb.SearchUsersResponse{Users: users, Pagination: pagination}, nil
}

var healthToWire = map[health.Status]userpb.HealthStatus{
	health.StatusHealthy:   userpb.HealthStatus_HEALTHY,
	health.StatusUnhealthy: userpb.HealthStatus_UNHEALTHY,
}

func (h *Handler) HealthCheck(ctx context.Context, _ *emptypb.Empty) (*userpb.HealthCheckResponse, error) {
	report := h.health.Check(ctx)

	res := &userpb.HealthCheckResponse{
		Status:     healthToWire[report.Status],
		Components: make(map[string]userpb.HealthStatus, len(report.Components)),
		Version:    report.Version,
		CheckedAt:  timestamppb.New(report.CheckedAt),
	}
	for name, st := range report.Components {
		res.Components[name] = healthToWire[st]
	}

	return res, nil
}

// fail logs err and converts it to a status error without exposing internal causes.
func (h *Handler) fail(ctx context.Context, method string, err error) error {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("request_id", appctx.RequestIDFromContext(ctx)),
		zap.Error(err),
	}

	switch kind := fault.KindOf(err); {
	case kind == fault.Internal && fault.IsContextError(err):
		h.logger.Warn("request aborted", fields...)
	case kind == fault.Internal:
		h.logger.Error("request failed", fields...)
	default:
		h.logger.Debug("request rejected", append(fields, zap.Stringer("kind", kind))...)
	}

	return fault.Status(err)
}
