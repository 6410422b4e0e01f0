package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/ferdiebergado/kubodir/internal/app"
	"github.com/ferdiebergado/kubodir/internal/config"
	"github.com/ferdiebergado/kubodir/internal/health"
	"github.com/ferdiebergado/kubodir/internal/platform/db"
	"github.com/ferdiebergado/kubodir/internal/platform/event"
	"github.com/ferdiebergado/kubodir/internal/platform/hash"
	jwtx "github.com/ferdiebergado/kubodir/internal/platform/jwt"
	"github.com/ferdiebergado/kubodir/internal/platform/router"
	"github.com/ferdiebergado/kubodir/internal/platform/validation"
	timex "github.com/ferdiebergado/kubodir/internal/pkg/time"
	"github.com/ferdiebergado/kubodir/internal/user/memstore"
	"github.com/ferdiebergado/kubodir/internal/userpb"
)

const (
	bufSize = 1 << 20
	testKey = "test-signing-key"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{Name: "user-directory", Version: "1.0.0-test", Env: "testing"},
		GRPC: config.GRPC{
			MaxWorkers:           4,
			MaxConcurrentStreams: 100,
			MaxMsgBytes:          4 << 20,
			KeepaliveTime:        timex.Duration{Duration: 10 * time.Second},
			KeepaliveTimeout:     timex.Duration{Duration: 5 * time.Second},
			ShutdownTimeout:      timex.Duration{Duration: 2 * time.Second},
		},
		HTTP: config.HTTP{
			ReadTimeout:  timex.Duration{Duration: 5 * time.Second},
			WriteTimeout: timex.Duration{Duration: 5 * time.Second},
			IdleTimeout:  timex.Duration{Duration: 30 * time.Second},
		},
		DB:     config.DB{Driver: "memory"},
		Argon2: config.Argon2{Memory: 1024, Iterations: 1, Threads: 1, SaltLength: 16, KeyLength: 32},
		Health: config.Health{
			Interval: timex.Duration{Duration: time.Hour},
			Timeout:  timex.Duration{Duration: time.Second},
		},
		Key: testKey,
	}
}

type harness struct {
	client userpb.UserServiceClient
	conn   *grpc.ClientConn
	ops    *http.Client
}

func startApp(t *testing.T, verifier jwtx.Verifier) *harness {
	t.Helper()

	cfg := testConfig()
	provider := &app.Provider{
		Repo:      memstore.New(),
		TxMgr:     db.NopTxManager{},
		Hasher:    hash.NewArgon2Hasher(&cfg.Argon2, cfg.Key),
		Validator: validation.NewGoPlaygroundValidator(),
		Publisher: event.NopPublisher{},
		Router:    router.NewGoexpressRouter(),
		Logger:    zap.NewNop(),
		Verifier:  verifier,
	}

	grpcLis, httpLis := bufconn.Listen(bufSize), bufconn.Listen(bufSize)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- app.New(cfg, provider).Serve(ctx, grpcLis, httpLis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return grpcLis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("app did not stop in time")
		}
	})

	ops := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				return httpLis.DialContext(ctx)
			},
		},
		Timeout: 5 * time.Second,
	}

	return &harness{
		client: userpb.NewUserServiceClient(conn),
		conn:   conn,
		ops:    ops,
	}
}

func createUser(t *testing.T, c userpb.UserServiceClient, email string) *userpb.User {
	t.Helper()

	res, err := c.CreateUser(context.Background(), &userpb.CreateUserRequest{
		Email:    email,
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	return res.User
}

func TestUserService_CreateAndGet(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := context.Background()

	res, err := h.client.CreateUser(ctx, &userpb.CreateUserRequest{
		Email:     "Ana.Reyes@Example.com",
		Password:  "s3cret",
		FirstName: "Ana",
		LastName:  "Reyes",
		Phone:     &userpb.PhoneNumber{E164: "+16502530000"},
	})
	require.NoError(t, err)

	created := res.User
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ana.reyes@example.com", created.Email)
	assert.Equal(t, "ana.reyes", created.DisplayName)
	assert.Equal(t, userpb.UserStatus_PENDING_VERIFICATION, created.Status)
	assert.Equal(t, []userpb.UserRole{userpb.UserRole_CUSTOMER}, created.Roles)
	assert.Equal(t, "+16502530000", created.GetPhone().GetE164())
	assert.NotNil(t, created.GetAudit().GetCreatedAt())

	got, err := h.client.GetUser(ctx, &userpb.GetUserRequest{UserID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.User.Email)
	assert.Equal(t, "+16502530000", got.User.GetPhone().GetE164())

	byEmail, err := h.client.GetUserByEmail(ctx, &userpb.GetUserByEmailRequest{Email: "ANA.REYES@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.User.ID)

	_, err = h.client.GetUser(ctx, &userpb.GetUserRequest{UserID: "01J0000000000000000000000Z"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUserService_CreateRejects(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := context.Background()
	createUser(t, h.client, "ana@example.com")

	tests := []struct {
		name string
		req  *userpb.CreateUserRequest
		want codes.Code
	}{
		{"duplicate email in another case", &userpb.CreateUserRequest{Email: "ANA@Example.com"}, codes.AlreadyExists},
		{"empty email", &userpb.CreateUserRequest{Email: ""}, codes.InvalidArgument},
		{"malformed email", &userpb.CreateUserRequest{Email: "ana"}, codes.InvalidArgument},
		{"invalid phone", &userpb.CreateUserRequest{Email: "ben@example.com", Phone: &userpb.PhoneNumber{E164: "555"}}, codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.client.CreateUser(ctx, tt.req)
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := context.Background()
	u := createUser(t, h.client, "ana@example.com")

	res, err := h.client.UpdateUser(ctx, &userpb.UpdateUserRequest{
		UserID:     u.ID,
		User:       &userpb.User{FirstName: "Ana", LastName: "Reyes", Email: "other@example.com"},
		UpdateMask: &fieldmaskpb.FieldMask{Paths: []string{"first_name", "email"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", res.User.FirstName)
	assert.Empty(t, res.User.LastName)
	assert.Equal(t, "ana@example.com", res.User.Email)

	res, err = h.client.UpdateUser(ctx, &userpb.UpdateUserRequest{
		UserID: u.ID,
		User:   &userpb.User{FirstName: "Ana", LastName: "Cruz", DisplayName: "anac", Phone: &userpb.PhoneNumber{E164: "+16502530000"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cruz", res.User.LastName)
	assert.Equal(t, "anac", res.User.DisplayName)
	assert.Equal(t, "+16502530000", res.User.GetPhone().GetE164())

	res, err = h.client.UpdateUser(ctx, &userpb.UpdateUserRequest{
		UserID:     u.ID,
		User:       &userpb.User{},
		UpdateMask: &fieldmaskpb.FieldMask{Paths: []string{"phone"}},
	})
	require.NoError(t, err)
	assert.Nil(t, res.User.Phone)
	assert.Equal(t, "Cruz", res.User.LastName)

	_, err = h.client.UpdateUser(ctx, &userpb.UpdateUserRequest{UserID: "missing", User: &userpb.User{}})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUserService_DeactivateReactivate(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := context.Background()
	u := createUser(t, h.client, "ana@example.com")

	for range 2 {
		res, err := h.client.DeactivateUser(ctx, &userpb.DeactivateUserRequest{UserID: u.ID, Reason: "abuse"})
		require.NoError(t, err)
		assert.Equal(t, userpb.UserStatus_DEACTIVATED, res.User.Status)
	}

	for range 2 {
		res, err := h.client.ReactivateUser(ctx, &userpb.ReactivateUserRequest{UserID: u.ID})
		require.NoError(t, err)
		assert.Equal(t, userpb.UserStatus_PENDING_VERIFICATION, res.User.Status)
		assert.Equal(t, u.Status, res.User.Status)
	}

	_, err := h.client.DeactivateUser(ctx, &userpb.DeactivateUserRequest{UserID: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := context.Background()
	u := createUser(t, h.client, "ana@example.com")

	_, err := h.client.DeleteUser(ctx, &userpb.DeleteUserRequest{UserID: u.ID, Reason: "requested"})
	require.NoError(t, err)

	_, err = h.client.DeleteUser(ctx, &userpb.DeleteUserRequest{UserID: u.ID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.client.GetUser(ctx, &userpb.GetUserRequest{UserID: u.ID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	createUser(t, h.client, "ana@example.com")
}

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := context.Background()
	for i := range 15 {
		createUser(t, h.client, fmt.Sprintf("user%02d@example.com", i))
	}

	first, err := h.client.ListUsers(ctx, &userpb.ListUsersRequest{
		Pagination: &userpb.PaginationRequest{PageSize: 10},
		Sort:       &userpb.Sort{Field: "email", Order: userpb.SortOrder_ASC},
	})
	require.NoError(t, err)
	assert.Len(t, first.Users, 10)
	assert.EqualValues(t, 15, first.Pagination.TotalCount)
	assert.True(t, first.Pagination.HasMore)
	assert.Equal(t, "user00@example.com", first.Users[0].Email)

	second, err := h.client.ListUsers(ctx, &userpb.ListUsersRequest{
		Pagination: &userpb.PaginationRequest{PageSize: 10, PageToken: first.Pagination.NextPageToken},
		Sort:       &userpb.Sort{Field: "email", Order: userpb.SortOrder_ASC},
	})
	require.NoError(t, err)
	assert.Len(t, second.Users, 5)
	assert.False(t, second.Pagination.HasMore)
	assert.Empty(t, second.Pagination.NextPageToken)
	assert.Equal(t, "user10@example.com", second.Users[0].Email)

	all, err := h.client.ListUsers(ctx, &userpb.ListUsersRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Users, 15)
	assert.False(t, all.Pagination.HasMore)

	_, err = h.client.DeactivateUser(ctx, &userpb.DeactivateUserRequest{UserID: first.Users[0].ID})
	require.NoError(t, err)

	deactivated, err := h.client.ListUsers(ctx, &userpb.ListUsersRequest{
		Statuses: []userpb.UserStatus{userpb.UserStatus_DEACTIVATED},
	})
	require.NoError(t, err)
	require.Len(t, deactivated.Users, 1)
	assert.Equal(t, first.Users[0].ID, deactivated.Users[0].ID)

	tests := []struct {
		name string
		req  *userpb.ListUsersRequest
	}{
		{"bad page token", &userpb.ListUsersRequest{Pagination: &userpb.PaginationRequest{PageToken: "not-a-token!"}}},
		{"bad sort field", &userpb.ListUsersRequest{Sort: &userpb.Sort{Field: "password_hash"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.client.ListUsers(ctx, tt.req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestUserService_ListUsersExactPage(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	for i := range 10 {
		createUser(t, h.client, fmt.Sprintf("user%02d@example.com", i))
	}

	res, err := h.client.ListUsers(context.Background(), &userpb.ListUsersRequest{
		Pagination: &userpb.PaginationRequest{PageSize: 10},
	})
	require.NoError(t, err)
	assert.Len(t, res.Users, 10)
	assert.False(t, res.Pagination.HasMore)
	assert.Empty(t, res.Pagination.NextPageToken)
}

func TestUserService_SearchUsers(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := context.Background()
	createUser(t, h.client, "ana@example.com")
	createUser(t, h.client, "ben@example.com")
	createUser(t, h.client, "anabelle@example.org")

	res, err := h.client.SearchUsers(ctx, &userpb.SearchUsersRequest{Query: "ANA"})
	require.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.EqualValues(t, 2, res.Pagination.TotalCount)

	res, err = h.client.SearchUsers(ctx, &userpb.SearchUsersRequest{Query: "nobody-matches"})
	require.NoError(t, err)
	assert.Empty(t, res.Users)
	assert.EqualValues(t, 0, res.Pagination.TotalCount)
	assert.False(t, res.Pagination.HasMore)
}

func TestUserService_Unimplemented(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := context.Background()

	_, err := h.client.ChangePassword(ctx, &userpb.ChangePasswordRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	_, err = h.client.GetUserPreferences(ctx, &userpb.GetUserPreferencesRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestUserService_HealthCheck(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := context.Background()

	res, err := h.client.HealthCheck(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, userpb.HealthStatus_HEALTHY, res.Status)
	assert.Equal(t, userpb.HealthStatus_HEALTHY, res.Components["database"])
	assert.Equal(t, "1.0.0-test", res.Version)

	hc := healthpb.NewHealthClient(h.conn)
	require.Eventually(t, func() bool {
		r, err := hc.Check(ctx, &healthpb.HealthCheckRequest{Service: userpb.ServiceName})
		return err == nil && r.Status == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 20*time.Millisecond)
}

func TestUserService_RequestIDHeader(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-request-id", "req-42")

	var header metadata.MD
	_, err := h.client.HealthCheck(ctx, &emptypb.Empty{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-42"}, header.Get("x-request-id"))
}

func TestOpsEndpoints(t *testing.T) {
	t.Parallel()

	h := startApp(t, nil)

	res, err := h.ops.Get("http://ops/healthz")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var report health.Report
	require.NoError(t, json.NewDecoder(res.Body).Decode(&report))
	assert.Equal(t, health.StatusHealthy, report.Status)

	metrics, err := h.ops.Get("http://ops/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()

	assert.Equal(t, http.StatusOK, metrics.StatusCode)
}

func signToken(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)
	return token
}

func TestUserService_Authentication(t *testing.T) {
	t.Parallel()

	h := startApp(t, jwtx.NewGolangJWTVerifier(testKey, ""))
	ctx := context.Background()

	_, err := h.client.ListUsers(ctx, &userpb.ListUsersRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	expired := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+signToken(t, "svc-billing", -time.Minute))
	_, err = h.client.ListUsers(expired, &userpb.ListUsersRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+signToken(t, "svc-billing", time.Minute))
	_, err = h.client.ListUsers(authed, &userpb.ListUsersRequest{})
	assert.NoError(t, err)

	_, err = h.client.HealthCheck(ctx, &emptypb.Empty{})
	assert.NoError(t, err)
}
