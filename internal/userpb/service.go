package userpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "user.v1.UserService"

const (
	CreateUserMethod               = "/" + ServiceName + "/CreateUser"
	GetUserMethod                  = "/" + ServiceName + "/GetUser"
	GetUserByEmailMethod           = "/" + ServiceName + "/GetUserByEmail"
	UpdateUserMethod               = "/" + ServiceName + "/UpdateUser"
	DeleteUserMethod               = "/" + ServiceName + "/DeleteUser"
	DeactivateUserMethod           = "/" + ServiceName + "/DeactivateUser"
	ReactivateUserMethod           = "/" + ServiceName + "/ReactivateUser"
	ListUsersMethod                = "/" + ServiceName + "/ListUsers"
	SearchUsersMethod              = "/" + ServiceName + "/SearchUsers"
	HealthCheckMethod              = "/" + ServiceName + "/HealthCheck"
	UpdateUserProfileMethod        = "/" + ServiceName + "/UpdateUserProfile"
	AddUserAddressMethod           = "/" + ServiceName + "/AddUserAddress"
	UpdateUserAddressMethod        = "/" + ServiceName + "/UpdateUserAddress"
	DeleteUserAddressMethod        = "/" + ServiceName + "/DeleteUserAddress"
	ListUserAddressesMethod        = "/" + ServiceName + "/ListUserAddresses"
	SetDefaultAddressMethod        = "/" + ServiceName + "/SetDefaultAddress"
	VerifyEmailMethod              = "/" + ServiceName + "/VerifyEmail"
	ConfirmEmailVerificationMethod = "/" + ServiceName + "/ConfirmEmailVerification"
	ChangePasswordMethod           = "/" + ServiceName + "/ChangePassword"
	RequestPasswordResetMethod     = "/" + ServiceName + "/RequestPasswordReset"
	ResetPasswordMethod            = "/" + ServiceName + "/ResetPassword"
	GetUserPreferencesMethod       = "/" + ServiceName + "/GetUserPreferences"
	UpdateUserPreferencesMethod    = "/" + ServiceName + "/UpdateUserPreferences"
)

type UserServiceServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	GetUserByEmail(context.Context, *GetUserByEmailRequest) (*GetUserByEmailResponse, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*emptypb.Empty, error)
	DeactivateUser(context.Context, *DeactivateUserRequest) (*DeactivateUserResponse, error)
	ReactivateUser(context.Context, *ReactivateUserRequest) (*ReactivateUserResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	SearchUsers(context.Context, *SearchUsersRequest) (*SearchUsersResponse, error)
	HealthCheck(context.Context, *emptypb.Empty) (*HealthCheckResponse, error)
	UpdateUserProfile(context.Context, *UpdateUserProfileRequest) (*UpdateUserProfileResponse, error)
	AddUserAddress(context.Context, *AddUserAddressRequest) (*AddUserAddressResponse, error)
	UpdateUserAddress(context.Context, *UpdateUserAddressRequest) (*UpdateUserAddressResponse, error)
	DeleteUserAddress(context.Context, *DeleteUserAddressRequest) (*emptypb.Empty, error)
	ListUserAddresses(context.Context, *ListUserAddressesRequest) (*ListUserAddressesResponse, error)
	SetDefaultAddress(context.Context, *SetDefaultAddressRequest) (*SetDefaultAddressResponse, error)
	VerifyEmail(context.Context, *VerifyEmailRequest) (*VerifyEmailResponse, error)
	ConfirmEmailVerification(context.Context, *ConfirmEmailVerificationRequest) (*ConfirmEmailVerificationResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*emptypb.Empty, error)
	RequestPasswordReset(context.Context, *RequestPasswordResetRequest) (*RequestPasswordResetResponse, error)
	ResetPassword(context.Context, *ResetPasswordRequest) (*emptypb.Empty, error)
	GetUserPreferences(context.Context, *GetUserPreferencesRequest) (*GetUserPreferencesResponse, error)
	UpdateUserPreferences(context.Context, *UpdateUserPreferencesRequest) (*UpdateUserPreferencesResponse, error)
}

func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[Req, Resp any](fullMethod string, call func(UserServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(UserServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(UserServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateUser", Handler: unary(CreateUserMethod, UserServiceServer.CreateUser)},
		{MethodName: "GetUser", Handler: unary(GetUserMethod, UserServiceServer.GetUser)},
		{MethodName: "GetUserByEmail", Handler: unary(GetUserByEmailMethod, UserServiceServer.GetUserByEmail)},
		{MethodName: "UpdateUser", Handler: unary(UpdateUserMethod, UserServiceServer.UpdateUser)},
		{MethodName: "DeleteUser", Handler: unary(DeleteUserMethod, UserServiceServer.DeleteUser)},
		{MethodName: "DeactivateUser", Handler: unary(DeactivateUserMethod, UserServiceServer.DeactivateUser)},
		{MethodName: "ReactivateUser", Handler: unary(ReactivateUserMethod, UserServiceServer.ReactivateUser)},
		{MethodName: "ListUsers", Handler: unary(ListUsersMethod, UserServiceServer.ListUsers)},
		{MethodName: "SearchUsers", Handler: unary(SearchUsersMethod, UserServiceServer.SearchUsers)},
		{MethodName: "HealthCheck", Handler: unary(HealthCheckMethod, UserServiceServer.HealthCheck)},
		{MethodName: "UpdateUserProfile", Handler: unary(UpdateUserProfileMethod, UserServiceServer.UpdateUserProfile)},
		{MethodName: "AddUserAddress", Handler: unary(AddUserAddressMethod, UserServiceServer.AddUserAddress)},
		{MethodName: "UpdateUserAddress", Handler: unary(UpdateUserAddressMethod, UserServiceServer.UpdateUserAddress)},
		{MethodName: "DeleteUserAddress", Handler: unary(DeleteUserAddressMethod, UserServiceServer.DeleteUserAddress)},
		{MethodName: "ListUserAddresses", Handler: unary(ListUserAddressesMethod, UserServiceServer.ListUserAddresses)},
		{MethodName: "SetDefaultAddress", Handler: unary(SetDefaultAddressMethod, UserServiceServer.SetDefaultAddress)},
		{MethodName: "VerifyEmail", Handler: unary(VerifyEmailMethod, UserServiceServer.VerifyEmail)},
		{MethodName: "ConfirmEmailVerification", Handler: unary(ConfirmEmailVerificationMethod, UserServiceServer.ConfirmEmailVerification)},
		{MethodName: "ChangePassword", Handler: unary(ChangePasswordMethod, UserServiceServer.ChangePassword)},
		{MethodName: "RequestPasswordReset", Handler: unary(RequestPasswordResetMethod, UserServiceServer.RequestPasswordReset)},
		{MethodName: "ResetPassword", Handler: unary(ResetPasswordMethod, UserServiceServer.ResetPassword)},
		{MethodName: "GetUserPreferences", Handler: unary(GetUserPreferencesMethod, UserServiceServer.GetUserPreferences)},
		{MethodName: "UpdateUserPreferences", Handler: unary(UpdateUserPreferencesMethod, UserServiceServer.UpdateUserPreferences)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "user/v1/user_service.proto",
}

// UnimplementedUserServiceServer answers every method with UNIMPLEMENTED.
type UnimplementedUserServiceServer struct{}

var _ UserServiceServer = UnimplementedUserServiceServer{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedUserServiceServer) CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error) {
	return nil, unimplemented("CreateUser")
}

func (UnimplementedUserServiceServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, unimplemented("GetUser")
}

func (UnimplementedUserServiceServer) GetUserByEmail(context.Context, *GetUserByEmailRequest) (*GetUserByEmailResponse, error) {
	return nil, unimplemented("GetUserByEmail")
}

func (UnimplementedUserServiceServer) UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error) {
	return nil, unimplemented("UpdateUser")
}

func (UnimplementedUserServiceServer) DeleteUser(context.Context, *DeleteUserRequest) (*emptypb.Empty, error) {
	return nil, unimplemented("DeleteUser")
}

func (UnimplementedUserServiceServer) DeactivateUser(context.Context, *DeactivateUserRequest) (*DeactivateUserResponse, error) {
	return nil, unimplemented("DeactivateUser")
}

func (UnimplementedUserServiceServer) ReactivateUser(context.Context, *ReactivateUserRequest) (*ReactivateUserResponse, error) {
	return nil, unimplemented("ReactivateUser")
}

func (UnimplementedUserServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented("ListUsers")
}

func (UnimplementedUserServiceServer) SearchUsers(context.Context, *SearchUsersRequest) (*SearchUsersResponse, error) {
	return nil, unimplemented("SearchUsers")
}

func (UnimplementedUserServiceServer) HealthCheck(context.Context, *emptypb.Empty) (*HealthCheckResponse, error) {
	return nil, unimplemented("HealthCheck")
}

func (UnimplementedUserServiceServer) UpdateUserProfile(context.Context, *UpdateUserProfileRequest) (*UpdateUserProfileResponse, error) {
	return nil, unimplemented("UpdateUserProfile")
}

func (UnimplementedUserServiceServer) AddUserAddress(context.Context, *AddUserAddressRequest) (*AddUserAddressResponse, error) {
	return nil, unimplemented("AddUserAddress")
}

func (UnimplementedUserServiceServer) UpdateUserAddress(context.Context, *UpdateUserAddressRequest) (*UpdateUserAddressResponse, error) {
	return nil, unimplemented("UpdateUserAddress")
}

func (UnimplementedUserServiceServer) DeleteUserAddress(context.Context, *DeleteUserAddressRequest) (*emptypb.Empty, error) {
	return nil, unimplemented("DeleteUserAddress")
}

func (UnimplementedUserServiceServer) ListUserAddresses(context.Context, *ListUserAddressesRequest) (*ListUserAddressesResponse, error) {
	return nil, unimplemented("ListUserAddresses")
}

func (UnimplementedUserServiceServer) SetDefaultAddress(context.Context, *SetDefaultAddressRequest) (*SetDefaultAddressResponse, error) {
	return nil, unimplemented("SetDefaultAddress")
}

func (UnimplementedUserServiceServer) VerifyEmail(context.Context, *VerifyEmailRequest) (*VerifyEmailResponse, error) {
	return nil, unimplemented("VerifyEmail")
}

func (UnimplementedUserServiceServer) ConfirmEmailVerification(context.Context, *ConfirmEmailVerificationRequest) (*ConfirmEmailVerificationResponse, error) {
	return nil, unimplemented("ConfirmEmailVerification")
}

func (UnimplementedUserServiceServer) ChangePassword(context.Context, *ChangePasswordRequest) (*emptypb.Empty, error) {
	return nil, unimplemented("ChangePassword")
}

func (UnimplementedUserServiceServer) RequestPasswordReset(context.Context, *RequestPasswordResetRequest) (*RequestPasswordResetResponse, error) {
	return nil, unimplemented("RequestPasswordReset")
}

func (UnimplementedUserServiceServer) ResetPassword(context.Context, *ResetPasswordRequest) (*emptypb.Empty, error) {
	return nil, unimplemented("ResetPassword")
}

func (UnimplementedUserServiceServer) GetUserPreferences(context.Context, *GetUserPreferencesRequest) (*GetUserPreferencesResponse, error) {
	return nil, unimplemented("GetUserPreferences")
}

func (UnimplementedUserServiceServer) UpdateUserPreferences(context.Context, *UpdateUserPreferencesRequest) (*UpdateUserPreferencesResponse, error) {
	return nil, unimplemented("UpdateUserPreferences")
}
