package userpb

import "google.golang.org/protobuf/types/known/timestamppb"

// Messages of the profile, address, verification, password and preference
// operations. The server answers these with UNIMPLEMENTED.

type UserProfile struct {
	Bio         string                 `json:"bio,omitempty"`
	AvatarURL   string                 `json:"avatar_url,omitempty"`
	DateOfBirth *timestamppb.Timestamp `json:"date_of_birth,omitempty"`
}

type Address struct {
	ID          string `json:"id,omitempty"`
	Line1       string `json:"line1,omitempty"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	IsDefault   bool   `json:"is_default,omitempty"`
}

type UserPreferences struct {
	Language       string `json:"language,omitempty"`
	Timezone       string `json:"timezone,omitempty"`
	Currency       string `json:"currency,omitempty"`
	MarketingOptIn bool   `json:"marketing_opt_in,omitempty"`
}

type UpdateUserProfileRequest struct {
	UserID  string       `json:"user_id,omitempty"`
	Profile *UserProfile `json:"profile,omitempty"`
}

type UpdateUserProfileResponse struct {
	Profile *UserProfile `json:"profile,omitempty"`
}

type AddUserAddressRequest struct {
	UserID  string   `json:"user_id,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type AddUserAddressResponse struct {
	Address *Address `json:"address,omitempty"`
}

type UpdateUserAddressRequest struct {
	UserID  string   `json:"user_id,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type UpdateUserAddressResponse struct {
	Address *Address `json:"address,omitempty"`
}

type DeleteUserAddressRequest struct {
	UserID    string `json:"user_id,omitempty"`
	AddressID string `json:"address_id,omitempty"`
}

type ListUserAddressesRequest struct {
	UserID string `json:"user_id,omitempty"`
}

type ListUserAddressesResponse struct {
	Addresses []*Address `json:"addresses,omitempty"`
}

type SetDefaultAddressRequest struct {
	UserID    string `json:"user_id,omitempty"`
	AddressID string `json:"address_id,omitempty"`
}

type SetDefaultAddressResponse struct {
	Address *Address `json:"address,omitempty"`
}

type VerifyEmailRequest struct {
	UserID string `json:"user_id,omitempty"`
}

type VerifyEmailResponse struct {
	ExpiresAt *timestamppb.Timestamp `json:"expires_at,omitempty"`
}

type ConfirmEmailVerificationRequest struct {
	UserID string `json:"user_id,omitempty"`
	Token  string `json:"token,omitempty"`
}

type ConfirmEmailVerificationResponse struct {
	User *User `json:"user,omitempty"`
}

type ChangePasswordRequest struct {
	UserID          string `json:"user_id,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email,omitempty"`
}

type RequestPasswordResetResponse struct {
	ExpiresAt *timestamppb.Timestamp `json:"expires_at,omitempty"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token,omitempty"`
	NewPassword string `json:"new_password,omitempty"`
}

type GetUserPreferencesRequest struct {
	UserID string `json:"user_id,omitempty"`
}

type GetUserPreferencesResponse struct {
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

type UpdateUserPreferencesRequest struct {
	UserID      string           `json:"user_id,omitempty"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

type UpdateUserPreferencesResponse struct {
	Preferences *UserPreferences `json:"preferences,omitempty"`
}
