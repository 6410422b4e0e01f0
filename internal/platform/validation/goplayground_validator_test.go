package validation_test

import (
	"testing"

	"github.com/ferdiebergado/kubodir/internal/platform/validation"
)

func TestGoplaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	type createReq struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"display_name,omitempty" validate:"max=5"`
	}

	tests := []struct {
		name   string
		given  any
		field  string
		errMsg string
	}{
		{"Valid request", createReq{Email: "ana@example.com"}, "email", ""},
		{"Missing email", createReq{}, "email", "email is required"},
		{"Malformed email", createReq{Email: "ana"}, "email", "email must be a valid email address"},
		{"Name too long", createReq{Email: "ana@example.com", Name: "Anastasia"}, "display_name", "display_name must be at most 5 characters long"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := validation.NewGoPlaygroundValidator()

			errs := v.ValidateStruct(tc.given)
			if tc.errMsg == "" && errs != nil {
				t.Errorf("v.ValidateStruct(%+v) = %+v, want: %+v", tc.given, errs, nil)
			}

			if gotMsg, wantMsg := errs[tc.field], tc.errMsg; gotMsg != wantMsg {
				t.Errorf("errs[%q] = %q, want: %q", tc.field, gotMsg, wantMsg)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	errs := map[string]string{
		"phone": "phone is invalid",
		"email": "email is required",
	}

	if got, want := validation.Summary(errs), "email is required; phone is invalid"; got != want {
		t.Errorf("validation.Summary(%v) = %q, want: %q", errs, got, want)
	}
}
