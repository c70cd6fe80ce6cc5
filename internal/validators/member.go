package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/backend-mobile/models"
)

// Field name constants for member requests.
const (
	FieldNama     = "nama"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	// MinPasswordLength is the minimum number of characters in a member password.
	MinPasswordLength = 6

	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// MemberValidator checks registration and login requests.
type MemberValidator struct {
}

func NewMemberValidator() Validator {
	return &MemberValidator{}
}

func (v *MemberValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrasiRequest:
		return v.validateRegistrasi(value, fields...)
	case *models.RegistrasiRequest:
		return v.validateRegistrasi(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MemberValidator) validateRegistrasi(req models.RegistrasiRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNama, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldNama:
			if strings.TrimSpace(req.Nama) == "" {
				return ErrEmptyNama
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(req.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(req.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validateLogin only checks presence; credentials are verified by the service.
func (v *MemberValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validateEmail accepts a bare addr-spec ("user@example.com"). Display names
// and domains without a dot are rejected.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ErrInvalidEmail
	}

	return nil
}
