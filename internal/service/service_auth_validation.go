package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/backend-mobile/internal/validators"
	"github.com/MKhiriev/backend-mobile/models"
)

// AuthValidationService checks registration and login input before it
// reaches the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewMemberValidator(),
	}
}

func (v *AuthValidationService) Registrasi(ctx context.Context, req models.RegistrasiRequest) (models.Member, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Member{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Registrasi(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, member models.Member) (models.Token, error) {
	return v.inner.CreateToken(ctx, member)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrInvalidToken
	}

	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
