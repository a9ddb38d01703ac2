//go:build unit || e2e

package builder

import (
	reqdto "cafe-reservation/internal/handler/dto/request"
	"cafe-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type AuthBuilder struct {
	UserID   uuid.UUID
	Email    string
	Password string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		UserID:   uuid.New(),
		Email:    "customer@example.com",
		Password: "password123",
		Role:     "customer",
	}
}

func (a *AuthBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildLoginResult() *commands.LoginResult {
	return &commands.LoginResult{
		UserID: a.UserID,
		Role:   a.Role,
		Token:  "signed.jwt.token",
	}
}

// Fluent builder methods
func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) WithRole(role string) *AuthBuilder {
	a.Role = role
	return a
}
