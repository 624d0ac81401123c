// FILE: internal/dto/auth_dto.go
package dto

import (
	"genai-studio-be/internal/constant"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (SignupRequest) MissingFieldsMessage() string {
	return constant.MsgSignupFieldsRequired
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

func (LoginRequest) MissingFieldsMessage() string {
	return constant.MsgLoginFieldsRequired
}

type AuthResponse struct {
	Message  string    `json:"message"`
	Token    string    `json:"token"`
	UserId   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}
