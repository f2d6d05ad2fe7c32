package auth

import (
	"time"

	"logistics-requests/utils"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (req *LoginRequest) Validate() error {
	return utils.ValidateStruct(req)
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Position  string `json:"position" validate:"omitempty,max=100"`
	Age       *int   `json:"age" validate:"omitempty,min=14,max=120"`
	Phone     string `json:"phone" validate:"omitempty,kzphone"`
}

func (req *RegisterRequest) Validate() error {
	return utils.ValidateStruct(req)
}

type LoginResponse struct {
	ExpiresAt time.Time   `json:"expires_at"`
	User      interface{} `json:"user"`
}
