package service

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type LoginRequest struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
}

type ChatRequest struct {
	Content string `json:"content" validate:"required"`
}

func ValidateLoginRequest(req *LoginRequest) error {
	return validate.Struct(req)
}

func ValidateChatRequest(req *ChatRequest) error {
	return validate.Struct(req)
}
