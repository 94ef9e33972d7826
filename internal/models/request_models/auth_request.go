package request_models

type RegisterRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	Role             string `json:"role" binding:"omitempty,oneof=elderly family"`
	PrimaryUserEmail string `json:"primaryUserEmail" binding:"omitempty,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
