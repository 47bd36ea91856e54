package dto

import "time"

// SignUpRequest describes the signup payload.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignInRequest describes the signin payload.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the outward projection of a user. It deliberately has no
// password hash field, so the hash cannot leak by construction.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignUpResponse wraps the created user.
type SignUpResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// SignInResponse carries the issued identity token.
type SignInResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
