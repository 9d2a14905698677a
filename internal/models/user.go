package models

import "time"

// Roles
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a back-office principal
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username" binding:"required,notblank"`
	Email        string    `json:"email" db:"email" binding:"required,agencyemail"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never expose password hash in JSON
	Role         string    `json:"role" db:"role" binding:"oneof=admin staff"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int64  `json:"expiresIn"`
	User         *User  `json:"user"`
}

// CreateUserRequest represents the request to create a back-office user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,agencyemail"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin staff"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitnil,notblank"`
	Email    *string `json:"email" binding:"omitnil,agencyemail"`
	Password *string `json:"password" binding:"omitnil,min=8"`
	Role     *string `json:"role" binding:"omitnil,oneof=admin staff"`
}
