package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleMaster = "master"
	RoleAdmin  = "admin"
)

func IsValidRole(role string) bool {
	return role == RoleMaster || role == RoleAdmin
}

type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	PhoneNumber  *string    `json:"phone_number"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedBy    *int       `json:"created_by"`
	PasswordHash string     `json:"-"`
	Deleted      bool       `json:"-"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"date_joined"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UserFilters struct {
	CreatedBy *int
}

// RegisterRequest é usado tanto no cadastro público quanto na criação por um master
type RegisterRequest struct {
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"password_confirm"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	PhoneNumber     *string `json:"phone_number"`
	Role            string  `json:"role"`
}

type UpdateUserRequest struct {
	ID          int     `json:"-"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Email           *string `json:"email"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password"`
}

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) IsMaster() bool {
	return c.Role == RoleMaster
}

type TokenPair struct {
	Refresh  string `json:"refresh"`
	Access   string `json:"access"`
	UserRole string `json:"userRole"`
}
