package dto

import "ship_catalog/internal/app/ds"

// RegisterRequest: payload for operator registration
type RegisterRequest struct {
	Login    string `json:"login" binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FIO      string `json:"fio"`
	Contacts string `json:"contacts"`
}

func (r RegisterRequest) ToUser() ds.User {
	return ds.User{
		Login:    r.Login,
		Password: r.Password,
		FIO:      r.FIO,
		Contacts: r.Contacts,
	}
}

// LoginRequest: payload for login
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse: token plus the account it belongs to
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileRequest: editable profile fields; empty password keeps the old one
type ProfileRequest struct {
	FIO      string `json:"fio"`
	Contacts string `json:"contacts"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Login    string `json:"login"`
	FIO      string `json:"fio"`
	Contacts string `json:"contacts"`
	Role     string `json:"role"`
}

func FromUser(u ds.User) UserResponse {
	return UserResponse{
		ID:       u.UserID,
		Login:    u.Login,
		FIO:      u.FIO,
		Contacts: u.Contacts,
		Role:     u.Role,
	}
}
