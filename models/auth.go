package models

type AuthRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	TwoFactorCode string `json:"two_factor_code"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  `json:"user"`
}

// SessionPayload is what the auth middleware stashes in the request header
// after validating the token against redis.
type SessionPayload struct {
	User         `json:"user"`
	RefreshToken string `json:"refresh-token"`
}

type User struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// UserUpdate carries a partial profile edit; nil fields are left untouched.
type UserUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
