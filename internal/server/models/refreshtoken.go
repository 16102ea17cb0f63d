package models

import "time"

type RefreshToken struct {
	UserID  string
	Token   string
	Expires time.Time
}

type PasswordResetToken struct {
	UserID  string
	Token   string
	Expires time.Time
}
