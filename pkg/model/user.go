package model

import "time"

type User struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email           string    `json:"email" bson:"email" validate:"required,email"`
	Photo           string    `json:"photo,omitempty" bson:"photo,omitempty" validate:"omitempty,url"`
	IsAdmin         bool      `json:"isAdmin" bson:"isAdmin"`
	Age             int       `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,min=18,max=120"`
	SecurityDeposit float64   `json:"securityDeposit,omitempty" bson:"securityDeposit,omitempty" validate:"omitempty,min=0"`
	DocumentID      string    `json:"documentId,omitempty" bson:"documentId,omitempty" validate:"omitempty,min=3,max=50"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// UserRoleUpdate toggles the admin flag. IsAdmin is a pointer so a
// payload that omits it (or sends a non-boolean) is rejected rather
// than silently defaulting to false.
type UserRoleUpdate struct {
	Email   string `json:"email" validate:"required,email"`
	IsAdmin *bool  `json:"isAdmin" validate:"required"`
}

type UserInfoUpdate struct {
	Email           string   `json:"email" validate:"required,email"`
	Age             *int     `json:"age,omitempty" validate:"omitempty,min=18,max=120"`
	SecurityDeposit *float64 `json:"securityDeposit,omitempty" validate:"omitempty,min=0"`
	DocumentID      *string  `json:"documentId,omitempty" validate:"omitempty,min=3,max=50"`
}
