package models

import "time"

// Operator is a backend login account (production manager / accountant).
type Operator struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Mobile       string    `bson:"mobile,omitempty" json:"mobile,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	Operator Operator `json:"operator"`
	Token    string   `json:"token"`
}
