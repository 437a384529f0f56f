package models

import "time"

// User is a registered account. Credential verification and session issuance
// live in the auth service; this backend only stores the record and resolves
// display fields on messages.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Bio      string `json:"bio"`

	Password string `json:"-"`
}

// PublicUser is the projection of a User safe to embed in message payloads.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
	}
}
