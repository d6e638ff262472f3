// Package models defines the entity records managed by the admin dashboard,
// mirroring the backend's JSON payloads (Mongo-style "_id" identifiers,
// snake_case field names where the API uses them).
package models

import "time"

// Roles assignable to a platform account.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Presence labels derived from the isOnline flag.
const (
	UserStatusActive  = "Active"
	UserStatusBlocked = "Blocked"
)

type Avatar struct {
	URL string `json:"url"`
}

type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"user_role"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Avatar    Avatar    `json:"avatar"`
	IsOnline  bool      `json:"isOnline"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) EntityID() string { return u.ID }

// Status maps the presence flag to the label the dashboard filters on.
func (u User) Status() string {
	if u.IsOnline {
		return UserStatusActive
	}
	return UserStatusBlocked
}

// UserDraft carries the editable account fields. AvatarPath points to a
// local file to upload as a multipart part; empty means no avatar change.
// Password is only sent on create.
type UserDraft struct {
	Username   string
	Email      string
	Password   string
	Phone      string
	Address    string
	Role       string
	AvatarPath string
}

// NewUserDraft returns the create-dialog defaults.
func NewUserDraft() UserDraft {
	return UserDraft{Role: RoleUser}
}

// DraftOfUser snapshots an existing account for editing.
func DraftOfUser(u User) UserDraft {
	return UserDraft{
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Address:  u.Address,
		Role:     u.Role,
	}
}
