// Package models defines the persisted document types for the user service.
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Roles lists every valid role.
var Roles = []Role{RoleUser, RoleManager, RoleAdmin}

// ValidRole reports whether role is a member of the closed role set.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if string(r) == role {
			return true
		}
	}
	return false
}

// User is the persisted user document. The email carries a unique index
// and is stored lowercase and trimmed. Password and password-reset fields
// are excluded from default read projections and never serialized to JSON.
type User struct {
	ID   bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string        `bson:"name" json:"name"`
	Slug string        `bson:"slug,omitempty" json:"slug,omitempty"`

	Email    string `bson:"email" json:"email"`
	Password string `bson:"password,omitempty" json:"-"`

	PasswordChangedAt     *time.Time `bson:"passwordChangedAt,omitempty" json:"-"`
	PasswordResetCode     string     `bson:"passwordResetCode,omitempty" json:"-"`
	PasswordResetExpires  *time.Time `bson:"passwordResetExpires,omitempty" json:"-"`
	PasswordResetVerified *bool      `bson:"passwordResetVerified,omitempty" json:"-"`

	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage string `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Role         Role   `bson:"role" json:"role"`
	Active       bool   `bson:"active" json:"active"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Normalize applies the storage canonical form: trimmed name, lowercase
// trimmed email, defaulted role and active flag, and a slug derived from
// the name.
func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = NormalizeEmail(u.Email)
	u.Slug = Slugify(u.Name)
	if u.Role == "" {
		u.Role = RoleUser
	}
}

// NormalizeEmail lowercases and trims an email address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Slugify derives a lowercase dash-separated slug from a display name.
func Slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(name)), "-"))
}

// UserPatch is a partial update to a user document. Nil fields are left
// untouched.
type UserPatch struct {
	Name         *string
	Email        *string
	Password     *string
	Role         *string
	Phone        *string
	ProfileImage *string
}

// Empty reports whether the patch carries no changes.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil &&
		p.Role == nil && p.Phone == nil && p.ProfileImage == nil
}

// SetDocument builds the $set document for the patch. Email is stored in
// canonical form; a name change also refreshes the slug.
func (p UserPatch) SetDocument() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = strings.TrimSpace(*p.Name)
		set["slug"] = Slugify(*p.Name)
	}
	if p.Email != nil {
		set["email"] = NormalizeEmail(*p.Email)
	}
	if p.Password != nil {
		set["password"] = *p.Password
		set["passwordChangedAt"] = time.Now().UTC()
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.ProfileImage != nil {
		set["profileImage"] = *p.ProfileImage
	}
	return set
}
