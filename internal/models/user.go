package models

// Role gates which admin operations a user may perform.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEditor   Role = "editor"
	RoleReviewer Role = "reviewer"
)

// AdminUser is a backoffice login identity. Email is the unique
// login key; the password hash never leaves the server.
type AdminUser struct {
	Base         `bson:",inline"`
	Email        string `json:"email"     bson:"email"`
	PasswordHash string `json:"-"         bson:"password_hash"`
	Role         Role   `json:"role"      bson:"role"`
	IsActive     bool   `json:"is_active" bson:"is_active"`
}
