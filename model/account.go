package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password string `gorm:"not null" validate:"required,min=6,max=72" json:"-"`
	FullName string `json:"fullName"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `gorm:"not null;default:STAFF" json:"role"` // ADMIN MANAGER STAFF
}

type Accounts []Account

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName"`
	Role     string `json:"role" validate:"required,oneof=ADMIN MANAGER STAFF"`
}
