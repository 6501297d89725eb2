package model

type Announcement struct {
	DTO
	Title  string `gorm:"not null" json:"title"`
	Body   string `gorm:"type:text" json:"body"`
	Author string `json:"author"`
	Pinned bool   `gorm:"not null;default:false" json:"pinned"`
}

type Announcements []Announcement

type CreateAnnouncementInput struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	Pinned bool   `json:"pinned"`
}
