package models

type Question struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	// References categories.id. Not enforced at the application layer, so
	// orphaned questions are representable.
	Category   uint `gorm:"index" json:"category"`
	Difficulty int  `gorm:"not null;default:1" json:"difficulty"`
}
