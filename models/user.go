package models

type User struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	FirstName string `json:"firstName" gorm:"type:varchar(100);not null"`
	LastName  string `json:"lastName" gorm:"type:varchar(100);not null"`
	Email     string `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Username  string `json:"username" gorm:"type:varchar(100);not null"`
	Password  string `json:"-" gorm:"not null"` // bcrypt hash, never the original
}
