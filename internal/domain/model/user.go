package model

import "time"

// PasswordHashはbcryptのハッシュ。JSONには絶対に出さない。
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CartID       int64     `gorm:"not null;index" json:"-"`
	Cart         Cart      `gorm:"-" json:"cart"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
