package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文。作成後は変更しない。
type UserOrder struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64           `gorm:"not null;index" json:"user_id"`
	Total     decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"total"`
	Items     []Item          `gorm:"-" json:"items"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
