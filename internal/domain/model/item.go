package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カタログの商品。APIからの更新はない。
type Item struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"price"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"-"`
}
