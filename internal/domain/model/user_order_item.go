package model

// 注文時点のカートの並びをそのまま保存
type UserOrderItem struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	UserOrderID int64 `gorm:"not null;index"`
	ItemID      int64 `gorm:"not null;index"`
}
