package model

// カートの並び（1行 = 商品1個）
// IDの昇順が追加順。同じItemIDが複数行あれば数量。
type CartItem struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	CartID int64 `gorm:"not null;index"`
	ItemID int64 `gorm:"not null;index"`
}
