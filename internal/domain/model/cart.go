package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 1ユーザーにつき1つ
// Itemsは追加順で、同じ商品を繰り返すことで数量を表す。
type Cart struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64           `gorm:"not null;default:0;index" json:"-"`
	Total     decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"total"`
	Items     []Item          `gorm:"-" json:"items"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"-"`
}

// 空のカート
func NewCart() Cart {
	return Cart{
		Items: []Item{},
		Total: decimal.Zero,
	}
}

// AddItem はitemをqty個末尾に追加し、合計をprice×qty増やす。
func (c *Cart) AddItem(item Item, qty int) {
	if qty <= 0 {
		return
	}
	for i := 0; i < qty; i++ {
		c.Items = append(c.Items, item)
	}
	c.Total = c.Total.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
}

// RemoveItem は先頭から最大qty個のitemを外す。
// 足りなければあるだけ外し、実際に外した個数を返す。
func (c *Cart) RemoveItem(item Item, qty int) int {
	if qty <= 0 {
		return 0
	}

	removed := 0
	kept := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if removed < qty && it.ID == item.ID {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept

	c.Total = c.Total.Sub(item.Price.Mul(decimal.NewFromInt(int64(removed))))
	// 合計はマイナスにしない
	if c.Total.IsNegative() {
		c.Total = decimal.Zero
	}
	return removed
}

// 中身と合計を空にする
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.Total = decimal.Zero
}

// Snapshot は今のカートの中身から注文を作る。
// Itemsはコピーするので、後でカートを変えても注文には影響しない。
func (c Cart) Snapshot(userID int64) UserOrder {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)

	return UserOrder{
		UserID: userID,
		Items:  items,
		Total:  c.Total,
	}
}
