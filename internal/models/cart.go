package models

// ProductSnapshot 加购时刻的商品快照
// 购物车展示与结算金额都以快照为准，库存扣减始终落在目录里的活记录上；
// 加购之后改价不影响已入车条目的应付金额
type ProductSnapshot struct {
	ProductID  uint64 `json:"product_id"`   // 原商品ID
	Name       string `json:"name"`         // 加购时商品名
	PriceAtAdd Money  `json:"price_at_add"` // 加购时单价
	Category   string `json:"category"`     // 加购时分类
	SellerID   uint64 `json:"seller_id"`    // 所属卖家ID
}

// CartItem 购物车条目：商品快照 + 购买数量
type CartItem struct {
	Snapshot ProductSnapshot `json:"snapshot"` // 商品快照
	Quantity int             `json:"quantity"` // 购买数量
}

// LineTotal 条目小计（快照单价 × 数量）
func (i CartItem) LineTotal() Money {
	return i.Snapshot.PriceAtAdd.MulInt(i.Quantity)
}

// Cart 购物车，严格后进先出
// 只允许栈顶进出，不存在按下标删除的入口（“撤销上一件”即弹栈）
type Cart struct {
	items []CartItem // 栈底到栈顶
}

// Push 压入一条新条目
func (c *Cart) Push(item CartItem) {
	c.items = append(c.items, item)
}

// PeekTop 查看栈顶条目，不改变购物车
func (c *Cart) PeekTop() (CartItem, bool) {
	if len(c.items) == 0 {
		return CartItem{}, false
	}
	return c.items[len(c.items)-1], true
}

// PopTop 弹出最近加入的条目；空车返回 ok=false
func (c *Cart) PopTop() (CartItem, bool) {
	if len(c.items) == 0 {
		return CartItem{}, false
	}
	top := c.items[len(c.items)-1]
	c.items = c.items[:len(c.items)-1]
	return top, true
}

// Items 返回栈顶到栈底的条目副本，供展示与结算转移使用，不消耗栈
func (c *Cart) Items() []CartItem {
	snapshot := make([]CartItem, 0, len(c.items))
	for i := len(c.items) - 1; i >= 0; i-- {
		snapshot = append(snapshot, c.items[i])
	}
	return snapshot
}

// IsEmpty 购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Len 条目数量
func (c *Cart) Len() int {
	return len(c.items)
}
