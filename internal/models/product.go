package models

// Product 商品记录（在售目录中的“活”记录）
type Product struct {
	ID          uint64  `json:"id"`           // 主键，注册时顺序分配
	Name        string  `json:"name"`         // 商品名
	Price       Money   `json:"price"`        // 单价
	Category    string  `json:"category"`     // 分类（自由文本）
	Quantity    int     `json:"quantity"`     // 库存数量，不允许为负
	SellerID    uint64  `json:"seller_id"`    // 所属卖家ID
	RatingSum   float64 `json:"rating_sum"`   // 评分累计
	RatingCount int     `json:"rating_count"` // 评分次数
}

// AverageRating 平均评分；无评分时返回 0
func (p *Product) AverageRating() float64 {
	if p.RatingCount == 0 {
		return 0
	}
	return p.RatingSum / float64(p.RatingCount)
}

// AddRating 追加一次评分；累计值与次数成对更新，范围校验由调用方负责
func (p *Product) AddRating(score float64) {
	p.RatingSum += score
	p.RatingCount++
}

// Snapshot 生成加购时刻的商品快照
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID:  p.ID,
		Name:       p.Name,
		PriceAtAdd: p.Price,
		Category:   p.Category,
		SellerID:   p.SellerID,
	}
}
