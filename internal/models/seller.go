package models

// Seller 卖家记录；注册后不再变更
type Seller struct {
	ID    uint64 `json:"id"`    // 主键
	Name  string `json:"name"`  // 卖家名
	Email string `json:"email"` // 登录邮箱（明文唯一键，精确匹配）
}
