package models

// Customer 买家记录；注册后基础信息不再变更，购物车随会话变化
type Customer struct {
	ID      uint64 `json:"id"`      // 主键
	Name    string `json:"name"`    // 买家名
	Address string `json:"address"` // 收货地址
	Phone   string `json:"phone"`   // 电话
	Email   string `json:"email"`   // 登录邮箱（明文唯一键，精确匹配）

	Cart Cart `json:"cart"` // 持有的购物车（后进先出）
}
