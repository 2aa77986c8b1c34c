package service

import "errors"

var (
	// ErrEmailNotFound 登录邮箱未命中任何记录
	ErrEmailNotFound = errors.New("email not found")
	// ErrProductNotFound 商品ID未命中任何记录
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuantity 购买数量不合法（小于 1）
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInsufficientStock 库存不足，属于可恢复的单条目错误
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrCartEmpty 购物车为空，按提示信息处理而非错误
	ErrCartEmpty = errors.New("cart is empty")
)
