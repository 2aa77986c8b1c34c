package constants

// 评分范围常量
const (
	RatingMin = 1
	RatingMax = 5
)

// 存储文件默认名（与磁盘格式文档保持一致）
const (
	SellersFilename   = "sellers.txt"
	CustomersFilename = "customers.txt"
	ProductsFilename  = "products.txt"
	CartsFilename     = "carts.txt"
)

// 记录字段分隔符；字段值内不做转义，嵌入竖线会破坏该行（已知限制）
const FieldSeparator = "|"
