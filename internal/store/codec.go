package store

import (
	"strconv"
	"strings"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
)

// 磁盘行格式：单条记录一行，字段用竖线分隔，字段值不做转义。
// 名称/邮箱/分类里出现竖线会破坏该行的解析，这是格式的已知限制。

type cartLine struct {
	CustomerID uint64
	ProductID  uint64
	Quantity   int
}

func encodeSeller(seller *models.Seller) string {
	return joinFields(
		strconv.FormatUint(seller.ID, 10),
		seller.Name,
		seller.Email,
	)
}

func decodeSeller(line string) (*models.Seller, bool) {
	fields := splitFields(line)
	if len(fields) < 3 {
		return nil, false
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return nil, false
	}
	return &models.Seller{
		ID:    id,
		Name:  fields[1],
		Email: fields[2],
	}, true
}

func encodeCustomer(customer *models.Customer) string {
	return joinFields(
		strconv.FormatUint(customer.ID, 10),
		customer.Name,
		customer.Address,
		customer.Phone,
		customer.Email,
	)
}

func decodeCustomer(line string) (*models.Customer, bool) {
	fields := splitFields(line)
	if len(fields) < 5 {
		return nil, false
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return nil, false
	}
	return &models.Customer{
		ID:      id,
		Name:    fields[1],
		Address: fields[2],
		Phone:   fields[3],
		Email:   fields[4],
	}, true
}

func encodeProduct(product *models.Product) string {
	return joinFields(
		strconv.FormatUint(product.ID, 10),
		product.Name,
		product.Price.String(),
		product.Category,
		strconv.Itoa(product.Quantity),
		strconv.FormatUint(product.SellerID, 10),
		strconv.FormatFloat(product.RatingSum, 'f', -1, 64),
		strconv.Itoa(product.RatingCount),
	)
}

func decodeProduct(line string) (*models.Product, bool) {
	fields := splitFields(line)
	if len(fields) < 8 {
		return nil, false
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return nil, false
	}
	price, err := models.ParseMoney(fields[2])
	if err != nil {
		return nil, false
	}
	quantity, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, false
	}
	sellerID, err := strconv.ParseUint(fields[5], 10, 64)
	if err != nil {
		return nil, false
	}
	ratingSum, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return nil, false
	}
	ratingCount, err := strconv.Atoi(fields[7])
	if err != nil {
		return nil, false
	}
	return &models.Product{
		ID:          id,
		Name:        fields[1],
		Price:       price,
		Category:    fields[3],
		Quantity:    quantity,
		SellerID:    sellerID,
		RatingSum:   ratingSum,
		RatingCount: ratingCount,
	}, true
}

func encodeCartLine(customerID uint64, item models.CartItem) string {
	return joinFields(
		strconv.FormatUint(customerID, 10),
		strconv.FormatUint(item.Snapshot.ProductID, 10),
		strconv.Itoa(item.Quantity),
	)
}

func decodeCartLine(line string) (cartLine, bool) {
	fields := splitFields(line)
	if len(fields) < 3 {
		return cartLine{}, false
	}
	customerID, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return cartLine{}, false
	}
	productID, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return cartLine{}, false
	}
	quantity, err := strconv.Atoi(fields[2])
	if err != nil {
		return cartLine{}, false
	}
	return cartLine{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	}, true
}

func joinFields(fields ...string) string {
	return strings.Join(fields, constants.FieldSeparator)
}

func splitFields(line string) []string {
	return strings.Split(line, constants.FieldSeparator)
}
