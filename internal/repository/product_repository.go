package repository

import "github.com/bazaar-next/internal/models"

// AddProduct 上架新商品并分配ID
// 价格与数量按传入值接受（符号不在本层校验），评分从零开始
func (r *Repository) AddProduct(name string, price models.Money, category string, quantity int, sellerID uint64) *models.Product {
	product := &models.Product{
		ID:       r.productCounter,
		Name:     name,
		Price:    price,
		Category: category,
		Quantity: quantity,
		SellerID: sellerID,
	}
	r.productCounter++
	r.products = append(r.products, product)
	return product
}

// FindProductByID 按ID线性查找商品
func (r *Repository) FindProductByID(id uint64) (*models.Product, bool) {
	for _, product := range r.products {
		if product.ID == id {
			return product, true
		}
	}
	return nil, false
}

// Products 按上架顺序返回商品集合
func (r *Repository) Products() []*models.Product {
	return r.products
}
