package repository

import "github.com/bazaar-next/internal/models"

// RegisterSeller 登记新卖家并分配ID
// 本层不校验邮箱唯一性：登录按首个匹配记录处理
func (r *Repository) RegisterSeller(name, email string) *models.Seller {
	seller := &models.Seller{
		ID:    r.sellerCounter,
		Name:  name,
		Email: email,
	}
	r.sellerCounter++
	r.sellers = append(r.sellers, seller)
	return seller
}

// FindSellerByEmail 按邮箱线性查找卖家，大小写敏感精确匹配，返回首个命中
func (r *Repository) FindSellerByEmail(email string) (*models.Seller, bool) {
	for _, seller := range r.sellers {
		if seller.Email == email {
			return seller, true
		}
	}
	return nil, false
}

// Sellers 按登记顺序返回卖家集合
func (r *Repository) Sellers() []*models.Seller {
	return r.sellers
}
