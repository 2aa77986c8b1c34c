package service

import (
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// ProductService 卖家侧商品上架
type ProductService struct {
	repo *repository.Repository
}

// NewProductService 创建商品服务
func NewProductService(repo *repository.Repository) *ProductService {
	return &ProductService{repo: repo}
}

// AddProduct 上架新商品并立即落盘
// 价格与数量按传入值接受，评分从零开始
func (s *ProductService) AddProduct(session *SellerSession, name string, price models.Money, category string, quantity int) (*models.Product, error) {
	product := s.repo.AddProduct(name, price, category, quantity, session.Seller.ID)
	if err := s.repo.Persist(); err != nil {
		return nil, err
	}
	logger.Infow("product_added",
		"product_id", product.ID,
		"seller_id", session.Seller.ID,
		"price", product.Price.String(),
		"quantity", product.Quantity,
	)
	return product, nil
}
