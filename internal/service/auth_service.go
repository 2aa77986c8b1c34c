package service

import (
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// SellerSession 卖家会话；随工作流传递，工作流结束即丢弃
type SellerSession struct {
	Seller *models.Seller
}

// CustomerSession 买家会话；随工作流传递，工作流结束即丢弃
type CustomerSession struct {
	Customer *models.Customer
}

// AuthService 注册与登录
// 登录只按邮箱明文精确匹配，不做口令与多重校验（按设计排除在外）
type AuthService struct {
	repo *repository.Repository
}

// NewAuthService 创建认证服务
func NewAuthService(repo *repository.Repository) *AuthService {
	return &AuthService{repo: repo}
}

// RegisterSeller 注册卖家并立即落盘
func (s *AuthService) RegisterSeller(name, email string) (*models.Seller, error) {
	seller := s.repo.RegisterSeller(name, email)
	if err := s.repo.Persist(); err != nil {
		return nil, err
	}
	logger.Infow("seller_registered", "seller_id", seller.ID, "email", seller.Email)
	return seller, nil
}

// RegisterCustomer 注册买家并立即落盘
func (s *AuthService) RegisterCustomer(name, address, phone, email string) (*models.Customer, error) {
	customer := s.repo.RegisterCustomer(name, address, phone, email)
	if err := s.repo.Persist(); err != nil {
		return nil, err
	}
	logger.Infow("customer_registered", "customer_id", customer.ID, "email", customer.Email)
	return customer, nil
}

// LoginSeller 卖家登录；未命中返回 ErrEmailNotFound，重试交给外层菜单
func (s *AuthService) LoginSeller(email string) (*SellerSession, error) {
	seller, ok := s.repo.FindSellerByEmail(email)
	if !ok {
		return nil, ErrEmailNotFound
	}
	logger.Infow("seller_login", "seller_id", seller.ID)
	return &SellerSession{Seller: seller}, nil
}

// LoginCustomer 买家登录；未命中返回 ErrEmailNotFound
func (s *AuthService) LoginCustomer(email string) (*CustomerSession, error) {
	customer, ok := s.repo.FindCustomerByEmail(email)
	if !ok {
		return nil, ErrEmailNotFound
	}
	logger.Infow("customer_login", "customer_id", customer.ID)
	return &CustomerSession{Customer: customer}, nil
}
