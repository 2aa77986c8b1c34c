package repository

import "github.com/bazaar-next/internal/models"

// RegisterCustomer 登记新买家并分配ID；邮箱唯一性同样不在本层校验
func (r *Repository) RegisterCustomer(name, address, phone, email string) *models.Customer {
	customer := &models.Customer{
		ID:      r.customerCounter,
		Name:    name,
		Address: address,
		Phone:   phone,
		Email:   email,
	}
	r.customerCounter++
	r.customers = append(r.customers, customer)
	return customer
}

// FindCustomerByEmail 按邮箱线性查找买家，大小写敏感精确匹配，返回首个命中
func (r *Repository) FindCustomerByEmail(email string) (*models.Customer, bool) {
	for _, customer := range r.customers {
		if customer.Email == email {
			return customer, true
		}
	}
	return nil, false
}

// Customers 按登记顺序返回买家集合
func (r *Repository) Customers() []*models.Customer {
	return r.customers
}
