package repository

import (
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/store"
)

// Repository 内存中的权威数据集合
// 卖家/买家/商品三组只追加的切片，配合单调递增的ID计数器；
// 每次变更操作之后调用 Persist 写穿到文件存储
type Repository struct {
	fileStore *store.FileStore

	sellers   []*models.Seller
	customers []*models.Customer
	products  []*models.Product

	sellerCounter   uint64
	customerCounter uint64
	productCounter  uint64
}

// New 创建空仓库，ID 从 1 开始分配
func New(fileStore *store.FileStore) *Repository {
	return &Repository{
		fileStore:       fileStore,
		sellerCounter:   1,
		customerCounter: 1,
		productCounter:  1,
	}
}

// Reload 从文件存储重建内存状态
// 装载时遇到不小于当前计数器的ID，计数器推进到该ID+1，
// 保证重启后新分配的ID不会与历史记录冲突
func (r *Repository) Reload() error {
	snapshot, err := r.fileStore.Load()
	if err != nil {
		return err
	}

	r.sellers = snapshot.Sellers
	r.customers = snapshot.Customers
	r.products = snapshot.Products
	r.sellerCounter = 1
	r.customerCounter = 1
	r.productCounter = 1

	for _, seller := range r.sellers {
		if seller.ID >= r.sellerCounter {
			r.sellerCounter = seller.ID + 1
		}
	}
	for _, customer := range r.customers {
		if customer.ID >= r.customerCounter {
			r.customerCounter = customer.ID + 1
		}
	}
	for _, product := range r.products {
		if product.ID >= r.productCounter {
			r.productCounter = product.ID + 1
		}
	}

	logger.Infow("repository_loaded",
		"sellers", len(r.sellers),
		"customers", len(r.customers),
		"products", len(r.products),
	)
	return nil
}

// Persist 将当前内存状态整体写入文件存储
func (r *Repository) Persist() error {
	return r.fileStore.Save(&store.Snapshot{
		Sellers:   r.sellers,
		Customers: r.customers,
		Products:  r.products,
	})
}
