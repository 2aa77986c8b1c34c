package main

import (
	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/store"

	"github.com/shopspring/decimal"
)

// 示例数据填充工具：写入两个卖家、一批跨分类商品和一个买家，
// 已有数据文件会被整体覆盖
func main() {
	cfg := config.Load()
	logger.Init(cfg.App.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()

	fileStore := store.New(store.Options{
		Dir:           cfg.Store.Dir,
		SellersFile:   cfg.Store.SellersFile,
		CustomersFile: cfg.Store.CustomersFile,
		ProductsFile:  cfg.Store.ProductsFile,
		CartsFile:     cfg.Store.CartsFile,
	})
	repo := repository.New(fileStore)

	electronics := repo.RegisterSeller("极客小铺", "geek@example.com")
	grocery := repo.RegisterSeller("生活杂货铺", "daily@example.com")

	type seedProduct struct {
		name     string
		price    string
		category string
		quantity int
		sellerID uint64
	}
	seeds := []seedProduct{
		{"机械键盘", "399.00", "电子产品", 20, electronics.ID},
		{"无线鼠标", "129.50", "电子产品", 35, electronics.ID},
		{"USB-C 数据线", "19.90", "数码配件", 100, electronics.ID},
		{"便携充电宝", "159.00", "数码配件", 50, electronics.ID},
		{"保温杯", "89.00", "生活用品", 40, grocery.ID},
		{"香薰蜡烛", "45.00", "生活用品", 25, grocery.ID},
	}
	for _, seed := range seeds {
		price, err := decimal.NewFromString(seed.price)
		if err != nil {
			logger.Errorw("seed_price_invalid", "name", seed.name, "price", seed.price, "error", err)
			continue
		}
		product := repo.AddProduct(seed.name, models.NewMoneyFromDecimal(price), seed.category, seed.quantity, seed.sellerID)
		logger.Infow("seed_product_created",
			"product_id", product.ID,
			"name", product.Name,
			"category", product.Category,
		)
	}

	repo.RegisterCustomer("张小明", "上海市浦东新区张江路 100 号", "13800138000", "xiaoming@example.com")

	if err := repo.Persist(); err != nil {
		logger.Errorw("seed_persist_failed", "error", err)
		return
	}
	logger.Infow("seed_completed",
		"sellers", len(repo.Sellers()),
		"customers", len(repo.Customers()),
		"products", len(repo.Products()),
	)
}
