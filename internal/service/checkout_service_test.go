package service

import (
	"errors"
	"testing"

	"github.com/bazaar-next/internal/models"
)

// 记录评分顺序的测试收集器
type recordingCollector struct {
	scores    []float64
	collected []uint64
	calls     int
}

func (c *recordingCollector) Collect(product *models.Product) float64 {
	score := float64(5)
	if c.calls < len(c.scores) {
		score = c.scores[c.calls]
	}
	c.calls++
	c.collected = append(c.collected, product.ID)
	return score
}

func TestCheckoutEmptyCart(t *testing.T) {
	repo := newTestRepo(t)
	checkout := NewCheckoutService(repo)
	customer := repo.RegisterCustomer("小李", "地址", "138", "li@example.com")
	session := &CustomerSession{Customer: customer}

	if _, err := checkout.Checkout(session, nil); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutProcessesInInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	carts := NewCartService(repo)
	checkout := NewCheckoutService(repo)

	seller := repo.RegisterSeller("店铺", "shop@example.com")
	productA := repo.AddProduct("鼠标", money("10.00"), "数码", 5, seller.ID)
	productB := repo.AddProduct("键盘", money("20.00"), "数码", 5, seller.ID)
	customer := repo.RegisterCustomer("小李", "地址", "138", "li@example.com")
	session := &CustomerSession{Customer: customer}

	if _, err := carts.AddToCart(session, productA.ID, 1); err != nil {
		t.Fatalf("add A failed: %v", err)
	}
	if _, err := carts.AddToCart(session, productB.ID, 1); err != nil {
		t.Fatalf("add B failed: %v", err)
	}

	collector := &recordingCollector{scores: []float64{4, 2}}
	receipt, err := checkout.Checkout(session, collector)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// 先加入者先处理：A 在 B 之前
	if len(collector.collected) != 2 || collector.collected[0] != productA.ID || collector.collected[1] != productB.ID {
		t.Fatalf("expected rating order A,B got %v", collector.collected)
	}
	if len(receipt.Lines) != 2 || receipt.Lines[0].ProductID != productA.ID {
		t.Fatalf("expected receipt line order A,B got %+v", receipt.Lines)
	}
	if !session.Customer.Cart.IsEmpty() {
		t.Fatalf("cart must be fully drained after checkout")
	}
	if productA.AverageRating() != 4 || productB.AverageRating() != 2 {
		t.Fatalf("ratings must land on the live products: A=%f B=%f",
			productA.AverageRating(), productB.AverageRating())
	}
}

func TestCheckoutInsufficientStockIsPerItem(t *testing.T) {
	repo := newTestRepo(t)
	carts := NewCartService(repo)
	checkout := NewCheckoutService(repo)

	seller := repo.RegisterSeller("店铺", "shop@example.com")
	scarce := repo.AddProduct("限量款", money("100.00"), "数码", 3, seller.ID)
	normal := repo.AddProduct("常规款", money("10.00"), "数码", 10, seller.ID)
	customer := repo.RegisterCustomer("小李", "地址", "138", "li@example.com")
	session := &CustomerSession{Customer: customer}

	if _, err := carts.AddToCart(session, scarce.ID, 3); err != nil {
		t.Fatalf("add scarce failed: %v", err)
	}
	if _, err := carts.AddToCart(session, normal.ID, 2); err != nil {
		t.Fatalf("add normal failed: %v", err)
	}

	// 加购之后库存被其他渠道扣走，结算时活记录不足
	scarce.Quantity = 1

	collector := &recordingCollector{}
	receipt, err := checkout.Checkout(session, collector)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if scarce.Quantity != 1 {
		t.Fatalf("insufficient item must leave stock unchanged, got %d", scarce.Quantity)
	}
	if normal.Quantity != 8 {
		t.Fatalf("other items must still commit, expected 8 got %d", normal.Quantity)
	}
	if receipt.Lines[0].Charged {
		t.Fatalf("insufficient line must not be charged")
	}
	if !receipt.Lines[1].Charged {
		t.Fatalf("normal line must be charged")
	}
	// 仅成功条目计入总额：10.00 × 2
	if receipt.Total.String() != "20.00" {
		t.Fatalf("expected total 20.00, got %s", receipt.Total.String())
	}
	// 失败条目不评分
	if len(collector.collected) != 1 || collector.collected[0] != normal.ID {
		t.Fatalf("only charged items collect ratings, got %v", collector.collected)
	}
	if scarce.RatingCount != 0 {
		t.Fatalf("failed item must not receive a rating")
	}
	if !session.Customer.Cart.IsEmpty() {
		t.Fatalf("cart drains fully regardless of per-item outcome")
	}
}

func TestCheckoutChargesSnapshotPrice(t *testing.T) {
	repo := newTestRepo(t)
	carts := NewCartService(repo)
	checkout := NewCheckoutService(repo)

	seller := repo.RegisterSeller("店铺", "shop@example.com")
	product := repo.AddProduct("鼠标", money("50.00"), "数码", 10, seller.ID)
	customer := repo.RegisterCustomer("小李", "地址", "138", "li@example.com")
	session := &CustomerSession{Customer: customer}

	if _, err := carts.AddToCart(session, product.ID, 2); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	// 加购之后涨价，应付金额仍按加购时单价
	product.Price = money("80.00")

	receipt, err := checkout.Checkout(session, &recordingCollector{})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if receipt.Total.String() != "100.00" {
		t.Fatalf("expected snapshot-priced total 100.00, got %s", receipt.Total.String())
	}
	if product.Quantity != 8 {
		t.Fatalf("stock decrements on the live record, expected 8 got %d", product.Quantity)
	}
	if receipt.Number == "" || receipt.IssuedAt.IsZero() {
		t.Fatalf("receipt must carry number and timestamp")
	}
}

func TestCheckoutRetriesOutOfRangeRating(t *testing.T) {
	repo := newTestRepo(t)
	carts := NewCartService(repo)
	checkout := NewCheckoutService(repo)

	seller := repo.RegisterSeller("店铺", "shop@example.com")
	product := repo.AddProduct("鼠标", money("50.00"), "数码", 10, seller.ID)
	customer := repo.RegisterCustomer("小李", "地址", "138", "li@example.com")
	session := &CustomerSession{Customer: customer}

	if _, err := carts.AddToCart(session, product.ID, 1); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	collector := &recordingCollector{scores: []float64{0, 9, 3}}
	if _, err := checkout.Checkout(session, collector); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if collector.calls != 3 {
		t.Fatalf("expected 3 collector calls for two invalid scores, got %d", collector.calls)
	}
	if product.RatingCount != 1 || product.AverageRating() != 3 {
		t.Fatalf("only the valid score lands: count=%d avg=%f", product.RatingCount, product.AverageRating())
	}
}

func TestCheckoutStockNeverGoesNegative(t *testing.T) {
	repo := newTestRepo(t)
	carts := NewCartService(repo)
	checkout := NewCheckoutService(repo)

	seller := repo.RegisterSeller("店铺", "shop@example.com")
	product := repo.AddProduct("鼠标", money("50.00"), "数码", 2, seller.ID)
	customer := repo.RegisterCustomer("小李", "地址", "138", "li@example.com")
	session := &CustomerSession{Customer: customer}

	if _, err := carts.AddToCart(session, product.ID, 2); err != nil {
		t.Fatalf("add first failed: %v", err)
	}
	if _, err := carts.AddToCart(session, product.ID, 2); err != nil {
		t.Fatalf("add second failed: %v", err)
	}

	receipt, err := checkout.Checkout(session, &recordingCollector{})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if product.Quantity != 0 {
		t.Fatalf("stock must stop at zero, got %d", product.Quantity)
	}
	if !receipt.Lines[0].Charged || receipt.Lines[1].Charged {
		t.Fatalf("first line commits, second fails on stock: %+v", receipt.Lines)
	}
	if receipt.Total.String() != "100.00" {
		t.Fatalf("expected total 100.00, got %s", receipt.Total.String())
	}
}
