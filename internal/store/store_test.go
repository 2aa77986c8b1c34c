package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bazaar-next/internal/models"

	"github.com/shopspring/decimal"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return New(Options{Dir: t.TempDir()})
}

func money(value string) models.Money {
	return models.NewMoneyFromDecimal(decimal.RequireFromString(value))
}

func buildSnapshot() *Snapshot {
	productX := &models.Product{
		ID:       1,
		Name:     "无线鼠标",
		Price:    money("59.90"),
		Category: "数码",
		Quantity: 10,
		SellerID: 1,
	}
	productY := &models.Product{
		ID:          2,
		Name:        "保温杯",
		Price:       money("89.00"),
		Category:    "生活",
		Quantity:    5,
		SellerID:    2,
		RatingSum:   9,
		RatingCount: 2,
	}
	customer := &models.Customer{
		ID:      1,
		Name:    "小李",
		Address: "上海市某路1号",
		Phone:   "13800000000",
		Email:   "li@example.com",
	}
	// X 先入车，Y 后入车
	customer.Cart.Push(models.CartItem{Snapshot: productX.Snapshot(), Quantity: 1})
	customer.Cart.Push(models.CartItem{Snapshot: productY.Snapshot(), Quantity: 2})

	return &Snapshot{
		Sellers: []*models.Seller{
			{ID: 1, Name: "数码旗舰店", Email: "digital@example.com"},
			{ID: 2, Name: "生活百货", Email: "life@example.com"},
		},
		Customers: []*models.Customer{customer},
		Products:  []*models.Product{productX, productY},
	}
}

func TestSaveThenLoadRoundTripsState(t *testing.T) {
	fileStore := newTestStore(t)
	if err := fileStore.Save(buildSnapshot()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := fileStore.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Sellers) != 2 || len(loaded.Customers) != 1 || len(loaded.Products) != 2 {
		t.Fatalf("unexpected collection sizes: sellers=%d customers=%d products=%d",
			len(loaded.Sellers), len(loaded.Customers), len(loaded.Products))
	}

	product := loaded.Products[1]
	if product.Name != "保温杯" || product.Price.String() != "89.00" || product.RatingSum != 9 || product.RatingCount != 2 {
		t.Fatalf("product fields lost in round trip: %+v", product)
	}
	customer := loaded.Customers[0]
	if customer.Email != "li@example.com" || customer.Address != "上海市某路1号" {
		t.Fatalf("customer fields lost in round trip: %+v", customer)
	}
}

func TestCartOrderRoundTripsAcrossRestart(t *testing.T) {
	fileStore := newTestStore(t)
	if err := fileStore.Save(buildSnapshot()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := fileStore.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	cart := &loaded.Customers[0].Cart
	if cart.Len() != 2 {
		t.Fatalf("expected 2 cart items after reload, got %d", cart.Len())
	}

	// Y 后入车，重启后必须先弹出
	first, ok := cart.PopTop()
	if !ok || first.Snapshot.ProductID != 2 || first.Quantity != 2 {
		t.Fatalf("expected product 2 qty 2 on top after reload, got %+v", first)
	}
	second, ok := cart.PopTop()
	if !ok || second.Snapshot.ProductID != 1 || second.Quantity != 1 {
		t.Fatalf("expected product 1 qty 1 next, got %+v", second)
	}
}

func TestCartFileWritesTopOfStackFirst(t *testing.T) {
	dir := t.TempDir()
	fileStore := New(Options{Dir: dir})
	if err := fileStore.Save(buildSnapshot()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "carts.txt"))
	if err != nil {
		t.Fatalf("read carts file failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(lines))
	}
	if lines[0] != "1|2|2" {
		t.Fatalf("expected top of stack written first, got %q", lines[0])
	}
	if lines[1] != "1|1|1" {
		t.Fatalf("expected bottom of stack written last, got %q", lines[1])
	}
}

func TestLoadMissingFilesYieldsEmptySnapshot(t *testing.T) {
	fileStore := newTestStore(t)
	loaded, err := fileStore.Load()
	if err != nil {
		t.Fatalf("load of missing files must not fail: %v", err)
	}
	if len(loaded.Sellers) != 0 || len(loaded.Customers) != 0 || len(loaded.Products) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", loaded)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	content := "1|数码旗舰店|digital@example.com\nnot-a-record\n2|生活百货\n"
	if err := os.WriteFile(filepath.Join(dir, "sellers.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("write sellers file failed: %v", err)
	}

	fileStore := New(Options{Dir: dir})
	loaded, err := fileStore.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Sellers) != 1 || loaded.Sellers[0].Email != "digital@example.com" {
		t.Fatalf("expected only the valid seller line, got %+v", loaded.Sellers)
	}
}

func TestCartLineWithMissingProductIsDropped(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "customers.txt"),
		[]byte("1|小李|地址|138|li@example.com\n"), 0o644); err != nil {
		t.Fatalf("write customers failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "carts.txt"),
		[]byte("1|99|3\n"), 0o644); err != nil {
		t.Fatalf("write carts failed: %v", err)
	}

	fileStore := New(Options{Dir: dir})
	loaded, err := fileStore.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.Customers[0].Cart.IsEmpty() {
		t.Fatalf("cart line for missing product must be dropped")
	}
}
