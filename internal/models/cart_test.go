package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func snapshotItem(name string, price int64, qty int) CartItem {
	return CartItem{
		Snapshot: ProductSnapshot{
			ProductID:  1,
			Name:       name,
			PriceAtAdd: NewMoneyFromDecimal(decimal.NewFromInt(price)),
		},
		Quantity: qty,
	}
}

func TestCartPushPopIsStrictLIFO(t *testing.T) {
	var cart Cart
	cart.Push(snapshotItem("A", 10, 1))
	cart.Push(snapshotItem("B", 20, 2))

	first, ok := cart.PopTop()
	if !ok || first.Snapshot.Name != "B" {
		t.Fatalf("expected B on top, got %+v ok=%v", first, ok)
	}
	second, ok := cart.PopTop()
	if !ok || second.Snapshot.Name != "A" {
		t.Fatalf("expected A next, got %+v ok=%v", second, ok)
	}
	if _, ok := cart.PopTop(); ok {
		t.Fatalf("expected empty cart after two pops")
	}
}

func TestCartItemsDoesNotConsumeStack(t *testing.T) {
	var cart Cart
	cart.Push(snapshotItem("A", 10, 1))
	cart.Push(snapshotItem("B", 20, 1))

	items := cart.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Snapshot.Name != "B" || items[1].Snapshot.Name != "A" {
		t.Fatalf("expected top-to-bottom order B,A got %s,%s", items[0].Snapshot.Name, items[1].Snapshot.Name)
	}
	if cart.Len() != 2 {
		t.Fatalf("Items must not mutate the cart, len=%d", cart.Len())
	}
	top, ok := cart.PeekTop()
	if !ok || top.Snapshot.Name != "B" {
		t.Fatalf("expected B still on top, got %+v", top)
	}
}

func TestCartItemLineTotalUsesSnapshotPrice(t *testing.T) {
	item := snapshotItem("A", 12, 3)
	if got := item.LineTotal().String(); got != "36.00" {
		t.Fatalf("expected 36.00, got %s", got)
	}
}

func TestProductAverageRating(t *testing.T) {
	p := Product{}
	if got := p.AverageRating(); got != 0 {
		t.Fatalf("expected 0 average with no ratings, got %f", got)
	}
	p.AddRating(4)
	p.AddRating(2)
	if got := p.AverageRating(); got != 3.0 {
		t.Fatalf("expected 3.0 average, got %f", got)
	}
	if p.RatingCount != 2 || p.RatingSum != 6 {
		t.Fatalf("expected sum=6 count=2, got sum=%f count=%d", p.RatingSum, p.RatingCount)
	}
}

func TestProductSnapshotIsDetachedFromLiveRecord(t *testing.T) {
	p := Product{
		ID:       7,
		Name:     "键盘",
		Price:    NewMoneyFromDecimal(decimal.NewFromInt(199)),
		Category: "数码",
		SellerID: 2,
	}
	snap := p.Snapshot()

	p.Price = NewMoneyFromDecimal(decimal.NewFromInt(299))
	p.Name = "机械键盘"

	if snap.PriceAtAdd.String() != "199.00" {
		t.Fatalf("snapshot price must not follow the live record, got %s", snap.PriceAtAdd.String())
	}
	if snap.Name != "键盘" {
		t.Fatalf("snapshot name must not follow the live record, got %s", snap.Name)
	}
}
