package service

import (
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// CartLine 购物车展示行
type CartLine struct {
	Item      models.CartItem
	LineTotal models.Money
}

// CartView 购物车展示视图，按栈顶到栈底排列
type CartView struct {
	Lines          []CartLine
	EstimatedTotal models.Money
}

// CartService 购物车服务
// 每位买家持有一个严格后进先出的购物车，只有压栈与弹栈两个变更入口
type CartService struct {
	repo *repository.Repository
}

// NewCartService 创建购物车服务
func NewCartService(repo *repository.Repository) *CartService {
	return &CartService{repo: repo}
}

// AddToCart 加购：对活记录做加购时库存检查，通过后压入快照条目并落盘
// 快照语义：车内展示与结算金额固定在加购时刻，之后改价不影响已入车条目
func (s *CartService) AddToCart(session *CustomerSession, productID uint64, quantity int) (*models.Product, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, ok := s.repo.FindProductByID(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	if quantity > product.Quantity {
		return product, ErrInsufficientStock
	}

	session.Customer.Cart.Push(models.CartItem{
		Snapshot: product.Snapshot(),
		Quantity: quantity,
	})
	if err := s.repo.Persist(); err != nil {
		return nil, err
	}
	logger.Infow("cart_item_pushed",
		"customer_id", session.Customer.ID,
		"product_id", productID,
		"quantity", quantity,
	)
	return product, nil
}

// UndoLast 撤销最近加入的一件（弹栈）；空车返回 ErrCartEmpty
func (s *CartService) UndoLast(session *CustomerSession) (models.CartItem, error) {
	item, ok := session.Customer.Cart.PopTop()
	if !ok {
		return models.CartItem{}, ErrCartEmpty
	}
	if err := s.repo.Persist(); err != nil {
		return models.CartItem{}, err
	}
	logger.Infow("cart_item_popped",
		"customer_id", session.Customer.ID,
		"product_id", item.Snapshot.ProductID,
	)
	return item, nil
}

// View 生成购物车视图，不消耗栈；金额取自快照单价
func (s *CartService) View(session *CustomerSession) CartView {
	view := CartView{}
	for _, item := range session.Customer.Cart.Items() {
		lineTotal := item.LineTotal()
		view.Lines = append(view.Lines, CartLine{Item: item, LineTotal: lineTotal})
		view.EstimatedTotal = view.EstimatedTotal.AddMoney(lineTotal)
	}
	return view
}
