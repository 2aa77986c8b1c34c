package service

import (
	"time"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"

	"github.com/google/uuid"
)

// RatingCollector 结算时逐件收集评分
// 控制台实现负责与用户交互；返回值超出 [1,5] 会被再次索取
type RatingCollector interface {
	Collect(product *models.Product) float64
}

// RatingCollectorFunc 函数适配器
type RatingCollectorFunc func(product *models.Product) float64

// Collect 实现 RatingCollector
func (f RatingCollectorFunc) Collect(product *models.Product) float64 {
	return f(product)
}

// ReceiptLine 小票行；库存不足的条目保留在小票上但不计入总额
type ReceiptLine struct {
	ProductID uint64
	Name      string
	Quantity  int
	UnitPrice models.Money
	LineTotal models.Money
	Charged   bool
}

// Receipt 结算小票
type Receipt struct {
	Number   string
	IssuedAt time.Time
	Lines    []ReceiptLine
	Total    models.Money
}

// CheckoutService 结算流水线
// 每次调用执行一轮：清空购物车转入先进先出队列，逐件校验库存并提交扣减，
// 收集评分，最后落盘并产出小票。单件失败不回滚已提交条目，流程必然走到收尾
type CheckoutService struct {
	repo *repository.Repository
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(repo *repository.Repository) *CheckoutService {
	return &CheckoutService{repo: repo}
}

// Checkout 执行一次结算
// 空车直接返回 ErrCartEmpty，不改任何状态。购物车被完整排空后按入车顺序
// （先加入者先处理）逐件处理：活记录库存不足时该条目跳过计费与评分，
// 其余条目照常提交；应付金额取快照单价 × 数量。收尾时整体落盘，
// 落盘失败随小票一起返回，已提交的内存变更不回滚
func (s *CheckoutService) Checkout(session *CustomerSession, collector RatingCollector) (*Receipt, error) {
	cart := &session.Customer.Cart
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	// 栈的弹出顺序与入车顺序相反，从尾部回填得到先进先出队列
	fifo := make([]models.CartItem, cart.Len())
	for i := len(fifo) - 1; i >= 0; i-- {
		item, _ := cart.PopTop()
		fifo[i] = item
	}

	receipt := &Receipt{
		Number:   uuid.NewString(),
		IssuedAt: time.Now(),
	}

	for _, item := range fifo {
		line := ReceiptLine{
			ProductID: item.Snapshot.ProductID,
			Name:      item.Snapshot.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Snapshot.PriceAtAdd,
		}

		// 库存扣减与评分落在目录里的活记录上，展示与计费用快照
		live, ok := s.repo.FindProductByID(item.Snapshot.ProductID)
		if !ok {
			logger.Warnw("checkout_product_missing",
				"customer_id", session.Customer.ID,
				"product_id", item.Snapshot.ProductID,
			)
			receipt.Lines = append(receipt.Lines, line)
			continue
		}
		if live.Quantity < item.Quantity {
			logger.Warnw("checkout_insufficient_stock",
				"customer_id", session.Customer.ID,
				"product_id", live.ID,
				"requested", item.Quantity,
				"available", live.Quantity,
			)
			receipt.Lines = append(receipt.Lines, line)
			continue
		}

		live.Quantity -= item.Quantity
		line.LineTotal = item.LineTotal()
		line.Charged = true
		receipt.Total = receipt.Total.AddMoney(line.LineTotal)
		receipt.Lines = append(receipt.Lines, line)

		if collector != nil {
			score := collector.Collect(live)
			for score < constants.RatingMin || score > constants.RatingMax {
				score = collector.Collect(live)
			}
			live.AddRating(score)
		}
	}

	logger.Infow("checkout_completed",
		"customer_id", session.Customer.ID,
		"receipt", receipt.Number,
		"lines", len(receipt.Lines),
		"total", receipt.Total.String(),
	)
	if err := s.repo.Persist(); err != nil {
		return receipt, err
	}
	return receipt, nil
}
