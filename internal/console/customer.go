package console

import (
	"errors"
	"fmt"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/service"
)

// customerEntry 买家入口：注册或登录后进入买家菜单
func (c *Console) customerEntry() {
	c.printHeader("买家入口")
	fmt.Fprintln(c.out, "1. 注册新买家")
	fmt.Fprintln(c.out, "2. 登录")
	choice, ok := c.prompter.ReadInt("请选择: ")
	if !ok {
		return
	}

	switch choice {
	case 1:
		name, ok := c.prompter.ReadLine("姓名: ")
		if !ok {
			return
		}
		email, ok := c.prompter.ReadLine("邮箱: ")
		if !ok {
			return
		}
		address, ok := c.prompter.ReadLine("地址: ")
		if !ok {
			return
		}
		phone, ok := c.prompter.ReadLine("电话: ")
		if !ok {
			return
		}
		customer, err := c.auth.RegisterCustomer(name, address, phone, email)
		if err != nil {
			fmt.Fprintf(c.out, "[错误] 注册失败: %v\n", err)
			return
		}
		fmt.Fprintf(c.out, "[成功] %s，注册完成。\n", customer.Name)
	case 2:
		email, ok := c.prompter.ReadLine("邮箱: ")
		if !ok {
			return
		}
		session, err := c.auth.LoginCustomer(email)
		if err != nil {
			if errors.Is(err, service.ErrEmailNotFound) {
				fmt.Fprintln(c.out, "[错误] 邮箱未注册。")
				return
			}
			fmt.Fprintf(c.out, "[错误] 登录失败: %v\n", err)
			return
		}
		fmt.Fprintf(c.out, "[成功] 欢迎回来，%s。\n", session.Customer.Name)
		c.customerMenu(session)
	default:
		fmt.Fprintln(c.out, "无效选项。")
	}
}

// customerMenu 买家菜单
func (c *Console) customerMenu(session *service.CustomerSession) {
	for {
		c.printHeader("买家中心")
		fmt.Fprintf(c.out, "当前登录: %s\n", session.Customer.Name)
		fmt.Fprintln(c.out, "1. 按评分浏览全部商品")
		fmt.Fprintln(c.out, "2. 按分类筛选")
		fmt.Fprintln(c.out, "3. 按名称搜索")
		fmt.Fprintln(c.out, "4. 加入购物车")
		fmt.Fprintln(c.out, "5. 查看购物车")
		fmt.Fprintln(c.out, "6. 撤销上一件")
		fmt.Fprintln(c.out, "7. 结算")
		fmt.Fprintln(c.out, "8. 退出登录")
		choice, ok := c.prompter.ReadInt("请选择: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.browseRanked()
		case 2:
			c.filterByCategory()
		case 3:
			c.searchByName()
		case 4:
			c.addToCart(session)
		case 5:
			c.viewCart(session)
		case 6:
			c.undoLast(session)
		case 7:
			c.runCheckout(session)
		case 8:
			return
		default:
			fmt.Fprintln(c.out, "无效选项，请重新选择。")
		}
	}
}

func (c *Console) browseRanked() {
	fmt.Fprintln(c.out, "--- 按评分推荐 ---")
	renderProductTable(c.out, c.catalog.RankByRating())
}

func (c *Console) filterByCategory() {
	category, ok := c.prompter.ReadLine("分类名: ")
	if !ok {
		return
	}
	matched := c.catalog.FilterByCategory(category)
	if len(matched) == 0 {
		fmt.Fprintln(c.out, "[提示] 该分类下没有商品。")
		return
	}
	renderProductTable(c.out, matched)
}

func (c *Console) searchByName() {
	keyword, ok := c.prompter.ReadLine("商品名（可输入部分）: ")
	if !ok {
		return
	}
	matched := c.catalog.SearchByName(keyword)
	if len(matched) == 0 {
		fmt.Fprintf(c.out, "[提示] 没有匹配「%s」的商品。\n", keyword)
		return
	}
	renderProductTable(c.out, matched)
}

func (c *Console) addToCart(session *service.CustomerSession) {
	productID, ok := c.prompter.ReadUint64("商品编号: ")
	if !ok {
		return
	}
	quantity, ok := c.prompter.ReadInt("数量: ")
	if !ok {
		return
	}

	product, err := c.carts.AddToCart(session, productID, quantity)
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		fmt.Fprintln(c.out, "[错误] 商品编号不存在。")
	case errors.Is(err, service.ErrInvalidQuantity):
		fmt.Fprintln(c.out, "[错误] 数量不合法。")
	case errors.Is(err, service.ErrInsufficientStock):
		fmt.Fprintf(c.out, "[错误] 库存不足，当前仅剩 %d 件。\n", product.Quantity)
	case err != nil:
		fmt.Fprintf(c.out, "[错误] 加购失败: %v\n", err)
	default:
		fmt.Fprintf(c.out, "[成功] 已加入 %d × %s。\n", quantity, product.Name)
	}
}

func (c *Console) viewCart(session *service.CustomerSession) {
	view := c.carts.View(session)
	if len(view.Lines) == 0 {
		fmt.Fprintln(c.out, "[提示] 购物车是空的。")
		return
	}
	fmt.Fprintln(c.out, "--- 我的购物车 ---")
	for _, line := range view.Lines {
		fmt.Fprintf(c.out, "* %s（%d 件）小计 %s\n",
			line.Item.Snapshot.Name, line.Item.Quantity, line.LineTotal.String())
	}
	fmt.Fprintf(c.out, "预估合计: %s\n", view.EstimatedTotal.String())
}

func (c *Console) undoLast(session *service.CustomerSession) {
	item, err := c.carts.UndoLast(session)
	if errors.Is(err, service.ErrCartEmpty) {
		fmt.Fprintln(c.out, "[提示] 购物车已经是空的。")
		return
	}
	if err != nil {
		fmt.Fprintf(c.out, "[错误] 撤销失败: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "[成功] 已移除「%s」。\n", item.Snapshot.Name)
}

// runCheckout 结算工作流：逐件评分通过收集器交互完成，最后打印小票
func (c *Console) runCheckout(session *service.CustomerSession) {
	collector := service.RatingCollectorFunc(func(product *models.Product) float64 {
		label := fmt.Sprintf("为「%s」评分 (%d-%d): ", product.Name, constants.RatingMin, constants.RatingMax)
		for {
			score, ok := c.prompter.ReadFloat(label)
			if !ok {
				// 输入流结束时按最低分落档，保证流水线能收尾
				return constants.RatingMin
			}
			if score >= constants.RatingMin && score <= constants.RatingMax {
				return score
			}
			fmt.Fprintf(c.out, "请输入 %d 到 %d 之间的评分。\n", constants.RatingMin, constants.RatingMax)
		}
	})

	receipt, err := c.checkout.Checkout(session, collector)
	if errors.Is(err, service.ErrCartEmpty) {
		fmt.Fprintln(c.out, "[提示] 购物车是空的，先加点商品再结算。")
		return
	}
	if receipt != nil {
		c.printReceipt(receipt)
	}
	if err != nil {
		fmt.Fprintf(c.out, "[错误] 保存数据失败: %v\n", err)
	}
}

func (c *Console) printReceipt(receipt *service.Receipt) {
	c.printHeader("购物小票")
	fmt.Fprintf(c.out, "单号: %s\n", receipt.Number)
	fmt.Fprintf(c.out, "时间: %s\n", receipt.IssuedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(c.out, "----------------------------------------")
	for _, line := range receipt.Lines {
		if line.Charged {
			fmt.Fprintf(c.out, "%s × %d = %s\n", line.Name, line.Quantity, line.LineTotal.String())
			continue
		}
		fmt.Fprintf(c.out, "[错误] 「%s」库存不足，本条目未结算。\n", line.Name)
	}
	fmt.Fprintln(c.out, "----------------------------------------")
	fmt.Fprintf(c.out, "实付合计: %s\n", receipt.Total.String())
	fmt.Fprintln(c.out, "感谢惠顾！")
}
