package console

import (
	"errors"
	"fmt"

	"github.com/bazaar-next/internal/service"
)

// sellerEntry 卖家入口：注册或登录后进入卖家菜单
func (c *Console) sellerEntry() {
	c.printHeader("卖家入口")
	fmt.Fprintln(c.out, "1. 注册新卖家")
	fmt.Fprintln(c.out, "2. 登录")
	choice, ok := c.prompter.ReadInt("请选择: ")
	if !ok {
		return
	}

	switch choice {
	case 1:
		name, ok := c.prompter.ReadLine("卖家名: ")
		if !ok {
			return
		}
		email, ok := c.prompter.ReadLine("邮箱: ")
		if !ok {
			return
		}
		seller, err := c.auth.RegisterSeller(name, email)
		if err != nil {
			fmt.Fprintf(c.out, "[错误] 注册失败: %v\n", err)
			return
		}
		fmt.Fprintf(c.out, "[成功] %s，注册完成，欢迎入驻。\n", seller.Name)
	case 2:
		email, ok := c.prompter.ReadLine("邮箱: ")
		if !ok {
			return
		}
		session, err := c.auth.LoginSeller(email)
		if err != nil {
			if errors.Is(err, service.ErrEmailNotFound) {
				fmt.Fprintln(c.out, "[错误] 邮箱未注册。")
				return
			}
			fmt.Fprintf(c.out, "[错误] 登录失败: %v\n", err)
			return
		}
		fmt.Fprintf(c.out, "[成功] 欢迎回来，%s。\n", session.Seller.Name)
		c.sellerMenu(session)
	default:
		fmt.Fprintln(c.out, "无效选项。")
	}
}

// sellerMenu 卖家菜单；会话随本工作流存续，退出登录即丢弃
func (c *Console) sellerMenu(session *service.SellerSession) {
	for {
		c.printHeader("卖家中心")
		fmt.Fprintf(c.out, "当前登录: %s\n", session.Seller.Name)
		fmt.Fprintln(c.out, "1. 上架商品")
		fmt.Fprintln(c.out, "2. 退出登录")
		choice, ok := c.prompter.ReadInt("请选择: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.addProduct(session)
		case 2:
			return
		default:
			fmt.Fprintln(c.out, "无效选项，请重新选择。")
		}
	}
}

func (c *Console) addProduct(session *service.SellerSession) {
	name, ok := c.prompter.ReadLine("商品名: ")
	if !ok {
		return
	}
	category, ok := c.prompter.ReadLine("分类: ")
	if !ok {
		return
	}
	price, ok := c.prompter.ReadMoney("单价: ")
	if !ok {
		return
	}
	quantity, ok := c.prompter.ReadInt("数量: ")
	if !ok {
		return
	}

	product, err := c.products.AddProduct(session, name, price, category, quantity)
	if err != nil {
		fmt.Fprintf(c.out, "[错误] 上架失败: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "[成功] 商品「%s」已上架，编号 %d。\n", product.Name, product.ID)
}
