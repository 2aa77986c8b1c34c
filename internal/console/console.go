package console

import (
	"fmt"
	"io"

	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"
)

// Console 控制台应用：主菜单循环与卖家/买家工作流
// 严格单线程顺序交互，每个操作执行完毕才接受下一个；
// 会话以显式值传入各工作流，工作流返回即销毁
type Console struct {
	out      io.Writer
	prompter *Prompter

	auth     *service.AuthService
	products *service.ProductService
	carts    *service.CartService
	checkout *service.CheckoutService
	catalog  *service.CatalogService
}

// New 创建控制台应用
func New(in io.Reader, out io.Writer, repo *repository.Repository) *Console {
	return &Console{
		out:      out,
		prompter: NewPrompter(in, out),
		auth:     service.NewAuthService(repo),
		products: service.NewProductService(repo),
		carts:    service.NewCartService(repo),
		checkout: service.NewCheckoutService(repo),
		catalog:  service.NewCatalogService(repo),
	}
}

// Run 主菜单循环，选择退出或输入流结束时返回
func (c *Console) Run() {
	for {
		c.printHeader("在线集市")
		fmt.Fprintln(c.out, "1. 卖家入口")
		fmt.Fprintln(c.out, "2. 买家入口")
		fmt.Fprintln(c.out, "3. 退出")
		choice, ok := c.prompter.ReadInt("请选择: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			c.sellerEntry()
		case 2:
			c.customerEntry()
		case 3:
			return
		default:
			fmt.Fprintln(c.out, "无效选项，请重新选择。")
		}
	}
}

func (c *Console) printHeader(title string) {
	fmt.Fprintln(c.out, "========================================")
	fmt.Fprintf(c.out, "   %s\n", title)
	fmt.Fprintln(c.out, "========================================")
}
