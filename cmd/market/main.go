package main

import (
	"fmt"
	"os"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/console"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/store"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.App.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()

	// 初始化文件存储并装载历史数据
	fileStore := store.New(store.Options{
		Dir:           cfg.Store.Dir,
		SellersFile:   cfg.Store.SellersFile,
		CustomersFile: cfg.Store.CustomersFile,
		ProductsFile:  cfg.Store.ProductsFile,
		CartsFile:     cfg.Store.CartsFile,
	})
	repo := repository.New(fileStore)
	if err := repo.Reload(); err != nil {
		logger.Errorw("data_load_failed", "error", err)
		fmt.Fprintf(os.Stderr, "数据装载失败: %v\n", err)
		os.Exit(1)
	}

	// 控制台主循环，退出即结束进程
	console.New(os.Stdin, os.Stdout, repo).Run()
	fmt.Println("再见！")
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "╔══════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiCyan + "║        🛒 Bazaar-Next 在线集市        ║" + ansiReset)
	fmt.Println(ansiCyan + "╚══════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiBold + "卖家上架 / 买家选购 / 评分排行" + ansiReset)
	fmt.Println(ansiDim + "----------------------------------------" + ansiReset)
}
