package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"
)

// Options 存储文件位置配置
type Options struct {
	Dir           string
	SellersFile   string
	CustomersFile string
	ProductsFile  string
	CartsFile     string
}

// Snapshot 一次完整的落盘/装载数据集
// 购物车内容随买家记录一起携带
type Snapshot struct {
	Sellers   []*models.Seller
	Customers []*models.Customer
	Products  []*models.Product
}

// FileStore 竖线分隔文本文件存储
// 四个独立文件各存一类记录，写入为尽力而为、非原子：两次操作之间崩溃
// 可能损坏单个文件，按设计不做恢复
type FileStore struct {
	sellersPath   string
	customersPath string
	productsPath  string
	cartsPath     string
}

// New 创建文件存储，空白项回退默认文件名
func New(options Options) *FileStore {
	dir := strings.TrimSpace(options.Dir)
	if dir == "" {
		dir = "."
	}
	return &FileStore{
		sellersPath:   filepath.Join(dir, fallbackName(options.SellersFile, constants.SellersFilename)),
		customersPath: filepath.Join(dir, fallbackName(options.CustomersFile, constants.CustomersFilename)),
		productsPath:  filepath.Join(dir, fallbackName(options.ProductsFile, constants.ProductsFilename)),
		cartsPath:     filepath.Join(dir, fallbackName(options.CartsFile, constants.CartsFilename)),
	}
}

// Save 将内存状态整体写入四个数据文件
// 购物车按栈顶在前的顺序逐行写出
func (s *FileStore) Save(snapshot *Snapshot) error {
	if snapshot == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.sellersPath), 0o755); err != nil {
		return fmt.Errorf("create data dir failed: %w", err)
	}

	sellerLines := make([]string, 0, len(snapshot.Sellers))
	for _, seller := range snapshot.Sellers {
		sellerLines = append(sellerLines, encodeSeller(seller))
	}
	if err := writeLines(s.sellersPath, sellerLines); err != nil {
		return err
	}

	customerLines := make([]string, 0, len(snapshot.Customers))
	cartLines := make([]string, 0, len(snapshot.Customers))
	for _, customer := range snapshot.Customers {
		customerLines = append(customerLines, encodeCustomer(customer))
		for _, item := range customer.Cart.Items() {
			cartLines = append(cartLines, encodeCartLine(customer.ID, item))
		}
	}
	if err := writeLines(s.customersPath, customerLines); err != nil {
		return err
	}

	productLines := make([]string, 0, len(snapshot.Products))
	for _, product := range snapshot.Products {
		productLines = append(productLines, encodeProduct(product))
	}
	if err := writeLines(s.productsPath, productLines); err != nil {
		return err
	}

	return writeLines(s.cartsPath, cartLines)
}

// Load 从数据文件重建内存状态
// 缺失的文件按空数据处理；格式不完整的行跳过。购物车行按文件顺序分组后
// 逆序重新压栈，使文件里先写出的行（原栈顶）回到栈顶，往返保持后进先出顺序
func (s *FileStore) Load() (*Snapshot, error) {
	snapshot := &Snapshot{}

	sellerLines, err := readLines(s.sellersPath)
	if err != nil {
		return nil, err
	}
	for _, line := range sellerLines {
		seller, ok := decodeSeller(line)
		if !ok {
			logger.Warnw("store_seller_line_skipped", "file", s.sellersPath, "line", line)
			continue
		}
		snapshot.Sellers = append(snapshot.Sellers, seller)
	}

	customerLines, err := readLines(s.customersPath)
	if err != nil {
		return nil, err
	}
	customersByID := make(map[uint64]*models.Customer, len(customerLines))
	for _, line := range customerLines {
		customer, ok := decodeCustomer(line)
		if !ok {
			logger.Warnw("store_customer_line_skipped", "file", s.customersPath, "line", line)
			continue
		}
		snapshot.Customers = append(snapshot.Customers, customer)
		customersByID[customer.ID] = customer
	}

	productLines, err := readLines(s.productsPath)
	if err != nil {
		return nil, err
	}
	productsByID := make(map[uint64]*models.Product, len(productLines))
	for _, line := range productLines {
		product, ok := decodeProduct(line)
		if !ok {
			logger.Warnw("store_product_line_skipped", "file", s.productsPath, "line", line)
			continue
		}
		snapshot.Products = append(snapshot.Products, product)
		productsByID[product.ID] = product
	}

	cartRawLines, err := readLines(s.cartsPath)
	if err != nil {
		return nil, err
	}
	// 先按买家分组，保持文件内顺序
	cartLinesByCustomer := make(map[uint64][]cartLine)
	cartCustomerOrder := make([]uint64, 0)
	for _, line := range cartRawLines {
		entry, ok := decodeCartLine(line)
		if !ok {
			logger.Warnw("store_cart_line_skipped", "file", s.cartsPath, "line", line)
			continue
		}
		if _, seen := cartLinesByCustomer[entry.CustomerID]; !seen {
			cartCustomerOrder = append(cartCustomerOrder, entry.CustomerID)
		}
		cartLinesByCustomer[entry.CustomerID] = append(cartLinesByCustomer[entry.CustomerID], entry)
	}
	for _, customerID := range cartCustomerOrder {
		customer, ok := customersByID[customerID]
		if !ok {
			logger.Warnw("store_cart_customer_missing", "customer_id", customerID)
			continue
		}
		lines := cartLinesByCustomer[customerID]
		// 文件按栈顶在前写出，逆序压栈还原原始顺序
		for i := len(lines) - 1; i >= 0; i-- {
			product, ok := productsByID[lines[i].ProductID]
			if !ok {
				logger.Warnw("store_cart_product_missing",
					"customer_id", customerID,
					"product_id", lines[i].ProductID,
				)
				continue
			}
			// 磁盘格式只存商品ID，快照按当前目录记录重建
			customer.Cart.Push(models.CartItem{
				Snapshot: product.Snapshot(),
				Quantity: lines[i].Quantity,
			})
		}
	}

	return snapshot, nil
}

func fallbackName(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}

func writeLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write store file %s failed: %w", path, err)
	}
	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			_ = file.Close()
			return fmt.Errorf("write store file %s failed: %w", path, err)
		}
	}
	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flush store file %s failed: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close store file %s failed: %w", path, err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open store file %s failed: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read store file %s failed: %w", path, err)
	}
	return lines, nil
}
