package service

import (
	"sort"
	"strings"

	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// CatalogService 商品目录查询，只读不改仓库状态
type CatalogService struct {
	repo *repository.Repository
}

// NewCatalogService 创建目录服务
func NewCatalogService(repo *repository.Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

// All 按上架顺序返回全部商品
func (s *CatalogService) All() []*models.Product {
	return s.repo.Products()
}

// FilterByCategory 分类筛选：大小写敏感精确匹配，保持上架顺序；
// 无命中返回空集合而非错误
func (s *CatalogService) FilterByCategory(category string) []*models.Product {
	matched := make([]*models.Product, 0)
	for _, product := range s.repo.Products() {
		if product.Category == category {
			matched = append(matched, product)
		}
	}
	return matched
}

// SearchByName 名称搜索：大小写敏感子串匹配，保持上架顺序
func (s *CatalogService) SearchByName(keyword string) []*models.Product {
	matched := make([]*models.Product, 0)
	for _, product := range s.repo.Products() {
		if strings.Contains(product.Name, keyword) {
			matched = append(matched, product)
		}
	}
	return matched
}

// RankByRating 按平均评分从高到低生成临时排序视图
// 稳定排序，平分条目保持上架顺序；不改动仓库本身
func (s *CatalogService) RankByRating() []*models.Product {
	products := s.repo.Products()
	ranked := make([]*models.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageRating() > ranked[j].AverageRating()
	})
	return ranked
}
