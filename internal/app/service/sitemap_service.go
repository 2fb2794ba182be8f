package service

import (
	"encoding/xml"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/pkg/logger"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

type sitemapRoot struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapService builds and caches the public sitemap. The scheduler
// calls Refresh periodically; Get serves the cached document and builds
// it on first use.
type SitemapService interface {
	Get() ([]byte, error)
	Refresh() error
}

type sitemapService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	baseURL      string

	mu     sync.RWMutex
	cached []byte
}

func NewSitemapService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, baseURL string) SitemapService {
	return &sitemapService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

func (s *sitemapService) Get() ([]byte, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached, nil
}

func (s *sitemapService) Refresh() error {
	root := sitemapRoot{Xmlns: sitemapNamespace}

	root.URLs = append(root.URLs, sitemapURL{
		Loc:        s.baseURL + "/",
		ChangeFreq: "daily",
		Priority:   "1.0",
	})
	root.URLs = append(root.URLs, sitemapURL{
		Loc:        s.baseURL + "/products",
		ChangeFreq: "daily",
		Priority:   "0.9",
	})

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return fmt.Errorf("failed to load categories for sitemap: %w", err)
	}
	for _, category := range categories {
		root.URLs = append(root.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/products?category=%s", s.baseURL, category.Slug),
			LastMod:    category.UpdatedAt.Format(time.DateOnly),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	products, err := s.productRepo.FindWithFilter(repository.ProductFilter{ActiveOnly: true})
	if err != nil {
		return fmt.Errorf("failed to load products for sitemap: %w", err)
	}
	for _, product := range products {
		root.URLs = append(root.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/products/%s", s.baseURL, product.Slug),
			LastMod:    product.UpdatedAt.Format(time.DateOnly),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	body, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	document := append([]byte(xml.Header), body...)

	s.mu.Lock()
	s.cached = document
	s.mu.Unlock()

	logger.Info("Sitemap refreshed", map[string]interface{}{
		"url_count": len(root.URLs),
	})
	return nil
}
