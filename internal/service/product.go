package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/akarlsons/chatcart-service/internal/models"
	"github.com/akarlsons/chatcart-service/internal/repository"
)

const (
	maxProductNameLength = 200

	defaultPage  = 1
	defaultLimit = 10
)

var (
	ErrInvalidPrice    = errors.New("price must be a positive number")
	ErrInvalidImageURL = errors.New("invalid image URL")
	ErrNameRequired    = errors.New("product name is required")
	ErrNameTooLong     = errors.New("product name exceeds 200 characters")
	ErrProductNotFound = errors.New("product not found")
)

// htmlTagPattern matches markup fragments stripped from product names.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// ProductChanges carries the optional fields of a product update. Nil
// fields keep their current value.
type ProductChanges struct {
	Name  *string
	Price *float64
	Image *string
}

// Pagination describes one page of a product listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// ProductPage bundles a page of products with its pagination metadata.
type ProductPage struct {
	Products   []models.Product
	Pagination Pagination
}

// ProductService implements the catalog operations.
type ProductService interface {
	List(ctx context.Context, page, limit int) (*ProductPage, error)
	Create(ctx context.Context, name string, price float64, image string) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, changes ProductChanges) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new ProductService instance.
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// List returns one page of products, newest first. Non-positive page or
// limit values fall back to the defaults.
func (s *productService) List(ctx context.Context, page, limit int) (*ProductPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	offset := (page - 1) * limit
	products, err := s.productRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return &ProductPage{
		Products: products,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *productService) Create(ctx context.Context, name string, price float64, image string) (*models.Product, error) {
	cleanName, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateImageURL(image); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:  cleanName,
		Price: price,
		Image: image,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, changes ProductChanges) (*models.Product, error) {
	fields := repository.ProductUpdate{}

	if changes.Name != nil {
		cleanName, err := normalizeName(*changes.Name)
		if err != nil {
			return nil, err
		}
		fields.Name = &cleanName
	}
	if changes.Price != nil {
		if err := validatePrice(*changes.Price); err != nil {
			return nil, err
		}
		fields.Price = changes.Price
	}
	if changes.Image != nil {
		if err := validateImageURL(*changes.Image); err != nil {
			return nil, err
		}
		fields.Image = changes.Image
	}

	product, err := s.productRepo.UpdateByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

// normalizeName strips markup, trims whitespace and enforces the length cap.
func normalizeName(name string) (string, error) {
	clean := strings.TrimSpace(htmlTagPattern.ReplaceAllString(name, ""))
	if clean == "" {
		return "", ErrNameRequired
	}
	if len(clean) > maxProductNameLength {
		return "", ErrNameTooLong
	}
	return clean, nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// validateImageURL accepts absolute URLs only, mirroring what a browser-side
// URL constructor would admit.
func validateImageURL(image string) error {
	parsed, err := url.Parse(image)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidImageURL, image)
	}
	return nil
}
