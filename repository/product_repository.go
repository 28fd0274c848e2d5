package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"offistation-service/models"
)

// ErrProductNotFound is returned when a catalog lookup misses.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository reads the catalog. The storefront never writes products
// outside the initial seed; inventory management is not part of this system.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	EnsureSeed(ctx context.Context) error
}

// GormProductRepository backs the catalog with Postgres.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// EnsureSeed loads the demo catalog on an empty table so a fresh install has
// something to sell.
func (r *GormProductRepository) EnsureSeed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(defaultCatalog()).Error
}

func defaultCatalog() []models.Product {
	return []models.Product{
		{ID: "pen-gel-black", Name: "Gel Pen 0.5mm Black (12 pcs)", Price: 145, Image: "/img/products/pen-gel-black.jpg", Category: "writing"},
		{ID: "paper-a4-ream", Name: "A4 Copy Paper 80gsm (500 sheets)", Price: 265, Image: "/img/products/paper-a4-ream.jpg", Category: "paper"},
		{ID: "stapler-hd10", Name: "Heavy Duty Stapler HD-10", Price: 320, Image: "/img/products/stapler-hd10.jpg", Category: "desk"},
		{ID: "notebook-spiral", Name: "Spiral Notebook 80 Leaves", Price: 85, Image: "/img/products/notebook-spiral.jpg", Category: "paper"},
		{ID: "chair-mesh", Name: "Ergonomic Mesh Office Chair", Price: 4250, Image: "/img/products/chair-mesh.jpg", Category: "furniture"},
		{ID: "desk-organizer", Name: "5-Compartment Desk Organizer", Price: 390, Image: "/img/products/desk-organizer.jpg", Category: "desk"},
		{ID: "marker-wb-set", Name: "Whiteboard Marker Set (4 colors)", Price: 180, Image: "/img/products/marker-wb-set.jpg", Category: "writing"},
		{ID: "folder-expand", Name: "Expanding File Folder Legal", Price: 220, Image: "/img/products/folder-expand.jpg", Category: "filing"},
		{ID: "tape-dispenser", Name: "Desktop Tape Dispenser with Tape", Price: 150, Image: "/img/products/tape-dispenser.jpg", Category: "desk"},
		{ID: "printer-ink-bk", Name: "Ink Bottle 003 Black", Price: 295, Image: "/img/products/printer-ink-bk.jpg", Category: "printing"},
	}
}
