package pantry

import (
	"context"
	"time"

	"github.com/Kausha3/smart-pantry/entities"
	"gorm.io/gorm"
)

type (
	ItemFilter struct {
		Search   string // substring match on name
		Category string
		SortBy   string // "name", "category", "expiry"
		Page     int
		Limit    int
	}

	PantryRepository interface {
		AddItem(ctx context.Context, item *entities.PantryItem) error
		AddItemsBatch(ctx context.Context, items []*entities.PantryItem, scan *entities.ReceiptScan) error
		GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		UpdateItem(ctx context.Context, item *entities.PantryItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, userID string, filter ItemFilter) ([]*entities.PantryItem, int64, error)
		GetAllItems(ctx context.Context, userID string) ([]*entities.PantryItem, error)
		GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error)

		CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error
		GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error)
		UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error

		GetMonthlyStat(ctx context.Context, userID string, month string) (*entities.MonthlyStat, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// AddItemsBatch writes a bulk import and its scan status update in one
// transaction, so an import racing a manual delete is serialized by the
// database rather than interleaved.
func (r *pantryRepository) AddItemsBatch(ctx context.Context, items []*entities.PantryItem, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		if scan != nil {
			if err := tx.Save(scan).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *pantryRepository) GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) GetItems(ctx context.Context, userID string, filter ItemFilter) ([]*entities.PantryItem, int64, error) {
	var items []*entities.PantryItem
	var count int64

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Model(&entities.PantryItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	order := "expiry_date asc, created_at asc"
	switch filter.SortBy {
	case "name":
		order = "name asc"
	case "category":
		order = "category asc, name asc"
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Offset(offset).Limit(filter.Limit).Order(order).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *pantryRepository) GetAllItems(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc, created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *pantryRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	var scan entities.ReceiptScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *pantryRepository) UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}

func (r *pantryRepository) GetMonthlyStat(ctx context.Context, userID string, month string) (*entities.MonthlyStat, error) {
	var stat entities.MonthlyStat
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		First(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}
