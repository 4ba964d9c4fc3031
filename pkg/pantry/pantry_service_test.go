package pantry

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/Kausha3/smart-pantry/domain"
	"github.com/Kausha3/smart-pantry/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryRepository struct {
	items []*entities.PantryItem
	scans map[string]*entities.ReceiptScan
	stats map[string]*entities.MonthlyStat
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		scans: make(map[string]*entities.ReceiptScan),
		stats: make(map[string]*entities.MonthlyStat),
	}
}

func (r *memoryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *memoryRepository) AddItemsBatch(ctx context.Context, items []*entities.PantryItem, scan *entities.ReceiptScan) error {
	r.items = append(r.items, items...)
	if scan != nil {
		r.scans[scan.ID.String()] = scan
	}
	return nil
}

func (r *memoryRepository) GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	for _, item := range r.items {
		if item.ID.String() == id {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return nil
}

func (r *memoryRepository) DeleteItem(ctx context.Context, id string) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.ID.String() != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

func (r *memoryRepository) GetItems(ctx context.Context, userID string, filter ItemFilter) ([]*entities.PantryItem, int64, error) {
	items, _ := r.GetAllItems(ctx, userID)
	return items, int64(len(items)), nil
}

func (r *memoryRepository) GetAllItems(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *memoryRepository) GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() == userID && !item.ExpiryDate.Before(startDate) && !item.ExpiryDate.After(endDate) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *memoryRepository) CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	r.scans[scan.ID.String()] = scan
	return nil
}

func (r *memoryRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	if scan, ok := r.scans[id]; ok {
		return scan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	r.scans[scan.ID.String()] = scan
	return nil
}

func (r *memoryRepository) GetMonthlyStat(ctx context.Context, userID string, month string) (*entities.MonthlyStat, error) {
	if stat, ok := r.stats[userID+"/"+month]; ok {
		return stat, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubS3 struct{}

func (s *stubS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExts ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (s *stubS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExts ...string) (string, error) {
	return objectKey, nil
}

func (s *stubS3) DeleteFile(objectKey string) error { return nil }

func (s *stubS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example.com/" + objectKey
}

func (s *stubS3) GetObjectKeyFromLink(link string) string { return "" }

func newTestService() (*memoryRepository, PantryService, string) {
	repo := newMemoryRepository()
	service := NewPantryService(repo, &stubS3{})
	return repo, service, uuid.New().String()
}

func TestAddItem(t *testing.T) {
	_, service, userID := newTestService()

	resp, err := service.AddItem(context.Background(), domain.AddItemRequest{
		Name:       "Milk",
		Category:   entities.CategoryDairy,
		Quantity:   "1 carton",
		ExpiryDate: time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, "Milk", resp.Name)
	assert.Equal(t, 1.0, resp.Confidence)
	assert.Equal(t, "ExpiringSoon", resp.Freshness)
	assert.Equal(t, 2, resp.DaysUntilExpiry)
}

func TestAddItemInvalidExpiryDate(t *testing.T) {
	_, service, userID := newTestService()

	_, err := service.AddItem(context.Background(), domain.AddItemRequest{
		Name:       "Milk",
		Category:   entities.CategoryDairy,
		Quantity:   "1 carton",
		ExpiryDate: "12/06/2024",
	}, userID)

	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestAddItemInvalidCategory(t *testing.T) {
	_, service, userID := newTestService()

	_, err := service.AddItem(context.Background(), domain.AddItemRequest{
		Name:       "Milk",
		Category:   "Beverages",
		Quantity:   "1 carton",
		ExpiryDate: "2026-01-01",
	}, userID)

	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGetItemByIDOwnership(t *testing.T) {
	repo, service, userID := newTestService()

	owner := uuid.MustParse(userID)
	item := &entities.PantryItem{ID: uuid.New(), UserID: owner, Name: "Milk", Category: entities.CategoryDairy, ExpiryDate: time.Now()}
	repo.items = append(repo.items, item)

	_, err := service.GetItemByID(context.Background(), item.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	resp, err := service.GetItemByID(context.Background(), item.ID.String(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", resp.Name)
}

func TestUpdateItemNotFound(t *testing.T) {
	_, service, userID := newTestService()

	err := service.UpdateItem(context.Background(), uuid.New().String(), domain.UpdateItemRequest{Name: "Eggs"}, userID)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDeleteItem(t *testing.T) {
	repo, service, userID := newTestService()

	item := &entities.PantryItem{ID: uuid.New(), UserID: uuid.MustParse(userID), Name: "Milk", Category: entities.CategoryDairy, ExpiryDate: time.Now()}
	repo.items = append(repo.items, item)

	require.NoError(t, service.DeleteItem(context.Background(), item.ID.String(), userID))
	assert.Empty(t, repo.items)
}

func TestSaveScannedItemsMixedBatch(t *testing.T) {
	repo, service, userID := newTestService()

	scan := &entities.ReceiptScan{ID: uuid.New(), UserID: uuid.MustParse(userID), Status: "Processed"}
	repo.scans[scan.ID.String()] = scan

	badConfidence := 1.5
	resp, err := service.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items: []domain.ScannedItem{
			{Name: "Milk", Category: entities.CategoryDairy, Quantity: "1 carton", ExpiryDate: "2026-09-05"},
			{Name: "", Category: entities.CategoryDairy, Quantity: "1"},
			{Name: "Mystery Sauce", Category: "Condiments", Quantity: "1 jar"},
			{Name: "Yogurt", Category: entities.CategoryDairy, Quantity: "4 cups", Confidence: &badConfidence},
		},
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Saved)
	require.Len(t, resp.Rejected, 2)
	assert.Equal(t, 1, resp.Rejected[0].Index)
	assert.Equal(t, 3, resp.Rejected[1].Index)
	assert.Equal(t, "Yogurt", resp.Rejected[1].Name)

	assert.Equal(t, "Completed", scan.Status)
	require.Len(t, repo.items, 2)

	// Unknown category coerces to Other and inherits its shelf life.
	coerced := repo.items[1]
	assert.Equal(t, entities.CategoryOther, coerced.Category)
	wantExpiry := time.Now().AddDate(0, 0, entities.ShelfLifeDays[entities.CategoryOther])
	assert.WithinDuration(t, wantExpiry, coerced.ExpiryDate, time.Minute)
	assert.False(t, coerced.AddedManually)
	require.NotNil(t, coerced.ReceiptScanID)
	assert.Equal(t, scan.ID, *coerced.ReceiptScanID)
}

func TestSaveScannedItemsAllInvalid(t *testing.T) {
	repo, service, userID := newTestService()

	scan := &entities.ReceiptScan{ID: uuid.New(), UserID: uuid.MustParse(userID), Status: "Processed"}
	repo.scans[scan.ID.String()] = scan

	resp, err := service.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items: []domain.ScannedItem{
			{Name: "", Quantity: "1"},
			{Name: "Spread", Quantity: ""},
		},
	}, userID)

	assert.ErrorIs(t, err, domain.ErrNoValidItems)
	assert.Len(t, resp.Rejected, 2)
	assert.Empty(t, repo.items)
}

func TestSaveScannedItemsScanNotReady(t *testing.T) {
	repo, service, userID := newTestService()

	pending := &entities.ReceiptScan{ID: uuid.New(), UserID: uuid.MustParse(userID), Status: "Pending"}
	failed := &entities.ReceiptScan{ID: uuid.New(), UserID: uuid.MustParse(userID), Status: "Failed"}
	repo.scans[pending.ID.String()] = pending
	repo.scans[failed.ID.String()] = failed

	items := []domain.ScannedItem{{Name: "Milk", Category: entities.CategoryDairy, Quantity: "1"}}

	_, err := service.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{ScanID: pending.ID.String(), Items: items}, userID)
	assert.ErrorIs(t, err, domain.ErrScanNotProcessed)

	_, err = service.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{ScanID: failed.ID.String(), Items: items}, userID)
	assert.ErrorIs(t, err, domain.ErrOcrFailed)
}

func TestSaveScannedItemsWrongOwner(t *testing.T) {
	repo, service, _ := newTestService()

	scan := &entities.ReceiptScan{ID: uuid.New(), UserID: uuid.New(), Status: "Processed"}
	repo.scans[scan.ID.String()] = scan

	_, err := service.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items:  []domain.ScannedItem{{Name: "Milk", Category: entities.CategoryDairy, Quantity: "1"}},
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestGetInventorySummary(t *testing.T) {
	repo, service, userID := newTestService()

	owner := uuid.MustParse(userID)
	now := time.Now()
	repo.items = append(repo.items,
		&entities.PantryItem{ID: uuid.New(), UserID: owner, Name: "Old Milk", Category: entities.CategoryDairy, ExpiryDate: now.AddDate(0, 0, -2)},
		&entities.PantryItem{ID: uuid.New(), UserID: owner, Name: "Spinach", Category: entities.CategoryProduce, ExpiryDate: now.AddDate(0, 0, 1)},
		&entities.PantryItem{ID: uuid.New(), UserID: owner, Name: "Rice", Category: entities.CategoryPantry, ExpiryDate: now.AddDate(0, 0, 30)},
	)

	resp, err := service.GetInventorySummary(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Expired)
	assert.Equal(t, 1, resp.Expiring)
	assert.Equal(t, 1, resp.Fresh)
	assert.Equal(t, resp.Total, resp.Expired+resp.Expiring+resp.Fresh)
	assert.Equal(t, 1, resp.ByCategory[entities.CategoryDairy])
}

func TestGetInventorySummaryMonthlyOverride(t *testing.T) {
	repo, service, userID := newTestService()

	owner := uuid.MustParse(userID)
	now := time.Now()
	repo.items = append(repo.items,
		&entities.PantryItem{ID: uuid.New(), UserID: owner, Name: "Spinach", Category: entities.CategoryProduce, ExpiryDate: now.AddDate(0, 0, 10)},
	)
	repo.stats[userID+"/"+now.Format("2006-01")] = &entities.MonthlyStat{
		UserID:     owner,
		Month:      now.Format("2006-01"),
		WasteSaved: 12.5,
		CO2Reduced: 4.2,
	}

	resp, err := service.GetInventorySummary(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 12.5, resp.WasteSavedEstimate)
	assert.Equal(t, 4.2, resp.CO2ReducedEstimate)
	assert.Equal(t, 1, resp.Total)
}
