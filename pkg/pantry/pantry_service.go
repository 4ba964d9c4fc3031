package pantry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Kausha3/smart-pantry/domain"
	"github.com/Kausha3/smart-pantry/entities"
	"github.com/Kausha3/smart-pantry/internal/utils"
	"github.com/Kausha3/smart-pantry/internal/utils/storage"
	"github.com/Kausha3/smart-pantry/pkg/freshness"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) error
		DeleteItem(ctx context.Context, id string, userID string) error
		GetItems(ctx context.Context, userID string, filter ItemFilter) ([]domain.ItemResponse, int64, error)
		GetItemByID(ctx context.Context, id string, userID string) (domain.ItemResponse, error)
		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error)
		GetReceiptScan(ctx context.Context, id string, userID string) (domain.ReceiptScanResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) (domain.SaveScannedItemsResponse, error)
		GetInventorySummary(ctx context.Context, userID string) (domain.InventorySummaryResponse, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
		s3               storage.AwsS3
	}
)

func NewPantryService(pantryRepository PantryRepository, s3 storage.AwsS3) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		s3:               s3,
	}
}

func (s *pantryService) AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if !entities.ValidCategory(req.Category) {
		return domain.ItemResponse{}, domain.ErrInvalidCategory
	}

	confidence := 1.0
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.PantryItem{
		ID:            uuid.New(),
		UserID:        userUUID,
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		ExpiryDate:    expiryDate,
		Confidence:    confidence,
		AddedManually: true,
	}

	if err := s.pantryRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	return toItemResponse(item, time.Now()), nil
}

func (s *pantryService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) error {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		if !entities.ValidCategory(req.Category) {
			return domain.ErrInvalidCategory
		}
		item.Category = req.Category
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
	}
	if req.Confidence != nil {
		item.Confidence = *req.Confidence
	}

	return s.pantryRepository.UpdateItem(ctx, item)
}

func (s *pantryService) DeleteItem(ctx context.Context, id string, userID string) error {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.pantryRepository.DeleteItem(ctx, id)
}

func (s *pantryService) GetItems(ctx context.Context, userID string, filter ItemFilter) ([]domain.ItemResponse, int64, error) {
	items, count, err := s.pantryRepository.GetItems(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item, now))
	}

	return response, count, nil
}

func (s *pantryService) GetItemByID(ctx context.Context, id string, userID string) (domain.ItemResponse, error) {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.ItemResponse{}, domain.ErrUnauthorizedAccess
	}

	return toItemResponse(item, time.Now()), nil
}

func (s *pantryService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("receipt-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)

	scan := &entities.ReceiptScan{
		ID:       scanID,
		UserID:   userUUID,
		ImageURL: imageURL,
		Status:   "Pending",
	}

	if err := s.pantryRepository.CreateReceiptScan(ctx, scan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	go s.processReceipt(scan, req.ReceiptImage)

	return domain.UploadReceiptResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   "Pending",
	}, nil
}

// processReceipt sends the receipt image to the external parser and records
// the structured result on the scan row. Runs detached from the request.
func (s *pantryService) processReceipt(scan *entities.ReceiptScan, image *multipart.FileHeader) {
	ctx := context.Background()

	fail := func(reason string) {
		scan.Status = "Failed"
		scan.OcrResults = []byte(fmt.Sprintf(`{"error":%q}`, reason))
		if err := s.pantryRepository.UpdateReceiptScan(ctx, scan); err != nil {
			log.Printf("error updating receipt scan %s: %v", scan.ID, err)
		}
	}

	parserURL := utils.GetConfig("AI_MODEL_URL")
	if parserURL == "" {
		fail("receipt parser URL not configured")
		return
	}

	file, err := image.Open()
	if err != nil {
		fail(fmt.Sprintf("opening file: %s", err.Error()))
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		fail(fmt.Sprintf("reading file: %s", err.Error()))
		return
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		fail(fmt.Sprintf("creating form file: %s", err.Error()))
		return
	}
	if _, err = part.Write(fileBytes); err != nil {
		fail(fmt.Sprintf("writing form file: %s", err.Error()))
		return
	}
	if err = writer.Close(); err != nil {
		fail(fmt.Sprintf("closing writer: %s", err.Error()))
		return
	}

	httpReq, err := http.NewRequest("POST", parserURL, body)
	if err != nil {
		fail(fmt.Sprintf("creating request: %s", err.Error()))
		return
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		fail(fmt.Sprintf("sending request to receipt parser: %s", err.Error()))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		fail(fmt.Sprintf("receipt parser error: %s - %s", resp.Status, string(bodyBytes)))
		return
	}

	var parserResponse struct {
		Success bool                 `json:"success"`
		Items   []domain.ScannedItem `json:"items"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&parserResponse); err != nil {
		fail(fmt.Sprintf("parsing receipt parser response: %s", err.Error()))
		return
	}

	if !parserResponse.Success || len(parserResponse.Items) == 0 {
		fail("receipt parser could not extract any items")
		return
	}

	// Coerce unknown categories before the result is shown to the user.
	for i := range parserResponse.Items {
		if !entities.ValidCategory(parserResponse.Items[i].Category) {
			parserResponse.Items[i].Category = entities.CategoryOther
		}
	}

	resultsJSON, _ := json.Marshal(parserResponse.Items)
	scan.Status = "Processed"
	scan.OcrResults = resultsJSON

	if err := s.pantryRepository.UpdateReceiptScan(ctx, scan); err != nil {
		log.Printf("error updating receipt scan %s: %v", scan.ID, err)
	}
}

func (s *pantryService) GetReceiptScan(ctx context.Context, id string, userID string) (domain.ReceiptScanResponse, error) {
	scan, err := s.pantryRepository.GetReceiptScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptScanResponse{}, domain.ErrReceiptScanNotFound
		}
		return domain.ReceiptScanResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.ReceiptScanResponse{}, domain.ErrUnauthorizedAccess
	}

	response := domain.ReceiptScanResponse{
		ScanID:   scan.ID.String(),
		ImageURL: scan.ImageURL,
		Status:   scan.Status,
	}

	if scan.Status == "Processed" && len(scan.OcrResults) > 0 {
		var items []domain.ScannedItem
		if err := json.Unmarshal(scan.OcrResults, &items); err == nil {
			response.Items = items
		}
	}

	return response, nil
}

// SaveScannedItems imports the confirmed scan results. Each record is
// validated on its own; a bad record is reported and skipped, never aborting
// the rest of the batch. The surviving records are written in one
// transaction.
func (s *pantryService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) (domain.SaveScannedItemsResponse, error) {
	scan, err := s.pantryRepository.GetReceiptScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SaveScannedItemsResponse{}, domain.ErrReceiptScanNotFound
		}
		return domain.SaveScannedItemsResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.SaveScannedItemsResponse{}, domain.ErrUnauthorizedAccess
	}

	switch scan.Status {
	case "Failed":
		return domain.SaveScannedItemsResponse{}, domain.ErrOcrFailed
	case "Pending":
		return domain.SaveScannedItemsResponse{}, domain.ErrScanNotProcessed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SaveScannedItemsResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	var items []*entities.PantryItem
	var rejected []domain.RejectedItem

	for i, scanned := range req.Items {
		item, err := buildScannedItem(scanned, userUUID, scan.ID, now)
		if err != nil {
			rejected = append(rejected, domain.RejectedItem{
				Index:  i,
				Name:   scanned.Name,
				Reason: err.Error(),
			})
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return domain.SaveScannedItemsResponse{Rejected: rejected}, domain.ErrNoValidItems
	}

	scan.Status = "Completed"
	if err := s.pantryRepository.AddItemsBatch(ctx, items, scan); err != nil {
		return domain.SaveScannedItemsResponse{}, err
	}

	return domain.SaveScannedItemsResponse{
		Saved:    len(items),
		Rejected: rejected,
	}, nil
}

// buildScannedItem validates one receipt record. Unknown categories coerce to
// Other; a missing expiry date falls back to the category shelf life.
func buildScannedItem(scanned domain.ScannedItem, userUUID uuid.UUID, scanID uuid.UUID, now time.Time) (*entities.PantryItem, error) {
	if scanned.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if scanned.Quantity == "" {
		return nil, fmt.Errorf("quantity is required")
	}

	category := scanned.Category
	if !entities.ValidCategory(category) {
		category = entities.CategoryOther
	}

	confidence := 1.0
	if scanned.Confidence != nil {
		if *scanned.Confidence < 0 || *scanned.Confidence > 1 {
			return nil, domain.ErrInvalidConfidence
		}
		confidence = *scanned.Confidence
	}

	var expiryDate time.Time
	if scanned.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", scanned.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidExpiryDate
		}
		expiryDate = parsed
	} else {
		expiryDate = now.AddDate(0, 0, entities.ShelfLifeDays[category])
	}

	return &entities.PantryItem{
		ID:            uuid.New(),
		UserID:        userUUID,
		Name:          scanned.Name,
		Category:      category,
		Quantity:      scanned.Quantity,
		ExpiryDate:    expiryDate,
		Confidence:    confidence,
		AddedManually: false,
		ReceiptScanID: &scanID,
	}, nil
}

func (s *pantryService) GetInventorySummary(ctx context.Context, userID string) (domain.InventorySummaryResponse, error) {
	items, err := s.pantryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return domain.InventorySummaryResponse{}, err
	}

	now := time.Now()
	var override *freshness.StatOverride
	stat, err := s.pantryRepository.GetMonthlyStat(ctx, userID, now.Format("2006-01"))
	if err == nil {
		override = &freshness.StatOverride{
			WasteSaved: stat.WasteSaved,
			CO2Reduced: stat.CO2Reduced,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.InventorySummaryResponse{}, err
	}

	summary := freshness.Summarize(items, now, freshness.DefaultThresholdDays, override)

	return domain.InventorySummaryResponse{
		Total:              summary.Total,
		Expired:            summary.Expired,
		Expiring:           summary.Expiring,
		Fresh:              summary.Fresh,
		WasteSavedEstimate: summary.WasteSavedEstimate,
		CO2ReducedEstimate: summary.CO2ReducedEstimate,
		ByCategory:         summary.ByCategory,
	}, nil
}

func toItemResponse(item *entities.PantryItem, now time.Time) domain.ItemResponse {
	bucket, days := freshness.Classify(item.ExpiryDate, now, freshness.DefaultThresholdDays)
	return domain.ItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		ExpiryDate:      item.ExpiryDate,
		Confidence:      item.Confidence,
		Freshness:       string(bucket),
		DaysUntilExpiry: days,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
	}
}
