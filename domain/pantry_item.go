package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddItem          = "pantry item added successfully"
	MessageSuccessUpdateItem       = "pantry item updated successfully"
	MessageSuccessDeleteItem       = "pantry item deleted successfully"
	MessageSuccessGetItems         = "pantry items retrieved successfully"
	MessageSuccessUploadReceipt    = "receipt uploaded successfully"
	MessageSuccessGetReceiptScan   = "receipt scan retrieved successfully"
	MessageSuccessSaveScannedItems = "scanned items saved successfully"
	MessageSuccessGetSummary       = "inventory summary retrieved successfully"

	MessageFailedAddItem          = "failed to add pantry item"
	MessageFailedUpdateItem       = "failed to update pantry item"
	MessageFailedDeleteItem       = "failed to delete pantry item"
	MessageFailedGetItems         = "failed to retrieve pantry items"
	MessageFailedUploadReceipt    = "failed to upload receipt"
	MessageFailedGetReceiptScan   = "failed to retrieve receipt scan"
	MessageFailedSaveScannedItems = "failed to save scanned items"
	MessageFailedGetSummary       = "failed to retrieve inventory summary"

	ErrItemNotFound        = errors.New("pantry item not found")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidConfidence   = errors.New("confidence must be between 0 and 1")
	ErrInvalidSortField    = errors.New("invalid sort field")
	ErrReceiptScanNotFound = errors.New("receipt scan not found")
	ErrScanNotProcessed    = errors.New("receipt scan has not been processed")
	ErrUnauthorizedAccess  = errors.New("unauthorized access to pantry item")
	ErrOcrFailed           = errors.New("receipt parsing failed")
	ErrNoValidItems        = errors.New("no valid items in batch")
)

type (
	AddItemRequest struct {
		Name       string   `json:"name" validate:"required"`
		Category   string   `json:"category" validate:"required,oneof=Produce Dairy Pantry Meat Other"`
		Quantity   string   `json:"quantity" validate:"required"`
		ExpiryDate string   `json:"expiry_date" validate:"required"`
		Confidence *float64 `json:"confidence" validate:"omitempty,gte=0,lte=1"`
	}

	UpdateItemRequest struct {
		Name       string   `json:"name" validate:"omitempty"`
		Category   string   `json:"category" validate:"omitempty,oneof=Produce Dairy Pantry Meat Other"`
		Quantity   string   `json:"quantity" validate:"omitempty"`
		ExpiryDate string   `json:"expiry_date" validate:"omitempty"`
		Confidence *float64 `json:"confidence" validate:"omitempty,gte=0,lte=1"`
	}

	ItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Category        string    `json:"category"`
		Quantity        string    `json:"quantity"`
		ExpiryDate      time.Time `json:"expiry_date"`
		Confidence      float64   `json:"confidence"`
		Freshness       string    `json:"freshness"`
		DaysUntilExpiry int       `json:"days_until_expiry"`
		ImageURL        string    `json:"image_url,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	ReceiptScanResponse struct {
		ScanID   string        `json:"scan_id"`
		ImageURL string        `json:"image_url"`
		Status   string        `json:"status"`
		Items    []ScannedItem `json:"items,omitempty"`
	}

	// ScannedItem is one entry of the receipt parser's output. ExpiryDate is
	// optional; when absent the category shelf-life table supplies one.
	ScannedItem struct {
		Name       string   `json:"name" validate:"required"`
		Category   string   `json:"category" validate:"required"`
		Quantity   string   `json:"quantity" validate:"required"`
		ExpiryDate string   `json:"expiry_date" validate:"omitempty"`
		Confidence *float64 `json:"confidence" validate:"omitempty,gte=0,lte=1"`
	}

	SaveScannedItemsRequest struct {
		ScanID string        `json:"scan_id" validate:"required,uuid"`
		Items  []ScannedItem `json:"items" validate:"required,dive"`
	}

	// RejectedItem reports one record of a batch that failed validation. The
	// rest of the batch is still saved.
	RejectedItem struct {
		Index  int    `json:"index"`
		Name   string `json:"name"`
		Reason string `json:"reason"`
	}

	SaveScannedItemsResponse struct {
		Saved    int            `json:"saved"`
		Rejected []RejectedItem `json:"rejected,omitempty"`
	}

	InventorySummaryResponse struct {
		Total              int            `json:"total"`
		Expired            int            `json:"expired"`
		Expiring           int            `json:"expiring"`
		Fresh              int            `json:"fresh"`
		WasteSavedEstimate float64        `json:"waste_saved_estimate"`
		CO2ReducedEstimate float64        `json:"co2_reduced_estimate"`
		ByCategory         map[string]int `json:"by_category"`
	}
)
