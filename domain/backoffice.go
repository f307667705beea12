package domain

import (
	"time"

	"backoffice-service/entity"
)

type CreatePurchaseOrderRequest struct {
	Vendor string   `json:"vendor" validate:"required"`
	Amount float64  `json:"amount" validate:"required,gt=0"`
	Items  []string `json:"items" validate:"required,min=1"`
}

type UpdatePurchaseOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected closed"`
}

type PurchaseOrdersResponse struct {
	PurchaseOrders []entity.PurchaseOrder `json:"purchase_orders"`
	Total          int                    `json:"total"`
	Timestamp      time.Time              `json:"timestamp"`
}

type PurchaseOrderResponse struct {
	PurchaseOrder entity.PurchaseOrder `json:"purchase_order"`
	Timestamp     time.Time            `json:"timestamp"`
}

type CreateTransactionRequest struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Account     string  `json:"account" validate:"required"`
	Date        string  `json:"date"`
}

type TransactionFilter struct {
	Type     string
	Category string
	Page     Page
}

type TransactionsResponse struct {
	Transactions []entity.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	Timestamp    time.Time            `json:"timestamp"`
}

type TransactionResponse struct {
	Transaction entity.Transaction `json:"transaction"`
	Timestamp   time.Time          `json:"timestamp"`
}

type TransactionSummary struct {
	TotalIncome  float64   `json:"total_income"`
	TotalExpense float64   `json:"total_expense"`
	NetAmount    float64   `json:"net_amount"`
	Count        int       `json:"count"`
	Timestamp    time.Time `json:"timestamp"`
}

type CreateSystemLogRequest struct {
	Level     string `json:"level" validate:"required,oneof=DEBUG INFO WARN ERROR FATAL"`
	Message   string `json:"message" validate:"required"`
	EventType string `json:"event_type"`
}

type SystemLogFilter struct {
	Level     string
	EventType string
	Page      Page
}

type SystemLogsResponse struct {
	Logs      []entity.SystemLog `json:"logs"`
	Total     int                `json:"total"`
	Timestamp time.Time          `json:"timestamp"`
}

type SystemLogResponse struct {
	Log       entity.SystemLog `json:"log"`
	Timestamp time.Time        `json:"timestamp"`
}

type Page struct {
	Limit  int
	Offset int
}

type ReceiptScanResponse struct {
	Success       bool                 `json:"success"`
	ExtractedData entity.ReceiptData   `json:"extracted_data"`
	PurchaseOrder entity.PurchaseOrder `json:"purchase_order"`
	Timestamp     time.Time            `json:"timestamp"`
}

type SpendingAnalysisResponse struct {
	Success   bool                   `json:"success"`
	Analysis  entity.SpendingInsight `json:"analysis"`
	Timestamp time.Time              `json:"timestamp"`
}
