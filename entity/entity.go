package entity

import (
	"time"
)

const (
	PoStatusPending  = "pending"
	PoStatusApproved = "approved"
	PoStatusRejected = "rejected"
	PoStatusClosed   = "closed"

	TransactionIncome  = "income"
	TransactionExpense = "expense"

	EventApiRequest    = "api_request"
	EventBusinessEvent = "business_event"
	EventSecurityEvent = "security_event"
	EventSystemError   = "system_error"
)

type PurchaseOrder struct {
	Id     string   `json:"id"`
	Vendor string   `json:"vendor"`
	Amount float64  `json:"amount"`
	Status string   `json:"status"`
	Date   string   `json:"date"`
	Items  []string `json:"items"`
}

type Transaction struct {
	Id          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Account     string  `json:"account"`
}

type SystemLog struct {
	Id            string    `json:"id"`
	Level         string    `json:"level"`
	Message       string    `json:"message"`
	EventType     string    `json:"event_type"`
	CorrelationId string    `json:"correlation_id,omitempty"`
	UserId        string    `json:"user_id,omitempty"`
	IpAddress     string    `json:"ip_address,omitempty"`
	Method        string    `json:"method,omitempty"`
	Endpoint      string    `json:"endpoint,omitempty"`
	StatusCode    int       `json:"status_code,omitempty"`
	DurationInMs  int64     `json:"duration_in_ms,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReceiptItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type ReceiptData struct {
	Vendor          string        `json:"vendor"`
	TotalAmount     float64       `json:"total_amount"`
	Date            string        `json:"date"`
	Items           []ReceiptItem `json:"items"`
	ReceiptNumber   string        `json:"receipt_number"`
	ConfidenceScore float64       `json:"confidence_score"`
}

type SpendingInsight struct {
	SpendingPattern   string   `json:"spending_pattern"`
	AnomaliesDetected bool     `json:"anomalies_detected"`
	Recommendations   []string `json:"recommendations"`
	RiskScore         float64  `json:"risk_score"`
	Confidence        float64  `json:"confidence"`
}
