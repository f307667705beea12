package repository

import (
	"context"

	"backoffice-service/conf"
	"backoffice-service/entity"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/httpcli"
)

type scanRequest struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
}

type analyzeRequest struct {
	Transactions []entity.Transaction `json:"transactions"`
}

// InsightsClient calls external document and analytics services.
// When no upstream is configured it returns canned payloads, keeping
// the surrounding flow intact for development.
type InsightsClient struct {
	cli    *httpcli.Client
	config conf.Integrations
}

func NewInsightsClient(cli *httpcli.Client, config conf.Integrations) InsightsClient {
	return InsightsClient{
		cli:    cli,
		config: config,
	}
}

func (r InsightsClient) ScanReceipt(ctx context.Context, filename string, content []byte) (*entity.ReceiptData, error) {
	if r.config.OcrUrl == "" {
		return cannedReceipt(), nil
	}

	result := entity.ReceiptData{}
	_, err := r.cli.Post(r.config.OcrUrl).
		Header("Authorization", "Basic "+r.config.ApiKey).
		JsonRequestBody(scanRequest{Filename: filename, Content: content}).
		JsonResponseBody(&result).
		StatusCodeToError().
		Do(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "call ocr endpoint")
	}
	return &result, nil
}

func (r InsightsClient) AnalyzeSpending(ctx context.Context, transactions []entity.Transaction) (*entity.SpendingInsight, error) {
	if r.config.AnalysisUrl == "" {
		return cannedInsight(), nil
	}

	result := entity.SpendingInsight{}
	_, err := r.cli.Post(r.config.AnalysisUrl).
		Header("Authorization", "Bearer "+r.config.ApiKey).
		JsonRequestBody(analyzeRequest{Transactions: transactions}).
		JsonResponseBody(&result).
		StatusCodeToError().
		Do(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "call analysis endpoint")
	}
	return &result, nil
}

func cannedReceipt() *entity.ReceiptData {
	return &entity.ReceiptData{
		Vendor:      "Office Depot",
		TotalAmount: 127.50,
		Date:        "2024-01-15",
		Items: []entity.ReceiptItem{
			{Description: "Office Supplies", Amount: 89.99},
			{Description: "Paper Reams", Amount: 37.51},
		},
		ReceiptNumber:   "RCP-2024-001",
		ConfidenceScore: 0.95,
	}
}

func cannedInsight() *entity.SpendingInsight {
	return &entity.SpendingInsight{
		SpendingPattern:   "Normal",
		AnomaliesDetected: false,
		Recommendations: []string{
			"Consider negotiating better terms with recurring vendors",
			"Track supply usage to optimize ordering frequency",
		},
		RiskScore:  0.2,
		Confidence: 0.87,
	}
}
