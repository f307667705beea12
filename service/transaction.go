package service

import (
	"context"
	"time"

	"backoffice-service/conf"
	"backoffice-service/domain"
	"backoffice-service/entity"

	"github.com/pkg/errors"
)

type TransactionStore interface {
	All(ctx context.Context, filter domain.TransactionFilter) ([]entity.Transaction, error)
	Get(ctx context.Context, id string) (*entity.Transaction, error)
	Insert(ctx context.Context, tx entity.Transaction) error
}

type SpendingAnalyzer interface {
	AnalyzeSpending(ctx context.Context, transactions []entity.Transaction) (*entity.SpendingInsight, error)
}

type Transaction struct {
	store      TransactionStore
	analyzer   SpendingAnalyzer
	pagination conf.Pagination
}

func NewTransaction(store TransactionStore, analyzer SpendingAnalyzer, pagination conf.Pagination) Transaction {
	return Transaction{
		store:      store,
		analyzer:   analyzer,
		pagination: pagination,
	}
}

func (s Transaction) List(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionsResponse, error) {
	transactions, err := s.store.All(ctx, filter)
	if err != nil {
		return nil, errors.WithMessage(err, "list transactions")
	}

	total := len(transactions)
	page := clampPage(filter.Page, s.pagination)
	transactions = paginate(transactions, page)

	return &domain.TransactionsResponse{
		Transactions: transactions,
		Total:        total,
		Timestamp:    time.Now().UTC(),
	}, nil
}

func (s Transaction) Get(ctx context.Context, id string) (*domain.TransactionResponse, error) {
	tx, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, errors.WithMessagef(err, "get transaction '%s'", id)
	}
	return &domain.TransactionResponse{
		Transaction: *tx,
		Timestamp:   time.Now().UTC(),
	}, nil
}

func (s Transaction) Create(ctx context.Context, req domain.CreateTransactionRequest) (*domain.TransactionResponse, error) {
	err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}
	tx := entity.Transaction{
		Id:          newId("txn"),
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		Category:    req.Category,
		Account:     req.Account,
	}
	err = s.store.Insert(ctx, tx)
	if err != nil {
		return nil, errors.WithMessage(err, "insert transaction")
	}

	return &domain.TransactionResponse{
		Transaction: tx,
		Timestamp:   time.Now().UTC(),
	}, nil
}

func (s Transaction) Summary(ctx context.Context) (*domain.TransactionSummary, error) {
	transactions, err := s.store.All(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, errors.WithMessage(err, "list transactions")
	}

	summary := domain.TransactionSummary{
		Count:     len(transactions),
		Timestamp: time.Now().UTC(),
	}
	for _, tx := range transactions {
		switch tx.Type {
		case entity.TransactionIncome:
			summary.TotalIncome += tx.Amount
		case entity.TransactionExpense:
			summary.TotalExpense += tx.Amount
		}
	}
	summary.NetAmount = summary.TotalIncome - summary.TotalExpense

	return &summary, nil
}

func (s Transaction) Analyze(ctx context.Context) (*domain.SpendingAnalysisResponse, error) {
	transactions, err := s.store.All(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, errors.WithMessage(err, "list transactions")
	}

	insight, err := s.analyzer.AnalyzeSpending(ctx, transactions)
	if err != nil {
		return nil, errors.WithMessage(err, "analyze spending")
	}

	return &domain.SpendingAnalysisResponse{
		Success:   true,
		Analysis:  *insight,
		Timestamp: time.Now().UTC(),
	}, nil
}

func clampPage(page domain.Page, pagination conf.Pagination) domain.Page {
	if page.Limit <= 0 {
		page.Limit = pagination.GetDefaultPerPage()
	}
	if page.Limit > pagination.GetMaxPerPage() {
		page.Limit = pagination.GetMaxPerPage()
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return page
}

func paginate[T any](items []T, page domain.Page) []T {
	if page.Offset >= len(items) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end]
}
