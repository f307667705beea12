package service_test

import (
	"context"
	"strconv"
	"testing"

	"backoffice-service/conf"
	"backoffice-service/domain"
	"backoffice-service/entity"
	"backoffice-service/repository"
	"backoffice-service/service"

	"github.com/stretchr/testify/require"
)

type analyzerStub struct {
	insight entity.SpendingInsight
	seen    int
}

func (s *analyzerStub) AnalyzeSpending(ctx context.Context, transactions []entity.Transaction) (*entity.SpendingInsight, error) {
	s.seen = len(transactions)
	return &s.insight, nil
}

func TestTransactionSummary(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := repository.NewTransactionStore()
	store.Seed([]entity.Transaction{
		{Id: "txn-1", Type: entity.TransactionIncome, Amount: 25000},
		{Id: "txn-2", Type: entity.TransactionExpense, Amount: 1250},
		{Id: "txn-3", Type: entity.TransactionExpense, Amount: 340.75},
	})
	svc := service.NewTransaction(store, &analyzerStub{}, conf.Pagination{})

	summary, err := svc.Summary(context.Background())
	require.NoError(err)
	require.EqualValues(25000, summary.TotalIncome)
	require.EqualValues(1590.75, summary.TotalExpense)
	require.EqualValues(23409.25, summary.NetAmount)
	require.EqualValues(3, summary.Count)
}

func TestTransactionListFilterAndPagination(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := repository.NewTransactionStore()
	transactions := make([]entity.Transaction, 0, 5)
	for i := 0; i < 5; i++ {
		transactions = append(transactions, entity.Transaction{
			Id:       "txn-" + strconv.Itoa(i),
			Type:     entity.TransactionExpense,
			Category: "supplies",
			Amount:   float64(i + 1),
		})
	}
	transactions = append(transactions, entity.Transaction{
		Id:     "txn-income",
		Type:   entity.TransactionIncome,
		Amount: 100,
	})
	store.Seed(transactions)
	svc := service.NewTransaction(store, &analyzerStub{}, conf.Pagination{})

	resp, err := svc.List(context.Background(), domain.TransactionFilter{Type: entity.TransactionExpense})
	require.NoError(err)
	require.EqualValues(5, resp.Total)
	require.Len(resp.Transactions, 5)

	resp, err = svc.List(context.Background(), domain.TransactionFilter{
		Type: entity.TransactionExpense,
		Page: domain.Page{Limit: 2, Offset: 4},
	})
	require.NoError(err)
	require.EqualValues(5, resp.Total)
	require.Len(resp.Transactions, 1)
	require.EqualValues("txn-4", resp.Transactions[0].Id)

	resp, err = svc.List(context.Background(), domain.TransactionFilter{
		Page: domain.Page{Offset: 100},
	})
	require.NoError(err)
	require.Empty(resp.Transactions)
}

func TestTransactionCreateDefaultsDate(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := repository.NewTransactionStore()
	svc := service.NewTransaction(store, &analyzerStub{}, conf.Pagination{})

	resp, err := svc.Create(context.Background(), domain.CreateTransactionRequest{
		Type:        entity.TransactionExpense,
		Amount:      99.90,
		Description: "Office rent",
		Category:    "rent",
		Account:     "checking",
	})
	require.NoError(err)
	require.Regexp("^txn-", resp.Transaction.Id)
	require.NotEmpty(resp.Transaction.Date)

	_, err = svc.Create(context.Background(), domain.CreateTransactionRequest{
		Type:        "transfer",
		Amount:      1,
		Description: "d",
		Category:    "c",
		Account:     "a",
	})
	require.Error(err)
}

func TestTransactionAnalyze(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := repository.NewTransactionStore()
	store.Seed(repository.DemoTransactions())
	analyzer := &analyzerStub{insight: entity.SpendingInsight{SpendingPattern: "Normal", Confidence: 0.87}}
	svc := service.NewTransaction(store, analyzer, conf.Pagination{})

	resp, err := svc.Analyze(context.Background())
	require.NoError(err)
	require.True(resp.Success)
	require.EqualValues("Normal", resp.Analysis.SpendingPattern)
	require.EqualValues(len(repository.DemoTransactions()), analyzer.seen)
}
