package service_test

import (
	"context"
	"net/http"
	"testing"

	"backoffice-service/domain"
	"backoffice-service/entity"
	"backoffice-service/httperrors"
	"backoffice-service/repository"
	"backoffice-service/service"

	"github.com/stretchr/testify/require"
)

type scannerStub struct {
	data entity.ReceiptData
}

func (s scannerStub) ScanReceipt(ctx context.Context, filename string, content []byte) (*entity.ReceiptData, error) {
	return &s.data, nil
}

func TestPurchaseOrderCreate(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := repository.NewPurchaseOrderStore()
	svc := service.NewPurchaseOrder(store, scannerStub{})
	ctx := context.Background()

	resp, err := svc.Create(ctx, domain.CreatePurchaseOrderRequest{
		Vendor: "Tech Solutions Inc",
		Amount: 15750,
		Items:  []string{"Laptops", "Monitors"},
	})
	require.NoError(err)
	require.Regexp("^po-", resp.PurchaseOrder.Id)
	require.EqualValues(entity.PoStatusPending, resp.PurchaseOrder.Status)

	list, err := svc.List(ctx)
	require.NoError(err)
	require.EqualValues(1, list.Total)
}

func TestPurchaseOrderCreateValidation(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := repository.NewPurchaseOrderStore()
	svc := service.NewPurchaseOrder(store, scannerStub{})

	invalid := []domain.CreatePurchaseOrderRequest{
		{Amount: 100, Items: []string{"a"}},
		{Vendor: "v", Amount: -5, Items: []string{"a"}},
		{Vendor: "v", Amount: 100},
	}
	for _, req := range invalid {
		_, err := svc.Create(context.Background(), req)
		require.Error(err)
		httpErr, ok := err.(httperrors.HttpError)
		require.True(ok)
		require.EqualValues(http.StatusBadRequest, httpErr.StatusCode())
	}
}

func TestPurchaseOrderUpdateStatus(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := repository.NewPurchaseOrderStore()
	store.Seed(repository.DemoPurchaseOrders())
	svc := service.NewPurchaseOrder(store, scannerStub{})
	ctx := context.Background()

	resp, err := svc.UpdateStatus(ctx, "po-001", domain.UpdatePurchaseOrderStatusRequest{Status: "approved"})
	require.NoError(err)
	require.EqualValues(entity.PoStatusApproved, resp.PurchaseOrder.Status)

	_, err = svc.UpdateStatus(ctx, "po-001", domain.UpdatePurchaseOrderStatusRequest{Status: "shipped"})
	require.Error(err)

	_, err = svc.UpdateStatus(ctx, "missing", domain.UpdatePurchaseOrderStatusRequest{Status: "approved"})
	require.ErrorIs(err, domain.ErrNotFound)
}

func TestPurchaseOrderScanReceipt(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := repository.NewPurchaseOrderStore()
	scanner := scannerStub{data: entity.ReceiptData{
		Vendor:      "Office Depot",
		TotalAmount: 127.50,
		Date:        "2024-01-15",
		Items: []entity.ReceiptItem{
			{Description: "Office Supplies", Amount: 89.99},
			{Description: "Paper Reams", Amount: 37.51},
		},
	}}
	svc := service.NewPurchaseOrder(store, scanner)

	resp, err := svc.ScanReceipt(context.Background(), "receipt.jpg", []byte("image-bytes"))
	require.NoError(err)
	require.True(resp.Success)
	require.EqualValues("Office Depot", resp.PurchaseOrder.Vendor)
	require.EqualValues(127.50, resp.PurchaseOrder.Amount)
	require.EqualValues([]string{"Office Supplies", "Paper Reams"}, resp.PurchaseOrder.Items)

	stored, err := store.Get(context.Background(), resp.PurchaseOrder.Id)
	require.NoError(err)
	require.EqualValues(entity.PoStatusPending, stored.Status)
}
