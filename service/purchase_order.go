package service

import (
	"context"
	"time"

	"backoffice-service/domain"
	"backoffice-service/entity"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

type PurchaseOrderStore interface {
	All(ctx context.Context) ([]entity.PurchaseOrder, error)
	Get(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	Insert(ctx context.Context, order entity.PurchaseOrder) error
	UpdateStatus(ctx context.Context, id string, status string) (*entity.PurchaseOrder, error)
}

type ReceiptScanner interface {
	ScanReceipt(ctx context.Context, filename string, content []byte) (*entity.ReceiptData, error)
}

type PurchaseOrder struct {
	store   PurchaseOrderStore
	scanner ReceiptScanner
}

func NewPurchaseOrder(store PurchaseOrderStore, scanner ReceiptScanner) PurchaseOrder {
	return PurchaseOrder{
		store:   store,
		scanner: scanner,
	}
}

func (s PurchaseOrder) List(ctx context.Context) (*domain.PurchaseOrdersResponse, error) {
	orders, err := s.store.All(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "list purchase orders")
	}
	return &domain.PurchaseOrdersResponse{
		PurchaseOrders: orders,
		Total:          len(orders),
		Timestamp:      time.Now().UTC(),
	}, nil
}

func (s PurchaseOrder) Get(ctx context.Context, id string) (*domain.PurchaseOrderResponse, error) {
	order, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, errors.WithMessagef(err, "get purchase order '%s'", id)
	}
	return &domain.PurchaseOrderResponse{
		PurchaseOrder: *order,
		Timestamp:     time.Now().UTC(),
	}, nil
}

func (s PurchaseOrder) Create(ctx context.Context, req domain.CreatePurchaseOrderRequest) (*domain.PurchaseOrderResponse, error) {
	err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	order := entity.PurchaseOrder{
		Id:     newId("po"),
		Vendor: req.Vendor,
		Amount: req.Amount,
		Status: entity.PoStatusPending,
		Date:   time.Now().UTC().Format(dateLayout),
		Items:  req.Items,
	}
	err = s.store.Insert(ctx, order)
	if err != nil {
		return nil, errors.WithMessage(err, "insert purchase order")
	}

	return &domain.PurchaseOrderResponse{
		PurchaseOrder: order,
		Timestamp:     time.Now().UTC(),
	}, nil
}

func (s PurchaseOrder) UpdateStatus(
	ctx context.Context,
	id string,
	req domain.UpdatePurchaseOrderStatusRequest,
) (*domain.PurchaseOrderResponse, error) {
	err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	order, err := s.store.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return nil, errors.WithMessagef(err, "update status of purchase order '%s'", id)
	}

	return &domain.PurchaseOrderResponse{
		PurchaseOrder: *order,
		Timestamp:     time.Now().UTC(),
	}, nil
}

// ScanReceipt extracts structured data from an uploaded receipt and
// creates a draft purchase order from it.
func (s PurchaseOrder) ScanReceipt(ctx context.Context, filename string, content []byte) (*domain.ReceiptScanResponse, error) {
	data, err := s.scanner.ScanReceipt(ctx, filename, content)
	if err != nil {
		return nil, errors.WithMessage(err, "scan receipt")
	}

	items := make([]string, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, item.Description)
	}
	order := entity.PurchaseOrder{
		Id:     newId("po"),
		Vendor: data.Vendor,
		Amount: data.TotalAmount,
		Status: entity.PoStatusPending,
		Date:   data.Date,
		Items:  items,
	}
	err = s.store.Insert(ctx, order)
	if err != nil {
		return nil, errors.WithMessage(err, "insert purchase order")
	}

	return &domain.ReceiptScanResponse{
		Success:       true,
		ExtractedData: *data,
		PurchaseOrder: order,
		Timestamp:     time.Now().UTC(),
	}, nil
}
