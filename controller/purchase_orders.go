package controller

import (
	"io"
	"net/http"
	"time"

	"backoffice-service/domain"
	"backoffice-service/httperrors"
	"backoffice-service/request"
	"backoffice-service/service"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type PurchaseOrders struct {
	service service.PurchaseOrder
}

func NewPurchaseOrders(service service.PurchaseOrder) PurchaseOrders {
	return PurchaseOrders{
		service: service,
	}
}

func (c PurchaseOrders) List(ctx *request.Context) error {
	started := time.Now()
	response, err := c.service.List(ctx.Context())
	ctx.Stats().RecordDbCall(time.Since(started))
	if err != nil {
		return err
	}
	return respondJson(ctx, http.StatusOK, response)
}

func (c PurchaseOrders) Get(ctx *request.Context) error {
	id := mux.Vars(ctx.Request())["id"]

	started := time.Now()
	response, err := c.service.Get(ctx.Context(), id)
	ctx.Stats().RecordDbCall(time.Since(started))
	if err != nil {
		return mapNotFound(err, "purchase order not found")
	}
	return respondJson(ctx, http.StatusOK, response)
}

func (c PurchaseOrders) Create(ctx *request.Context) error {
	req := domain.CreatePurchaseOrderRequest{}
	err := readJson(ctx, &req)
	if err != nil {
		return err
	}

	started := time.Now()
	response, err := c.service.Create(ctx.Context(), req)
	ctx.Stats().RecordDbCall(time.Since(started))
	if err != nil {
		return err
	}
	return respondJson(ctx, http.StatusCreated, response)
}

func (c PurchaseOrders) UpdateStatus(ctx *request.Context) error {
	id := mux.Vars(ctx.Request())["id"]
	req := domain.UpdatePurchaseOrderStatusRequest{}
	err := readJson(ctx, &req)
	if err != nil {
		return err
	}

	started := time.Now()
	response, err := c.service.UpdateStatus(ctx.Context(), id, req)
	ctx.Stats().RecordDbCall(time.Since(started))
	if err != nil {
		return mapNotFound(err, "purchase order not found")
	}
	return respondJson(ctx, http.StatusOK, response)
}

func (c PurchaseOrders) ScanReceipt(ctx *request.Context) error {
	content, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			"unable to read receipt content",
			errors.WithMessage(err, "read request body"),
		)
	}
	filename := ctx.Request().Header.Get("X-Filename")

	started := time.Now()
	response, err := c.service.ScanReceipt(ctx.Context(), filename, content)
	ctx.Stats().RecordExternalCall(time.Since(started))
	if err != nil {
		return err
	}
	return respondJson(ctx, http.StatusCreated, response)
}
