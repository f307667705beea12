package controller

import (
	"net/http"
	"time"

	"backoffice-service/domain"
	"backoffice-service/request"
	"backoffice-service/service"

	"github.com/gorilla/mux"
)

type Transactions struct {
	service service.Transaction
}

func NewTransactions(service service.Transaction) Transactions {
	return Transactions{
		service: service,
	}
}

func (c Transactions) List(ctx *request.Context) error {
	query := ctx.Request().URL.Query()
	filter := domain.TransactionFilter{
		Type:     query.Get("type"),
		Category: query.Get("category"),
		Page:     pageFromQuery(ctx),
	}

	started := time.Now()
	response, err := c.service.List(ctx.Context(), filter)
	ctx.Stats().RecordDbCall(time.Since(started))
	if err != nil {
		return err
	}
	return respondJson(ctx, http.StatusOK, response)
}

func (c Transactions) Get(ctx *request.Context) error {
	id := mux.Vars(ctx.Request())["id"]

	started := time.Now()
	response, err := c.service.Get(ctx.Context(), id)
	ctx.Stats().RecordDbCall(time.Since(started))
	if err != nil {
		return mapNotFound(err, "transaction not found")
	}
	return respondJson(ctx, http.StatusOK, response)
}

func (c Transactions) Create(ctx *request.Context) error {
	req := domain.CreateTransactionRequest{}
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

func (c Transactions) Summary(ctx *request.Context) error {
	started := time.Now()
	response, err := c.service.Summary(ctx.Context())
	ctx.Stats().RecordDbCall(time.Since(started))
	if err != nil {
		return err
	}
	return respondJson(ctx, http.StatusOK, response)
}

func (c Transactions) Analyze(ctx *request.Context) error {
	started := time.Now()
	response, err := c.service.Analyze(ctx.Context())
	ctx.Stats().RecordExternalCall(time.Since(started))
	if err != nil {
		return err
	}
	return respondJson(ctx, http.StatusOK, response)
}
