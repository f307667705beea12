package controller

import (
	"net/http"
	"time"

	"backoffice-service/domain"
	"backoffice-service/request"
	"backoffice-service/service"

	"github.com/gorilla/mux"
)

type SystemLogs struct {
	service service.SystemLog
}

func NewSystemLogs(service service.SystemLog) SystemLogs {
	return SystemLogs{
		service: service,
	}
}

func (c SystemLogs) List(ctx *request.Context) error {
	query := ctx.Request().URL.Query()
	filter := domain.SystemLogFilter{
		Level:     query.Get("level"),
		EventType: query.Get("event_type"),
		Page:      pageFromQuery(ctx),
	}

	started := time.Now()
	response, err := c.service.List(ctx.Context(), filter)
	ctx.Stats().RecordDbCall(time.Since(started))
	if err != nil {
		return err
	}
	return respondJson(ctx, http.StatusOK, response)
}

func (c SystemLogs) Get(ctx *request.Context) error {
	id := mux.Vars(ctx.Request())["id"]

	started := time.Now()
	response, err := c.service.Get(ctx.Context(), id)
	ctx.Stats().RecordDbCall(time.Since(started))
	if err != nil {
		return mapNotFound(err, "system log not found")
	}
	return respondJson(ctx, http.StatusOK, response)
}

func (c SystemLogs) Create(ctx *request.Context) error {
	req := domain.CreateSystemLogRequest{}
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
