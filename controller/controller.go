package controller

import (
	"net/http"
	"strconv"

	"backoffice-service/domain"
	"backoffice-service/httperrors"
	"backoffice-service/request"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

func respondJson(ctx *request.Context, statusCode int, payload any) error {
	writer := ctx.ResponseWriter()
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	err := json.NewEncoder(writer).Encode(payload)
	if err != nil {
		return errors.WithMessage(err, "encode response body")
	}
	return nil
}

func readJson(ctx *request.Context, value any) error {
	err := json.NewDecoder(ctx.Request().Body).Decode(value)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			"invalid json body",
			errors.WithMessage(err, "decode request body"),
		)
	}
	return nil
}

func mapNotFound(err error, userMessage string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperrors.New(http.StatusNotFound, userMessage, err)
	}
	return err
}

func pageFromQuery(ctx *request.Context) domain.Page {
	query := ctx.Request().URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))
	return domain.Page{
		Limit:  limit,
		Offset: offset,
	}
}
