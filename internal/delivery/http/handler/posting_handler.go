package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"
)

type PostingHandler struct {
	search *usecase.SearchUsecase
}

func NewPostingHandler(search *usecase.SearchUsecase) *PostingHandler {
	return &PostingHandler{search: search}
}

func (h *PostingHandler) HandleSearch(c fiber.Ctx) error {
	params := usecase.SearchParams{
		Query:  c.Query("q"),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}

	items, err := h.search.Search(c.Context(), params)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "search failed", err)
	}

	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	body := dto.SearchResponse{
		Query:    params.Query,
		Limit:    limit,
		Offset:   params.Offset,
		Count:    len(items),
		Postings: dto.FromPostings(items),
	}
	return response.Success(c, fiber.StatusOK, "search results", body)
}

func (h *PostingHandler) HandleGet(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid posting id", err)
	}

	p, err := h.search.Get(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
		case errors.Is(err, usecase.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "posting not found", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "fetch failed", err)
		}
	}
	return response.Success(c, fiber.StatusOK, "posting", dto.FromPosting(p))
}

func (h *PostingHandler) HandleDelete(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid posting id", err)
	}

	if err := h.search.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
		case errors.Is(err, usecase.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "posting not found", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "delete failed", err)
		}
	}
	return response.Success(c, fiber.StatusOK, "posting deleted", fiber.Map{"id": id})
}

func pathID(c fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
