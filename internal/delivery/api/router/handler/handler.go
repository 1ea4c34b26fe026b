// Package handler implements the API endpoints on top of the usecases.
package handler

import (
	"context"
	"strconv"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrUnprocessable.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrUnprocessable.WithDetails(err.Error())
	}

	return nil
}

// requiredUUID reads a uuid from a path or query value.
func requiredUUID(name, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, domainerrors.ErrUnprocessable.WithDetails(name + " is required")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrUnprocessable.WithDetails(name + " must be a uuid")
	}

	return id, nil
}

// optionalUUID accepts an empty value as uuid.Nil.
func optionalUUID(name, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}

	return requiredUUID(name, raw)
}

// pageParam reads ?page=, defaulting to the first page.
func pageParam(c echo.Context) (int, error) {
	raw := c.QueryParam("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, domainerrors.ErrUnprocessable.WithDetails("page must be a positive integer")
	}

	return page, nil
}

type userAction func(ctx context.Context, id uuid.UUID) (*entity.User, error)
