package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"strconv"
	"strings"

	"shop/config"
	"shop/internal/delivery/api/response"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"
	"shop/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMaxImageSize = 5 << 20

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	ProductUC  usecase.ProductUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// CatalogHandler serves the /store category and product routes.
type CatalogHandler struct {
	categoryUC   usecase.CategoryUsecase
	productUC    usecase.ProductUsecase
	maxImageSize int64
	logger       *slog.Logger
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	maxImageSize := int64(defaultMaxImageSize)
	if params.Config.Storage != nil && params.Config.Storage.MaxImageSize > 0 {
		maxImageSize = params.Config.Storage.MaxImageSize
	}

	return &CatalogHandler{
		categoryUC:   params.CategoryUC,
		productUC:    params.ProductUC,
		maxImageSize: maxImageSize,
		logger:       params.Logger,
	}
}

type CreateCategoryRequest struct {
	Title string `json:"title" validate:"required,min=2,max=30"`
}

// CreateProductRequest is the non-file part of the multipart product form.
type CreateProductRequest struct {
	Title       string `form:"title" validate:"required,min=2,max=30"`
	Description string `form:"description" validate:"max=300"`
	Price       string `form:"price" validate:"required"`
	Discount    string `form:"discount"`
	CategoryID  string `form:"category_id" validate:"required"`
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, categories)
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := requiredUUID("id", c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, category)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.Create(c.Request().Context(), req.Title)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := requiredUUID("id", c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.Delete(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, category)
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.List(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := requiredUUID("id", c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// CreateProduct accepts multipart/form-data with an "image" file part.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.AppError(c, domainerrors.ErrUnprocessable.WithDetails("image file is required"))
	}
	if fileHeader.Size > h.maxImageSize {
		return response.AppError(c, domainerrors.ErrImageTooLarge.WithDetails("limit is "+util.FormatBytes(h.maxImageSize)))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeQuietly(file, h.logger)

	input.ImageName = fileHeader.Filename
	input.ImageContentType = fileHeader.Header.Get(echo.HeaderContentType)
	input.Image = io.LimitReader(file, h.maxImageSize)

	product, err := h.productUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := requiredUUID("id", c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Delete(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

func (r *CreateProductRequest) toInput() (*usecase.CreateProductInput, error) {
	categoryID, err := requiredUUID("category_id", r.CategoryID)
	if err != nil {
		return nil, err
	}

	input := &usecase.CreateProductInput{
		Title:      strings.TrimSpace(r.Title),
		Price:      r.Price,
		CategoryID: categoryID,
	}
	if desc := strings.TrimSpace(r.Description); desc != "" {
		input.Description = &desc
	}
	if r.Discount != "" {
		discount, err := strconv.Atoi(r.Discount)
		if err != nil {
			return nil, domainerrors.ErrUnprocessable.WithDetails("discount must be an integer")
		}
		input.Discount = &discount
	}

	return input, nil
}

func closeQuietly(f multipart.File, logger *slog.Logger) {
	if err := f.Close(); err != nil {
		logger.Warn("Failed to close uploaded file", slog.Any("error", err))
	}
}
