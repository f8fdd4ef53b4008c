package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// parseListOptions reads optional offset/limit query parameters. A value
// that fails to parse is treated as absent.
func parseListOptions(c echo.Context) usecase.ListOptions {
	var opts usecase.ListOptions
	if raw := c.QueryParam("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			opts.Offset = &n
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			opts.Limit = &n
		}
	}

	return opts
}

// parseIDParam reads a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " format")
	}

	return id, nil
}

type imageView struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

type attributeView struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Value string    `json:"value"`
}

type productView struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	StockQuantity  int             `json:"stock_quantity"`
	IsAvailable    bool            `json:"is_available"`
	CategoryID     uuid.UUID       `json:"category_id"`
	CountryID      uuid.UUID       `json:"country_id"`
	ManufacturerID uuid.UUID       `json:"manufacturer_id"`
	Images         []imageView     `json:"images"`
	Attributes     []attributeView `json:"attributes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toProductView(product *entity.Product) productView {
	images := make([]imageView, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, imageView{ID: img.ID, URL: img.URL})
	}

	attributes := make([]attributeView, 0, len(product.Attributes))
	for _, attr := range product.Attributes {
		attributes = append(attributes, attributeView{ID: attr.ID, Title: attr.Title, Value: attr.Value})
	}

	return productView{
		ID:             product.ID,
		Title:          product.Title,
		Description:    product.Description,
		Price:          product.Price,
		StockQuantity:  product.StockQuantity,
		IsAvailable:    product.IsAvailable,
		CategoryID:     product.CategoryID,
		CountryID:      product.CountryID,
		ManufacturerID: product.ManufacturerID,
		Images:         images,
		Attributes:     attributes,
		CreatedAt:      product.CreatedAt,
	}
}

type createProductRequest struct {
	Title          string          `json:"title" validate:"required,max=255"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" validate:"required"`
	StockQuantity  int             `json:"stock_quantity" validate:"gte=0"`
	IsAvailable    bool            `json:"is_available"`
	CategoryID     uuid.UUID       `json:"category_id" validate:"required"`
	CountryID      uuid.UUID       `json:"country_id" validate:"required"`
	ManufacturerID uuid.UUID       `json:"manufacturer_id" validate:"required"`
	ImageURLs      []string        `json:"image_urls" validate:"dive,url"`
	AttributeIDs   []uuid.UUID     `json:"attribute_ids"`
}

// CreateProduct handles adding a catalog item.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		StockQuantity:  req.StockQuantity,
		IsAvailable:    req.IsAvailable,
		CategoryID:     req.CategoryID,
		CountryID:      req.CountryID,
		ManufacturerID: req.ManufacturerID,
		ImageURLs:      req.ImageURLs,
		AttributeIDs:   req.AttributeIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// GetProduct returns one product with images and attributes.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "")
}

// ListProducts returns the catalog.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context(), parseListOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return response.Success(c, http.StatusOK, views, "")
}

type namedLookupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type categoryView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// namedLookupView renders every name-only lookup kind the same way.
type namedLookupView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type titledLookupRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}

type createAttributeRequest struct {
	Title string `json:"title" validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=255"`
}

// CreateCategory handles adding a product category.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req titledLookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), req.Title)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, categoryView{
		ID:        category.ID,
		Title:     category.Title,
		CreatedAt: category.CreatedAt,
	}, "Category created successfully")
}

// ListCategories returns product categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context(), parseListOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, categoryView{
			ID:        category.ID,
			Title:     category.Title,
			CreatedAt: category.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreateCountry handles adding a country of origin.
func (h *CatalogHandler) CreateCountry(c echo.Context) error {
	var req namedLookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	country, err := h.uc.CreateCountry(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, namedLookupView{
		ID:        country.ID,
		Name:      country.Name,
		CreatedAt: country.CreatedAt,
	}, "Country created successfully")
}

// ListCountries returns countries of origin.
func (h *CatalogHandler) ListCountries(c echo.Context) error {
	countries, err := h.uc.ListCountries(c.Request().Context(), parseListOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]namedLookupView, 0, len(countries))
	for _, country := range countries {
		views = append(views, namedLookupView{
			ID:        country.ID,
			Name:      country.Name,
			CreatedAt: country.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreateManufacturer handles adding a manufacturer.
func (h *CatalogHandler) CreateManufacturer(c echo.Context) error {
	var req namedLookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid manufacturer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	manufacturer, err := h.uc.CreateManufacturer(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, namedLookupView{
		ID:        manufacturer.ID,
		Name:      manufacturer.Name,
		CreatedAt: manufacturer.CreatedAt,
	}, "Manufacturer created successfully")
}

// ListManufacturers returns manufacturers.
func (h *CatalogHandler) ListManufacturers(c echo.Context) error {
	manufacturers, err := h.uc.ListManufacturers(c.Request().Context(), parseListOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]namedLookupView, 0, len(manufacturers))
	for _, manufacturer := range manufacturers {
		views = append(views, namedLookupView{
			ID:        manufacturer.ID,
			Name:      manufacturer.Name,
			CreatedAt: manufacturer.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreateAttribute handles adding a shared product attribute.
func (h *CatalogHandler) CreateAttribute(c echo.Context) error {
	var req createAttributeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attribute input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	attribute, err := h.uc.CreateAttribute(c.Request().Context(), &usecase.CreateAttributeInput{
		Title: req.Title,
		Value: req.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, attributeView{
		ID:    attribute.ID,
		Title: attribute.Title,
		Value: attribute.Value,
	}, "Attribute created successfully")
}

// ListAttributes returns shared product attributes.
func (h *CatalogHandler) ListAttributes(c echo.Context) error {
	attributes, err := h.uc.ListAttributes(c.Request().Context(), parseListOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]attributeView, 0, len(attributes))
	for _, attribute := range attributes {
		views = append(views, attributeView{
			ID:    attribute.ID,
			Title: attribute.Title,
			Value: attribute.Value,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreatePaymentMethod handles adding a payment method.
func (h *CatalogHandler) CreatePaymentMethod(c echo.Context) error {
	var req namedLookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment method input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	method, err := h.uc.CreatePaymentMethod(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, namedLookupView{
		ID:        method.ID,
		Name:      method.Name,
		CreatedAt: method.CreatedAt,
	}, "Payment method created successfully")
}

// ListPaymentMethods returns the ways an order can be paid.
func (h *CatalogHandler) ListPaymentMethods(c echo.Context) error {
	methods, err := h.uc.ListPaymentMethods(c.Request().Context(), parseListOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]namedLookupView, 0, len(methods))
	for _, method := range methods {
		views = append(views, namedLookupView{
			ID:        method.ID,
			Name:      method.Name,
			CreatedAt: method.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreateDeliveryMethod handles adding a delivery method.
func (h *CatalogHandler) CreateDeliveryMethod(c echo.Context) error {
	var req namedLookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery method input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	method, err := h.uc.CreateDeliveryMethod(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, namedLookupView{
		ID:        method.ID,
		Name:      method.Name,
		CreatedAt: method.CreatedAt,
	}, "Delivery method created successfully")
}

// ListDeliveryMethods returns the carriers an order can ship with.
func (h *CatalogHandler) ListDeliveryMethods(c echo.Context) error {
	methods, err := h.uc.ListDeliveryMethods(c.Request().Context(), parseListOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]namedLookupView, 0, len(methods))
	for _, method := range methods {
		views = append(views, namedLookupView{
			ID:        method.ID,
			Name:      method.Name,
			CreatedAt: method.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}
