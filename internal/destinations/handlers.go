package destinations

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/shorelinetravel/api-core/pkg/api"
	"github.com/shorelinetravel/api-core/pkg/query"
)

const (
	defaultPerPage      = 12
	defaultFeaturedMax  = 6
	defaultRelatedLimit = 4
)

// Handlers serves the destination endpoints.
type Handlers struct {
	catalog *Catalog
	logger  zerolog.Logger
}

// NewHandlers creates destination handlers over catalog.
func NewHandlers(catalog *Catalog, logger zerolog.Logger) *Handlers {
	return &Handlers{
		catalog: catalog,
		logger:  logger,
	}
}

var listSchema = query.Schema{
	"page": {
		Type:    query.Number,
		Default: float64(1),
		Validate: func(v any) bool {
			return v.(float64) >= 1
		},
	},
	"perPage": {
		Type:    query.Number,
		Default: float64(defaultPerPage),
		Validate: func(v any) bool {
			n := v.(float64)
			return n >= 1 && n <= 100
		},
	},
	"region":   {Type: query.String},
	"q":        {Type: query.String},
	"featured": {Type: query.Boolean},
	"types":    {Type: query.Array},
}

// List handles GET /api/destinations with filtering and pagination.
func (h *Handlers) List(ctx context.Context, r *http.Request) (*api.Response, error) {
	params, err := query.Parse(r.URL.Query(), listSchema)
	if err != nil {
		return nil, validationError(err)
	}

	filter := Filter{
		Region: params.String("region"),
		Query:  params.String("q"),
		Types:  params.Strings("types"),
	}
	if params.Has("featured") {
		filter.Featured = params.Bool("featured")
		filter.FeaturedSet = true
	}

	matched := h.catalog.List(filter)

	page := params.Int("page")
	perPage := params.Int("perPage")
	total := len(matched)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return api.Success(matched[start:end], map[string]any{
		"total":      total,
		"page":       page,
		"perPage":    perPage,
		"totalPages": totalPages,
	}), nil
}

var detailSchema = query.Schema{
	"includeRelated": {Type: query.Boolean},
	"relatedLimit": {
		Type:    query.Number,
		Default: float64(defaultRelatedLimit),
		Validate: func(v any) bool {
			n := v.(float64)
			return n >= 1 && n <= 12
		},
	},
}

// Get handles GET /api/destinations/{slug}.
func (h *Handlers) Get(ctx context.Context, r *http.Request) (*api.Response, error) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		return nil, api.NewError(http.StatusBadRequest, api.CodeInvalidParameters, "Destination slug is required")
	}

	params, err := query.Parse(r.URL.Query(), detailSchema)
	if err != nil {
		return nil, validationError(err)
	}

	destination, ok := h.catalog.Get(slug)
	if !ok {
		return nil, api.NewError(http.StatusNotFound, api.CodeDestinationNotFound,
			fmt.Sprintf("Destination not found: %s", slug))
	}

	data := map[string]any{
		"destination": destination,
	}
	if params.Bool("includeRelated") {
		data["relatedDestinations"] = h.catalog.Related(slug, params.Int("relatedLimit"))
	}

	return api.Success(data, nil), nil
}

var featuredSchema = query.Schema{
	"limit": {
		Type:    query.Number,
		Default: float64(defaultFeaturedMax),
		Validate: func(v any) bool {
			n := v.(float64)
			return n >= 1 && n <= 20
		},
	},
}

// Featured handles GET /api/destinations/featured.
func (h *Handlers) Featured(ctx context.Context, r *http.Request) (*api.Response, error) {
	params, err := query.Parse(r.URL.Query(), featuredSchema)
	if err != nil {
		return nil, validationError(err)
	}

	featured := h.catalog.Featured(params.Int("limit"))

	return api.Success(featured, map[string]any{
		"total": len(featured),
	}), nil
}

// validationError maps a query parse failure to a 400 with the
// VALIDATION_ERROR code, keeping the validator's field-naming message.
func validationError(err error) *api.Error {
	return api.NewError(http.StatusBadRequest, api.CodeValidationError, err.Error())
}
