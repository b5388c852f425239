package destinations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorelinetravel/api-core/pkg/api"
)

func newTestHandlers() *Handlers {
	return NewHandlers(NewCatalog(), zerolog.Nop())
}

func listRequest(rawQuery string) *http.Request {
	target := "/api/destinations"
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return httptest.NewRequest(http.MethodGet, target, nil)
}

// detailRequest builds a request carrying the chi route parameter the
// Get handler reads.
func detailRequest(slug, rawQuery string) *http.Request {
	target := "/api/destinations/" + slug
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("slug", slug)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestList_Defaults(t *testing.T) {
	h := newTestHandlers()

	req := listRequest("")
	resp, err := h.List(req.Context(), req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)

	env := resp.Body.(api.Envelope)
	assert.True(t, env.Success)
	assert.Equal(t, 1, env.Meta["page"])
	assert.Equal(t, 12, env.Meta["perPage"])

	destinations := env.Data.([]Destination)
	assert.LessOrEqual(t, len(destinations), 12)
	assert.Equal(t, len(destinations), env.Meta["total"].(int))
}

func TestList_Pagination(t *testing.T) {
	h := newTestHandlers()

	req := listRequest("page=2&perPage=5")
	resp, err := h.List(req.Context(), req)
	require.NoError(t, err)

	env := resp.Body.(api.Envelope)
	assert.Equal(t, 2, env.Meta["page"])
	assert.Equal(t, 5, env.Meta["perPage"])

	destinations := env.Data.([]Destination)
	assert.LessOrEqual(t, len(destinations), 5)

	total := env.Meta["total"].(int)
	wantPages := (total + 4) / 5
	assert.Equal(t, wantPages, env.Meta["totalPages"])
}

func TestList_PageBeyondEnd(t *testing.T) {
	h := newTestHandlers()

	req := listRequest("page=99&perPage=50")
	resp, err := h.List(req.Context(), req)
	require.NoError(t, err)

	env := resp.Body.(api.Envelope)
	assert.Empty(t, env.Data.([]Destination))
}

func TestList_RegionFilter(t *testing.T) {
	h := newTestHandlers()

	req := listRequest("region=caribbean")
	resp, err := h.List(req.Context(), req)
	require.NoError(t, err)

	env := resp.Body.(api.Envelope)
	destinations := env.Data.([]Destination)
	require.NotEmpty(t, destinations)
	for _, d := range destinations {
		assert.Equal(t, "caribbean", d.Region)
	}
}

func TestList_SearchQuery(t *testing.T) {
	h := newTestHandlers()

	req := listRequest("q=cancun")
	resp, err := h.List(req.Context(), req)
	require.NoError(t, err)

	env := resp.Body.(api.Envelope)
	destinations := env.Data.([]Destination)
	require.Len(t, destinations, 1)
	assert.Equal(t, "Cancun", destinations[0].Name)
}

func TestList_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
	}{
		{name: "zero page", rawQuery: "page=0"},
		{name: "non-numeric page", rawQuery: "page=first"},
		{name: "perPage above limit", rawQuery: "perPage=200"},
		{name: "perPage below limit", rawQuery: "perPage=0"},
	}

	h := newTestHandlers()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := listRequest(tt.rawQuery)
			_, err := h.List(req.Context(), req)
			require.Error(t, err)

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, api.CodeValidationError, apiErr.Code)
		})
	}
}

func TestGet_Found(t *testing.T) {
	h := newTestHandlers()

	req := detailRequest("aruba", "")
	resp, err := h.Get(req.Context(), req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)

	env := resp.Body.(api.Envelope)
	data := env.Data.(map[string]any)
	destination := data["destination"].(Destination)
	assert.Equal(t, "Aruba", destination.Name)
	assert.NotContains(t, data, "relatedDestinations")
}

func TestGet_NotFound(t *testing.T) {
	h := newTestHandlers()

	req := detailRequest("atlantis", "")
	_, err := h.Get(req.Context(), req)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, api.CodeDestinationNotFound, apiErr.Code)
	assert.Contains(t, apiErr.Message, "atlantis")
}

func TestGet_MissingSlug(t *testing.T) {
	h := newTestHandlers()

	req := detailRequest("", "")
	_, err := h.Get(req.Context(), req)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, api.CodeInvalidParameters, apiErr.Code)
}

func TestGet_IncludeRelated(t *testing.T) {
	h := newTestHandlers()

	req := detailRequest("cancun-mexico", "includeRelated=true&relatedLimit=2")
	resp, err := h.Get(req.Context(), req)
	require.NoError(t, err)

	env := resp.Body.(api.Envelope)
	data := env.Data.(map[string]any)
	related := data["relatedDestinations"].([]Destination)
	assert.LessOrEqual(t, len(related), 2)
	for _, d := range related {
		assert.Equal(t, "caribbean", d.Region)
	}
}

func TestFeatured(t *testing.T) {
	h := newTestHandlers()

	req := listRequest("")
	resp, err := h.Featured(req.Context(), req)
	require.NoError(t, err)

	env := resp.Body.(api.Envelope)
	destinations := env.Data.([]Destination)
	assert.LessOrEqual(t, len(destinations), defaultFeaturedMax)
	for _, d := range destinations {
		assert.True(t, d.Featured)
	}
	assert.Equal(t, len(destinations), env.Meta["total"].(int))
}

func TestFeatured_LimitValidation(t *testing.T) {
	h := newTestHandlers()

	req := listRequest("limit=50")
	_, err := h.Featured(req.Context(), req)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.CodeValidationError, apiErr.Code)
	assert.Contains(t, apiErr.Message, "limit")
}

func TestFeatured_CustomLimit(t *testing.T) {
	h := newTestHandlers()

	req := listRequest("limit=3")
	resp, err := h.Featured(req.Context(), req)
	require.NoError(t, err)

	env := resp.Body.(api.Envelope)
	assert.LessOrEqual(t, len(env.Data.([]Destination)), 3)
}
