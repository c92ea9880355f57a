package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harinagireddy-katta/DeKart/internal/http/middleware"
	"github.com/harinagireddy-katta/DeKart/internal/modules/products"
)

func init() { gin.SetMode(gin.TestMode) }

const twoProducts = `{"prods":[{"img":"a.png","des":"D","uname":"U","price":1.5},{"img":"b.png","des":"E","uname":"V","price":3,"tokenId":9}]}`

func bodyLoader(body string) products.Loader {
	return products.LoaderFunc(func(context.Context) ([]products.Product, error) {
		return products.DecodeListing([]byte(body))
	})
}

func newEngine(loader products.Loader) *gin.Engine {
	l := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler(l), middleware.Recovery(l))

	recent := NewRecentHandler(loader, l)
	r.GET("/about", NewAboutHandler().Get)
	r.GET("/recent", recent.List)
	r.GET("/api/recent", recent.List)
	return r
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rec
}

func TestAboutHandler(t *testing.T) {
	rec := get(t, newEngine(bodyLoader(`{}`)), "/about")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 3, strings.Count(body, `class="about-category"`))
	assert.Contains(t, body, "Karthik Kuppili")
	assert.Contains(t, body, "mailto:narrapuneeth44@gmail.com")
	assert.Contains(t, body, "Phone: 7815962448")
}

func TestRecentHTML(t *testing.T) {
	rec := get(t, newEngine(bodyLoader(twoProducts)), "/recent")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, `class="box shadow"`))
	assert.Contains(t, body, `<button class="btn2">1.5 ETH</button>`)
	assert.NotContains(t, body, `class="popup"`)
}

func TestRecentSelectedOpensPanel(t *testing.T) {
	rec := get(t, newEngine(bodyLoader(twoProducts)), "/recent?selected=1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `class="popup"`)
	assert.Contains(t, body, "<h3>V</h3><p>E</p>")
}

func TestRecentJSON(t *testing.T) {
	rec := get(t, newEngine(bodyLoader(twoProducts)), "/api/recent?selected=1")

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		State    string            `json:"state"`
		Cards    []json.RawMessage `json:"cards"`
		Selected json.RawMessage   `json:"selected"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "loaded", got.State)
	assert.Len(t, got.Cards, 2)
	assert.JSONEq(t, `{"index":0,"image":"a.png","description":"D","owner":"U","price":"1.5 ETH"}`, string(got.Cards[0]))
	assert.JSONEq(t, `{"img":"b.png","des":"E","uname":"V","price":3,"tokenId":9}`, string(got.Selected))
}

func TestRecentLoadFailureRendersEmptyGrid(t *testing.T) {
	loader := products.LoaderFunc(func(context.Context) ([]products.Product, error) {
		return nil, errors.New("dial tcp: no route to host")
	})

	rec := get(t, newEngine(loader), "/api/recent")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"failed","cards":[]}`, rec.Body.String())
}

func TestRecentSelectedOutOfRange(t *testing.T) {
	rec := get(t, newEngine(bodyLoader(twoProducts)), "/api/recent?selected=5")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Listing not found.")
}

func TestRecentInvalidQuery(t *testing.T) {
	r := newEngine(bodyLoader(twoProducts))

	rec := get(t, r, "/api/recent?selected=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"selected"`)

	rec = get(t, r, "/api/recent?selected=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecentLoadsOncePerRequest(t *testing.T) {
	var calls atomic.Int32
	loader := products.LoaderFunc(func(context.Context) ([]products.Product, error) {
		calls.Add(1)
		return products.DecodeListing([]byte(twoProducts))
	})
	r := newEngine(loader)

	get(t, r, "/recent?selected=0")
	get(t, r, "/recent")

	assert.Equal(t, int32(2), calls.Load())
}
