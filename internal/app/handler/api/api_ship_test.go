package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"ship_catalog/internal/app/catalog"
	"ship_catalog/internal/app/dto"
	"ship_catalog/internal/app/handler/api"
	"ship_catalog/internal/app/repository"
)

// --- MOCK IMAGE STORE ---

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) PutImage(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, name, size, contentType)
	return args.Error(0)
}

func (m *MockImageStore) RemoveImage(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// --- SETUP ---

const year3000 = int64(32503680000000)

func newCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	db, err := repository.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	rep := repository.New(db, nil, "test-key", time.Hour)
	require.NoError(t, rep.Migrate())
	return catalog.NewService(rep)
}

func setupShipRouter(svc api.Catalog, images api.ImageStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &api.ShipHandler{Catalog: svc}
	if images != nil {
		h.Images = images
	}

	rg := r.Group("/rest/ships")
	{
		rg.GET("", h.GetShipsAPI)
		rg.GET("/count", h.CountShipsAPI)
		rg.GET("/:id", h.GetShipAPI)
		rg.POST("", h.CreateShipAPI)
		rg.POST("/:id", h.UpdateShipAPI)
		rg.DELETE("/:id", h.DeleteShipAPI)
		rg.POST("/:id/image", h.AddShipImageAPI)
	}
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func shipBody(name string, speed float64) map[string]any {
	return map[string]any{
		"name":     name,
		"planet":   "Mars",
		"shipType": "TRANSPORT",
		"prodDate": year3000,
		"speed":    speed,
		"crewSize": 100,
	}
}

func decodeShip(t *testing.T, w *httptest.ResponseRecorder) dto.ShipResponse {
	t.Helper()
	var resp dto.ShipResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- TESTS ---

func TestCreateShipAPI(t *testing.T) {
	r := setupShipRouter(newCatalog(t), nil)

	w := doJSON(r, http.MethodPost, "/rest/ships", shipBody("Orion", 0.5))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ship := decodeShip(t, w)
	assert.Equal(t, int64(1), ship.ID)
	assert.Equal(t, year3000, ship.ProdDate)
	assert.False(t, ship.IsUsed)
	assert.Equal(t, 2.0, ship.Rating)

	t.Run("invalid field", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/rest/ships", shipBody("Orion", 1.5))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("unknown ship type", func(t *testing.T) {
		body := shipBody("Orion", 0.5)
		body["shipType"] = "CRUISER"
		w := doJSON(r, http.MethodPost, "/rest/ships", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("missing field", func(t *testing.T) {
		body := shipBody("Orion", 0.5)
		delete(body, "planet")
		w := doJSON(r, http.MethodPost, "/rest/ships", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/rest/ships", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w = doJSON(r, http.MethodGet, "/rest/ships/count", nil)
	assert.Equal(t, "1", w.Body.String())
}

func TestGetShipAPI(t *testing.T) {
	r := setupShipRouter(newCatalog(t), nil)
	doJSON(r, http.MethodPost, "/rest/ships", shipBody("Orion", 0.5))

	tests := []struct {
		path string
		code int
	}{
		{"/rest/ships/1", http.StatusOK},
		{"/rest/ships/2", http.StatusNotFound},
		{"/rest/ships/0", http.StatusBadRequest},
		{"/rest/ships/-3", http.StatusBadRequest},
		{"/rest/ships/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestUpdateShipAPI(t *testing.T) {
	r := setupShipRouter(newCatalog(t), nil)
	doJSON(r, http.MethodPost, "/rest/ships", shipBody("Orion", 0.5))

	w := doJSON(r, http.MethodPost, "/rest/ships/1", map[string]any{"isUsed": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ship := decodeShip(t, w)
	assert.Equal(t, "Orion", ship.Name)
	assert.True(t, ship.IsUsed)
	assert.Equal(t, 1.0, ship.Rating)

	w = doJSON(r, http.MethodPost, "/rest/ships/1", map[string]any{"crewSize": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodGet, "/rest/ships/1", nil)
	assert.Equal(t, 100, decodeShip(t, w).CrewSize)

	w = doJSON(r, http.MethodPost, "/rest/ships/9", map[string]any{"isUsed": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteShipAPI(t *testing.T) {
	r := setupShipRouter(newCatalog(t), nil)
	doJSON(r, http.MethodPost, "/rest/ships", shipBody("Orion", 0.5))

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/rest/ships/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/rest/ships/1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodDelete, "/rest/ships/0", nil).Code)
}

func TestGetShipsAPI(t *testing.T) {
	r := setupShipRouter(newCatalog(t), nil)
	speeds := []float64{0.9, 0.1, 0.5, 0.3, 0.7}
	for i, s := range speeds {
		body := shipBody("Ship", s)
		if i%2 == 0 {
			body["planet"] = "Earth"
		}
		require.Equal(t, http.StatusOK, doJSON(r, http.MethodPost, "/rest/ships", body).Code)
	}

	list := func(query string) []dto.ShipResponse {
		w := doJSON(r, http.MethodGet, "/rest/ships"+query, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out []dto.ShipResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		return out
	}
	ids := func(ships []dto.ShipResponse) []int64 {
		out := make([]int64, 0, len(ships))
		for _, s := range ships {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 2, 3}, ids(list("")), "default page is three ships by id")
	assert.Equal(t, []int64{4, 5}, ids(list("?pageNumber=1")))
	assert.Equal(t, []int64{2, 4, 3, 5, 1}, ids(list("?order=speed&pageSize=10")))
	assert.Equal(t, []int64{1, 3, 5}, ids(list("?planet=Earth&pageSize=10")))
	assert.Equal(t, []int64{3, 4}, ids(list("?minSpeed=0.3&maxSpeed=0.5&order=ID")))
	assert.Empty(t, ids(list("?pageSize=0")))
	assert.Empty(t, ids(list("?pageNumber=5")))

	w := doJSON(r, http.MethodGet, "/rest/ships/count?planet=Earth", nil)
	assert.Equal(t, "3", w.Body.String())

	for _, q := range []string{"?pageSize=-1", "?pageNumber=-1", "?minSpeed=fast", "?isUsed=maybe", "?shipType=CRUISER", "?after=yesterday"} {
		w := doJSON(r, http.MethodGet, "/rest/ships"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func uploadRequest(t *testing.T, path, field string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, "ship.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAddShipImageAPI(t *testing.T) {
	svc := newCatalog(t)
	images := new(MockImageStore)
	r := setupShipRouter(svc, images)
	doJSON(r, http.MethodPost, "/rest/ships", shipBody("Orion", 0.5))

	images.On("PutImage", mock.Anything, mock.AnythingOfType("string"), int64(9), mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/rest/ships/1/image", "file"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var first dto.ImageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, int64(1), first.ShipID)
	assert.Contains(t, first.PhotoURL, ".png")

	// a second upload replaces the first object
	images.On("RemoveImage", mock.Anything, first.PhotoURL).Return(nil).Once()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/rest/ships/1/image", "image"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	ship, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.PhotoURL, ship.PhotoURL)
	images.AssertExpectations(t)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/rest/ships/7/image", "file"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	images.AssertNumberOfCalls(t, "PutImage", 2)
}

func TestAddShipImageAPI_NoStorage(t *testing.T) {
	r := setupShipRouter(newCatalog(t), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/rest/ships/1/image", "file"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
