package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/players/internal/api"
	"github.com/mcoot/players/internal/api/apierr"
	"github.com/mcoot/players/internal/api/response"
	"github.com/mcoot/players/internal/factory"
	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/storage"
	"github.com/mcoot/players/internal/testutil"
)

// testServer wraps the API router over a seeded in-memory store
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger: testutil.NopLogger(),
		Roster: app.Roster,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func paredes() map[string]any {
	return map[string]any{
		"id":            99,
		"first_name":    "Leandro",
		"middle_name":   "Daniel",
		"last_name":     "Paredes",
		"date_of_birth": "1994-06-29",
		"squad_number":  77,
		"position":      "Defensive Midfield",
		"abbr_position": "DM",
		"team":          "AS Roma",
		"league":        "Serie A",
		"starting11":    false,
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestListPlayers(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/players", "/players/"} {
		rr := ts.request(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rr.Code, path)

		players := decode[[]response.Player](t, rr)
		assert.Len(t, players, 11)
		assert.Equal(t, "Martínez", players[0].LastName)
	}
}

func TestListPlayersEmptyStoreReturnsArray(t *testing.T) {
	app := factory.NewEmptyTestApp()
	router := api.NewRouter(api.RouterConfig{Logger: testutil.NopLogger(), Roster: app.Roster})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/players", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGetPlayerByID(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/players/10", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	player := decode[response.Player](t, rr)
	assert.Equal(t, 10, player.ID)
	assert.Equal(t, "Messi", player.LastName)
	assert.Equal(t, 10, player.SquadNumber)
}

func TestGetPlayerByIDNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/players/99999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestGetPlayerByIDNotAnInteger(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/players/messi", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_REQUEST", decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestGetPlayerBySquadNumber(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/players/squadNumber/9", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Álvarez", decode[response.Player](t, rr).LastName)

	rr = ts.request(http.MethodGet, "/players/squadNumber/99", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetPlayerBySquadNumberMultipleMatches(t *testing.T) {
	ts := newTestServer(t)

	err := ts.app.Storage.Atomically(t.Context(), func(tx storage.Tx) error {
		tx.AddPlayer(&model.Player{ID: 50, FirstName: "Lautaro", LastName: "Martínez", SquadNumber: 9})
		return nil
	})
	require.NoError(t, err)

	rr := ts.request(http.MethodGet, "/players/squadNumber/9", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestCreatePlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/players", paredes())
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/players/99", rr.Header().Get("Location"))

	created := decode[response.Player](t, rr)
	assert.Equal(t, 99, created.ID)

	rr = ts.request(http.MethodGet, "/players/99", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, created, decode[response.Player](t, rr))

	rr = ts.request(http.MethodGet, "/players/squadNumber/77", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 99, decode[response.Player](t, rr).ID)
}

func TestCreatePlayerConflictReturnsExisting(t *testing.T) {
	ts := newTestServer(t)

	body := paredes()
	body["id"] = 10
	rr := ts.request(http.MethodPost, "/players", body)
	require.Equal(t, http.StatusConflict, rr.Code)

	existing := decode[response.Player](t, rr)
	assert.Equal(t, 10, existing.ID)
	assert.Equal(t, "Messi", existing.LastName)

	rr = ts.request(http.MethodGet, "/players/10", nil)
	assert.Equal(t, "Messi", decode[response.Player](t, rr).LastName)
}

func TestCreatePlayerValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		edit func(map[string]any)
	}{
		{"missing id", func(b map[string]any) { delete(b, "id") }},
		{"negative id", func(b map[string]any) { b["id"] = -1 }},
		{"missing first name", func(b map[string]any) { delete(b, "first_name") }},
		{"missing last name", func(b map[string]any) { b["last_name"] = "" }},
		{"missing squad number", func(b map[string]any) { delete(b, "squad_number") }},
		{"wrong type", func(b map[string]any) { b["squad_number"] = "seventy-seven" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := paredes()
			tt.edit(body)
			rr := ts.request(http.MethodPost, "/players", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	rr := ts.request(http.MethodPost, "/players", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodGet, "/players", nil)
	assert.Len(t, decode[[]response.Player](t, rr), 11)
}

func TestUpdatePlayer(t *testing.T) {
	ts := newTestServer(t)

	body := paredes()
	delete(body, "id")
	rr := ts.request(http.MethodPut, "/players/7", body)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = ts.request(http.MethodGet, "/players/7", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[response.Player](t, rr)
	assert.Equal(t, 7, updated.ID)
	assert.Equal(t, "Paredes", updated.LastName)
	assert.Equal(t, 77, updated.SquadNumber)

	rr = ts.request(http.MethodGet, "/players/squadNumber/7", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdatePlayerMatchingBodyID(t *testing.T) {
	ts := newTestServer(t)

	body := paredes()
	body["id"] = 7
	rr := ts.request(http.MethodPut, "/players/7", body)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestUpdatePlayerMismatchedBodyID(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPut, "/players/7", paredes())
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode[apierr.ErrorResponse](t, rr).Error.Message, "does not match")

	rr = ts.request(http.MethodGet, "/players/7", nil)
	assert.Equal(t, "de Paul", decode[response.Player](t, rr).LastName)
}

func TestUpdatePlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	body := paredes()
	delete(body, "id")
	rr := ts.request(http.MethodPut, "/players/99999", body)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodDelete, "/players/1", nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/players/1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.request(http.MethodDelete, "/players/1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSeededScenario(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/players", nil)
	assert.Len(t, decode[[]response.Player](t, rr), 11)

	rr = ts.request(http.MethodGet, "/players/99999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.request(http.MethodPost, "/players", paredes())
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodGet, "/players/squadNumber/77", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 99, decode[response.Player](t, rr).ID)

	rr = ts.request(http.MethodDelete, "/players/99", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/players/99", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestConcurrentUpdateAndDelete(t *testing.T) {
	ts := newTestServer(t)

	body := paredes()
	delete(body, "id")

	var wg sync.WaitGroup
	var updateCode, deleteCode int
	wg.Add(2)
	go func() {
		defer wg.Done()
		updateCode = ts.request(http.MethodPut, "/players/4", body).Code
	}()
	go func() {
		defer wg.Done()
		deleteCode = ts.request(http.MethodDelete, "/players/4", nil).Code
	}()
	wg.Wait()

	assert.Equal(t, http.StatusNoContent, deleteCode)
	assert.Contains(t, []int{http.StatusNoContent, http.StatusNotFound}, updateCode)

	rr := ts.request(http.MethodGet, "/players/4", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = ts.request(http.MethodGet, "/players", nil)
	for _, p := range decode[[]response.Player](t, rr) {
		assert.NotEqual(t, 4, p.ID)
	}
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/players/10", nil)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPatch, "/players/10", strings.Repeat(" ", 1))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
