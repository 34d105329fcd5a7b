package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/players/internal/factory"
	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/testutil"
	"github.com/mcoot/players/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newWebTestServer(t *testing.T, app *factory.TestApp) *webTestServer {
	t.Helper()

	router := web.NewRouter(web.RouterConfig{
		Logger: testutil.NopLogger(),
		Roster: app.Roster,
	})

	return &webTestServer{
		handler: router,
		app:     app,
	}
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

// parseHTML parses the response body as HTML
func parseHTML(t *testing.T, r io.Reader) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(r)
	require.NoError(t, err)
	return doc
}

func TestRosterListsPlayersBySquadNumber(t *testing.T) {
	ts := newWebTestServer(t, factory.NewTestApp())

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	doc := parseHTML(t, rr.Body)
	assert.Equal(t, "Roster | Players", doc.Find("title").Text())

	rows := doc.Find("#roster tr.player")
	require.Equal(t, 11, rows.Length())
	assert.Equal(t, "3", strings.TrimSpace(rows.First().Find(".squad-number").Text()))
	assert.Equal(t, "26", strings.TrimSpace(rows.Last().Find(".squad-number").Text()))

	messi := doc.Find(`#roster tr.player[data-id="10"]`)
	assert.Equal(t, "Lionel Andrés Messi", messi.Find(".name").Text())
	href, ok := messi.Find(".name a").Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "/roster/10", href)
}

func TestRosterEmpty(t *testing.T) {
	ts := newWebTestServer(t, factory.NewEmptyTestApp())

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(t, rr.Body)
	assert.Equal(t, 0, doc.Find("#roster").Length())
	assert.Equal(t, "No players yet.", doc.Find(".empty").Text())
}

func TestRosterEscapesNames(t *testing.T) {
	app := factory.NewEmptyTestApp()
	require.NoError(t, app.Roster.Create(t.Context(), &model.Player{
		ID: 1, FirstName: "<script>", LastName: "Tag", SquadNumber: 1,
	}))
	ts := newWebTestServer(t, app)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "<script>")
	assert.Equal(t, "<script> Tag", parseHTML(t, rr.Body).Find(".name").Text())
}

func TestPlayerPage(t *testing.T) {
	ts := newWebTestServer(t, factory.NewTestApp())

	rr := ts.get("/roster/11")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(t, rr.Body)
	assert.Equal(t, "Julián Álvarez", doc.Find("h1.name").Text())
	assert.Equal(t, "9", doc.Find("#player .squad-number").Text())
	assert.Equal(t, "Manchester City", doc.Find("#player .team").Text())
	assert.Equal(t, "Starting eleven", doc.Find("#player .lineup").Text())
}

func TestPlayerPageNotFound(t *testing.T) {
	ts := newWebTestServer(t, factory.NewTestApp())

	assert.Equal(t, http.StatusNotFound, ts.get("/roster/99999").Code)
	assert.Equal(t, http.StatusNotFound, ts.get("/roster/messi").Code)
}
