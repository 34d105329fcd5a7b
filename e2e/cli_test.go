package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/players/internal/api"
	"github.com/mcoot/players/internal/cli"
	"github.com/mcoot/players/internal/factory"
	"github.com/mcoot/players/internal/testutil"
	"github.com/mcoot/players/internal/web"
)

// cliRunner runs the CLI in-process against a server URL
type cliRunner struct {
	serverURL string
}

func newCLIRunner(serverURL string) *cliRunner {
	return &cliRunner{serverURL: serverURL}
}

func (r *cliRunner) runAs(format string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", format,
	}, args...)

	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(fullArgs)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func (r *cliRunner) run(args ...string) (string, error) {
	return r.runAs("json", args...)
}

// startTestServer serves the API and web routers the way cmd/server does
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	app := factory.NewTestApp()
	logger := testutil.NopLogger()

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger: logger,
		Roster: app.Roster,
	})
	webRouter := web.NewRouter(web.RouterConfig{
		Logger: logger,
		Roster: app.Roster,
	})

	mux := http.NewServeMux()
	mux.Handle("/players", apiRouter)
	mux.Handle("/players/", apiRouter)
	mux.Handle("/health", apiRouter)
	mux.Handle("/", webRouter)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func decodeJSON[T any](t *testing.T, output string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(output), &v), "output: %s", output)
	return v
}

type messageResponse struct {
	Message string `json:"message"`
}

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	runner := newCLIRunner(ts.URL)

	output, err := runner.run("health")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, "ok", decodeJSON[cli.HealthResult](t, output).Status)
}

func TestCLI_ListSeededRoster(t *testing.T) {
	ts := startTestServer(t)
	runner := newCLIRunner(ts.URL)

	output, err := runner.run("list")
	require.NoError(t, err, "output: %s", output)

	players := decodeJSON[[]cli.Player](t, output)
	require.Len(t, players, 11)
	assert.Equal(t, 1, players[0].ID)
	assert.Equal(t, "Martínez", players[0].LastName)
}

func TestCLI_GetAndSquad(t *testing.T) {
	ts := startTestServer(t)
	runner := newCLIRunner(ts.URL)

	output, err := runner.run("get", "10")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, "Messi", decodeJSON[cli.Player](t, output).LastName)

	output, err = runner.run("squad", "23")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, 1, decodeJSON[cli.Player](t, output).ID)

	_, err = runner.run("get", "404")
	assert.ErrorIs(t, err, cli.ErrNotFound)

	_, err = runner.run("get", "messi")
	assert.ErrorContains(t, err, "id must be an integer")
}

func TestCLI_CreateUpdateDelete(t *testing.T) {
	ts := startTestServer(t)
	runner := newCLIRunner(ts.URL)

	output, err := runner.run("create",
		"--id", "12", "--first-name", "Leandro", "--middle-name", "Daniel", "--last-name", "Paredes",
		"--squad-number", "5", "--position", "Defensive Midfield", "--abbr-position", "DM",
		"--team", "AS Roma", "--league", "Serie A")
	require.NoError(t, err, "output: %s", output)

	created := decodeJSON[cli.Player](t, output)
	assert.Equal(t, 12, created.ID)
	assert.Equal(t, "Leandro Daniel Paredes", created.FullName())
	assert.False(t, created.Starting11)

	// Creating the same id again reports the existing player
	_, err = runner.run("create", "--id", "12", "--first-name", "X", "--last-name", "Y", "--squad-number", "99")
	var conflict *cli.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Paredes", conflict.Existing.LastName)

	// Update touches only the given fields
	output, err = runner.run("update", "12", "--team", "Boca Juniors", "--league", "Liga Profesional", "--starting11")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, "Player 12 updated", decodeJSON[messageResponse](t, output).Message)

	output, err = runner.run("get", "12")
	require.NoError(t, err, "output: %s", output)
	updated := decodeJSON[cli.Player](t, output)
	assert.Equal(t, "Boca Juniors", updated.Team)
	assert.True(t, updated.Starting11)
	assert.Equal(t, "Leandro", updated.FirstName)
	assert.Equal(t, 5, updated.SquadNumber)

	output, err = runner.run("delete", "12")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, "Player 12 deleted", decodeJSON[messageResponse](t, output).Message)

	_, err = runner.run("delete", "12")
	assert.ErrorIs(t, err, cli.ErrNotFound)

	_, err = runner.run("update", "12", "--team", "Nowhere")
	assert.ErrorIs(t, err, cli.ErrNotFound)
}

func TestCLI_CreateRejectedByServer(t *testing.T) {
	ts := startTestServer(t)
	runner := newCLIRunner(ts.URL)

	_, err := runner.run("create", "--id", "12", "--first-name", "A", "--last-name", "B", "--squad-number", "0")
	assert.ErrorContains(t, err, "INVALID_REQUEST")
}

func TestCLI_TextOutput(t *testing.T) {
	ts := startTestServer(t)
	runner := newCLIRunner(ts.URL)

	output, err := runner.runAs("text", "get", "10")
	require.NoError(t, err)
	assert.Contains(t, output, "Player: Lionel Andrés Messi (10)")
	assert.Contains(t, output, "Squad Number: 10")
	assert.Contains(t, output, "Starting 11: yes")

	output, err = runner.runAs("text", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "Julián Álvarez")

	_, err = runner.runAs("yaml", "list")
	assert.ErrorContains(t, err, "invalid --output")
}

func TestCLI_ChangesShowOnRosterPage(t *testing.T) {
	ts := startTestServer(t)
	runner := newCLIRunner(ts.URL)

	_, err := runner.run("delete", "10")
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 10, doc.Find("#roster tr.player").Length())
	assert.Equal(t, 0, doc.Find(`#roster tr.player[data-id="10"]`).Length())
}
