// Package integration provides end-to-end tests for the movie catalog API.
// Every flow runs against SQLite; PostgreSQL and MySQL run when TEST_POSTGRES_DSN
// and TEST_MYSQL_DSN are set.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/moviecatalog/cmd/app/commands"
	"github.com/allisson/moviecatalog/internal/app"
	"github.com/allisson/moviecatalog/internal/config"
	"github.com/allisson/moviecatalog/internal/testutil"
)

const adminPassword = "admin-password"

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container  *app.Container
	server     *httptest.Server
	adminToken string
	dbDriver   string
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

var drivers = []struct {
	name     string
	dbDriver string
}{
	{"SQLite", "sqlite3"},
	{"PostgreSQL", "postgres"},
	{"MySQL", "mysql"},
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body any,
	token string,
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// login exchanges credentials for a token pair and fails the test otherwise.
func (ctx *integrationTestContext) login(t *testing.T, username, password string) tokenPair {
	t.Helper()

	resp, body := ctx.makeRequest(t, http.MethodPost, "/auth",
		map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var pair tokenPair
	require.NoError(t, json.Unmarshal(body, &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}

// create posts body and returns the id from the Location header.
func (ctx *integrationTestContext) create(t *testing.T, path string, body any, token string) int64 {
	t.Helper()

	resp, respBody := ctx.makeRequest(t, http.MethodPost, path, body, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(respBody))

	location := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(location, path+"/"), location)

	id, err := strconv.ParseInt(strings.TrimPrefix(location, path+"/"), 10, 64)
	require.NoError(t, err)
	return id
}

// setupIntegrationTest migrates a database for dbDriver, builds the container
// and seeds an admin account through the create-admin command.
func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var dsn string
	switch dbDriver {
	case "postgres":
		db := testutil.SetupPostgresDB(t)
		testutil.TeardownDB(t, db)
		dsn = testutil.GetPostgresTestDSN()
	case "mysql":
		db := testutil.SetupMySQLDB(t)
		testutil.TeardownDB(t, db)
		dsn = testutil.GetMySQLTestDSN()
	default:
		dsn = "file:" + filepath.Join(t.TempDir(), "movies.db") + "?_foreign_keys=on"
		migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "migrations"))
		require.NoError(t, err)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		require.NoError(t, commands.RunMigrations(logger, dbDriver, dsn, migrationsDir))
	}

	cfg := &config.Config{
		DBDriver:               dbDriver,
		DBConnectionString:     dsn,
		DBMaxOpenConnections:   10,
		DBMaxIdleConnections:   5,
		DBConnMaxLifetime:      time.Hour,
		ServerHost:             "localhost",
		ServerPort:             8080,
		LogLevel:               "error",
		AuthSecret:             "integration-secret",
		AuthPasswordSalt:       "integration-salt",
		AuthPasswordIterations: 100000,
		AuthAccessTokenTTL:     30 * time.Minute,
		AuthRefreshTokenTTL:    130 * 24 * time.Hour,
		MetricsNamespace:       "moviecatalog",
	}

	container := app.NewContainer(cfg)

	users, err := container.UserUseCase()
	require.NoError(t, err, "failed to get user use case")
	err = commands.RunCreateAdmin(
		context.Background(),
		users,
		container.Logger(),
		"root",
		adminPassword,
		"text",
		commands.IOTuple{Writer: io.Discard},
	)
	require.NoError(t, err, "failed to seed admin")

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")

	ctx := &integrationTestContext{
		container: container,
		server:    httptest.NewServer(httpSrv.GetHandler()),
		dbDriver:  dbDriver,
	}
	ctx.adminToken = ctx.login(t, "root", adminPassword).AccessToken

	return ctx
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}

	if ctx.container != nil {
		if err := ctx.container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}
}

func TestIntegration_Health(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil, "")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"status":"healthy"}`, string(body))

			resp, body = ctx.makeRequest(t, http.MethodGet, "/ready", nil, "")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"status":"ready","components":{"database":"ok"}}`, string(body))
		})
	}
}

func TestIntegration_Users_CompleteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			var aliceID, bobID int64
			var alice tokenPair

			t.Run("01_Register", func(t *testing.T) {
				aliceID = ctx.create(t, "/users", map[string]string{"username": "alice", "password": "pw-alice"}, "")
				bobID = ctx.create(t, "/users",
					map[string]string{"username": "bob", "password": "pw-bob", "role": "user"}, "")

				resp, body := ctx.makeRequest(t, http.MethodPost, "/users",
					map[string]string{"username": "alice", "password": "other"}, "")
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.Contains(t, string(body), "user already exists")
			})

			t.Run("02_RegisterAdminNeedsAdminToken", func(t *testing.T) {
				eve := map[string]string{"username": "eve", "password": "pw", "role": "admin"}

				resp, _ := ctx.makeRequest(t, http.MethodPost, "/users", eve, "")
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

				alice = ctx.login(t, "alice", "pw-alice")
				resp, _ = ctx.makeRequest(t, http.MethodPost, "/users", eve, alice.AccessToken)
				assert.Equal(t, http.StatusForbidden, resp.StatusCode)

				ctx.create(t, "/users", eve, ctx.adminToken)
			})

			t.Run("03_LoginFailures", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/auth",
					map[string]string{"username": "ghost", "password": "x"}, "")
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Contains(t, string(body), "user is not registered")

				resp, body = ctx.makeRequest(t, http.MethodPost, "/auth",
					map[string]string{"username": "alice", "password": "wrong"}, "")
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Contains(t, string(body), "wrong password")

				resp, _ = ctx.makeRequest(t, http.MethodPost, "/auth", map[string]string{"username": "alice"}, "")
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			})

			t.Run("04_Refresh", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPut, "/auth",
					map[string]string{"refresh_token": alice.RefreshToken}, "")
				require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

				resp, _ = ctx.makeRequest(t, http.MethodPut, "/auth",
					map[string]string{"refresh_token": "garbage"}, "")
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			})

			t.Run("05_SelfOrAdmin", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, fmt.Sprintf("/users/%d", aliceID), nil, alice.AccessToken)
				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"username":"alice","role":"user"}`, aliceID), string(body))

				resp, _ = ctx.makeRequest(t, http.MethodGet, fmt.Sprintf("/users/%d", bobID), nil, alice.AccessToken)
				assert.Equal(t, http.StatusForbidden, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodGet, "/users/999999", nil, alice.AccessToken)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodGet, fmt.Sprintf("/users/%d", bobID), nil, ctx.adminToken)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			})

			t.Run("06_Update", func(t *testing.T) {
				path := fmt.Sprintf("/users/%d", aliceID)

				resp, _ := ctx.makeRequest(t, http.MethodPut, path, map[string]string{"role": "admin"}, alice.AccessToken)
				assert.Equal(t, http.StatusForbidden, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodPut, path, map[string]string{"username": "bob"}, alice.AccessToken)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodPut, path, map[string]string{}, alice.AccessToken)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodPut, path, map[string]string{"password": "pw-new"}, alice.AccessToken)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)
				ctx.login(t, "alice", "pw-new")
			})

			t.Run("07_ListIsAdminOnly", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodGet, "/users", nil, alice.AccessToken)
				assert.Equal(t, http.StatusForbidden, resp.StatusCode)

				resp, body := ctx.makeRequest(t, http.MethodGet, "/users", nil, ctx.adminToken)
				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.NotContains(t, string(body), "password")

				var listed []map[string]any
				require.NoError(t, json.Unmarshal(body, &listed))
				assert.Len(t, listed, 4)
			})

			t.Run("08_DeleteSelf", func(t *testing.T) {
				path := fmt.Sprintf("/users/%d", bobID)
				bob := ctx.login(t, "bob", "pw-bob")

				resp, _ := ctx.makeRequest(t, http.MethodDelete, path, nil, bob.AccessToken)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodPut, "/auth", map[string]string{"refresh_token": bob.RefreshToken}, "")
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			})
		})
	}
}

func TestIntegration_Catalog_CompleteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			ctx.create(t, "/users", map[string]string{"username": "viewer", "password": "pw"}, "")
			viewer := ctx.login(t, "viewer", "pw").AccessToken
			admin := ctx.adminToken

			var directorID, genreID, movieID int64

			t.Run("01_EmptyListsAre404", func(t *testing.T) {
				for _, path := range []string{"/directors", "/genres", "/movies"} {
					resp, _ := ctx.makeRequest(t, http.MethodGet, path, nil, admin)
					assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
				}
			})

			t.Run("02_Create", func(t *testing.T) {
				directorID = ctx.create(t, "/directors", map[string]string{"name": "Ridley Scott"}, admin)
				genreID = ctx.create(t, "/genres", map[string]string{"name": "Sci-Fi"}, admin)
				movieID = ctx.create(t, "/movies", map[string]any{
					"title":       "Alien",
					"description": "In space no one can hear you scream",
					"year":        1979,
					"rating":      8.5,
					"director_id": directorID,
					"genre_id":    genreID,
				}, admin)

				resp, _ := ctx.makeRequest(t, http.MethodPost, "/directors", map[string]string{"name": "X"}, viewer)
				assert.Equal(t, http.StatusForbidden, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodPost, "/genres", map[string]string{}, admin)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodPost, "/movies",
					map[string]any{"title": "Ghost", "director_id": 999999}, admin)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			})

			t.Run("03_Read", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, fmt.Sprintf("/movies/%d", movieID), nil, viewer)
				require.Equal(t, http.StatusOK, resp.StatusCode)

				var movie map[string]any
				require.NoError(t, json.Unmarshal(body, &movie))
				assert.Equal(t, "Alien", movie["title"])
				assert.Equal(t, float64(directorID), movie["director_id"])

				resp, _ = ctx.makeRequest(t, http.MethodGet, "/movies", nil, viewer)
				assert.Equal(t, http.StatusForbidden, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodGet, "/movies/abc", nil, viewer)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodGet, "/genres/999999", nil, viewer)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			})

			t.Run("04_Filters", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodGet, fmt.Sprintf("/movies?director_id=%d&year=2000", directorID), nil, admin)
				assert.Equal(t, http.StatusOK, resp.StatusCode, "director_id wins over year")

				resp, _ = ctx.makeRequest(t, http.MethodGet, "/movies?year=2000", nil, admin)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodGet, "/movies?genre_id=abc", nil, admin)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			})

			t.Run("05_Update", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodPut, fmt.Sprintf("/directors/%d", directorID),
					map[string]string{"name": "Sir Ridley Scott"}, admin)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)

				resp, body := ctx.makeRequest(t, http.MethodGet, fmt.Sprintf("/directors/%d", directorID), nil, viewer)
				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Contains(t, string(body), "Sir Ridley Scott")

				resp, _ = ctx.makeRequest(t, http.MethodPut, fmt.Sprintf("/movies/%d", movieID),
					map[string]any{"title": "Alien", "genre_id": 999999}, admin)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			})

			t.Run("06_DeleteDirectorKeepsMovie", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodDelete, fmt.Sprintf("/directors/%d", directorID), nil, admin)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)

				resp, body := ctx.makeRequest(t, http.MethodGet, fmt.Sprintf("/movies/%d", movieID), nil, viewer)
				require.Equal(t, http.StatusOK, resp.StatusCode)

				var movie map[string]any
				require.NoError(t, json.Unmarshal(body, &movie))
				assert.Nil(t, movie["director_id"])
			})

			t.Run("07_DeleteMovie", func(t *testing.T) {
				path := fmt.Sprintf("/movies/%d", movieID)

				resp, _ := ctx.makeRequest(t, http.MethodDelete, path, nil, viewer)
				assert.Equal(t, http.StatusForbidden, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodDelete, path, nil, admin)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodDelete, path, nil, admin)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			})
		})
	}
}
