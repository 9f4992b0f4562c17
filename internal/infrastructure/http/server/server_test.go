package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alchemix/barkeep/internal/application/formula"
	appInventory "github.com/alchemix/barkeep/internal/application/inventory"
	"github.com/alchemix/barkeep/internal/application/mention"
	appRecipe "github.com/alchemix/barkeep/internal/application/recipe"
	"github.com/alchemix/barkeep/internal/infrastructure/config"
	"github.com/alchemix/barkeep/internal/infrastructure/events"
	"github.com/alchemix/barkeep/internal/infrastructure/persistence/memory"
	"github.com/alchemix/barkeep/pkg/healthcheck"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// ServerTestSuite provides a test suite for the HTTP API
type ServerTestSuite struct {
	suite.Suite
	server *Server
	userID uuid.UUID
}

func (suite *ServerTestSuite) SetupTest() {
	logger := zap.NewNop()
	recipeService := appRecipe.NewRecipeService(
		memory.NewRecipeRepository(),
		memory.NewCacheRepository(),
		formula.NewCompiler(nil),
		mention.NewLinker(),
		events.NewDispatcher(logger),
		logger,
	)
	inventoryService := appInventory.NewInventoryService(
		memory.NewInventoryRepository(),
		recipeService,
		formula.DefaultRegistry(),
		logger,
	)

	cfg := &config.Config{
		App:    config.AppConfig{Name: "Barkeep", Version: "test", Environment: "test"},
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8001},
	}

	suite.server = NewServer(cfg, logger, recipeService, inventoryService, healthcheck.NewChecker("test"))
	suite.userID = uuid.New()
}

// do runs a request against the router with the caller identity header set.
func (suite *ServerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", suite.userID.String())

	rec := httptest.NewRecorder()
	suite.server.router.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) createManhattan() uuid.UUID {
	rec := suite.do(http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name": "Manhattan",
		"ingredients": []map[string]interface{}{
			{"name": "Rye Whiskey", "amount": 2, "unit": "oz"},
			{"name": "Sweet Vermouth", "amount": 1, "unit": "oz"},
			{"name": "Angostura Bitters", "amount": 2, "unit": "dash"},
		},
		"steps": []string{"Stir with ice and strain."},
	})
	require.Equal(suite.T(), http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data.ID
}

func (suite *ServerTestSuite) TestHealth() {
	suite.Run("HealthEndpoint_ShouldNotRequireIdentity", func() {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		suite.server.router.ServeHTTP(rec, req)

		assert.Equal(suite.T(), http.StatusOK, rec.Code)

		var report healthcheck.Report
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(suite.T(), healthcheck.StatusHealthy, report.Status)
	})
}

func (suite *ServerTestSuite) TestIdentity() {
	suite.Run("MissingUserHeader_ShouldBeRejected", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
		rec := httptest.NewRecorder()
		suite.server.router.ServeHTTP(rec, req)

		assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	})

	suite.Run("MalformedUserHeader_ShouldBeRejected", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
		req.Header.Set("X-User-ID", "not-a-uuid")
		rec := httptest.NewRecorder()
		suite.server.router.ServeHTTP(rec, req)

		assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	})
}

func (suite *ServerTestSuite) TestRecipeEndpoints() {
	suite.Run("CreateAndGet_ShouldRoundTrip", func() {
		id := suite.createManhattan()

		rec := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s", id), nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "Manhattan")
		assert.Contains(suite.T(), rec.Body.String(), "Ry₂ · Sv · An₂")
	})

	suite.Run("GetFormula_ShouldReturnCompiledString", func() {
		id := suite.createManhattan()

		rec := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s/formula", id), nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Formula string `json:"formula"`
			} `json:"data"`
		}
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(suite.T(), "Ry₂ · Sv · An₂", resp.Data.Formula)
	})

	suite.Run("GetUnknownRecipe_ShouldReturn404", func() {
		rec := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s", uuid.New()), nil)
		assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	})

	suite.Run("InvalidRecipeID_ShouldReturn400", func() {
		rec := suite.do(http.MethodGet, "/api/v1/recipes/not-a-uuid", nil)
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("DeleteRecipe_ShouldRemoveIt", func() {
		id := suite.createManhattan()

		rec := suite.do(http.MethodDelete, fmt.Sprintf("/api/v1/recipes/%s", id), nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)

		rec = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s", id), nil)
		assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	})
}

func (suite *ServerTestSuite) TestAssistantEndpoint() {
	suite.Run("MentionedRecipe_ShouldBeMarked", func() {
		suite.createManhattan()

		rec := suite.do(http.MethodPost, "/api/v1/assistant/link", map[string]interface{}{
			"message": "Tonight, try a Manhattan.",
		})
		assert.Equal(suite.T(), http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Marked string `json:"marked"`
			} `json:"data"`
		}
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(suite.T(), "Tonight, try a ⟪Manhattan⟫.", resp.Data.Marked)
	})
}

func (suite *ServerTestSuite) TestInventoryEndpoints() {
	suite.Run("AddListRemove_ShouldRoundTrip", func() {
		rec := suite.do(http.MethodPost, "/api/v1/bar/items", map[string]interface{}{
			"name":     "Rittenhouse Rye",
			"category": "spirit",
		})
		require.Equal(suite.T(), http.StatusCreated, rec.Code)

		var created struct {
			Data struct {
				ID uuid.UUID `json:"id"`
			} `json:"data"`
		}
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &created))

		rec = suite.do(http.MethodGet, "/api/v1/bar/items", nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "Rittenhouse Rye")

		rec = suite.do(http.MethodDelete, fmt.Sprintf("/api/v1/bar/items/%s", created.Data.ID), nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
	})

	suite.Run("DuplicateItem_ShouldConflict", func() {
		body := map[string]interface{}{"name": "Campari", "category": "liqueur"}

		rec := suite.do(http.MethodPost, "/api/v1/bar/items", body)
		require.Equal(suite.T(), http.StatusCreated, rec.Code)

		rec = suite.do(http.MethodPost, "/api/v1/bar/items", body)
		assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	})
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
