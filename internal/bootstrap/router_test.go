package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/events"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/service"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	hub := events.NewHub()
	return BuildRouter(RouterDeps{
		ServiceName:    "profile-directory",
		Version:        "test",
		AllowedOrigins: origins,
		MapZoom:        10,
		RateLimit:      100,
		RateBurst:      100,
		Store:          service.NewStore(service.WithProfiles(service.DefaultProfiles()...), service.WithPublisher(hub)),
		Hub:            hub,
	})
}

func TestBuildRouter_ServesHealthAndDirectory(t *testing.T) {
	r := testRouter(nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/directory/profiles", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Profiles []json.RawMessage `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Len(t, out.Profiles, 2)
}

func TestBuildRouter_SelectionRecentersThroughHub(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := events.NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	r := BuildRouter(RouterDeps{
		Store: service.NewStore(service.WithProfiles(service.DefaultProfiles()...), service.WithPublisher(hub)),
		Hub:   hub,
	})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/directory/selection", strings.NewReader(`{"id":1}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []events.Type
	for len(ch) > 0 {
		got = append(got, (<-ch).Type)
	}
	assert.Equal(t, []events.Type{events.SelectionChanged, events.MapRecenter}, got)
}

func TestBuildRouter_CORS(t *testing.T) {
	r := testRouter([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/directory/view", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("production", "debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewLogger("development", "loud")
	assert.Error(t, err)
}

func TestOpenRedisDisabled(t *testing.T) {
	client, err := OpenRedis(t.Context(), RedisOptions{})
	require.NoError(t, err)
	assert.Nil(t, client)

	_, err = OpenRedis(t.Context(), RedisOptions{URL: "not a url"})
	assert.Error(t, err)
}

func TestOpenRedisHonoursCallDeadlines(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := OpenRedis(t.Context(), RedisOptions{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, client.Options().ContextTimeoutEnabled)
}
