package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/elis333333/Agrokit-Inteligente/config"
	"github.com/elis333333/Agrokit-Inteligente/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	db, err := config.OpenStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { config.CloseStore(db) })
	return db
}

// newTestRouter wires the controllers the same way main does.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	hub := NewHub()
	auth := NewAuthController(db, testSecret)
	sensors := NewSensorController(db, hub)

	r := gin.New()
	r.GET("/api/health", sensors.Health)
	r.POST("/api/auth/register", auth.Register)
	r.POST("/api/auth/login", auth.Login)
	r.POST("/api/sensores", sensors.ReceiveData)
	r.GET("/api/sensores/:id_agrokit", sensors.GetHistory)
	r.GET("/ws", hub.HandleWebSocket)

	protected := r.Group("/api")
	protected.Use(middlewares.AuthMiddleware(testSecret))
	protected.GET("/download/:id_agrokit", sensors.DownloadXLSX)
	protected.GET("/agrokits", sensors.GetAgrokits)

	return r, db, hub
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, secret []byte, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       uint(1),
		"username": "tester",
		"exp":      time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}
