package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filedepot/auth"
	"filedepot/models"
)

var testSecret = []byte("test-secret")

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(testSecret), func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := protectedRouter()

	validToken, err := auth.Issue(&models.User{ID: 1, Email: "a@b.com"}, testSecret, time.Hour)
	require.NoError(t, err)

	expiredToken, err := auth.Issue(&models.User{ID: 1, Email: "a@b.com"}, testSecret, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusBadRequest},
		{"not a bearer header", "Basic dXNlcjpwYXNz", http.StatusBadRequest},
		{"bearer without token", "Bearer", http.StatusBadRequest},
		{"bearer with empty token", "Bearer ", http.StatusBadRequest},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + validToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "a@b.com")
			} else {
				assert.Contains(t, w.Body.String(), "error")
			}
		})
	}
}
