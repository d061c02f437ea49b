package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalbilling/internal/observability"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, secret []byte, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString(secret)
	require.NoError(t, err)
	return raw
}

func TestIdentify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		header         string
		cookie         string
		expectedStatus int
		expectedUser   string
	}{
		{
			name:           "anonymous",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bearer_token",
			header:         "Bearer " + signedToken(t, testSecret, "user-1"),
			expectedStatus: http.StatusOK,
			expectedUser:   "user-1",
		},
		{
			name:           "cookie_token",
			cookie:         signedToken(t, testSecret, "user-2"),
			expectedStatus: http.StatusOK,
			expectedUser:   "user-2",
		},
		{
			name:           "wrong_secret",
			header:         "Bearer " + signedToken(t, []byte("other"), "user-1"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed_header",
			header:         "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			r := gin.New()
			r.GET("/", Identify(testSecret), func(c *gin.Context) {
				seen = c.GetString(observability.UserIDKey)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Equal(t, tc.expectedUser, seen)
		})
	}
}
