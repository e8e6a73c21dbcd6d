package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSessionMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(SessionMiddleware())
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, sessionID(c))
	})

	t.Run("mints a session when no cookie is present", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Body.String())

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "storefront_session", cookies[0].Name)
		assert.Equal(t, w.Body.String(), cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reuses an existing session cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "existing-session"})
		router.ServeHTTP(w, req)

		assert.Equal(t, "existing-session", w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"empty product id", domain.ErrEmptyProductID, http.StatusBadRequest},
		{"invalid price", domain.ErrInvalidItemPrice, http.StatusBadRequest},
		{"out of stock", domain.ErrItemOutOfStock, http.StatusBadRequest},
		{"invalid order amount", domain.ErrInvalidOrderAmount, http.StatusBadRequest},
		{"already placed", domain.ErrOrderAlreadyPlaced, http.StatusConflict},
		{"not pending", domain.ErrOrderNotPending, http.StatusConflict},
		{"invalid coupon", domain.ErrCouponInvalid, http.StatusUnprocessableEntity},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}
