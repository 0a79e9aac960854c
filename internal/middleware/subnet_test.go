package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/onlyyes/ProposalService/internal/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func subnetHandler(subnet string) http.Handler {
	logger, _ := zap.NewDevelopment()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return middleware.TrustedSubnetMiddleware(subnet, logger)(next)
}

func TestTrustedSubnet_EmptyDeniesAll(t *testing.T) {
	h := subnetHandler("")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTrustedSubnet_Allows(t *testing.T) {
	h := subnetHandler("10.0.0.0/8")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.20.30.40")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTrustedSubnet_DeniesOutside(t *testing.T) {
	h := subnetHandler("10.0.0.0/8")

	cases := []string{"192.168.1.1", "", "not-an-ip"}
	for _, ip := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if ip != "" {
			req.Header.Set("X-Real-IP", ip)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, "ip=%q", ip)
	}
}

func TestTrustedSubnet_BadCIDR(t *testing.T) {
	h := subnetHandler("garbage")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// Некорректная подсеть трактуется как закрытый доступ
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
