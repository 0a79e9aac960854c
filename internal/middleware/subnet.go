package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"
)

// TrustedSubnetMiddleware пускает к внутренним ручкам только запросы
// из доверенной подсети (по заголовку X-Real-IP). Пустая подсеть
// означает, что внутренние ручки закрыты совсем.
func TrustedSubnetMiddleware(trustedSubnet string, logger *zap.Logger) func(handler http.Handler) http.Handler {
	var subnet *net.IPNet
	if trustedSubnet != "" {
		_, parsed, err := net.ParseCIDR(trustedSubnet)
		if err != nil {
			logger.Error("Некорректная доверенная подсеть", zap.String("subnet", trustedSubnet), zap.Error(err))
		} else {
			subnet = parsed
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if subnet == nil {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			ip := net.ParseIP(r.Header.Get("X-Real-IP"))
			if ip == nil || !subnet.Contains(ip) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
