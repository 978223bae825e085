package middleware

import (
	"net/http"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracing abre un segmento de X-Ray por request cuando enabled es true.
// Con enabled=false devuelve el handler sin envolver.
func Tracing(enabled bool, service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return xray.Handler(xray.NewFixedSegmentNamer(service), next)
	}
}
