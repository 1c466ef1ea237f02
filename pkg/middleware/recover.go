package middleware

import (
	"net/http"

	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a handler panic into a 500 with the generic error body.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				fields := []zap.Field{
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				}
				if id, ok := utils.GetRequestID(r.Context()); ok {
					fields = append(fields, zap.String("request_id", id))
				}
				logger.Error("Panic recovered", fields...)

				utils.ResponseInternalError(w, "Server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
