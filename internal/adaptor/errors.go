package adaptor

import (
	"net/http"

	"salon-booking/pkg/apperror"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// errorWriter turns usecase errors into JSON error bodies.
type errorWriter struct {
	debug bool
	log   *zap.Logger
}

func newErrorWriter(debug bool, log *zap.Logger) *errorWriter {
	return &errorWriter{debug: debug, log: log}
}

func (e *errorWriter) write(w http.ResponseWriter, r *http.Request, err error, operation string) {
	appErr := apperror.From(err)

	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("kind", string(appErr.Kind)),
	}
	if id, ok := utils.GetRequestID(r.Context()); ok {
		fields = append(fields, zap.String("request_id", id))
	}

	if appErr.Status >= http.StatusInternalServerError {
		e.log.Error("Failed to "+operation, fields...)
	} else {
		e.log.Warn(operation+" failed", fields...)
	}

	body := utils.ErrorResponse{
		Message:   appErr.Message,
		Retryable: appErr.Retryable(),
	}
	if len(appErr.Fields) > 0 {
		body.Errors = appErr.Fields
	}
	if e.debug && appErr.Err != nil {
		body.Error = appErr.Err.Error()
	}

	utils.ResponseError(w, appErr.Status, body)
}
