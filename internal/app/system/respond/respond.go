// Package respond is the single place request outcomes are serialized.
// Handlers never build error payloads themselves; they hand the failure to
// one of these helpers so every route answers with the same shapes:
//
//	401 {"message":"unauthorized access","code":401}
//	403 {"message":"forbidden access","code":403}
//	400 {"message":<reason>,"code":400}
//	200 {"error":true,"message":<detail>}   (database / provider failures)
//
// The 200-with-error-flag shape for dependency failures is a compatibility
// contract with existing clients; it is preserved here deliberately and
// kept in exactly one function so a future status-code migration is a
// one-line change.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// StatusError is the body for authentication, authorization, and
// validation failures.
type StatusError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DependencyFailure is the payload-level error flag used when a backing
// service (Mongo, Stripe) fails.
type DependencyFailure struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Unauthorized writes the 401 body used for any missing, malformed,
// expired, or revoked token. All failure modes share one message so the
// response does not reveal which check failed.
func Unauthorized(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, StatusError{Message: "unauthorized access", Code: http.StatusUnauthorized})
}

// Forbidden writes the 403 body used when a valid identity lacks the
// required role or is acting on another identity's resource.
func Forbidden(w http.ResponseWriter) {
	JSON(w, http.StatusForbidden, StatusError{Message: "forbidden access", Code: http.StatusForbidden})
}

// Invalid writes a 400 with the given reason.
func Invalid(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, StatusError{Message: msg, Code: http.StatusBadRequest})
}

// Dependency logs err and writes the payload-level error flag with a 200
// transport status. See the package comment before changing the status.
func Dependency(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	if log != nil {
		log.Error("dependency failure", zap.String("op", op), zap.Error(err))
	}
	JSON(w, http.StatusOK, DependencyFailure{Error: true, Message: err.Error()})
}
