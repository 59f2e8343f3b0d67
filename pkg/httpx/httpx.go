// Package httpx holds the HTTP plumbing shared by the resource handlers: the
// {"data": ...} request/response envelope, error responses and middleware.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"grubdash/pkg/errs"
	"grubdash/pkg/logger"
)

// MsgDataRequired is returned for bodies without a usable "data" object.
const MsgDataRequired = "A 'data' property is required."

// DataRequest is the envelope every request body arrives in.
type DataRequest struct {
	Data json.RawMessage `json:"data" swaggertype:"object"`
}

// DataResponse is the envelope every successful response is sent in.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeData reads a {"data": {...}} body into dst. A value that does not fit
// its field, such as a number beyond float64 range, leaves the field unset so
// the resource's own validation reports it.
func DecodeData(r *http.Request, dst any) error {
	var env DataRequest
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		return errs.BadRequest(MsgDataRequired)
	}
	if len(env.Data) == 0 || !bytes.HasPrefix(bytes.TrimSpace(env.Data), []byte("{")) {
		return errs.BadRequest(MsgDataRequired)
	}
	err := json.Unmarshal(env.Data, dst)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return errs.BadRequest(MsgDataRequired)
	}
	return nil
}

// WriteData writes v as {"data": v}.
func WriteData(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(DataResponse{Data: v})
}

// WriteError writes {"error": msg}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// Fail writes the response for err. Rejections keep their message; anything
// else is logged and reported as an internal error.
func Fail(ctx context.Context, log *logger.Logger, w http.ResponseWriter, op string, err error) {
	var e *errs.Error
	if errors.As(err, &e) {
		log.Debug(ctx, "request rejected", "op", op, "status", e.Status(), "reason", e.Message)
		WriteError(w, e.Status(), e.Message)
		return
	}
	log.Error(ctx, op, "error", err)
	WriteError(w, http.StatusInternalServerError, "Something went wrong!")
}
