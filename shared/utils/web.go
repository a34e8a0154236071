package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	internal_errors "github.com/kebab-dev/kebab/shared/errors"
	"github.com/kebab-dev/kebab/shared/logger"
	"github.com/kebab-dev/kebab/shared/validation"
)

const internalErrorMessage = "Internal server error"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report issues under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error any `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		writeRaw(w, http.StatusInternalServerError, []byte(`{"error":"Internal server error"}`))
		return
	}
	writeRaw(w, status, body)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: verr.Issues})
		return
	}
	var serr *internal_errors.ErrorWithStatusCode
	if errors.As(err, &serr) {
		WriteJSON(w, serr.StatusCode, ErrorBody{Error: serr.Message})
		return
	}
	// default error is 500, details stay in the log
	logger.Log.Error("request failed", "error", err)
	WriteJSON(w, http.StatusInternalServerError, ErrorBody{Error: internalErrorMessage})
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		issues, other := validation.FromValidator(err)
		if other != nil {
			logger.Log.Debug("request validation failed", "error", other)
			return &internal_errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
		}
		return validation.AsError(issues)
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("request body decode failed", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
