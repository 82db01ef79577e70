package render

import (
	"encoding/json"
	"net/http"

	"cdp/core"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(v)
}

// Error write error
func Error(w http.ResponseWriter, statusCode, errCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(H{"code": errCode, "msg": err.Error()})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, -1, err)
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, -1, err)
}

// Code maps an engine error to an http response. Validation and
// insolvency rejections are client errors; everything else is a 500.
func Code(w http.ResponseWriter, err error) {
	code, ok := err.(core.ErrorCode)
	if !ok {
		Error(w, http.StatusInternalServerError, int(core.ErrUnknown), err)
		return
	}

	switch {
	case code >= 100100 && code < 100300, code == core.ErrNoDebt:
		Error(w, http.StatusBadRequest, int(code), err)
	case code == core.ErrInvalidPrice:
		Error(w, http.StatusBadGateway, int(code), err)
	default:
		Error(w, http.StatusInternalServerError, int(code), err)
	}
}
