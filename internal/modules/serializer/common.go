package serializer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/specbook-io/specbook/internal/modules/store"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// Err builds an error response. Error detail is only exposed outside release
// mode.
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// ParamErr reports a malformed request.
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// NotFoundErr reports an unresolved entity id.
func NotFoundErr(err error) Response {
	return Err(http.StatusNotFound, err.Error(), err)
}

// RenderErr reports a failed report render. The render boundary keeps these
// local: the caller gets a message and may simply retry.
func RenderErr(err error) Response {
	return Err(http.StatusInternalServerError, "report rendering failed, retry the export", err)
}

// StoreErr maps a store operation error onto the right response: validation
// problems are the caller's fault, unknown ids are 404s, anything else is a
// 500.
func StoreErr(err error) Response {
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		return NotFoundErr(err)
	}
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		return Err(http.StatusBadRequest, err.Error(), err)
	}
	return Err(http.StatusInternalServerError, "internal error", err)
}
