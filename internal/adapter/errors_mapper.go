package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError returns nil for 2xx responses and a *ResponseError otherwise.
// A JSON string body is unquoted so the message reads the way the backend
// wrote it.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if s, ok := decodeJSONString(resp.Body()); ok {
		body = s
	}

	kind, ok := statusSentinels[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &ResponseError{StatusCode: resp.StatusCode(), Body: body, kind: kind}
}
