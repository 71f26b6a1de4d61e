package delivery

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gaslex/goapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// detail marks kinds whose wrapped cause is shown to the client
var errStatus = []struct {
	err    error
	status int
	detail bool
}{
	{domain.ErrNotFound, http.StatusNotFound, false},
	{domain.ErrBadParamInput, http.StatusBadRequest, false},
	{domain.ErrInvalidAmount, http.StatusBadRequest, false},
	{domain.ErrInvalidRecipient, http.StatusBadRequest, false},
	{domain.ErrInvalidNetwork, http.StatusBadRequest, false},
	{domain.ErrInvalidAdType, http.StatusBadRequest, false},
	{domain.ErrContentMismatch, http.StatusBadRequest, false},
	{domain.ErrContentTooLarge, http.StatusRequestEntityTooLarge, false},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, false},
	{domain.ErrWalletNotConnected, http.StatusUnauthorized, false},
	{domain.ErrNotEngaged, http.StatusForbidden, false},
	{domain.ErrAlreadyUsed, http.StatusForbidden, false},
	{domain.ErrSessionBusy, http.StatusConflict, false},
	{domain.ErrConflict, http.StatusConflict, false},
	{domain.ErrTransferFailed, http.StatusBadGateway, true},
	{domain.ErrUploadFailed, http.StatusBadGateway, false},
	{domain.ErrSponsorRejected, http.StatusBadGateway, false},
	{domain.ErrPersistenceFailed, http.StatusInternalServerError, false},
}

// StatusOf returns the http status an error kind maps to
func StatusOf(err error) int {
	for _, es := range errStatus {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user facing message of an error. That is the
// message of its kind, followed by the wrapped cause for kinds marked detail.
func MessageOf(err error) string {
	for _, es := range errStatus {
		if !errors.Is(err, es.err) {
			continue
		}
		kind := es.err.Error()
		if !es.detail || err.Error() == kind {
			return kind
		}
		return kind + ": " + strings.TrimSuffix(err.Error(), ": "+kind)
	}
	return domain.ErrInternalServerError.Error()
}

// MakeJsonResp wraps data into the response envelope. An error as data
// overrides status with the one its kind maps to.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err)
		data = MessageOf(err)
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
