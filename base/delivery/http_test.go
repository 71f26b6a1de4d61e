package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/domain"
)

func TestMakeJsonResp(t *testing.T) {
	tests := []struct {
		desc      string
		status    int
		data      interface{}
		expStatus int
		expBody   JsonResponse
	}{
		{
			desc:      "success",
			status:    http.StatusOK,
			data:      "ok",
			expStatus: http.StatusOK,
			expBody:   JsonResponse{"ok", JsonResponseStatusSuccess},
		},
		{
			desc:      "wrapped gating error",
			status:    http.StatusInternalServerError,
			data:      xerrors.Errorf("wallet abc: %w", domain.ErrNotEngaged),
			expStatus: http.StatusForbidden,
			expBody:   JsonResponse{domain.ErrNotEngaged.Error(), JsonResponseStatusFail},
		},
		{
			desc:      "busy session",
			status:    http.StatusInternalServerError,
			data:      domain.ErrSessionBusy,
			expStatus: http.StatusConflict,
			expBody:   JsonResponse{domain.ErrSessionBusy.Error(), JsonResponseStatusFail},
		},
		{
			desc:      "transfer failure keeps its cause",
			status:    http.StatusInternalServerError,
			data:      xerrors.Errorf("%v: %w", xerrors.New("insufficient funds for rent"), domain.ErrTransferFailed),
			expStatus: http.StatusBadGateway,
			expBody:   JsonResponse{"Failed to send SOL: insufficient funds for rent", JsonResponseStatusFail},
		},
		{
			desc:      "bare transfer failure",
			status:    http.StatusInternalServerError,
			data:      domain.ErrTransferFailed,
			expStatus: http.StatusBadGateway,
			expBody:   JsonResponse{"Failed to send SOL", JsonResponseStatusFail},
		},
		{
			desc:      "persistence failure hides its cause",
			status:    http.StatusOK,
			data:      xerrors.Errorf("%v: %w", xerrors.New("write concern"), domain.ErrPersistenceFailed),
			expStatus: http.StatusInternalServerError,
			expBody:   JsonResponse{domain.ErrPersistenceFailed.Error(), JsonResponseStatusFail},
		},
		{
			desc:      "unknown error hides details",
			status:    http.StatusOK,
			data:      xerrors.New("dial tcp 10.0.0.1: refused"),
			expStatus: http.StatusInternalServerError,
			expBody:   JsonResponse{domain.ErrInternalServerError.Error(), JsonResponseStatusFail},
		},
	}

	for _, tt := range tests {
		req := require.New(t)
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		req.NoError(MakeJsonResp(c, tt.status, tt.data), tt.desc)
		req.Equal(tt.expStatus, rec.Code, tt.desc)

		var body JsonResponse
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &body), tt.desc)
		req.Equal(tt.expBody, body, tt.desc)
	}
}
