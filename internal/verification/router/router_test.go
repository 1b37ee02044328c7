package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawleN-D/africompliance-api/internal/verification"
)

func postVerify(t *testing.T, vr *VerificationRouter, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/business/za", strings.NewReader(body))
	rec := httptest.NewRecorder()
	vr.HandleVerifyBusiness(rec, req)
	return rec
}

func TestHandleVerifyBusiness(t *testing.T) {
	vr := NewVerificationRouter(verification.NewService(0))

	rec := postVerify(t, vr, `{"registration_number": "2019/123456/07"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp verification.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, verification.StatusVerified, resp.Status)
	assert.Equal(t, 100, resp.ConfidenceScore)
	assert.Equal(t, "LOW", resp.RiskLevel)
	require.NotNil(t, resp.Business)
	assert.Equal(t, "2019/123456/07", resp.Business.RegistrationNumber)
	assert.True(t, strings.HasPrefix(resp.RequestID, "req_"))
}

func TestHandleVerifyBusinessNotFound(t *testing.T) {
	vr := NewVerificationRouter(verification.NewService(0))

	rec := postVerify(t, vr, `{"registration_number": "12345"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp verification.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, verification.StatusNotFound, resp.Status)
	assert.Equal(t, 0, resp.ConfidenceScore)
	assert.Nil(t, resp.Business)
}

func TestHandleVerifyBusinessValidation(t *testing.T) {
	vr := NewVerificationRouter(verification.NewService(0))

	rec := postVerify(t, vr, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postVerify(t, vr, `{"registration_number": "2019/123456/07", "vat_number": "1234"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postVerify(t, vr, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
