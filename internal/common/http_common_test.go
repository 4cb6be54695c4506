package common

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"tenantry/internal/types"
	"testing"
)

func newTestRequest(t *testing.T, path string) *http.Request {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	requestContext := context.WithValue(request.Context(), HttpContextLogger, HttpRequestLogger(func(string, string) {}))
	return request.WithContext(requestContext)
}

func decodeTestResponse(t *testing.T, recorder *httptest.ResponseRecorder) HttpResponse {
	t.Helper()
	var response HttpResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response body: %s", err)
	}
	return response
}

func TestGetNotFoundHandler(t *testing.T) {
	recorder := httptest.NewRecorder()
	GetNotFoundHandler()(recorder, newTestRequest(t, "/no/such/endpoint"))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", recorder.Code)
	}
	response := decodeTestResponse(t, recorder)
	if response.Success {
		t.Errorf("expected an unsuccessful response")
	}
	if response.Data != types.ErrorInvalidEndpoint.Error() {
		t.Errorf("expected error code %s, got %v", types.ErrorInvalidEndpoint, response.Data)
	}
}

func TestReadinessProbeHandler_failingCheck(t *testing.T) {
	serviceLogs := make(chan ServiceLog, 8)
	handler := getReadinessProbeHandler(CommonHttpEndpointsOpts{
		ServiceLogs: serviceLogs,
		ReadinessChecks: []func() error{
			func() error { return errors.New("database connection is pending restoration") },
		},
	})

	recorder := httptest.NewRecorder()
	handler(recorder, newTestRequest(t, "/readyz"))

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", recorder.Code)
	}
	response := decodeTestResponse(t, recorder)
	if response.Data != types.ErrorHealthcheckFailed.Error() {
		t.Errorf("expected error code %s, got %v", types.ErrorHealthcheckFailed, response.Data)
	}
	if len(serviceLogs) == 0 {
		t.Errorf("expected the failing check to be logged")
	}
}

func TestLivenessProbeHandler_passingChecks(t *testing.T) {
	handler := getLivenessProbeHandler(CommonHttpEndpointsOpts{
		LivenessChecks: []func() error{
			func() error { return nil },
		},
	})

	recorder := httptest.NewRecorder()
	handler(recorder, newTestRequest(t, "/healthz"))

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
	response := decodeTestResponse(t, recorder)
	if !response.Success {
		t.Errorf("expected a successful response")
	}
}
