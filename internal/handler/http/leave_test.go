package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staffhub-hq/staffhub-backend-go/internal/repository/postgresql"
	leaveService "github.com/staffhub-hq/staffhub-backend-go/internal/service/leave"
)

func newHandlerTestLeaveHandler() LeaveHandler {
	leaveRepo := postgresql.NewLeaveRepository(testHandlerDB)
	employeeRepo := postgresql.NewEmployeeRepository(testHandlerDB)
	attendanceRepo := postgresql.NewAttendanceRepository(testHandlerDB)
	svc := leaveService.NewLeaveService(testHandlerDB, leaveRepo, employeeRepo, attendanceRepo)
	return NewLeaveHandler(svc)
}

func TestLeaveHandler_Create_NoEmployeeContext(t *testing.T) {
	handlerTestInit()
	handler := newHandlerTestLeaveHandler()

	body := `{"leave_type": "Casual", "start_date": "2025-03-10", "end_date": "2025-03-11", "reason": "trip"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
	assert.Equal(t, "No employee linked to this session", resp.Error.Message)
}
