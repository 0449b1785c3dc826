package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/Priya1724/RealEstateFinal/internal/model"
)

func newAdminRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	_, adminSvc, mock := newTestServices(t)
	h := &AdminHandler{Admin: adminSvc}

	r := gin.New()
	admin := r.Group("/api/admin")
	h.RegisterRoutes(admin)

	return r, mock
}

func TestApprovePropertySetsApproved(t *testing.T) {
	r, mock := newAdminRouter(t)

	mock.ExpectQuery(`SELECT \* FROM properties WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(propertyRow(sqlmock.NewRows(propertyColumns()), 3, "Lakeside Villa", model.StatusPending, 7))

	mock.ExpectExec(`UPDATE properties SET status = \$1 WHERE id = \$2`).
		WithArgs(string(model.StatusApproved), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/properties/3/approve", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out model.Property
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.Status != model.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", out.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRejectMissingPropertyNotFound(t *testing.T) {
	r, mock := newAdminRouter(t)

	mock.ExpectQuery(`SELECT \* FROM properties WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(propertyColumns()))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/properties/404/reject", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNotFound)

	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.Message != "Property not found" {
		t.Fatalf("unexpected message %q", out.Message)
	}
}

func TestGetPendingPropertiesPaged(t *testing.T) {
	r, mock := newAdminRouter(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM properties WHERE status = \$1`).
		WithArgs(string(model.StatusPending)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM properties WHERE status = \$1 ORDER BY date_listed DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(string(model.StatusPending), 12, 0).
		WillReturnRows(propertyRow(sqlmock.NewRows(propertyColumns()), 3, "Lakeside Villa", model.StatusPending, 7))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/properties/pending", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out model.Page[model.Property]
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.TotalItems != 1 || len(out.Items) != 1 || !out.IsLast {
		t.Fatalf("unexpected envelope %+v", out)
	}
}

func TestGetUsersHidesPasswordHash(t *testing.T) {
	r, mock := newAdminRouter(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM users ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at"}).
			AddRow(12, "Jane", "jane@example.com", "bcrypt-hash", "CUSTOMER", time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)
	if strings.Contains(resp.Body.String(), "bcrypt-hash") {
		t.Fatalf("password hash leaked into response: %s", resp.Body.String())
	}

	var out model.Page[json.RawMessage]
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("expected one user, got %d", len(out.Items))
	}
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	r, _ := newAdminRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/12/role",
		strings.NewReader(`{"role":"SUPERUSER"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusBadRequest)
}

func TestUpdateUserRolePromotesToAdmin(t *testing.T) {
	r, mock := newAdminRouter(t)

	mock.ExpectQuery(`SELECT \* FROM users WHERE id = \$1`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at"}).
			AddRow(12, "Jane", "jane@example.com", "hash", "CUSTOMER", time.Now()))

	mock.ExpectExec(`UPDATE users SET role = \$1 WHERE id = \$2`).
		WithArgs(string(model.RoleAdmin), int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/12/role",
		strings.NewReader(`{"role":"ADMIN"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusOK)

	var out struct {
		Role model.Role `json:"role"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.Role != model.RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", out.Role)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDeleteMissingUserNotFound(t *testing.T) {
	r, mock := newAdminRouter(t)

	mock.ExpectQuery(`SELECT \* FROM users WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at"}))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/404", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNotFound)
}

func TestDeleteUserNoContent(t *testing.T) {
	r, mock := newAdminRouter(t)

	mock.ExpectQuery(`SELECT \* FROM users WHERE id = \$1`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at"}).
			AddRow(12, "Jane", "jane@example.com", "hash", "CUSTOMER", time.Now()))

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/12", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNoContent)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
