package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Priya1724/RealEstateFinal/internal/model"
	"github.com/Priya1724/RealEstateFinal/internal/repository"
	"github.com/Priya1724/RealEstateFinal/internal/service"
)

type fakeImageStore struct {
	ref string
	err error
}

func (f *fakeImageStore) Upload(data []byte, filename string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.ref, nil
}

func newTestServices(t *testing.T) (*service.PropertyService, *service.AdminService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	propertyRepo := repository.NewPropertyRepository(sqlxDB)
	userRepo := repository.NewUserRepository(sqlxDB)

	propertySvc := service.NewPropertyService(propertyRepo, userRepo, &fakeImageStore{ref: "/api/images/test"})
	adminSvc := service.NewAdminService(propertyRepo, userRepo)
	return propertySvc, adminSvc, mock
}

// withTestUserID stands in for the JWT middleware.
func withTestUserID(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", model.RoleCustomer)
		c.Next()
	}
}

func propertyColumns() []string {
	return []string{
		"id", "title", "description", "price", "type", "location",
		"image_url", "contact_email", "contact_phone", "status", "date_listed", "owner_id",
	}
}

func propertyRow(rows *sqlmock.Rows, id int64, title string, status model.PropertyStatus, ownerID int64) *sqlmock.Rows {
	return rows.AddRow(
		id, title, "description", 250000.0, string(model.TypeSale), "Lakeside",
		"", "", "", string(status), time.Now(), ownerID,
	)
}

// propertyForm builds the multipart body for create/update requests.
func propertyForm(t *testing.T, payload map[string]any) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if err := writer.WriteField("property", string(raw)); err != nil {
		t.Fatalf("WriteField: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("writer.Close: %v", err)
	}
	return body, writer.FormDataContentType()
}

func validPropertyPayload() map[string]any {
	return map[string]any{
		"title":       "Lakeside Villa",
		"description": "description",
		"price":       250000.0,
		"type":        "SALE",
		"location":    "Lakeside",
	}
}

func testNow() time.Time {
	return time.Now()
}

func mustStatus(t *testing.T, actual, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}
