package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/Priya1724/RealEstateFinal/internal/model"
	"github.com/Priya1724/RealEstateFinal/internal/repository"
)

func newMockRepos(t *testing.T) (*repository.PropertyRepository, *repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	sqlxDB := sqlx.NewDb(db, "postgres")
	return repository.NewPropertyRepository(sqlxDB), repository.NewUserRepository(sqlxDB), mock
}

// fakeImageStore satisfies ImageStore without a Mongo deployment.
type fakeImageStore struct {
	ref     string
	err     error
	uploads int
}

func (f *fakeImageStore) Upload(data []byte, filename string) (string, error) {
	f.uploads++
	if f.err != nil {
		return "", f.err
	}
	return f.ref, nil
}

var errUploadRejected = errors.New("unsupported file type application/pdf")

func userColumns() []string {
	return []string{"id", "name", "email", "password", "role", "created_at"}
}

func userRow(mockRows *sqlmock.Rows, id int64, email string, password string, role model.Role) *sqlmock.Rows {
	return mockRows.AddRow(id, "Test User", email, password, string(role), time.Now())
}

func propertyColumns() []string {
	return []string{
		"id", "title", "description", "price", "type", "location",
		"image_url", "contact_email", "contact_phone", "status", "date_listed", "owner_id",
	}
}

func propertyRow(mockRows *sqlmock.Rows, id int64, status model.PropertyStatus, ownerID int64, imageURL string) *sqlmock.Rows {
	return mockRows.AddRow(
		id, "Lakeside Villa", "Quiet place by the lake", 250000.0, string(model.TypeSale),
		"Lakeside", imageURL, "", "", string(status), time.Now(), ownerID,
	)
}

func testNow() time.Time {
	return time.Now()
}

func sampleInput() PropertyInput {
	return PropertyInput{
		Title:       "Lakeside Villa",
		Description: "Quiet place by the lake",
		Price:       250000,
		Type:        model.TypeSale,
		Location:    "Lakeside",
	}
}
