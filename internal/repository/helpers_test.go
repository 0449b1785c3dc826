package repository

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/Priya1724/RealEstateFinal/internal/model"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func propertyColumns() []string {
	return []string{
		"id", "title", "description", "price", "type", "location",
		"image_url", "contact_email", "contact_phone", "status", "date_listed", "owner_id",
	}
}

func propertyRow(id int64, title string, status model.PropertyStatus, ownerID int64) []driverValue {
	return []driverValue{
		id, title, "description", 250000.0, string(model.TypeSale), "Lakeside",
		"", "", "", string(status), time.Now(), ownerID,
	}
}

type driverValue = driver.Value

func addPropertyRows(rows *sqlmock.Rows, values ...[]driverValue) *sqlmock.Rows {
	for _, v := range values {
		rows.AddRow(v...)
	}
	return rows
}
