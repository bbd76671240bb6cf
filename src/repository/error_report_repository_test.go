package repository

import (
	"context"
	"testing"
	"time"

	"recruitgateway/src/model"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestErrorReportRepositoryCreate(t *testing.T) {
	mockDB, mock := newMockDB(t)
	repo := (&ErrorReportRepository{}).WithDB(mockDB)

	report := &model.ErrorReport{
		Reference: "3e61c2b6-9c26-4f1a-bb4e-111111111111",
		Label:     "500: recoverer",
		Method:    "GET",
		Path:      "/api/v1/applicants/9",
		Status:    500,
		Message:   "db exploded",
		Alerted:   true,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "error_reports"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), report); err != nil {
		t.Fatalf("unexpected error creating report: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func TestErrorReportRepositoryDeleteOlderThan(t *testing.T) {
	mockDB, mock := newMockDB(t)
	repo := (&ErrorReportRepository{}).WithDB(mockDB)

	cutoff := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "error_reports" WHERE created_at <`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	deleted, err := repo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error purging reports: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("expected 3 deleted rows, got %d", deleted)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		sqlDB.Close()
		t.Fatalf("failed to open gorm DB with sqlmock: %v", err)
	}

	return gdb, mock
}
