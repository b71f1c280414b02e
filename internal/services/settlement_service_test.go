package services

import (
	"testing"

	"vitatkal/internal/domain"
	"vitatkal/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRecordSettlementValidation(t *testing.T) {
	svc := SettlementService{Roster: testRoster}

	if _, err := svc.Record("a", 0, "2025-09-01", ""); !domain.IsValidation(err) {
		t.Fatalf("zero amount: got %v, want ValidationError", err)
	}
	if _, err := svc.Record("a", -100, "2025-09-01", ""); !domain.IsValidation(err) {
		t.Fatalf("negative amount: got %v, want ValidationError", err)
	}
	if _, err := svc.Record("ghost", 100, "2025-09-01", ""); !domain.IsUnknownAgent(err) {
		t.Fatalf("off-roster agent: got %v, want UnknownAgentError", err)
	}
	if _, err := svc.Record("a", 100, "01/09/2025", ""); !domain.IsValidation(err) {
		t.Fatalf("bad date: got %v, want ValidationError", err)
	}
}

func TestRecordSettlementOnePaisaAccepted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO settlements").
		WithArgs("a", int64(1), "2025-09-01", "rounding adjustment").
		WillReturnResult(sqlmock.NewResult(7, 1))

	svc := SettlementService{
		SettlementRepo: repositories.SettlementRepository{DB: db},
		Roster:         testRoster,
		DB:             db,
	}

	id, err := svc.Record("a", 1, "2025-09-01", "rounding adjustment")
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateSettlementNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM settlements").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := SettlementService{
		SettlementRepo: repositories.SettlementRepository{DB: db},
		Roster:         testRoster,
		DB:             db,
	}

	err = svc.Update(99, "a", 100, "2025-09-01", "")
	if !domain.IsNotFound(err) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestDeleteSettlement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM settlements").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("DELETE FROM settlements").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := SettlementService{
		SettlementRepo: repositories.SettlementRepository{DB: db},
		Roster:         testRoster,
		DB:             db,
	}

	if err := svc.Delete(3); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
