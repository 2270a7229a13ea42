// internal/store/store_test.go
//
// Unit-tests for the write-gated store using sqlmock.
//
// Run: go test ./internal/store -v

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/yanizio/settingsd/internal/registry"
	"github.com/yanizio/settingsd/internal/validate"
)

const (
	upsertSQL = `
	    INSERT INTO system_setting (name, value) VALUES (?, ?)
	    ON DUPLICATE KEY UPDATE value = VALUES(value)`
	selectSQL = `SELECT value FROM system_setting WHERE name = ?`
	deleteSQL = `DELETE FROM system_setting WHERE name = ?`
)

func str(v string) *string { return &v }

// newTestStore wires a sqlmock-backed Store with a two-key registry.
func newTestStore(t *testing.T, policy Policy) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	reg, err := registry.NewBuilder().
		Register("screen_off_timeout", validate.NonNegativeInteger).
		Register("dim_screen", validate.Boolean).
		Build()
	if err != nil {
		t.Fatalf("registry build: %v", err)
	}

	return New(sqlx.NewDb(db, "mysql"), reg, policy, 8), mock
}

func TestPutValid(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	mock.ExpectExec(regexp.QuoteMeta(upsertSQL)).
		WithArgs("screen_off_timeout", "30000").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Put(context.Background(), "screen_off_timeout", str("30000")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

// A rejected value must never reach SQL.
func TestPutInvalidValue(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	err := s.Put(context.Background(), "screen_off_timeout", str("-5"))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Put error = %v, want ErrInvalidValue", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("SQL was touched on an invalid write: %v", err)
	}
}

func TestPutUnknownKeyRejectPolicy(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	err := s.Put(context.Background(), "vendor_mystery_knob", str("1"))
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Put error = %v, want ErrUnknownKey", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("SQL was touched on an unknown-key write: %v", err)
	}
}

func TestPutUnknownKeyAcceptPolicy(t *testing.T) {
	s, mock := newTestStore(t, PolicyAccept)

	mock.ExpectExec(regexp.QuoteMeta(upsertSQL)).
		WithArgs("vendor_mystery_knob", "1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Put(context.Background(), "vendor_mystery_knob", str("1")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestPutNullValue(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	reg, err := registry.NewBuilder().
		Register("time_12_24", validate.OrAbsent(validate.DiscreteValues("12", "24"))).
		Build()
	if err != nil {
		t.Fatalf("registry build: %v", err)
	}
	s.reg = reg

	mock.ExpectExec(regexp.QuoteMeta(upsertSQL)).
		WithArgs("time_12_24", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Put(context.Background(), "time_12_24", nil); err != nil {
		t.Fatalf("Put(nil) error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestGetHitAndCache(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
		WithArgs("dim_screen").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("true"))

	got, err := s.Get(context.Background(), "dim_screen")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil || *got != "true" {
		t.Fatalf("Get = %v, want \"true\"", got)
	}

	// Second read must come from the cache; no second query is expected.
	got, err = s.Get(context.Background(), "dim_screen")
	if err != nil {
		t.Fatalf("cached Get error: %v", err)
	}
	if got == nil || *got != "true" {
		t.Fatalf("cached Get = %v, want \"true\"", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestGetNullValue(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
		WithArgs("time_12_24").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(nil))

	got, err := s.Get(context.Background(), "time_12_24")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != nil {
		t.Fatalf("Get = %q, want nil", *got)
	}
}

func TestGetMiss(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
		WithArgs("dim_screen").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.Get(context.Background(), "dim_screen")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get error = %v, want ErrNotFound", err)
	}
}

func TestPutRefreshesCache(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	mock.ExpectExec(regexp.QuoteMeta(upsertSQL)).
		WithArgs("dim_screen", "false").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Put(context.Background(), "dim_screen", str("false")); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	// Read must hit the cache seeded by the write.
	got, err := s.Get(context.Background(), "dim_screen")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil || *got != "false" {
		t.Fatalf("Get = %v, want \"false\"", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

// The cache must hold its own copy: mutating the caller's string after a
// write must not change what later reads see.
func TestPutCacheOwnsValue(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	mock.ExpectExec(regexp.QuoteMeta(upsertSQL)).
		WithArgs("dim_screen", "true").
		WillReturnResult(sqlmock.NewResult(0, 1))

	val := "true"
	if err := s.Put(context.Background(), "dim_screen", &val); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	val = "mutated"

	got, err := s.Get(context.Background(), "dim_screen")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil || *got != "true" {
		t.Fatalf("Get = %v, want the value as written", got)
	}
}

func TestDelete(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
		WithArgs("dim_screen").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Delete(context.Background(), "dim_screen"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
		WithArgs("dim_screen").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.Delete(context.Background(), "dim_screen"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	s, mock := newTestStore(t, PolicyReject)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT name, value FROM system_setting ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).
			AddRow("dim_screen", "true").
			AddRow("time_12_24", nil))

	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d rows, want 2", len(got))
	}
	if got[0].Key != "dim_screen" || got[0].Value == nil || *got[0].Value != "true" {
		t.Errorf("row 0 = %+v", got[0])
	}
	if got[1].Key != "time_12_24" || got[1].Value != nil {
		t.Errorf("row 1 = %+v", got[1])
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy("reject"); err != nil || p != PolicyReject {
		t.Errorf("ParsePolicy(reject) = %v, %v", p, err)
	}
	if p, err := ParsePolicy("accept"); err != nil || p != PolicyAccept {
		t.Errorf("ParsePolicy(accept) = %v, %v", p, err)
	}
	if _, err := ParsePolicy("maybe"); err == nil {
		t.Error("ParsePolicy(maybe) accepted, want error")
	}
}
