package errors

import (
	stderrors "errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, Message: "pg says no"}
}

func TestIsSQLStateHelpers(t *testing.T) {
	t.Parallel()

	if !IsDuplicateKey(pgErr("23505")) {
		t.Fatalf("23505 is a duplicate key")
	}
	if !IsUndefinedColumn(pgErr("42703")) {
		t.Fatalf("42703 is an undefined column")
	}
	if !IsUndefinedTable(pgErr("42P01")) {
		t.Fatalf("42P01 is an undefined table")
	}
	if IsUndefinedColumn(stderrors.New("nope")) {
		t.Fatalf("plain errors are not SQLSTATE errors")
	}
}

func TestIsSQLState_SeesThroughWrapping(t *testing.T) {
	t.Parallel()

	// degradation detection must survive the repo's message wrapping
	wrapped := FromPostgres(pgErr("42703"), "load primary observations")
	if !IsUndefinedColumn(wrapped) {
		t.Fatalf("wrapping must not hide the SQLSTATE")
	}
}

func TestDBErrorCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		state string
		want  ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"22P02", ErrorCodeInvalidArgument},
		{"57P03", ErrorCodeUnavailable},
		{"42703", ErrorCodeDB}, // unmapped states stay DB errors
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pgErr(c.state))
		if !ok || got != c.want {
			t.Errorf("DBErrorCode(%s)=%v,%v want %v", c.state, got, ok, c.want)
		}
	}

	if _, ok := DBErrorCode(stderrors.New("plain")); ok {
		t.Fatalf("non-pg errors report !ok")
	}
}

func TestFromPostgres(t *testing.T) {
	t.Parallel()

	if FromPostgres(nil, "noop") != nil {
		t.Fatalf("nil in, nil out")
	}

	err := FromPostgres(pgErr("23505"), "upsert daily snapshot")
	if CodeOf(err) != ErrorCodeDuplicateKey {
		t.Fatalf("mapped code wrong: %v", CodeOf(err))
	}

	plain := FromPostgres(stderrors.New("conn reset"), "query")
	if CodeOf(plain) != ErrorCodeDB {
		t.Fatalf("fallback code wrong: %v", CodeOf(plain))
	}
}

func TestAttachFieldFromPg(t *testing.T) {
	t.Parallel()

	withCol := FromPostgres(&pgconn.PgError{Code: "23502", ColumnName: "player_id"}, "insert")
	e, ok := As(AttachFieldFromPg(withCol))
	if !ok || e.Field() != "player_id" {
		t.Fatalf("column name should become the field: %+v", e)
	}

	withConstraint := FromPostgres(&pgconn.PgError{Code: "23505", ConstraintName: "players_name_uniq"}, "insert")
	e, ok = As(AttachFieldFromPg(withConstraint))
	if !ok || e.Field() != "uniq" {
		t.Fatalf("constraint suffix should become the field: %+v", e)
	}

	plain := stderrors.New("no pg here")
	if AttachFieldFromPg(plain) != plain {
		t.Fatalf("non-pg errors pass through")
	}
}
