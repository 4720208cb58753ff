package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "rosterpulse/internal/platform/errors"
)

type collectBody struct {
	Date string `json:"date" validate:"omitempty,dateonly"`
}

func TestParseJSON_ValidBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/collect", strings.NewReader(`{"date":"2024-01-05"}`))
	got, err := ParseJSON[collectBody](r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Date != "2024-01-05" {
		t.Fatalf("wrong value: %+v", got)
	}
}

func TestParseJSON_DateOnlyAcceptsEmpty(t *testing.T) {
	r := httptest.NewRequest("POST", "/collect", strings.NewReader(`{"date":""}`))
	if _, err := ParseJSON[collectBody](r); err != nil {
		t.Fatalf("empty date is allowed: %v", err)
	}

	r = httptest.NewRequest("POST", "/collect", strings.NewReader(`{}`))
	if _, err := ParseJSON[collectBody](r); err != nil {
		t.Fatalf("absent date is allowed: %v", err)
	}
}

func TestParseJSON_DateOnlyRejectsOtherFormats(t *testing.T) {
	for _, bad := range []string{"05/01/2024", "2024-1-5", "yesterday", "2024-13-40"} {
		r := httptest.NewRequest("POST", "/collect", strings.NewReader(`{"date":"`+bad+`"}`))
		_, err := ParseJSON[collectBody](r)
		if err == nil {
			t.Fatalf("expected rejection for %q", bad)
		}
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("expected validation code for %q, got %v", bad, perr.CodeOf(err))
		}
	}
}

func TestParseJSON_EmptyBodyOnPost(t *testing.T) {
	r := httptest.NewRequest("POST", "/collect", strings.NewReader(""))
	if _, err := ParseJSON[collectBody](r); err == nil {
		t.Fatalf("POST with no body must fail")
	}

	// safe methods tolerate missing bodies
	r = httptest.NewRequest("GET", "/collect", strings.NewReader(""))
	if _, err := ParseJSON[collectBody](r); err != nil {
		t.Fatalf("GET with no body is fine: %v", err)
	}
}

func TestParseJSON_UnknownFieldsRejected(t *testing.T) {
	r := httptest.NewRequest("POST", "/collect", strings.NewReader(`{"date":"2024-01-05","extra":1}`))
	if _, err := ParseJSON[collectBody](r); err == nil {
		t.Fatalf("unknown fields must be rejected")
	}
}

func TestParseJSON_TrailingDataRejected(t *testing.T) {
	r := httptest.NewRequest("POST", "/collect", strings.NewReader(`{"date":"2024-01-05"}{"again":true}`))
	_, err := ParseJSON[collectBody](r)
	if err == nil {
		t.Fatalf("trailing data must be rejected")
	}
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON code, got %v", perr.CodeOf(err))
	}
}
