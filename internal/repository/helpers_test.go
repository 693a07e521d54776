package repository

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Record Parsing Tests
// ============================================================================

func TestParseMember_FromRawFields(t *testing.T) {
	t.Parallel()

	member, err := parseMember(map[string]interface{}{
		"id":         "member:abc",
		"email":      "a@b.com",
		"age":        float64(30),
		"status":     "active",
		"created_on": "2026-01-15T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.ID != "member:abc" || member.Email != "a@b.com" || member.Age != 30 {
		t.Errorf("fields not parsed: %+v", member)
	}
	if member.CreatedOn.IsZero() {
		t.Error("expected created_on parsed")
	}
}

func TestParseMember_IntegerAgeVariants(t *testing.T) {
	t.Parallel()

	// CBOR decodes small integers as uint64 or int64 depending on sign.
	for _, age := range []interface{}{float64(30), int64(30), uint64(30), 30} {
		member, err := parseMember(map[string]interface{}{"id": "member:1", "age": age})
		if err != nil {
			t.Fatalf("unexpected error for %T: %v", age, err)
		}
		if member.Age != 30 {
			t.Errorf("%T: expected age 30, got %d", age, member.Age)
		}
	}
}

func TestParseMember_EmptyRecord(t *testing.T) {
	t.Parallel()

	if _, err := parseMember(map[string]interface{}{}); err == nil {
		t.Error("expected error for empty record")
	}
}

// ============================================================================
// Helper Tests
// ============================================================================

func TestExtractRecordID_TableIDMap(t *testing.T) {
	t.Parallel()

	got := extractRecordID(map[string]interface{}{"tb": "member", "id": "abc"})
	if got != "member:abc" {
		t.Errorf("expected member:abc, got %q", got)
	}
}

func TestExtractRecordID_String(t *testing.T) {
	t.Parallel()

	if got := extractRecordID("member:abc"); got != "member:abc" {
		t.Errorf("expected member:abc, got %q", got)
	}
}

func TestParseTime_Formats(t *testing.T) {
	t.Parallel()

	want := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	if got := parseTime("2026-01-15T10:00:00Z"); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := parseTime(want); !got.Equal(want) {
		t.Errorf("expected pass-through, got %v", got)
	}
	if got := parseTime(42); !got.IsZero() {
		t.Errorf("expected zero time for unsupported type, got %v", got)
	}
}

func TestIsUniqueConstraintError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("Database index `email` already contains 'a@b.com'... unique index"), true},
		{errors.New("duplicate key"), true},
		{errors.New("record already exists"), true},
		{errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		if got := isUniqueConstraintError(tc.err); got != tc.want {
			t.Errorf("%v: expected %v, got %v", tc.err, tc.want, got)
		}
	}
}

func TestFirstRecord_EmptyResult(t *testing.T) {
	t.Parallel()

	if _, err := firstRecord(nil); err == nil {
		t.Error("expected error for empty result")
	}
	if _, err := firstRecord([]interface{}{[]interface{}{}}); err == nil {
		t.Error("expected error for empty record list")
	}
}

func TestFirstRecord_NestedList(t *testing.T) {
	t.Parallel()

	record, err := firstRecord([]interface{}{[]interface{}{map[string]interface{}{"id": "member:1"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := record.(map[string]interface{}); !ok {
		t.Errorf("expected map record, got %T", record)
	}
}
