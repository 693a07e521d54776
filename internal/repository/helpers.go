package repository

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/forgo/relay/api/internal/database"
	"github.com/forgo/relay/api/internal/model"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// extractRecordID extracts a record ID from a SurrealDB result value.
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		// {"tb": "member", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}
	return ""
}

// parseTime parses a time value from the formats SurrealDB returns.
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// queryRecords unwraps a Query result into its record list.
func queryRecords(result []interface{}) ([]interface{}, bool) {
	if len(result) == 0 {
		return nil, false
	}
	if records, ok := result[0].([]interface{}); ok {
		return records, true
	}
	return result, true
}

// firstRecord returns the first record of a Query result.
func firstRecord(result []interface{}) (interface{}, error) {
	records, ok := queryRecords(result)
	if !ok || len(records) == 0 {
		return nil, database.ErrNotFound
	}
	return records[0], nil
}

// parseMember converts a raw SurrealDB record into a model.Member.
func parseMember(record interface{}) (*model.Member, error) {
	fields, ok := record.(map[string]interface{})
	if !ok {
		// CBOR decoding may yield map[interface{}]interface{}; normalize
		// through JSON.
		data, err := json.Marshal(record)
		if err != nil {
			return nil, database.ErrQuery
		}
		fields = map[string]interface{}{}
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, database.ErrQuery
		}
	}
	if len(fields) == 0 {
		return nil, database.ErrNotFound
	}

	member := &model.Member{
		ID:        extractRecordID(fields["id"]),
		Status:    model.MemberStatusActive,
		CreatedOn: parseTime(fields["created_on"]),
		UpdatedOn: parseTime(fields["updated_on"]),
	}
	if email, ok := fields["email"].(string); ok {
		member.Email = email
	}
	switch age := fields["age"].(type) {
	case float64:
		member.Age = int(age)
	case int64:
		member.Age = int(age)
	case uint64:
		member.Age = int(age)
	case int:
		member.Age = age
	}
	if status, ok := fields["status"].(string); ok {
		member.Status = model.MemberStatus(status)
	}
	return member, nil
}
