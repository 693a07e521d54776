package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/relay/api/internal/database"
	"github.com/forgo/relay/api/internal/model"
)

// MemberRepository handles member data access.
type MemberRepository struct {
	db database.Database
}

// NewMemberRepository creates a new member repository.
func NewMemberRepository(db database.Database) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member. The member's ID and timestamps are filled in
// from the created record.
func (r *MemberRepository) Create(ctx context.Context, member *model.Member) error {
	status := member.Status
	if status == "" {
		status = model.MemberStatusActive
	}

	query := `
		CREATE member CONTENT {
			email: $email,
			age: $age,
			status: $status,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"email":  member.Email,
		"age":    member.Age,
		"status": string(status),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := firstRecord(result)
	if err != nil {
		return err
	}
	parsed, err := parseMember(created)
	if err != nil {
		return err
	}

	member.ID = parsed.ID
	member.Status = parsed.Status
	member.CreatedOn = parsed.CreatedOn
	member.UpdatedOn = parsed.UpdatedOn
	return nil
}

// GetByID retrieves a member by ID. Returns (nil, nil) when no member exists.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*model.Member, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	member, err := parseMember(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return member, nil
}

// GetByEmail retrieves a member by email. Returns (nil, nil) when no member
// exists.
func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	query := `SELECT * FROM member WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	member, err := parseMember(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return member, nil
}

// List retrieves all active members ordered by creation time.
func (r *MemberRepository) List(ctx context.Context) ([]*model.Member, error) {
	query := `SELECT * FROM member WHERE status = $status ORDER BY created_on ASC`
	vars := map[string]interface{}{"status": string(model.MemberStatusActive)}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := queryRecords(result)
	if !ok {
		return []*model.Member{}, nil
	}

	members := make([]*model.Member, 0, len(records))
	for _, record := range records {
		member, err := parseMember(record)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

// Delete removes a member record.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}
	return r.db.Execute(ctx, query, vars)
}
