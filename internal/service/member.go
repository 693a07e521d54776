package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/relay/api/internal/database"
	"github.com/forgo/relay/api/internal/model"
)

// MemberRepository defines the interface for member storage.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id string) (*model.Member, error)
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	List(ctx context.Context) ([]*model.Member, error)
	Delete(ctx context.Context, id string) error
}

// MemberService handles membership business logic. It operates on validated
// input only and never sees a transport request.
type MemberService struct {
	repo MemberRepository
}

// MemberServiceConfig holds member service dependencies.
type MemberServiceConfig struct {
	Repo MemberRepository
}

// NewMemberService creates a new member service.
func NewMemberService(cfg MemberServiceConfig) *MemberService {
	return &MemberService{repo: cfg.Repo}
}

// Register creates a new member. Email uniqueness is a business invariant:
// a second registration with the same email is a conflict, not a fault.
func (s *MemberService) Register(ctx context.Context, email string, age int) (*model.Member, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing member: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	member := &model.Member{
		Email:  email,
		Age:    age,
		Status: model.MemberStatusActive,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		// The uniqueness check above races with concurrent registration;
		// the database constraint is authoritative.
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

// Get retrieves a member by ID.
func (s *MemberService) Get(ctx context.Context, id string) (*model.Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// List retrieves all active members.
func (s *MemberService) List(ctx context.Context) ([]*model.Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// Remove deletes a member by ID.
func (s *MemberService) Remove(ctx context.Context, id string) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return ErrMemberNotFound
	}
	if err := s.repo.Delete(ctx, member.ID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}
