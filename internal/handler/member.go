package handler

import (
	"context"
	"net/http"

	"github.com/forgo/relay/api/internal/model"
	"github.com/forgo/relay/api/internal/schema"
	"github.com/forgo/relay/api/internal/service"
)

// registerSchema declares the member registration input shape. Validation
// lives here, at the boundary; the service below trusts its input.
var registerSchema = schema.Schema{
	Name: "member.register",
	Fields: []schema.Field{
		{Name: "email", Type: schema.TypeString, Required: true, Format: schema.FormatEmail, MaxLen: 254},
		{Name: "age", Type: schema.TypeNumber, Required: true, Min: schema.Float(model.MinMemberAge), Max: schema.Float(150)},
	},
}

// MemberService defines the service interface the member handler depends on.
type MemberService interface {
	Register(ctx context.Context, email string, age int) (*model.Member, error)
	Get(ctx context.Context, id string) (*model.Member, error)
	List(ctx context.Context) ([]*model.Member, error)
	Remove(ctx context.Context, id string) error
}

// MemberHandler handles member HTTP endpoints.
type MemberHandler struct {
	service MemberService
}

// MemberHandlerConfig holds member handler dependencies.
type MemberHandlerConfig struct {
	Service MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(cfg MemberHandlerConfig) *MemberHandler {
	return &MemberHandler{service: cfg.Service}
}

// Register handles POST /v1/members.
func (h *MemberHandler) Register() http.HandlerFunc {
	return Handle(Endpoint[*model.Member]{
		Schema: registerSchema,
		Execute: func(ctx context.Context, in schema.Validated) (*model.Member, error) {
			return h.service.Register(ctx, in.String("email"), in.Int("age"))
		},
	})
}

// Get handles GET /v1/members/{memberId}.
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.service.Get(r.Context(), r.PathValue("memberId"))
	if err != nil {
		WriteFailure(w, r, err, nil)
		return
	}
	WriteSuccess(w, member)
}

// List handles GET /v1/members.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.List(r.Context())
	if err != nil {
		WriteFailure(w, r, err, nil)
		return
	}
	if members == nil {
		members = []*model.Member{}
	}
	WriteSuccess(w, members)
}

// Remove handles DELETE /v1/members/{memberId}.
func (h *MemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remove(r.Context(), r.PathValue("memberId")); err != nil {
		WriteFailure(w, r, err, nil)
		return
	}
	WriteSuccess(w, map[string]string{"status": "removed"})
}

var _ MemberService = (*service.MemberService)(nil)
