package model

import "time"

// MinMemberAge is the youngest age accepted at registration.
const MinMemberAge = 13

// MemberStatus represents the lifecycle state of a membership.
type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "active"
	MemberStatusRemoved MemberStatus = "removed"
)

// Member represents a registered member.
type Member struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Age       int          `json:"age"`
	Status    MemberStatus `json:"status"`
	CreatedOn time.Time    `json:"created_on"`
	UpdatedOn time.Time    `json:"updated_on"`
}

// Token is the response payload for a successful token issuance.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
