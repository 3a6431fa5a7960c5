package domain

import "time"

// RegistrationToken is a single-use code that gates signup. Elevated tokens
// grant the HR role on redemption.
type RegistrationToken struct {
	Code      string     `json:"code"`
	Used      bool       `json:"used"`
	Elevated  bool       `json:"elevated"`
	IssuedBy  *int64     `json:"issued_by,omitempty"`
	UsedBy    *int64     `json:"used_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
}

type RedeemResult struct {
	GrantsElevatedRole bool `json:"grants_elevated_role"`
}
