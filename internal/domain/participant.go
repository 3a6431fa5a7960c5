package domain

type Role string

const (
	RoleNone     Role = "none"
	RoleElevated Role = "elevated"
)

// Participant is a registered employee, keyed by the identifier the chat
// transport assigns to them.
type Participant struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Role       Role   `json:"role"`
}

func (p *Participant) IsElevated() bool {
	return p != nil && p.Role == RoleElevated
}

// Profile holds the attributes collected during registration.
type Profile struct {
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// ProfileUpdate is a partial profile edit; nil fields are left unchanged.
type ProfileUpdate struct {
	FullName   *string `json:"full_name,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Department == nil && u.Position == nil
}
