package dto

// UserUpdateRequest describes a partial account mutation. Absent fields
// are left unchanged.
type UserUpdateRequest struct {
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	IsAdmin *bool   `json:"is_admin"`
}
