package model

// Role is the entitlement tier of an account.
type Role string

const (
	RoleFree   Role = "free"
	RoleMember Role = "member"
	RoleMaster Role = "master"
	RoleBoth   Role = "both"
)

// roleGrants maps a required tier to the set of roles that satisfy it.
// The table is a lattice, not a numeric rank: a "master" requirement
// accepts "both", but a "both" requirement rejects plain "master".
var roleGrants = map[Role]map[Role]bool{
	RoleMember: {RoleMember: true, RoleMaster: true, RoleBoth: true},
	RoleMaster: {RoleMaster: true, RoleBoth: true},
	RoleBoth:   {RoleBoth: true},
}

// Satisfies reports whether the role meets the required tier. A "free"
// requirement is met by any role; an unknown requirement by none. The
// admin override is not applied here — it lives with the session.
func (r Role) Satisfies(required Role) bool {
	if required == RoleFree {
		return true
	}
	allowed, ok := roleGrants[required]
	return ok && allowed[r]
}

// Valid reports whether the role is one of the known tiers.
func (r Role) Valid() bool {
	switch r {
	case RoleFree, RoleMember, RoleMaster, RoleBoth:
		return true
	}
	return false
}
