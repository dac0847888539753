package domain

// RolePolicy is the set of roles allowed through a route. An empty policy
// admits any authenticated identity.
type RolePolicy []Role

// Evaluate decides whether id satisfies the policy.
func (p RolePolicy) Evaluate(id *Identity) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if len(p) == 0 {
		return nil
	}
	for _, r := range p {
		if id.Role == r {
			return nil
		}
	}
	return ErrForbidden
}

// SameSubjectOrAdmin admits id when it owns resourceID or is an admin.
func SameSubjectOrAdmin(id *Identity, resourceID string) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.Role == RoleAdmin || (resourceID != "" && id.SubjectID == resourceID) {
		return nil
	}
	return ErrForbidden
}
