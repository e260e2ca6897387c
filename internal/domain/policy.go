package domain

// AuthorizationPolicy decides how an ownership mismatch on a nested resource
// is reported to the caller. It is chosen once at startup and applied
// uniformly to every resource family.
type AuthorizationPolicy int

const (
	// PolicyHideExistence reports ownership mismatches as 404, so callers
	// cannot probe for the existence of other users' resources.
	PolicyHideExistence AuthorizationPolicy = iota

	// PolicyRevealForbidden reports ownership mismatches as 403, telling the
	// caller the resource exists but is not theirs.
	PolicyRevealForbidden
)

// ParsePolicy maps a config string to a policy, defaulting to hiding existence.
func ParsePolicy(s string) AuthorizationPolicy {
	if s == "reveal" {
		return PolicyRevealForbidden
	}
	return PolicyHideExistence
}

// Deny returns the error for an ownership mismatch, using the message that
// matches the configured policy.
func (p AuthorizationPolicy) Deny(notFoundMsg, forbiddenMsg string) error {
	if p == PolicyRevealForbidden {
		return &ForbiddenError{Message: forbiddenMsg}
	}
	return &NotFoundError{Message: notFoundMsg}
}

func (p AuthorizationPolicy) String() string {
	if p == PolicyRevealForbidden {
		return "reveal"
	}
	return "hide"
}
