package security

// AdminPolicy decides whether an identity may use the admin surfaces.
// The portal has no role model; the production policy is a fixed email
// allowlist checked by exact match. Callers are responsible for any
// normalization — the check does not case-fold, and an empty email is
// never a member.
type AdminPolicy interface {
	IsAdmin(email string) bool
}

type AllowlistPolicy struct {
	members map[string]struct{}
}

func NewAllowlistPolicy(emails []string) *AllowlistPolicy {
	members := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if email == "" {
			continue
		}
		members[email] = struct{}{}
	}
	return &AllowlistPolicy{members: members}
}

// DefaultAdminPolicy is the production allowlist.
func DefaultAdminPolicy() *AllowlistPolicy {
	return NewAllowlistPolicy([]string{
		"admin@fortisledger.io",
		"admin@fortisarena.io",
		"ahmedfaraz.sa.48@gmail.com",
	})
}

func (p *AllowlistPolicy) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	_, ok := p.members[email]
	return ok
}
