package domain

type Principal struct {
	Id     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	Tenant string   `json:"tenant,omitempty"`
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Principal) HasAnyRole(roles []string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

type AuthenticateResponse struct {
	Authenticated bool
	ErrorReason   string
	CacheHit      bool
	Principal     *Principal
}

type ValidateTokenResponse struct {
	Status      string     `json:"status"`
	User        *Principal `json:"user,omitempty"`
	ValidatedAt string     `json:"validated_at"`
}

type UserResponse struct {
	User      Principal `json:"user"`
	Timestamp string    `json:"timestamp"`
}

type LogoutResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
