package auth

import (
	"os"
	"strings"
)

// AdminPolicy decides whether a signed-in identity gets the admin role.
// Injected at Init so deployments can swap the allow-list for signed role
// claims without touching the handlers.
type AdminPolicy interface {
	IsAdmin(email string) bool
}

// EnvAllowlistPolicy grants admin to a comma-separated ADMIN_EMAILS list.
type EnvAllowlistPolicy struct {
	emails map[string]struct{}
}

func NewEnvAllowlistPolicy() EnvAllowlistPolicy {
	emails := make(map[string]struct{})
	for _, e := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails[e] = struct{}{}
		}
	}
	return EnvAllowlistPolicy{emails: emails}
}

func (p EnvAllowlistPolicy) IsAdmin(email string) bool {
	_, ok := p.emails[strings.ToLower(email)]
	return ok
}

// DenyAllPolicy is the default until Init runs.
type DenyAllPolicy struct{}

func (DenyAllPolicy) IsAdmin(string) bool { return false }
