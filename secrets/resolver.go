package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"
)

type Resolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// EnvResolver reads secrets from environment variables. It fails closed:
// an unset or blank variable is an error, never an empty secret.
type EnvResolver struct {
	// Aliases maps a logical secret name to the env var that holds it.
	Aliases map[string]string

	lookup func(string) (string, bool)
}

func NewEnvResolver(aliases map[string]string) *EnvResolver {
	return &EnvResolver{Aliases: aliases, lookup: os.LookupEnv}
}

func (r *EnvResolver) Resolve(ctx context.Context, name string) (string, error) {
	_ = ctx

	ref := strings.TrimSpace(name)
	if ref == "" {
		return "", fmt.Errorf("empty secret name")
	}

	envName := ref
	if r != nil && r.Aliases != nil {
		if v, ok := r.Aliases[ref]; ok && strings.TrimSpace(v) != "" {
			envName = strings.TrimSpace(v)
		}
	}

	lookup := os.LookupEnv
	if r != nil && r.lookup != nil {
		lookup = r.lookup
	}
	val, ok := lookup(envName)
	if !ok {
		return "", fmt.Errorf("secret not found (env var %q is not set)", envName)
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return "", fmt.Errorf("secret is empty (env var %q)", envName)
	}
	return val, nil
}
