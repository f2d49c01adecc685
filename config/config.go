package config

import (
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/ftpfs/errors"
)

// Config is a decoded user configuration.
type Config struct {
	Users []User `json:"users" yaml:"users"`
}

// User is a configured identity. It implements view.Identity.
type User struct {
	Name       string `json:"name"            yaml:"name"`
	Home       string `json:"home"            yaml:"home"`
	IgnoreCase bool   `json:"caseInsensitive" yaml:"caseInsensitive"`
}

// HomeDirectory returns the user's home directory.
func (u User) HomeDirectory() string {
	return u.Home
}

// CaseInsensitive reports whether the user's view ignores letter case.
func (u User) CaseInsensitive() bool {
	return u.IgnoreCase
}

// Lookup returns the user with the given name.
// Returns CodeNotFound if no such user is configured.
func (c *Config) Lookup(name string) (User, error) {
	for _, u := range c.Users {
		if u.Name == name {
			return u, nil
		}
	}
	return User{}, errors.WithContext(
		errors.New(errors.CodeNotFound, "user is not configured"),
		"user", name,
	)
}

// EncodeYAML renders the effective configuration, defaults included.
func (c *Config) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode configuration to YAML")
	}
	return data, nil
}

// checkUnique rejects configurations that name the same user twice.
func (c *Config) checkUnique() error {
	seen := make(map[string]struct{}, len(c.Users))
	for _, u := range c.Users {
		if _, ok := seen[u.Name]; ok {
			return errors.WithContext(
				errors.New(errors.CodeInvalidConfig, "user is configured more than once"),
				"user", u.Name,
			)
		}
		seen[u.Name] = struct{}{}
	}
	return nil
}
