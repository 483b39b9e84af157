package theme

import (
	"fmt"
	"strings"
)

// ValidateName checks that a theme name is safe to join onto the themes
// root as a single directory. Returns ErrInvalidThemeName if the name is
// empty, contains a path separator or NUL byte, or starts with a dot
// (which covers "." and ".."). Interior dots are allowed: "dark.v2".
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidThemeName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidThemeName, name)
	}
	return nil
}
