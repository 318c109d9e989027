package enums

import "fmt"

// Theme selects the presentation color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid reports whether the value matches a known Theme.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// String implements fmt.Stringer.
func (t Theme) String() string {
	return string(t)
}

// ParseTheme converts raw input into a Theme.
func ParseTheme(value string) (Theme, error) {
	switch Theme(value) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("invalid theme %q", value)
}

// SidebarSize selects the left sidebar rendering mode.
type SidebarSize string

const (
	SidebarCollapsed SidebarSize = "collapsed"
	SidebarDefault   SidebarSize = "default"
)

// IsValid reports whether the value matches a known SidebarSize.
func (s SidebarSize) IsValid() bool {
	return s == SidebarCollapsed || s == SidebarDefault
}

// String implements fmt.Stringer.
func (s SidebarSize) String() string {
	return string(s)
}

// ParseSidebarSize converts raw input into a SidebarSize.
func ParseSidebarSize(value string) (SidebarSize, error) {
	switch SidebarSize(value) {
	case SidebarCollapsed:
		return SidebarCollapsed, nil
	case SidebarDefault:
		return SidebarDefault, nil
	}
	return "", fmt.Errorf("invalid sidebar size %q", value)
}
