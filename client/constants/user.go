package constants

// UserRole is the wire value of a user's role.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

var userRoleLabels = map[Locale]map[UserRole]string{
	LocaleZH: {UserRoleUser: "用户", UserRoleAdmin: "管理员"},
	LocaleEN: {UserRoleUser: "User", UserRoleAdmin: "Administrator"},
}

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	_, ok := userRoleLabels[DefaultLocale][r]
	return ok
}

// Label returns the display text of r in locale.
func (r UserRole) Label(locale Locale) string {
	return label(userRoleLabels, locale, r)
}

// IsAdmin reports whether role grants admin operations.
func IsAdmin(role string) bool { return UserRole(role) == UserRoleAdmin }
