package constants

// Roles
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// Locals keys set by the auth middleware.
const (
	LocalsActor     = "actor"
	LocalsRequestID = "requestid"
)

// Locales understood by the status labels.
const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

// Roles that may be assigned through the users API.
var AssignableRoles = []string{
	RoleEmployee,
	RoleManager,
}

func IsValidRole(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}
