package consts

const (
	RoleAdmin       = "admin"
	RoleModerator   = "moderator"
	RoleUser        = "user"
	RolePremiumUser = "premiumuser"
	RoleRescueTeam  = "rescueteam"
)

var Roles = []string{RoleAdmin, RoleModerator, RoleUser, RolePremiumUser, RoleRescueTeam}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
