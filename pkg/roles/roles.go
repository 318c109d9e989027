// Package roles holds the static, code-defined role table. Roles are
// process-wide constant data: never fetched from the backend, read-only
// at runtime.
package roles

// Role is a permission bundle with a numeric authority level. Higher
// level means more authority. Exactly one role carries IsDefault, the
// one assigned on first registration.
type Role struct {
	ID          string
	Name        string
	Description string
	Color       string
	Permissions []string
	Level       int
	IsDefault   bool
}

// FallbackColor is used when a role id is unknown.
const FallbackColor = "#6c757d"

var managementPermissions = []string{
	"user.create",
	"user.list",
	"user.get",
	"user.update",
	"user.delete",
	"user.update-email",
	"user.password-reset",
	"group.create",
	"group.list",
	"group.get",
	"group.update",
	"group.delete",
	"membership.approve",
	"membership.approvePayment",
	"membership.reject",
	"membership.create",
	"membership.list",
	"membership.get",
	"membership.delete",
	"session.create",
	"session.list",
	"session.get",
	"session.update",
	"session.delete",
	"log.view",
	"log.create",
	"log.update",
	"log.delete",
}

var coachPermissions = []string{
	"user.create",
	"user.list",
	"user.get",
	"user.update",
	"user.delete",
	"user.update-email",
	"user.password-reset",
	"membership.approve",
	"membership.approvePayment",
	"membership.reject",
	"membership.create",
	"membership.list",
	"membership.get",
	"membership.delete",
	"session.create",
	"session.list",
	"session.get",
	"session.update",
	"session.delete",
	"log.view",
	"log.create",
	"log.update",
	"log.delete",
}

// All is the full role table, ordered by descending authority.
var All = []Role{
	{
		ID:          "president",
		Name:        "Kulüp Başkanı",
		Description: "Kulübün tüm faaliyetlerini yöneten en üst düzey yönetici.",
		Color:       "#D32F2F",
		Permissions: managementPermissions,
		Level:       5,
	},
	{
		ID:          "vicepresident",
		Name:        "Başkan Yardımcısı",
		Description: "Kulüp başkanına yardım eden ve gerektiğinde yetkilerini kullanan yardımcı.",
		Color:       "#1976D2",
		Permissions: managementPermissions,
		Level:       4,
	},
	{
		ID:          "boardmember",
		Name:        "Yönetim Kurulu Üyesi",
		Description: "Kulüp kararlarında söz sahibi olan yönetim kurulu üyesi.",
		Color:       "#388E3C",
		Permissions: managementPermissions,
		Level:       3,
	},
	{
		ID:          "coach",
		Name:        "Antrenör",
		Description: "Grup dersleri veren profesyonel tenis antrenörü.",
		Color:       "#FBC02D",
		Permissions: coachPermissions,
		Level:       2,
	},
	{
		ID:          "member",
		Name:        "Üye",
		Description: "Kulübün etkinliklerine katılabilen standart üye.",
		Color:       "#2196F3",
		Permissions: []string{},
		Level:       1,
		IsDefault:   true,
	},
}

// GetByID returns the role with the given id.
func GetByID(id string) (Role, bool) {
	for _, role := range All {
		if role.ID == id {
			return role, true
		}
	}
	return Role{}, false
}

// NameByID returns the display name for a role id, or the id itself
// when unknown.
func NameByID(id string) string {
	if role, ok := GetByID(id); ok {
		return role.Name
	}
	return id
}

// ColorByID returns the display color for a role id, or the fallback
// gray when unknown.
func ColorByID(id string) string {
	if role, ok := GetByID(id); ok {
		return role.Color
	}
	return FallbackColor
}

// Default returns the role assigned on first registration.
func Default() Role {
	for _, role := range All {
		if role.IsDefault {
			return role
		}
	}
	return Role{}
}

// Names maps every defined role id to its display name.
func Names() map[string]string {
	names := make(map[string]string, len(All))
	for _, role := range All {
		names[role.ID] = role.Name
	}
	return names
}

// Colors maps every defined role id to its display color.
func Colors() map[string]string {
	colors := make(map[string]string, len(All))
	for _, role := range All {
		colors[role.ID] = role.Color
	}
	return colors
}

// IsKnown reports whether the id names a defined role.
func IsKnown(id string) bool {
	_, ok := GetByID(id)
	return ok
}
