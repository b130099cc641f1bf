package user_roles

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
)

// Permissions : les six capacités qui pilotent l'UI.
// Ce résolveur filtre des affordances, il ne fait PAS autorité :
// la vraie barrière reste le contrôle de rôle sur chaque route.
type Permissions struct {
	ManageMembers       bool   `json:"manage_members"`
	ManageContributions bool   `json:"manage_contributions"`
	ManageNews          bool   `json:"manage_news"`
	ViewReports         bool   `json:"view_reports"`
	ManageRoles         bool   `json:"manage_roles"`
	Audit               bool   `json:"audit"`
	RoleLabel           string `json:"role_label"`
}

// ResolvePermissions dérive les capacités par appartenance aux quatre
// groupes de rôles. Rôle inconnu ou vide → tout à false, libellé "Membre".
func ResolvePermissions(role string) Permissions {
	role = strings.TrimSpace(role)

	isAdmin := constants.RoleIn(role, constants.AdminRoles)
	isFinance := constants.RoleIn(role, constants.FinanceRoles)
	isAudit := constants.RoleIn(role, constants.AuditRoles)

	return Permissions{
		ManageMembers:       isAdmin,
		ManageContributions: isFinance,
		ManageNews:          isAdmin,
		ViewReports:         isAdmin || isFinance || isAudit,
		ManageRoles:         role == constants.RoleAdmin,
		Audit:               isAudit,
		RoleLabel:           constants.RoleLabel(role),
	}
}

type permissionRow struct {
	Role                string `gorm:"column:role"`
	ManageMembers       bool   `gorm:"column:manage_members"`
	ManageContributions bool   `gorm:"column:manage_contributions"`
	ManageNews          bool   `gorm:"column:manage_news"`
	ViewReports         bool   `gorm:"column:view_reports"`
	ManageRoles         bool   `gorm:"column:manage_roles"`
	Audit               bool   `gorm:"column:audit"`
}

// ResolvePermissionsDB interroge la fonction SQL fn_resolve_permissions.
// En cas d'erreur ou de résultat vide, bascule sur le résolveur local
// (best-effort, cohérent avec le fait que ce ne soit pas une barrière).
func ResolvePermissionsDB(db *gorm.DB, userID uuid.UUID, fallbackRole string) Permissions {
	if db == nil || userID == uuid.Nil {
		return ResolvePermissions(fallbackRole)
	}

	var row permissionRow
	err := db.Raw(`SELECT * FROM fn_resolve_permissions(?)`, userID).Scan(&row).Error
	if err != nil || row.Role == "" {
		// RPC indisponible ou sans résultat : le fallback local suffit pour l'UI
		return ResolvePermissions(fallbackRole)
	}

	return Permissions{
		ManageMembers:       row.ManageMembers,
		ManageContributions: row.ManageContributions,
		ManageNews:          row.ManageNews,
		ViewReports:         row.ViewReports,
		ManageRoles:         row.ManageRoles,
		Audit:               row.Audit,
		RoleLabel:           constants.RoleLabel(row.Role),
	}
}
