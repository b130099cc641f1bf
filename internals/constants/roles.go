package constants

import "fmt"

// Rôles applicatifs (hiérarchie à neuf valeurs)
const (
	RoleAdmin              = "admin"
	RolePresident          = "president"
	RoleVicePresident      = "vice_president"
	RoleTresorier          = "tresorier"
	RoleTresorierAdjoint   = "tresorier_adjoint"
	RoleCommissaireComptes = "commissaire_comptes"
	RoleChefFamille        = "chef_famille"
	RoleResponsableFamille = "responsable_famille"
	RoleMembre             = "membre"
)

// Templates de message d'erreur par rôle
const (
	ErrOnlyAdminsCanAccess  = "❌ Seul un administrateur peut accéder à %s."
	ErrOnlyBureauCanAccess  = "❌ Seul un membre du bureau peut accéder à %s."
	ErrOnlyFinanceCanAccess = "❌ Seul le trésorier ou un administrateur peut accéder à %s."
	ErrOnlyAuditCanAccess   = "❌ Seul un commissaire aux comptes ou un administrateur peut accéder à %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorBureau(feature string) string {
	return fmt.Sprintf(ErrOnlyBureauCanAccess, feature)
}

func RoleErrorFinance(feature string) string {
	return fmt.Sprintf(ErrOnlyFinanceCanAccess, feature)
}

func RoleErrorAudit(feature string) string {
	return fmt.Sprintf(ErrOnlyAuditCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePresident,
		RoleVicePresident,
		RoleTresorier,
		RoleTresorierAdjoint,
		RoleCommissaireComptes,
		RoleChefFamille,
		RoleResponsableFamille,
		RoleMembre,
	}

	// Bureau = direction de l'association
	AdminRoles = []string{
		RoleAdmin,
		RolePresident,
		RoleVicePresident,
	}

	FinanceRoles = []string{
		RoleAdmin,
		RolePresident,
		RoleTresorier,
		RoleTresorierAdjoint,
	}

	AuditRoles = []string{
		RoleAdmin,
		RoleCommissaireComptes,
	}

	FamilyRoles = []string{
		RoleChefFamille,
		RoleResponsableFamille,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	// Habilités à consulter et exporter les rapports
	ReportRoles = []string{
		RoleAdmin,
		RolePresident,
		RoleVicePresident,
		RoleTresorier,
		RoleTresorierAdjoint,
		RoleCommissaireComptes,
	}
)

// Libellés affichés côté client
var RoleLabels = map[string]string{
	RoleAdmin:              "Administrateur",
	RolePresident:          "Président",
	RoleVicePresident:      "Vice-président",
	RoleTresorier:          "Trésorier",
	RoleTresorierAdjoint:   "Trésorier adjoint",
	RoleCommissaireComptes: "Commissaire aux comptes",
	RoleChefFamille:        "Chef de famille",
	RoleResponsableFamille: "Responsable de famille",
	RoleMembre:             "Membre",
}

func RoleLabel(role string) string {
	if l, ok := RoleLabels[role]; ok {
		return l
	}
	return "Membre"
}

func RoleIn(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
