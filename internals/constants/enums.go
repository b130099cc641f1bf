package constants

// Statut d'un membre
const (
	MemberStatusActif       = "actif"
	MemberStatusInactif     = "inactif"
	MemberStatusSympathisant = "sympathisant"
)

var MemberStatuses = []string{
	MemberStatusActif,
	MemberStatusInactif,
	MemberStatusSympathisant,
}

// Statut d'une cotisation
const (
	ContributionStatusPayee     = "payee"
	ContributionStatusEnAttente = "en_attente"
	ContributionStatusEnRetard  = "en_retard"
	ContributionStatusAnnulee   = "annulee"
)

var ContributionStatuses = []string{
	ContributionStatusPayee,
	ContributionStatusEnAttente,
	ContributionStatusEnRetard,
	ContributionStatusAnnulee,
}

// Type d'une cotisation
const (
	ContributionTypeMensuelle     = "mensuelle"
	ContributionTypeExceptionnelle = "exceptionnelle"
	ContributionTypeDroitAdhesion = "droit_adhesion"
)

var ContributionTypes = []string{
	ContributionTypeMensuelle,
	ContributionTypeExceptionnelle,
	ContributionTypeDroitAdhesion,
}

// Zone géographique de résidence.
// L'ancienne valeur "ville_interieur" est absorbée par "autre_ville".
const (
	ZoneCapitale   = "capitale"
	ZoneVillage    = "village"
	ZoneAutreVille = "autre_ville"
	ZoneExterieur  = "exterieur"
)

var Zones = []string{
	ZoneCapitale,
	ZoneVillage,
	ZoneAutreVille,
	ZoneExterieur,
}

var ZoneLabels = map[string]string{
	ZoneCapitale:   "Abidjan",
	ZoneVillage:    "Village",
	ZoneAutreVille: "Autre ville",
	ZoneExterieur:  "Extérieur (diaspora)",
}

// Genre
const (
	GenderHomme = "homme"
	GenderFemme = "femme"
)

var Genders = []string{GenderHomme, GenderFemme}

// Canaux de notification
const (
	NotificationChannelEmail = "email"
	NotificationChannelSMS   = "sms"
)

// Statut d'une notification en file
const (
	NotificationStatusEnAttente  = "en_attente"
	NotificationStatusEnvoyee    = "envoyee"
	NotificationStatusEchouee    = "echouee"
	NotificationStatusAbandonnee = "abandonnee"
)

var MemberStatusLabels = map[string]string{
	MemberStatusActif:        "Membre actif",
	MemberStatusInactif:      "Membre inactif",
	MemberStatusSympathisant: "Sympathisant",
}

// MemberStatusLabel retourne le libellé affichable d'un statut de membre.
func MemberStatusLabel(status string) string {
	if lbl, ok := MemberStatusLabels[status]; ok {
		return lbl
	}
	return "Membre"
}

// NormalizeZone ramène les valeurs historiques à la forme canonique.
func NormalizeZone(zone string) string {
	if zone == "ville_interieur" {
		return ZoneAutreVille
	}
	return zone
}
