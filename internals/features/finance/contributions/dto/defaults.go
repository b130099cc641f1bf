package dto

import (
	"errors"
	"time"
)

// DefaultPeriod : la période d'une cotisation mensuelle retombe sur le mois
// courant quand elle n'est pas fournie.
func DefaultPeriod(month, year *int, now time.Time) (int, int) {
	if month != nil && year != nil {
		return *month, *year
	}
	return int(now.Month()), now.Year()
}

// MonthlyAmount : un montant nul est remplacé par le tarif mensuel de la
// catégorie du membre, comme le pré-remplissage du formulaire de saisie.
// Un montant explicite est toujours conservé.
func MonthlyAmount(requested, categoryTariff int64) (int64, error) {
	if requested > 0 {
		return requested, nil
	}
	if categoryTariff <= 0 {
		return 0, errors.New("la catégorie du membre n'a pas de tarif mensuel")
	}
	return categoryTariff, nil
}
