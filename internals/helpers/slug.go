package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var reDash = regexp.MustCompile(`-+`)

// GenerateSlug normalise une chaîne en slug :
// - minuscules
// - espaces & non-alphanumériques remplacés par "-"
// - tirets multiples réduits, tirets en bordure supprimés
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	out = reDash.ReplaceAllString(out, "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}

// EnsureUniqueSlug vérifie la colonne slug d'une table et suffixe -2, -3, …
// jusqu'à trouver une valeur libre. softDeleteColumn peut être vide.
func EnsureUniqueSlug(db *gorm.DB, base, table, slugColumn, softDeleteColumn string) (string, error) {
	if base == "" {
		base = "sans-titre"
	}

	candidate := base
	for i := 2; ; i++ {
		q := db.Table(table).Where(slugColumn+" = ?", candidate)
		if softDeleteColumn != "" {
			q = q.Where(softDeleteColumn + " IS NULL")
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
		if len(candidate) > DefaultSlugMaxLen {
			trim := DefaultSlugMaxLen - len(fmt.Sprintf("-%d", i))
			candidate = fmt.Sprintf("%s-%d", strings.Trim(base[:trim], "-"), i)
		}
	}
}
