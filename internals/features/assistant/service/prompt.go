package service

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Types de conversation acceptés par le proxy.
const (
	TypeChat            = "chat"
	TypeChatWithContext = "chat-with-context"
	TypeNewsStructure   = "news-structure"
	TypeSummarize       = "summarize"
	TypeImage           = "image"
)

const basePrompt = "Tu es l'assistant de l'association AssoJereb (Côte d'Ivoire). " +
	"Tu réponds en français, de façon concise et polie, aux questions sur la vie " +
	"de l'association : membres, familles, cotisations, actualités."

const newsStructurePrompt = "Tu structures un texte brut d'actualité associative en " +
	"un contenu publiable : un titre court, un résumé de deux phrases, puis le corps " +
	"reformulé en paragraphes clairs. Tu réponds en français."

const summarizePrompt = "Tu résumes et améliores le texte fourni sans en changer le " +
	"sens. Tu réponds en français."

const imagePrompt = "Tu rédiges une description d'image détaillée et visuelle, en " +
	"français, à partir de la demande : scène, personnages, ambiance, couleurs. " +
	"La description doit pouvoir être donnée telle quelle à un générateur d'images."

// SystemPromptFor retourne le prompt système du type demandé. Un type inconnu
// retombe sur l'assistant général.
func SystemPromptFor(chatType, context string) string {
	switch chatType {
	case TypeNewsStructure:
		return newsStructurePrompt
	case TypeSummarize:
		return summarizePrompt
	case TypeImage:
		return imagePrompt
	case TypeChatWithContext:
		if context == "" {
			return basePrompt
		}
		return basePrompt + "\n\nContexte actuel de l'association :\n" + context
	default:
		return basePrompt
	}
}

// BuildContext assemble un instantané borné de la base pour l'injection de
// contexte : effectifs, familles, concessions, dernières actualités et
// catégories actives.
func BuildContext(db *gorm.DB) string {
	var b strings.Builder

	var memberCount, activeCount int64
	db.Table("members").Where("member_deleted_at IS NULL").Count(&memberCount)
	db.Table("members").Where("member_deleted_at IS NULL AND member_status = 'actif'").Count(&activeCount)
	fmt.Fprintf(&b, "- %d membres enregistrés dont %d actifs\n", memberCount, activeCount)

	var familyNames []string
	db.Table("families").Where("family_deleted_at IS NULL").
		Order("family_display_order ASC").Limit(30).
		Pluck("family_name", &familyNames)
	if len(familyNames) > 0 {
		fmt.Fprintf(&b, "- Familles : %s\n", strings.Join(familyNames, ", "))
	}

	var houseCount int64
	db.Table("houses").Where("house_deleted_at IS NULL").Count(&houseCount)
	fmt.Fprintf(&b, "- %d concessions recensées\n", houseCount)

	var newsTitles []string
	db.Table("news").Where("news_deleted_at IS NULL AND news_is_published = TRUE").
		Order("news_published_at DESC").Limit(5).
		Pluck("news_title", &newsTitles)
	if len(newsTitles) > 0 {
		fmt.Fprintf(&b, "- Dernières actualités : %s\n", strings.Join(newsTitles, " | "))
	}

	type catRow struct {
		Name   string
		Amount int64
	}
	var cats []catRow
	db.Table("contribution_categories").
		Select("category_name AS name, category_monthly_amount AS amount").
		Where("category_deleted_at IS NULL AND category_is_active = TRUE").
		Order("category_display_order ASC").Limit(20).
		Scan(&cats)
	for _, c := range cats {
		fmt.Fprintf(&b, "- Catégorie %s : %d FCFA/mois\n", c.Name, c.Amount)
	}

	return b.String()
}
