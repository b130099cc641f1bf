package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	categoryModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contribution_categories/model"
	authService "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/auth/service"
)

// Catégories de cotisants proposées par défaut à la première mise en route.
var defaultCategories = []categoryModel.ContributionCategoryModel{
	{CategoryName: "Travailleur", CategoryMonthlyAmount: 2000, CategoryIsActive: true, CategoryDisplayOrder: 1},
	{CategoryName: "Étudiant", CategoryMonthlyAmount: 1000, CategoryIsActive: true, CategoryDisplayOrder: 2},
	{CategoryName: "Retraité", CategoryMonthlyAmount: 1000, CategoryIsActive: true, CategoryDisplayOrder: 3},
	{CategoryName: "Diaspora", CategoryMonthlyAmount: 5000, CategoryIsActive: true, CategoryDisplayOrder: 4},
}

// Run exécute les seeds idempotents si SEED_ON_BOOT=true.
func Run(db *gorm.DB) {
	if os.Getenv("SEED_ON_BOOT") != "true" {
		return
	}

	created, err := authService.BootstrapAdmin(db)
	if err != nil {
		log.Printf("⚠️ Seed admin: %v", err)
	} else if created {
		log.Println("🌱 Compte administrateur initial créé")
	}

	for _, cat := range defaultCategories {
		var count int64
		db.Model(&categoryModel.ContributionCategoryModel{}).
			Where("category_name = ?", cat.CategoryName).
			Count(&count)
		if count > 0 {
			continue
		}
		c := cat
		if err := db.Create(&c).Error; err != nil {
			log.Printf("⚠️ Seed catégorie %s: %v", cat.CategoryName, err)
		} else {
			log.Printf("🌱 Catégorie %s créée (%d FCFA/mois)", cat.CategoryName, cat.CategoryMonthlyAmount)
		}
	}
}
