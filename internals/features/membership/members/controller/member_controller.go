package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/configs"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	dto "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/dto"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type MemberController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db, Validate: validator.New()}
}

const memberNumberPrefix = "AJB"

// nextNumberAfter incrémente la séquence du dernier numéro attribué.
// Au-delà de 9999 le numéro s'allonge naturellement (AJB-10000).
func nextNumberAfter(last string) string {
	seq := 0
	if last != "" {
		fmt.Sscanf(last, memberNumberPrefix+"-%d", &seq)
	}
	return fmt.Sprintf("%s-%04d", memberNumberPrefix, seq+1)
}

// nextMemberNumber génère le prochain numéro de membre (AJB-0001, AJB-0002, …)
// à partir du plus grand numéro existant, y compris les membres supprimés.
// Le tri se fait sur la longueur puis la valeur : AJB-10000 prime sur AJB-9999.
func nextMemberNumber(tx *gorm.DB) (string, error) {
	var last string
	err := tx.Model(&model.MemberModel{}).
		Unscoped().
		Where("member_number LIKE ?", memberNumberPrefix+"-%").
		Order("length(member_number) DESC, member_number DESC").
		Limit(1).
		Pluck("member_number", &last).Error
	if err != nil {
		return "", err
	}
	return nextNumberAfter(last), nil
}

/* ======================= CREATE ======================= */
// POST /api/a/members
func (h *MemberController) Create(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	registeredBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	m := req.ToModel(&registeredBy)

	// Deux créations concurrentes peuvent calculer le même numéro ; on
	// réessaie sur le conflit d'unicité.
	for attempt := 0; attempt < 3; attempt++ {
		num, err := nextMemberNumber(h.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Échec de la génération du numéro de membre")
		}
		m.MemberNumber = num

		err = h.DB.Create(&m).Error
		if err == nil {
			break
		}
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			if attempt == 2 {
				return fiber.NewError(fiber.StatusConflict, "Numéro de membre déjà attribué, réessayez")
			}
			continue
		}
		if strings.Contains(msg, "foreign") {
			return fiber.NewError(fiber.StatusBadRequest, "Famille, concession ou catégorie inexistante")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de l'enregistrement du membre")
	}

	var created model.MemberModel
	if err := h.DB.Preload("Family").Preload("House").
		Where("member_id = ?", m.MemberID).First(&created).Error; err == nil {
		m = created
	}
	return helper.Created(c, "Membre enregistré", dto.FromModel(m))
}

/* ======================== LIST ======================== */
// GET /api/u/members?family_id=&status=&zone=&q=&page=&per_page=
// Les rôles à portée familiale ne voient que leur propre famille.
func (h *MemberController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.MemberModel{}).
		Preload("Family").Preload("House")

	role, _ := helper.GetRoleFromToken(c)
	if constants.RoleIn(role, constants.FamilyRoles) {
		if scope := helper.GetFamilyScopeFromToken(c); scope != nil {
			q = q.Where("member_family_id = ?", *scope)
		}
	} else if fid := strings.TrimSpace(c.Query("family_id")); fid != "" {
		q = q.Where("member_family_id = ?", fid)
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("member_status = ?", status)
	}
	if zone := strings.TrimSpace(c.Query("zone")); zone != "" {
		q = q.Where("member_zone = ?", constants.NormalizeZone(zone))
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(member_first_name) LIKE ? OR LOWER(member_last_name) LIKE ? OR LOWER(member_number) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MemberModel
	if err := q.Order("member_last_name ASC, member_first_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"members":    dto.FromModels(rows),
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

/* ======================== GET BY ID ======================== */
// GET /api/u/members/:id
func (h *MemberController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row model.MemberModel
	if err := h.DB.Preload("Family").Preload("House").
		Where("member_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Membre introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	role, _ := helper.GetRoleFromToken(c)
	if constants.RoleIn(role, constants.FamilyRoles) {
		if scope := helper.GetFamilyScopeFromToken(c); scope != nil && row.MemberFamilyID != *scope {
			return fiber.NewError(fiber.StatusForbidden, "Ce membre n'appartient pas à votre famille")
		}
	}

	return helper.Success(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/members/:id : le numéro de membre n'est jamais modifiable.
func (h *MemberController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var curr model.MemberModel
	if err := h.DB.Where("member_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Membre introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.MemberFirstName != nil {
		patch["member_first_name"] = *req.MemberFirstName
	}
	if req.MemberLastName != nil {
		patch["member_last_name"] = *req.MemberLastName
	}
	if req.MemberGender != nil {
		patch["member_gender"] = *req.MemberGender
	}
	if req.MemberBirthDate != nil {
		patch["member_birth_date"] = *req.MemberBirthDate
	}
	if req.MemberFamilyID != nil {
		patch["member_family_id"] = *req.MemberFamilyID
	}
	if req.MemberHouseID != nil {
		patch["member_house_id"] = *req.MemberHouseID
	}
	if req.MemberCategoryID != nil {
		patch["member_category_id"] = *req.MemberCategoryID
	}
	if req.MemberPhone != nil {
		patch["member_phone"] = *req.MemberPhone
	}
	if req.MemberWhatsapp != nil {
		patch["member_whatsapp"] = *req.MemberWhatsapp
	}
	if req.MemberEmail != nil {
		patch["member_email"] = *req.MemberEmail
	}
	if req.MemberZone != nil {
		patch["member_zone"] = constants.NormalizeZone(*req.MemberZone)
	}
	if req.MemberStatus != nil {
		patch["member_status"] = *req.MemberStatus
	}
	if req.MemberUserID != nil {
		patch["member_user_id"] = *req.MemberUserID
	}
	if req.MemberNotes != nil {
		patch["member_notes"] = *req.MemberNotes
	}
	if len(patch) == 0 {
		return helper.Success(c, "Aucune modification", dto.FromModel(curr))
	}

	if err := h.DB.Model(&model.MemberModel{}).
		Where("member_id = ?", idStr).
		Updates(patch).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "foreign") {
			return fiber.NewError(fiber.StatusBadRequest, "Famille, concession ou catégorie inexistante")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la mise à jour")
	}

	var updated model.MemberModel
	if err := h.DB.Preload("Family").Preload("House").
		Where("member_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.Success(c, "Membre mis à jour", dto.FromModel(curr))
	}
	return helper.Success(c, "Membre mis à jour", dto.FromModel(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/members/:id
func (h *MemberController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	res := h.DB.Where("member_id = ?", idStr).Delete(&model.MemberModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Membre introuvable")
	}

	return helper.Success(c, "Membre supprimé", fiber.Map{"id": idStr})
}

/* ======================== PHOTO ======================== */
// POST /api/a/members/:id/photo (multipart, champ "photo")
func (h *MemberController) UploadPhoto(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row model.MemberModel
	if err := h.DB.Where("member_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Membre introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Photo manquante (champ \"photo\")")
	}

	url, err := helper.SaveMemberPhoto(configs.UploadDir, fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Model(&model.MemberModel{}).
		Where("member_id = ?", idStr).
		Update("member_photo_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de l'enregistrement de la photo")
	}

	return helper.Success(c, "Photo enregistrée", fiber.Map{"member_photo_url": url})
}

/* ======================== VERIFICATION PUBLIQUE ======================== */
// GET /api/public/members/verify/:id
// Cible du QR code de la carte de membre. Champs publics uniquement.
func (h *MemberController) Verify(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row model.MemberModel
	if err := h.DB.Preload("Family").
		Where("member_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Membre introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ToPublic(row))
}
