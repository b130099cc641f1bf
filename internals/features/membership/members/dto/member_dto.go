package dto

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
)

// ========================= REQUESTS =========================

type CreateMemberRequest struct {
	MemberFirstName string  `json:"member_first_name" validate:"required,min=2,max=100"`
	MemberLastName  string  `json:"member_last_name" validate:"required,min=2,max=100"`
	MemberGender    string  `json:"member_gender" validate:"required,oneof=homme femme"`
	MemberBirthDate *string `json:"member_birth_date" validate:"omitempty,datetime=2006-01-02"`

	MemberFamilyID   uuid.UUID  `json:"member_family_id" validate:"required"`
	MemberHouseID    *uuid.UUID `json:"member_house_id"`
	MemberCategoryID *uuid.UUID `json:"member_category_id"`

	MemberPhone    *string `json:"member_phone" validate:"omitempty,max=30"`
	MemberWhatsapp *string `json:"member_whatsapp" validate:"omitempty,max=30"`
	MemberEmail    *string `json:"member_email" validate:"omitempty,email"`

	MemberZone   string  `json:"member_zone" validate:"omitempty,oneof=capitale village autre_ville exterieur ville_interieur"`
	MemberStatus string  `json:"member_status" validate:"omitempty,oneof=actif inactif sympathisant"`
	MemberNotes  *string `json:"member_notes"`
}

type UpdateMemberRequest struct {
	MemberFirstName *string `json:"member_first_name" validate:"omitempty,min=2,max=100"`
	MemberLastName  *string `json:"member_last_name" validate:"omitempty,min=2,max=100"`
	MemberGender    *string `json:"member_gender" validate:"omitempty,oneof=homme femme"`
	MemberBirthDate *string `json:"member_birth_date" validate:"omitempty,datetime=2006-01-02"`

	MemberFamilyID   *uuid.UUID `json:"member_family_id"`
	MemberHouseID    *uuid.UUID `json:"member_house_id"`
	MemberCategoryID *uuid.UUID `json:"member_category_id"`

	MemberPhone    *string `json:"member_phone" validate:"omitempty,max=30"`
	MemberWhatsapp *string `json:"member_whatsapp" validate:"omitempty,max=30"`
	MemberEmail    *string `json:"member_email" validate:"omitempty,email"`

	MemberZone   *string `json:"member_zone" validate:"omitempty,oneof=capitale village autre_ville exterieur ville_interieur"`
	MemberStatus *string `json:"member_status" validate:"omitempty,oneof=actif inactif sympathisant"`
	MemberUserID *uuid.UUID `json:"member_user_id"`
	MemberNotes  *string `json:"member_notes"`
}

// ========================= RESPONSES =========================

type MemberResponse struct {
	MemberID     uuid.UUID `json:"member_id"`
	MemberNumber string    `json:"member_number"`

	MemberFirstName string  `json:"member_first_name"`
	MemberLastName  string  `json:"member_last_name"`
	MemberGender    string  `json:"member_gender"`
	MemberBirthDate *string `json:"member_birth_date,omitempty"`

	MemberFamilyID   uuid.UUID  `json:"member_family_id"`
	MemberFamilyName string     `json:"member_family_name,omitempty"`
	MemberHouseID    *uuid.UUID `json:"member_house_id,omitempty"`
	MemberHouseNumber string    `json:"member_house_number,omitempty"`
	MemberCategoryID *uuid.UUID `json:"member_category_id,omitempty"`

	MemberPhone    *string `json:"member_phone,omitempty"`
	MemberWhatsapp *string `json:"member_whatsapp,omitempty"`
	MemberEmail    *string `json:"member_email,omitempty"`

	MemberZone     string     `json:"member_zone"`
	MemberStatus   string     `json:"member_status"`
	MemberPhotoURL *string    `json:"member_photo_url,omitempty"`
	MemberNotes    *string    `json:"member_notes,omitempty"`
	MemberJoinedAt time.Time  `json:"member_joined_at"`
	MemberUserID   *uuid.UUID `json:"member_user_id,omitempty"`
}

// PublicMemberResponse : champs exposés par la vérification publique de la
// carte de membre. Jamais de contacts ni de notes ici.
type PublicMemberResponse struct {
	MemberNumber    string `json:"member_number"`
	MemberFullName  string `json:"member_full_name"`
	MemberFamily    string `json:"member_family,omitempty"`
	MemberStatus    string `json:"member_status"`
	MemberStatusLbl string `json:"member_status_label"`
	MemberPhotoURL  string `json:"member_photo_url,omitempty"`
	MemberSince     string `json:"member_since"`
}

// ========================= CONVERTERS =========================

func (r CreateMemberRequest) ToModel(registeredBy *uuid.UUID) model.MemberModel {
	m := model.MemberModel{
		MemberFirstName:    r.MemberFirstName,
		MemberLastName:     r.MemberLastName,
		MemberGender:       r.MemberGender,
		MemberFamilyID:     r.MemberFamilyID,
		MemberHouseID:      r.MemberHouseID,
		MemberCategoryID:   r.MemberCategoryID,
		MemberPhone:        r.MemberPhone,
		MemberWhatsapp:     r.MemberWhatsapp,
		MemberEmail:        r.MemberEmail,
		MemberZone:         constants.NormalizeZone(r.MemberZone),
		MemberStatus:       r.MemberStatus,
		MemberNotes:        r.MemberNotes,
		MemberRegisteredBy: registeredBy,
		MemberJoinedAt:     time.Now(),
	}
	if m.MemberZone == "" {
		m.MemberZone = constants.ZoneCapitale
	}
	if m.MemberStatus == "" {
		m.MemberStatus = constants.MemberStatusActif
	}
	if r.MemberBirthDate != nil {
		if t, err := time.Parse("2006-01-02", *r.MemberBirthDate); err == nil {
			m.MemberBirthDate = &t
		}
	}
	return m
}

func FromModel(m model.MemberModel) MemberResponse {
	resp := MemberResponse{
		MemberID:         m.MemberID,
		MemberNumber:     m.MemberNumber,
		MemberFirstName:  m.MemberFirstName,
		MemberLastName:   m.MemberLastName,
		MemberGender:     m.MemberGender,
		MemberFamilyID:   m.MemberFamilyID,
		MemberHouseID:    m.MemberHouseID,
		MemberCategoryID: m.MemberCategoryID,
		MemberPhone:      m.MemberPhone,
		MemberWhatsapp:   m.MemberWhatsapp,
		MemberEmail:      m.MemberEmail,
		MemberZone:       m.MemberZone,
		MemberStatus:     m.MemberStatus,
		MemberPhotoURL:   m.MemberPhotoURL,
		MemberNotes:      m.MemberNotes,
		MemberJoinedAt:   m.MemberJoinedAt,
		MemberUserID:     m.MemberUserID,
	}
	if m.MemberBirthDate != nil {
		s := m.MemberBirthDate.Format("2006-01-02")
		resp.MemberBirthDate = &s
	}
	if m.Family != nil {
		resp.MemberFamilyName = m.Family.FamilyName
	}
	if m.House != nil {
		resp.MemberHouseNumber = strconv.Itoa(m.House.HouseNumber)
	}
	return resp
}

func FromModels(ms []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

func ToPublic(m model.MemberModel) PublicMemberResponse {
	resp := PublicMemberResponse{
		MemberNumber:    m.MemberNumber,
		MemberFullName:  m.MemberFirstName + " " + m.MemberLastName,
		MemberStatus:    m.MemberStatus,
		MemberStatusLbl: constants.MemberStatusLabel(m.MemberStatus),
		MemberSince:     m.MemberJoinedAt.Format("02/01/2006"),
	}
	if m.Family != nil {
		resp.MemberFamily = m.Family.FamilyName
	}
	if m.MemberPhotoURL != nil {
		resp.MemberPhotoURL = *m.MemberPhotoURL
	}
	return resp
}
