package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	familyModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/families/model"
	houseModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/houses/model"
)

// MemberModel : registre des membres. Le numéro de membre est unique et
// immuable après création.
type MemberModel struct {
	MemberID     uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`
	MemberNumber string    `gorm:"column:member_number;size:20;not null;uniqueIndex" json:"member_number"`

	MemberFirstName string     `gorm:"column:member_first_name;size:100;not null" json:"member_first_name"`
	MemberLastName  string     `gorm:"column:member_last_name;size:100;not null" json:"member_last_name"`
	MemberGender    string     `gorm:"column:member_gender;type:varchar(10);not null" json:"member_gender"`
	MemberBirthDate *time.Time `gorm:"column:member_birth_date;type:date" json:"member_birth_date,omitempty"`

	// FK : famille obligatoire, concession et catégorie optionnelles
	MemberFamilyID   uuid.UUID  `gorm:"column:member_family_id;type:uuid;not null;index" json:"member_family_id"`
	MemberHouseID    *uuid.UUID `gorm:"column:member_house_id;type:uuid" json:"member_house_id,omitempty"`
	MemberCategoryID *uuid.UUID `gorm:"column:member_category_id;type:uuid" json:"member_category_id,omitempty"`

	// Contacts (tous optionnels)
	MemberPhone    *string `gorm:"column:member_phone;size:30" json:"member_phone,omitempty"`
	MemberWhatsapp *string `gorm:"column:member_whatsapp;size:30" json:"member_whatsapp,omitempty"`
	MemberEmail    *string `gorm:"column:member_email;size:255" json:"member_email,omitempty"`

	MemberZone   string `gorm:"column:member_zone;type:varchar(20);not null;default:'capitale'" json:"member_zone"`
	MemberStatus string `gorm:"column:member_status;type:varchar(20);not null;default:'actif'" json:"member_status"`

	MemberUserID   *uuid.UUID `gorm:"column:member_user_id;type:uuid" json:"member_user_id,omitempty"`
	MemberPhotoURL *string    `gorm:"column:member_photo_url;type:text" json:"member_photo_url,omitempty"`
	MemberNotes    *string    `gorm:"column:member_notes;type:text" json:"member_notes,omitempty"`

	MemberRegisteredBy *uuid.UUID     `gorm:"column:member_registered_by;type:uuid" json:"member_registered_by,omitempty"`
	MemberJoinedAt     time.Time      `gorm:"column:member_joined_at;not null;default:now()" json:"member_joined_at"`
	MemberCreatedAt    time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt    time.Time      `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
	MemberDeletedAt    gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"-"`

	// Relations
	Family *familyModel.FamilyModel `gorm:"foreignKey:MemberFamilyID;references:FamilyID" json:"family,omitempty"`
	House  *houseModel.HouseModel   `gorm:"foreignKey:MemberHouseID;references:HouseID" json:"house,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
