package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is the base model for all entities.
type Base struct {
	ID        string         `json:"id"       gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time      `json:"created"`
	UpdatedAt time.Time      `json:"modified"`
	DeletedAt gorm.DeletedAt `json:"-"        gorm:"index"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// TriState is a capability attribute with three states: unknown, yes, no.
// Stored as a nullable boolean; NULL means the residence never answered.
type TriState = *bool

// Yes and No build TriState literals.
func Yes() TriState { v := true; return &v }
func No() TriState  { v := false; return &v }
