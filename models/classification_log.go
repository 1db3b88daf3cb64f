// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassificationStatus string
type ClassificationSource string

const (
	Valid    ClassificationStatus = "VALID"
	Possible ClassificationStatus = "POSSIBLE"
	Invalid  ClassificationStatus = "INVALID"
)

const (
	SourceAPI   ClassificationSource = "API"
	SourceBulk  ClassificationSource = "BULK"
	SourceQueue ClassificationSource = "QUEUE"
)

type ClassificationLog struct {
	ID        uint                 `gorm:"primaryKey"`
	EID       uuid.UUID            `gorm:"type:uuid;not null;"`
	Source    ClassificationSource `gorm:"size:16;not null;index"`
	Status    ClassificationStatus `gorm:"size:16;not null;index"`
	Sanitized string               `gorm:"size:64;not null;"`
	Country   *string              `gorm:"size:16;default:null;"`
	Type      *string              `gorm:"size:32;default:null;"`
	Countries *string              `gorm:"size:255;default:null;"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	APIKeyID  *uint          `gorm:"index"`
}

func (l *ClassificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.EID == uuid.Nil {
		l.EID = uuid.New()
	}
	return
}

func init() {
	AllModels = append(AllModels, &ClassificationLog{})
}
