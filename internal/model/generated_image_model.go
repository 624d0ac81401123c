package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GeneratedImage struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index:idx_generated_images_user_time,priority:1"`
	Prompt      string         `gorm:"type:text;not null"`
	ImageUrl    string         `gorm:"type:text;not null"`
	AspectRatio string         `gorm:"type:varchar(8);not null;default:'1:1'"`
	Parameters  datatypes.JSON
	Timestamp   time.Time `gorm:"not null;index:idx_generated_images_user_time,priority:2,sort:desc"`
}

func (GeneratedImage) TableName() string {
	return "generated_images"
}
