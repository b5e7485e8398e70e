package model

import (
	"time"

	"github.com/google/uuid"
)

type SubTopicModel struct {
	SubTopicID        uuid.UUID `gorm:"column:subtopic_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subtopic_id"`
	SubTopicTitle     string    `gorm:"column:subtopic_title;type:varchar(255);not null" json:"subtopic_title"`
	SubTopicLevelID   uuid.UUID `gorm:"column:subtopic_level_id;type:uuid;not null;index" json:"subtopic_level_id"`
	SubTopicOrder     int       `gorm:"column:subtopic_order;not null;default:0" json:"subtopic_order"`
	SubTopicCreatedAt time.Time `gorm:"column:subtopic_created_at;autoCreateTime" json:"subtopic_created_at"`

	Level    *LevelModel            `gorm:"foreignKey:SubTopicLevelID;references:LevelID;constraint:OnDelete:CASCADE" json:"level,omitempty"`
	Contents []SubTopicContentModel `gorm:"foreignKey:SubTopicContentSubTopicID;references:SubTopicID" json:"contents,omitempty"`
}

func (SubTopicModel) TableName() string {
	return "subtopics"
}
