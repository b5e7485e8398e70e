package model

import (
	"time"

	"github.com/google/uuid"
)

// Levels form the middle tier of the Module → Level → SubTopic tree.
// Deleting a module cascades down.
type LevelModel struct {
	LevelID        uuid.UUID `gorm:"column:level_id;type:uuid;default:gen_random_uuid();primaryKey" json:"level_id"`
	LevelTitle     string    `gorm:"column:level_title;type:varchar(255);not null" json:"level_title"`
	LevelModuleID  uuid.UUID `gorm:"column:level_module_id;type:uuid;not null;index" json:"level_module_id"`
	LevelOrder     int       `gorm:"column:level_order;not null;default:0" json:"level_order"`
	LevelCreatedAt time.Time `gorm:"column:level_created_at;autoCreateTime" json:"level_created_at"`

	Module    *ModuleModel    `gorm:"foreignKey:LevelModuleID;references:ModuleID;constraint:OnDelete:CASCADE" json:"module,omitempty"`
	SubTopics []SubTopicModel `gorm:"foreignKey:SubTopicLevelID;references:LevelID" json:"subtopics,omitempty"`
}

func (LevelModel) TableName() string {
	return "levels"
}
