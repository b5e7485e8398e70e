package model

import (
	"time"

	"github.com/google/uuid"
)

type ModuleModel struct {
	ModuleID          uuid.UUID `gorm:"column:module_id;type:uuid;default:gen_random_uuid();primaryKey" json:"module_id"`
	ModuleTitle       string    `gorm:"column:module_title;type:varchar(255);not null" json:"module_title"`
	ModuleDescription string    `gorm:"column:module_description;type:text" json:"module_description"`
	ModulePrice       int       `gorm:"column:module_price;not null;default:0" json:"module_price"`
	ModuleIsActive    bool      `gorm:"column:module_is_active;not null;default:true" json:"module_is_active"`
	ModuleCreatedAt   time.Time `gorm:"column:module_created_at;autoCreateTime" json:"module_created_at"`
	ModuleUpdatedAt   time.Time `gorm:"column:module_updated_at;autoUpdateTime" json:"module_updated_at"`

	Levels []LevelModel `gorm:"foreignKey:LevelModuleID;references:ModuleID" json:"levels,omitempty"`
}

func (ModuleModel) TableName() string {
	return "modules"
}
