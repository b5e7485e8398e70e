package model

import (
	"time"

	"github.com/google/uuid"
)

type SubTopicContentModel struct {
	SubTopicContentID          uuid.UUID `gorm:"column:subtopic_content_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subtopic_content_id"`
	SubTopicContentSubTopicID  uuid.UUID `gorm:"column:subtopic_content_subtopic_id;type:uuid;not null;index" json:"subtopic_content_subtopic_id"`
	SubTopicContentTitle       string    `gorm:"column:subtopic_content_title;type:varchar(255);not null" json:"subtopic_content_title"`
	SubTopicContentBody        string    `gorm:"column:subtopic_content_body;type:text" json:"subtopic_content_body"`
	SubTopicContentIsPublished bool      `gorm:"column:subtopic_content_is_published;not null;default:false" json:"subtopic_content_is_published"`
	SubTopicContentOrderIndex  int       `gorm:"column:subtopic_content_order_index;not null;default:0" json:"subtopic_content_order_index"`
	SubTopicContentCreatedAt   time.Time `gorm:"column:subtopic_content_created_at;autoCreateTime" json:"subtopic_content_created_at"`

	SubTopic *SubTopicModel `gorm:"foreignKey:SubTopicContentSubTopicID;references:SubTopicID;constraint:OnDelete:CASCADE" json:"subtopic,omitempty"`
}

func (SubTopicContentModel) TableName() string {
	return "subtopic_contents"
}
