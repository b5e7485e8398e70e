package dto

// ============================
// Create / Update Request DTOs
// ============================

type CreateModuleRequest struct {
	ModuleTitle       string `json:"module_title" validate:"required"`
	ModuleDescription string `json:"module_description"`
	ModulePrice       int    `json:"module_price" validate:"min=0"`
}

// UpdateModuleRequest distinguishes "not supplied" from "supplied as zero"
// with pointer fields; only supplied keys reach the UPDATE.
type UpdateModuleRequest struct {
	ModuleTitle       *string `json:"module_title"`
	ModuleDescription *string `json:"module_description"`
	ModulePrice       *int    `json:"module_price" validate:"omitempty,min=0"`
	ModuleIsActive    *bool   `json:"module_is_active"`
}

// Updates builds the column map from supplied fields only.
func (r UpdateModuleRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.ModuleTitle != nil {
		updates["module_title"] = *r.ModuleTitle
	}
	if r.ModuleDescription != nil {
		updates["module_description"] = *r.ModuleDescription
	}
	if r.ModulePrice != nil {
		updates["module_price"] = *r.ModulePrice
	}
	if r.ModuleIsActive != nil {
		updates["module_is_active"] = *r.ModuleIsActive
	}
	return updates
}

type CreateLevelRequest struct {
	LevelTitle    string `json:"level_title" validate:"required"`
	LevelModuleID string `json:"level_module_id" validate:"required,uuid"`
	LevelOrder    int    `json:"level_order" validate:"min=0"`
}

type CreateSubTopicRequest struct {
	SubTopicTitle   string `json:"subtopic_title" validate:"required"`
	SubTopicLevelID string `json:"subtopic_level_id" validate:"required,uuid"`
	SubTopicOrder   int    `json:"subtopic_order" validate:"min=0"`
}

type CreateSubTopicContentRequest struct {
	SubTopicContentSubTopicID  string `json:"subtopic_content_subtopic_id" validate:"required,uuid"`
	SubTopicContentTitle       string `json:"subtopic_content_title" validate:"required"`
	SubTopicContentBody        string `json:"subtopic_content_body"`
	SubTopicContentIsPublished bool   `json:"subtopic_content_is_published"`
	SubTopicContentOrderIndex  int    `json:"subtopic_content_order_index" validate:"min=0"`
}
