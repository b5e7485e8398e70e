package model

import (
	"time"

	"github.com/google/uuid"

	moduleModel "edulevels_backend/internals/features/lms/modules/model"
	testModel "edulevels_backend/internals/features/lms/tests/model"
	userModel "edulevels_backend/internals/features/users/user/model"
)

type SubTopicTestResultModel struct {
	SubTopicTestResultID             uuid.UUID `gorm:"column:subtopic_test_result_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subtopic_test_result_id"`
	SubTopicTestResultUserID         uuid.UUID `gorm:"column:subtopic_test_result_user_id;type:uuid;not null;index" json:"subtopic_test_result_user_id"`
	SubTopicTestResultTestID         uuid.UUID `gorm:"column:subtopic_test_result_test_id;type:uuid;not null;index" json:"subtopic_test_result_test_id"`
	SubTopicTestResultSubTopicID     uuid.UUID `gorm:"column:subtopic_test_result_subtopic_id;type:uuid;not null" json:"subtopic_test_result_subtopic_id"`
	SubTopicTestResultLevelID        uuid.UUID `gorm:"column:subtopic_test_result_level_id;type:uuid;not null" json:"subtopic_test_result_level_id"`
	SubTopicTestResultModuleID       uuid.UUID `gorm:"column:subtopic_test_result_module_id;type:uuid;not null" json:"subtopic_test_result_module_id"`
	SubTopicTestResultScore          int       `gorm:"column:subtopic_test_result_score;not null" json:"subtopic_test_result_score"`
	SubTopicTestResultTotalQuestions int       `gorm:"column:subtopic_test_result_total_questions;not null" json:"subtopic_test_result_total_questions"`
	SubTopicTestResultCorrectAnswers int       `gorm:"column:subtopic_test_result_correct_answers;not null" json:"subtopic_test_result_correct_answers"`
	SubTopicTestResultPassed         bool      `gorm:"column:subtopic_test_result_passed;not null" json:"subtopic_test_result_passed"`
	SubTopicTestResultCompletedAt    time.Time `gorm:"column:subtopic_test_result_completed_at;not null" json:"subtopic_test_result_completed_at"`

	User     *userModel.UserModel         `gorm:"foreignKey:SubTopicTestResultUserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Test     *testModel.SubTopicTestModel `gorm:"foreignKey:SubTopicTestResultTestID;references:SubTopicTestID;constraint:OnDelete:CASCADE" json:"test,omitempty"`
	SubTopic *moduleModel.SubTopicModel   `gorm:"foreignKey:SubTopicTestResultSubTopicID;references:SubTopicID" json:"subtopic,omitempty"`
	Level    *moduleModel.LevelModel      `gorm:"foreignKey:SubTopicTestResultLevelID;references:LevelID" json:"level,omitempty"`
	Module   *moduleModel.ModuleModel     `gorm:"foreignKey:SubTopicTestResultModuleID;references:ModuleID" json:"module,omitempty"`
}

func (SubTopicTestResultModel) TableName() string {
	return "subtopic_test_results"
}
