package model

import (
	"time"

	"github.com/google/uuid"

	moduleModel "edulevels_backend/internals/features/lms/modules/model"
	testModel "edulevels_backend/internals/features/lms/tests/model"
	userModel "edulevels_backend/internals/features/users/user/model"
)

// LevelTestResultModel is an append-only audit row: created once when a
// learner finishes a level test, never updated afterwards.
type LevelTestResultModel struct {
	LevelTestResultID             uuid.UUID `gorm:"column:level_test_result_id;type:uuid;default:gen_random_uuid();primaryKey" json:"level_test_result_id"`
	LevelTestResultUserID         uuid.UUID `gorm:"column:level_test_result_user_id;type:uuid;not null;index" json:"level_test_result_user_id"`
	LevelTestResultTestID         uuid.UUID `gorm:"column:level_test_result_test_id;type:uuid;not null;index" json:"level_test_result_test_id"`
	LevelTestResultLevelID        uuid.UUID `gorm:"column:level_test_result_level_id;type:uuid;not null" json:"level_test_result_level_id"`
	LevelTestResultModuleID       uuid.UUID `gorm:"column:level_test_result_module_id;type:uuid;not null" json:"level_test_result_module_id"`
	LevelTestResultScore          int       `gorm:"column:level_test_result_score;not null" json:"level_test_result_score"`
	LevelTestResultTotalQuestions int       `gorm:"column:level_test_result_total_questions;not null" json:"level_test_result_total_questions"`
	LevelTestResultCorrectAnswers int       `gorm:"column:level_test_result_correct_answers;not null" json:"level_test_result_correct_answers"`
	LevelTestResultPassed         bool      `gorm:"column:level_test_result_passed;not null" json:"level_test_result_passed"`
	LevelTestResultCompletedAt    time.Time `gorm:"column:level_test_result_completed_at;not null" json:"level_test_result_completed_at"`

	User   *userModel.UserModel      `gorm:"foreignKey:LevelTestResultUserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Test   *testModel.LevelTestModel `gorm:"foreignKey:LevelTestResultTestID;references:LevelTestID;constraint:OnDelete:CASCADE" json:"test,omitempty"`
	Level  *moduleModel.LevelModel   `gorm:"foreignKey:LevelTestResultLevelID;references:LevelID" json:"level,omitempty"`
	Module *moduleModel.ModuleModel  `gorm:"foreignKey:LevelTestResultModuleID;references:ModuleID" json:"module,omitempty"`
}

func (LevelTestResultModel) TableName() string {
	return "level_test_results"
}
