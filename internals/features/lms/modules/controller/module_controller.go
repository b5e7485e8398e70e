package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/modules/dto"
	"edulevels_backend/internals/features/lms/modules/model"
	helper "edulevels_backend/internals/helpers"
)

type ModuleController struct {
	DB *gorm.DB
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db}
}

var validate = validator.New()

// =============================
// 📄 List active modules
// =============================
func (ctrl *ModuleController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.ModuleModel{}).Where("module_is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count modules")
	}

	var modules []model.ModuleModel
	if err := query.
		Order("module_created_at ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&modules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch modules")
	}

	return helper.JsonList(c, "ok", modules, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Module detail with levels
// =============================
func (ctrl *ModuleController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var module model.ModuleModel
	if err := ctrl.DB.
		Preload("Levels", func(db *gorm.DB) *gorm.DB { return db.Order("level_order ASC") }).
		Preload("Levels.SubTopics", func(db *gorm.DB) *gorm.DB { return db.Order("subtopic_order ASC") }).
		First(&module, "module_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}
	return helper.JsonOK(c, "ok", module)
}

// =============================
// ➕ Create module
// =============================
func (ctrl *ModuleController) Create(c *fiber.Ctx) error {
	var body dto.CreateModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	module := model.ModuleModel{
		ModuleTitle:       body.ModuleTitle,
		ModuleDescription: body.ModuleDescription,
		ModulePrice:       body.ModulePrice,
		ModuleIsActive:    true,
	}
	if err := ctrl.DB.Create(&module).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create module")
	}
	return helper.JsonCreated(c, "Module created", module)
}

// =============================
// ✏️ Partial update
// =============================
func (ctrl *ModuleController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := body.Updates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields supplied")
	}

	res := ctrl.DB.Model(&model.ModuleModel{}).Where("module_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update module")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	var module model.ModuleModel
	if err := ctrl.DB.First(&module, "module_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload module")
	}
	return helper.JsonUpdated(c, "Module updated", module)
}

// =============================
// ❌ Delete module (cascades)
// =============================
func (ctrl *ModuleController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.ModuleModel{}, "module_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete module")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}
	return helper.JsonDeleted(c, "Module deleted", fiber.Map{"module_id": id})
}
