package repository

import (
	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SandwichRepository struct {
	DB *gorm.DB
}

func NewSandwichRepository(db *gorm.DB) *SandwichRepository {
	return &SandwichRepository{DB: db}
}

// ---------------- Sandwiches ----------------

func (r *SandwichRepository) List() ([]entity.Sandwich, error) {
	var out []entity.Sandwich
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *SandwichRepository) Get(id uint) (*entity.Sandwich, error) {
	var s entity.Sandwich
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SandwichRepository) Create(tx *gorm.DB, s *entity.Sandwich) error {
	return tx.Create(s).Error
}

// Update is a full replace of the listed columns, zero values included.
func (r *SandwichRepository) Update(tx *gorm.DB, id uint, s *entity.Sandwich) error {
	return tx.Model(&entity.Sandwich{}).Where("id = ?", id).Updates(map[string]any{
		"name":        s.Name,
		"description": s.Description,
		"price":       s.Price,
		"image_url":   s.ImageURL,
		"rating":      s.Rating,
		"category":    s.Category,
	}).Error
}

func (r *SandwichRepository) Delete(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Delete(&entity.Sandwich{}, id)
	return res.RowsAffected, res.Error
}

// ---------------- Ingredients / join rows ----------------

func (r *SandwichRepository) ClearIngredients(tx *gorm.DB, sandwichID uint) error {
	return tx.Where("sandwich_id = ?", sandwichID).Delete(&entity.SandwichIngredient{}).Error
}

// EnsureIngredient is an idempotent insert: a name that already exists is
// silently skipped, never an error.
func (r *SandwichRepository) EnsureIngredient(tx *gorm.DB, name string) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.Ingredient{Name: name}).Error
}

func (r *SandwichRepository) IngredientIDs(tx *gorm.DB, names []string) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.Ingredient{}).
		Where("name IN ?", names).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *SandwichRepository) LinkIngredients(tx *gorm.DB, sandwichID uint, ingredientIDs []uint) error {
	rows := make([]entity.SandwichIngredient, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		rows = append(rows, entity.SandwichIngredient{SandwichID: sandwichID, IngredientID: id})
	}
	return tx.Create(&rows).Error
}

// IngredientNames groups ingredient names by sandwich id, application-side.
// Sandwiches without rows simply have no key in the map; callers default to
// an empty slice.
func (r *SandwichRepository) IngredientNames(sandwichIDs []uint) (map[uint][]string, error) {
	out := make(map[uint][]string)
	if len(sandwichIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		SandwichID uint
		Name       string
	}
	err := r.DB.Table("sandwich_ingredients si").
		Select("si.sandwich_id, i.name").
		Joins("JOIN ingredients i ON i.id = si.ingredient_id").
		Where("si.sandwich_id IN ?", sandwichIDs).
		Order("si.sandwich_id, i.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.SandwichID] = append(out[row.SandwichID], row.Name)
	}
	return out, nil
}
