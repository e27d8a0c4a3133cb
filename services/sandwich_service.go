package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// SandwichService owns the sandwich write path (sandwich row plus its
// ingredient set as one transaction) and the composed read views.
//
// Concurrent updates to the same sandwich's ingredient set are last write
// wins: the clear+insert pair runs inside a single transaction, so the final
// state is always exactly one submitted set, never a merge.
type SandwichService struct {
	DB   *gorm.DB
	Repo *repository.SandwichRepository
}

func NewSandwichService(db *gorm.DB, repo *repository.SandwichRepository) *SandwichService {
	return &SandwichService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type SandwichInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	ImageURL    *string  `json:"image_url"`
	Rating      float64  `json:"rating" binding:"gte=0,lte=5"`
	Category    *string  `json:"category"`

	// nil means the key was absent and the ingredient set is left alone;
	// an empty array clears it
	Ingredients *[]string `json:"ingredients"`
}

type SandwichView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	Rating      float64   `json:"rating"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Ingredients []string  `json:"ingredients"`
}

// ----- Composer -----

func (s *SandwichService) List() ([]SandwichView, error) {
	sandwiches, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(sandwiches))
	for _, sw := range sandwiches {
		ids = append(ids, sw.ID)
	}
	names, err := s.Repo.IngredientNames(ids)
	if err != nil {
		return nil, err
	}

	views := make([]SandwichView, 0, len(sandwiches))
	for _, sw := range sandwiches {
		views = append(views, composeSandwich(&sw, names[sw.ID]))
	}
	return views, nil
}

func (s *SandwichService) Get(id uint) (*SandwichView, error) {
	sw, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	names, err := s.Repo.IngredientNames([]uint{sw.ID})
	if err != nil {
		return nil, err
	}
	v := composeSandwich(sw, names[sw.ID])
	return &v, nil
}

func composeSandwich(sw *entity.Sandwich, ingredients []string) SandwichView {
	if ingredients == nil {
		ingredients = make([]string, 0)
	}
	return SandwichView{
		ID:          sw.ID,
		Name:        sw.Name,
		Description: sw.Description,
		Price:       sw.Price,
		ImageURL:    sw.ImageURL,
		Rating:      sw.Rating,
		Category:    sw.Category,
		CreatedAt:   sw.CreatedAt,
		UpdatedAt:   sw.UpdatedAt,
		Ingredients: ingredients,
	}
}

// ----- Coordinator -----

func (s *SandwichService) Create(in *SandwichInput) (*SandwichView, error) {
	sw := entity.Sandwich{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		ImageURL:    in.ImageURL,
		Rating:      in.Rating,
		Category:    in.Category,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &sw); err != nil {
			return err
		}
		if in.Ingredients != nil && len(*in.Ingredients) > 0 {
			return s.linkIngredients(tx, sw.ID, *in.Ingredients)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(sw.ID)
}

func (s *SandwichService) Update(id uint, in *SandwichInput) (*SandwichView, error) {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sw := entity.Sandwich{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		ImageURL:    in.ImageURL,
		Rating:      in.Rating,
		Category:    in.Category,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, id, &sw); err != nil {
			return err
		}
		if in.Ingredients == nil {
			return nil
		}
		if err := s.Repo.ClearIngredients(tx, id); err != nil {
			return err
		}
		if len(*in.Ingredients) > 0 {
			return s.linkIngredients(tx, id, *in.Ingredients)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// linkIngredients ensures every named ingredient exists, then inserts one
// join row per resolved id. Resolving through a single IN query collapses
// duplicate names in the input.
func (s *SandwichService) linkIngredients(tx *gorm.DB, sandwichID uint, names []string) error {
	for _, name := range names {
		if err := s.Repo.EnsureIngredient(tx, name); err != nil {
			return err
		}
	}
	ids, err := s.Repo.IngredientIDs(tx, names)
	if err != nil {
		return err
	}
	return s.Repo.LinkIngredients(tx, sandwichID, ids)
}

// Delete removes the sandwich; its join rows go with it by cascade. A
// sandwich referenced by order items is not deletable (ErrSandwichInUse).
func (s *SandwichService) Delete(id uint) error {
	// single statement; the storage layer's cascade removes the join rows
	rows, err := s.Repo.Delete(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrSandwichInUse
		}
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
