package services

import (
	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"
)

// ColorService backs the color admin screen. Colors are not joined into
// product variants anywhere; see DESIGN.md.
type ColorService struct {
	repo *repository.ColorRepository
}

func NewColorService(repo *repository.ColorRepository) *ColorService {
	return &ColorService{repo: repo}
}

func (s *ColorService) Create(name, code string) (*entity.Color, error) {
	color := &entity.Color{Name: name, Code: code, IsActive: true}
	if err := s.repo.Create(color); err != nil {
		return nil, err
	}
	return color, nil
}

func (s *ColorService) Update(id uint, name, code string) (*entity.Color, error) {
	updates := map[string]any{}
	if name != "" {
		updates["name"] = name
	}
	if code != "" {
		updates["code"] = code
	}
	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByID(id)
}

func (s *ColorService) Archive(id uint) error {
	return s.repo.SetActive(id, false)
}

func (s *ColorService) Restore(id uint) error {
	return s.repo.SetActive(id, true)
}

func (s *ColorService) ListAll() ([]entity.Color, error) {
	var colors []entity.Color
	err := s.repo.FindAll(&colors)
	return colors, err
}
