package services

import (
	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ListAll() ([]entity.User, error) {
	var users []entity.User
	err := s.repo.FindAll(&users)
	return users, err
}

func (s *UserService) GetByID(id uint) (*entity.User, error) {
	return s.repo.FindByID(id)
}

func (s *UserService) UpdateRole(userID uint, roleName string) (*entity.User, error) {
	role, err := s.repo.FindRoleByName(roleName)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(userID, map[string]any{"role_id": role.ID}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(userID)
}

// Archive disables the account; Restore re-enables it. Accounts are never
// hard-deleted.
func (s *UserService) Archive(id uint) error {
	return s.repo.SetActive(id, false)
}

func (s *UserService) Restore(id uint) error {
	return s.repo.SetActive(id, true)
}
