package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AdminUpdate struct {
	Name     string
	Email    string
	Role     string
	IsActive *bool
}

type ProfileUpdate struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
	ProfilePhoto    string
}

type AdminService interface {
	GetByID(id uint) (*models.Admin, error)
	// List requires the caller to be a super admin.
	List(caller *Principal) ([]models.Admin, error)
	Create(caller *Principal, name, email, password, role string) (*models.Admin, error)
	Update(caller *Principal, id uint, update AdminUpdate) error
	Delete(caller *Principal, id uint) error
	UpdateProfile(adminID uint, update ProfileUpdate) (*models.Admin, error)
}

type adminService struct {
	adminRepo  repository.AdminRepository
	bcryptCost int
}

func NewAdminService(adminRepo repository.AdminRepository, bcryptCost int) AdminService {
	return &adminService{adminRepo: adminRepo, bcryptCost: bcryptCost}
}

func (s *adminService) GetByID(id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, &NotFoundError{Message: "Admin not found"}
	}
	return admin, nil
}

func (s *adminService) List(caller *Principal) ([]models.Admin, error) {
	if !caller.IsSuperAdmin() {
		return nil, &ForbiddenError{Message: "Access denied. Super admin required."}
	}
	return s.adminRepo.GetAll()
}

func (s *adminService) Create(caller *Principal, name, email, password, role string) (*models.Admin, error) {
	if !caller.IsSuperAdmin() {
		return nil, &ForbiddenError{Message: "Access denied. Super admin required."}
	}
	if name == "" || email == "" || password == "" {
		return nil, &ValidationError{Message: "Name, email, and password are required"}
	}
	if role == "" {
		role = string(models.RoleAdmin)
	}
	if role != string(models.RoleAdmin) && role != string(models.RoleSuperAdmin) {
		return nil, &ValidationError{Message: "Invalid role"}
	}

	existing, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Message: "Email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminService) Update(caller *Principal, id uint, update AdminUpdate) error {
	if !caller.IsSuperAdmin() {
		return &ForbiddenError{Message: "Access denied. Super admin required."}
	}

	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return &NotFoundError{Message: "Admin not found"}
	}

	// A super admin can never lock themselves out
	if id == caller.ID && update.IsActive != nil && !*update.IsActive {
		return &ValidationError{Message: "Cannot deactivate your own account"}
	}

	if update.Name != "" {
		admin.Name = update.Name
	}
	if update.Email != "" && update.Email != admin.Email {
		existing, err := s.adminRepo.GetByEmail(update.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return &ValidationError{Message: "Email already exists"}
		}
		admin.Email = update.Email
	}
	if update.Role == string(models.RoleAdmin) || update.Role == string(models.RoleSuperAdmin) {
		admin.Role = update.Role
	}
	if update.IsActive != nil {
		admin.IsActive = *update.IsActive
	}

	return s.adminRepo.Update(admin)
}

func (s *adminService) Delete(caller *Principal, id uint) error {
	if !caller.IsSuperAdmin() {
		return &ForbiddenError{Message: "Access denied. Super admin required."}
	}
	if id == caller.ID {
		return &ValidationError{Message: "Cannot delete your own account"}
	}

	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return &NotFoundError{Message: "Admin not found"}
	}

	return s.adminRepo.Delete(id)
}

func (s *adminService) UpdateProfile(adminID uint, update ProfileUpdate) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, &NotFoundError{Message: "Admin not found"}
	}

	changed := false

	if update.NewPassword != "" {
		if update.CurrentPassword == "" {
			return nil, &ValidationError{Message: "Current password is required to change password"}
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(update.CurrentPassword)) != nil {
			return nil, &ValidationError{Message: "Current password is incorrect"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(update.NewPassword), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = string(hash)
		changed = true
	}

	if update.Email != "" && update.Email != admin.Email {
		existing, err := s.adminRepo.GetByEmail(update.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &ValidationError{Message: "Email already exists"}
		}
		admin.Email = update.Email
		changed = true
	}

	if update.Name != "" && update.Name != admin.Name {
		admin.Name = update.Name
		changed = true
	}

	if update.ProfilePhoto != "" {
		admin.ProfilePhoto = update.ProfilePhoto
		changed = true
	}

	if !changed {
		return nil, &ValidationError{Message: "No changes to update"}
	}

	if err := s.adminRepo.Update(admin); err != nil {
		return nil, err
	}
	return admin, nil
}
