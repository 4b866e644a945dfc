// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/domain/repository"
	"assethub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByIDs retrieves every listed user; unknown IDs are skipped.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var userMs []*model.UserModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	return toUserDomains(userMs), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies the mutable columns of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":         userM.Name,
			"photo_url":    userM.PhotoURL,
			"company_name": userM.CompanyName,
			"company_logo": userM.CompanyLogo,
			"role":         userM.Role,
			"member_limit": userM.MemberLimit,
			"updated_at":   updatedAt(user.UpdatedAt),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListByCompany returns the members of a company whose name or email matches search, HR first.
func (repo *userRepository) ListByCompany(ctx context.Context, company, search string) ([]*entity.User, error) {
	tx := repo.db.WithContext(ctx).Where("company_name = ?", company)
	if pattern := likePattern(search); pattern != "" {
		tx = tx.Where("(LOWER(name) LIKE ?"+likeEscape+" OR LOWER(email) LIKE ?"+likeEscape+")", pattern, pattern)
	}

	var userMs []*model.UserModel
	if err := tx.Order("role DESC").Order("name ASC").Order("id ASC").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users by company")
	}

	return toUserDomains(userMs), nil
}

// ListUnaffiliated returns employees that belong to no company, oldest sign-ups first.
func (repo *userRepository) ListUnaffiliated(ctx context.Context) ([]*entity.User, error) {
	var userMs []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("role = ? AND company_name IS NULL", string(entity.RoleEmployee)).
		Order("created_at ASC").Order("id ASC").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unaffiliated users")
	}

	return toUserDomains(userMs), nil
}

// CountEmployees counts the employees of a company.
func (repo *userRepository) CountEmployees(ctx context.Context, company string) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("company_name = ? AND role = ?", company, string(entity.RoleEmployee)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count employees")
	}

	return int(count), nil
}

// SetCompany attaches employees to a company, or detaches them when company is nil.
func (repo *userRepository) SetCompany(ctx context.Context, ids []uuid.UUID, company *string, logo string) error {
	if len(ids) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"company_name": company,
			"company_logo": logo,
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set company")
	}

	return nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		PhotoURL:    m.PhotoURL,
		CompanyName: m.CompanyName,
		CompanyLogo: m.CompanyLogo,
		Role:        entity.ParseRole(m.Role),
		MemberLimit: m.MemberLimit,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toUserDomains(ms []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(ms))
	for _, m := range ms {
		users = append(users, toUserDomain(m))
	}

	return users
}

func fromUserDomain(u *entity.User) *model.UserModel {
	m := &model.UserModel{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		PhotoURL:    u.PhotoURL,
		CompanyLogo: u.CompanyLogo,
		Role:        u.Role.String(),
		MemberLimit: u.MemberLimit,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.HasCompany() {
		company := u.Company()
		m.CompanyName = &company
	}

	return m
}

// likeEscape goes after every LIKE that takes a likePattern.
const likeEscape = ` ESCAPE '\'`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern lowercases search into a substring pattern with its wildcards escaped;
// empty search yields "".
func likePattern(search string) string {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return ""
	}

	return "%" + likeEscaper.Replace(search) + "%"
}

func updatedAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}

	return t
}
