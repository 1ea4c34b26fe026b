package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user. The id is assigned here when the caller left it empty.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, uqUsersEmail) {
				return repository.ErrEmailExists
			}

			return repository.ErrUsernameExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findBy(ctx, "id = ?", id)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findBy(ctx, "username = ?", username)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findBy(ctx, "email = ?", email)
}

// FindOne ORs together every populated key of the lookup.
func (repo *userRepository) FindOne(ctx context.Context, lookup repository.UserLookup) (*entity.User, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	conds := 0
	if lookup.ID != uuid.Nil {
		query = query.Or("id = ?", lookup.ID)
		conds++
	}
	if lookup.Username != "" {
		query = query.Or("username = ?", lookup.Username)
		conds++
	}
	if lookup.Email != "" {
		query = query.Or("email = ?", lookup.Email)
		conds++
	}
	if conds == 0 {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// SetActive flips the active flag.
func (repo *userRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return repo.updateColumn(ctx, id, "active", active)
}

// SetVerified marks the user's email as verified.
func (repo *userRepository) SetVerified(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumn(ctx, id, "verified_email", true)
}

// Delete removes the user and returns the row as it was before removal.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	result := repo.db.WithContext(ctx).
		Clauses(returningAll()).
		Where("id = ?", id).
		Delete(&userM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

// List returns users ordered by creation time.
func (repo *userRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

func (repo *userRepository) findBy(ctx context.Context, cond string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Active:        data.Active,
		Admin:         data.Admin,
		VerifiedEmail: data.VerifiedEmail,
		CreatedAt:     data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Active:        data.Active,
		Admin:         data.Admin,
		VerifiedEmail: data.VerifiedEmail,
		CreatedAt:     data.CreatedAt,
	}
}
