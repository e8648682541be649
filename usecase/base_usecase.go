package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned for ids that are not 24-character hex ObjectIDs.
var ErrInvalidID = errors.New("invalid id format")

// BaseUsecase is the generic CRUD surface over a BaseRepository.
type BaseUsecase[T any] interface {
	Create(ctx context.Context, entity *T) (*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, entity *T) error
	UpdateByID(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	DeleteByIDs(ctx context.Context, ids []string) error

	// GetPaginated returns one page, newest first, plus the total count.
	GetPaginated(ctx context.Context, page, pageSize int) ([]*T, int64, error)

	Exists(ctx context.Context, id string) (bool, error)
}

// ConfigUsecase reads and writes a singleton configuration document.
type ConfigUsecase[T any] interface {
	Get(ctx context.Context) (*T, error)
	Update(ctx context.Context, config *T) error
}

type BaseUsecaseImpl[T any] struct {
	repo    domain.BaseRepository[T]
	timeout time.Duration
}

func NewBaseUsecase[T any](repo domain.BaseRepository[T], timeout time.Duration) BaseUsecase[T] {
	return &BaseUsecaseImpl[T]{
		repo:    repo,
		timeout: timeout,
	}
}

func ParseObjectID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: id cannot be empty", ErrInvalidID)
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return objID, nil
}

func (uc *BaseUsecaseImpl[T]) Create(ctx context.Context, entity *T) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if entity == nil {
		return nil, errors.New("entity cannot be nil")
	}

	if err := uc.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to create entity: %w", err)
	}
	return entity, nil
}

func (uc *BaseUsecaseImpl[T]) GetByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	objID, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	entity, err := uc.repo.GetByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return entity, nil
}

func (uc *BaseUsecaseImpl[T]) Update(ctx context.Context, entity *T) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	if err := uc.repo.Update(ctx, entity); err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}
	return nil
}

func (uc *BaseUsecaseImpl[T]) UpdateByID(ctx context.Context, id string, updates map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if len(updates) == 0 {
		return errors.New("updates cannot be empty")
	}

	objID, err := ParseObjectID(id)
	if err != nil {
		return err
	}

	if _, err = uc.repo.UpdateByID(ctx, objID, bson.M{"$set": bson.M(updates)}); err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}
	return nil
}

func (uc *BaseUsecaseImpl[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	objID, err := ParseObjectID(id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, objID); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}
	return nil
}

func (uc *BaseUsecaseImpl[T]) DeleteByIDs(ctx context.Context, ids []string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if len(ids) == 0 {
		return nil
	}

	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := ParseObjectID(id)
		if err != nil {
			return err
		}
		objIDs = append(objIDs, objID)
	}

	if _, err := uc.repo.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": objIDs}}); err != nil {
		return fmt.Errorf("failed to delete entities: %w", err)
	}
	return nil
}

func (uc *BaseUsecaseImpl[T]) GetPaginated(ctx context.Context, page, pageSize int) ([]*T, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	skip := int64((page - 1) * pageSize)
	limit := int64(pageSize)

	entities, err := uc.repo.GetPaginated(ctx, bson.M{}, skip, limit, "", false)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paginated entities: %w", err)
	}

	total, err := uc.repo.Count(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count entities: %w", err)
	}
	return entities, total, nil
}

func (uc *BaseUsecaseImpl[T]) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	objID, err := ParseObjectID(id)
	if err != nil {
		return false, err
	}

	exists, err := uc.repo.Exists(ctx, objID)
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

type ConfigUsecaseImpl[T any] struct {
	repo    domain.ConfigRepository[T]
	timeout time.Duration
}

func NewConfigUsecase[T any](repo domain.ConfigRepository[T], timeout time.Duration) ConfigUsecase[T] {
	return &ConfigUsecaseImpl[T]{
		repo:    repo,
		timeout: timeout,
	}
}

// Get returns (nil, nil) when nothing has been stored yet.
func (uc *ConfigUsecaseImpl[T]) Get(ctx context.Context) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	config, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	return config, nil
}

func (uc *ConfigUsecaseImpl[T]) Update(ctx context.Context, config *T) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if config == nil {
		return errors.New("config cannot be nil")
	}

	if err := uc.repo.Upsert(ctx, config); err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}
	return nil
}
