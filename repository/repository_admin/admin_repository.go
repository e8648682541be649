package repository_admin

import (
	"context"
	"errors"
	"strings"

	"github.com/manhva-oppa/oppa-blog/domain/domain_admin"
	"github.com/manhva-oppa/oppa-blog/mongo"
	"github.com/manhva-oppa/oppa-blog/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type adminRepository struct {
	base *repository.BaseMongoRepository[domain_admin.Admin]
}

func NewAdminRepository(db mongo.Database, collection string) domain_admin.AdminRepository {
	return &adminRepository{
		base: repository.NewBaseMongoRepository[domain_admin.Admin](db, collection),
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain_admin.Admin) error {
	if admin == nil {
		return errors.New("admin cannot be nil")
	}
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	return r.base.Create(ctx, admin)
}

// GetByEmail matches the address case-insensitively by storing and querying
// it lowercased. (nil, nil) when absent.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain_admin.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}
	return r.base.GetOneByFilter(ctx, bson.M{"email": email})
}

func (r *adminRepository) GetByUserID(ctx context.Context, userID string) (*domain_admin.Admin, error) {
	if userID == "" {
		return nil, nil
	}
	return r.base.GetOneByFilter(ctx, bson.M{"user_id": userID})
}
