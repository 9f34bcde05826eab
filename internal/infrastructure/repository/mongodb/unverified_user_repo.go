package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
)

type UnverifiedUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUnverifiedUserRepository = (*UnverifiedUserRepository)(nil)

func NewUnverifiedUserRepository(collection *mongo.Collection) *UnverifiedUserRepository {
	return &UnverifiedUserRepository{collection: collection}
}

// EnsureIndexes creates the unique email index for pending registrations and
// a TTL index so abandoned signups age out once their token expires.
func (r *UnverifiedUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "tokenExpires", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	return err
}

func (r *UnverifiedUserRepository) CreateUnverifiedUser(ctx context.Context, user *entity.UnverifiedUser) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("a signup for this email is already pending verification")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *UnverifiedUserRepository) GetUnverifiedUserByEmail(ctx context.Context, email string) (*entity.UnverifiedUser, error) {
	var user entity.UnverifiedUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("pending registration not found")
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

// TakeByTokenHash deletes and returns the matching unexpired pending
// registration in one operation, which is what makes redemption single-use.
// Expired documents are reaped by the TTL index.
func (r *UnverifiedUserRepository) TakeByTokenHash(ctx context.Context, tokenHash string) (*entity.UnverifiedUser, error) {
	filter := bson.M{
		"tokenHash":    tokenHash,
		"tokenExpires": bson.M{"$gt": time.Now()},
	}
	var user entity.UnverifiedUser
	err := r.collection.FindOneAndDelete(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("pending registration not found")
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (r *UnverifiedUserRepository) DeleteUnverifiedUserByEmail(ctx context.Context, email string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
