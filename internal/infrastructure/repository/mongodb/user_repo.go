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

const errUserNotFound = "user not found"

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

// EnsureIndexes creates the unique indexes backing the uniqueness invariants
// for email, username and phone number.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	// Phone numbers are optional for social signups, so the index is sparse.
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "phoneNumber", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	})
	return err
}

// withActive adds the soft-delete exclusion unless the caller opted in to
// inactive records.
func withActive(filter bson.M, includeInactive bool) bson.M {
	if !includeInactive {
		filter["active"] = bson.M{"$ne": false}
	}
	return filter
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("email, username or phone number already in use")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string, includeInactive bool) (*entity.User, error) {
	return r.findOne(ctx, withActive(bson.M{"_id": id}, includeInactive))
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string, includeInactive bool) (*entity.User, error) {
	return r.findOne(ctx, withActive(bson.M{"email": email}, includeInactive))
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string, includeInactive bool) (*entity.User, error) {
	return r.findOne(ctx, withActive(bson.M{"username": username}, includeInactive))
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound(errUserNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, withActive(bson.M{}, false), opts)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

// UpdateUser updates an existing user and returns the updated user.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": user}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound(errUserNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("email, username or phone number already in use")
		}
		return nil, apperror.Internal(err)
	}
	return &updated, nil
}

func (r *MongoUserRepository) UpdateUserPassword(ctx context.Context, id, hashedPassword string, changedAt time.Time) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"password":          hashedPassword,
		"passwordChangedAt": changedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound(errUserNotFound)
	}
	return nil
}

func (r *MongoUserRepository) SetPasswordResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"passwordResetToken":   tokenHash,
		"passwordResetExpires": expires,
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound(errUserNotFound)
	}
	return nil
}

func (r *MongoUserRepository) ClearPasswordResetToken(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$unset": bson.M{
		"passwordResetToken":   "",
		"passwordResetExpires": "",
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// RedeemPasswordResetToken is a single find-and-clear-if-matching operation:
// the filter requires the stored token hash and an unexpired window, the
// update installs the new password and removes the token fields. Two
// concurrent redemptions of the same token cannot both match.
func (r *MongoUserRepository) RedeemPasswordResetToken(ctx context.Context, tokenHash, newPasswordHash string, changedAt time.Time) (*entity.User, error) {
	filter := withActive(bson.M{
		"passwordResetToken":   tokenHash,
		"passwordResetExpires": bson.M{"$gt": time.Now()},
	}, false)
	update := bson.M{
		"$set": bson.M{
			"password":          newPasswordHash,
			"passwordChangedAt": changedAt,
		},
		"$unset": bson.M{
			"passwordResetToken":   "",
			"passwordResetExpires": "",
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user entity.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound(errUserNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

// DeactivateUser soft-deletes: the user disappears from all reads that do not
// opt in to inactive records.
func (r *MongoUserRepository) DeactivateUser(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"active": false}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound(errUserNotFound)
	}
	return nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Internal(err)
	}
	if result.DeletedCount == 0 {
		return apperror.NotFound(errUserNotFound)
	}
	return nil
}
