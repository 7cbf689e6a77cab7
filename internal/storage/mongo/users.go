package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Beingstupid4me/tmto-backend/internal/domain/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type userDocument struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"passwordHash"`
}

// UserRepository implements users.Repository on a MongoDB collection.
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(client *mongo.Client, database string) *UserRepository {
	return &UserRepository{
		collection: client.Database(database).Collection(usersCollection),
	}
}

// EnsureIndexes creates the unique email index. Safe to call on every boot.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &users.User{
		ID:           doc.ID,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
	}, nil
}

func (r *UserRepository) Create(ctx context.Context, user users.User) error {
	_, err := r.collection.InsertOne(ctx, userDocument{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
