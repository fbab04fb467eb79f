package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"mattespel/internal/adapters"
	"mattespel/internal/domain/user"
	errs "mattespel/internal/errors"
)

const usersCollection = "users"

type MongoUserStorage struct {
	adapter *adapters.AdapterMongo
	log     *zap.SugaredLogger
}

func NewMongoUserStorage(adapter *adapters.AdapterMongo, log *zap.SugaredLogger) *MongoUserStorage {
	return &MongoUserStorage{adapter: adapter, log: log}
}

func (m *MongoUserStorage) GetByEmail(ctx context.Context, email string) (user.User, bool) {
	collection := m.adapter.Database.Collection(usersCollection)
	filter := bson.D{{Key: "email", Value: email}}

	var result user.User
	err := collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			m.log.Error(err)
		}
		return user.User{}, false
	}
	return result, true
}

func (m *MongoUserStorage) GetByID(ctx context.Context, id string) (user.User, bool) {
	collection := m.adapter.Database.Collection(usersCollection)
	filter := bson.D{{Key: "_id", Value: id}}

	var result user.User
	err := collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			m.log.Error(err)
		}
		return user.User{}, false
	}
	return result, true
}

func (m *MongoUserStorage) Create(ctx context.Context, email, name, passwordHash string) (user.User, error) {
	if _, found := m.GetByEmail(ctx, email); found {
		return user.User{}, errs.ErrUserExists
	}

	collection := m.adapter.Database.Collection(usersCollection)
	now := time.Now()
	newUser := user.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
		PasswordHash: passwordHash,
	}
	if _, err := collection.InsertOne(ctx, newUser); err != nil {
		m.log.Error(err)
		return user.User{}, errs.ErrInternal
	}
	return newUser, nil
}
