package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/amrsalem/go-user-service/internal/models"
)

// UsersCollection is the collection backing the users resource.
const UsersCollection = "users"

// secretProjection keeps password and password-reset fields out of
// default reads.
var secretProjection = bson.M{
	"password":              0,
	"passwordChangedAt":     0,
	"passwordResetCode":     0,
	"passwordResetExpires":  0,
	"passwordResetVerified": 0,
}

// Users is the user-document repository. Email uniqueness is enforced by
// the storage layer through a unique index, not by application pre-checks.
type Users struct {
	*Base[models.User]
}

// NewUsers creates the users repository over db.
func NewUsers(db *mongo.Database) *Users {
	coll := db.Collection(UsersCollection)
	return &Users{Base: NewBase[models.User](coll, secretProjection)}
}

// EnsureIndexes creates the unique email index. Safe to call on every
// startup; index creation is idempotent.
func (r *Users) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create normalizes and inserts user, returning the stored document with
// its generated id and without the password.
func (r *Users) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.Normalize()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Active = true

	id, err := r.Base.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	created := *user
	created.ID = id
	created.Password = ""
	return &created, nil
}

// Update applies patch to the user with the given hex id, or returns nil
// when no user matches.
func (r *Users) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	return r.UpdateByID(ctx, id, patch.SetDocument())
}

// Delete removes the user with the given hex id, or returns nil when no
// user matches.
func (r *Users) Delete(ctx context.Context, id string) (*models.User, error) {
	return r.DeleteByID(ctx, id)
}

// FindByEmail returns the user with the given email in canonical form, or
// nil when no user matches.
func (r *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	filter := bson.M{"email": models.NormalizeEmail(email)}

	var user models.User
	err := r.Collection().FindOne(ctx, filter, r.findOneOptions()).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
