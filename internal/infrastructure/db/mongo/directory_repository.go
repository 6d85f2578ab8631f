package mongo

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/zamreal/property-system/internal/core/domain"
)

const userCollection = "users"

// DirectoryRepository is the persistent credential directory. Records are
// keyed by email; the password field holds a bcrypt hash for accounts
// created through registration, or plaintext for rows migrated from the
// demo seed.
type DirectoryRepository struct {
	coll *mongo.Collection
}

func NewDirectoryRepository(db *mongo.Database) *DirectoryRepository {
	return &DirectoryRepository{coll: db.Collection(userCollection)}
}

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Role     string             `bson:"role,omitempty"`
}

func (d userDoc) toRecord() *domain.UserRecord {
	return &domain.UserRecord{
		ID:     d.ID.Hex(),
		Name:   d.Name,
		Email:  d.Email,
		Secret: d.Password,
		Role:   domain.Role(d.Role),
	}
}

// FindByEmail resolves email to a stored record, or domain.ErrUserNotFound.
func (r *DirectoryRepository) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: find user: %w", domain.ErrDirectoryUnavailable, err)
	}
	return doc.toRecord(), nil
}

// Create inserts a new credential record and returns it with its assigned id.
func (r *DirectoryRepository) Create(ctx context.Context, rec *domain.UserRecord) (*domain.UserRecord, error) {
	doc := userDoc{
		Name:     rec.Name,
		Email:    strings.ToLower(rec.Email),
		Password: rec.Secret,
		Role:     string(rec.Role),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("%w: insert user: %w", domain.ErrDirectoryUnavailable, err)
	}

	// fetch back to get the assigned id
	return r.FindByEmail(ctx, doc.Email)
}

// SeedDemoAccounts creates the default admin and manager accounts when they
// do not exist yet, with bcrypt-hashed passwords.
func (r *DirectoryRepository) SeedDemoAccounts(ctx context.Context) error {
	accounts := []domain.UserRecord{
		{Name: "Chanda Admin", Email: "admin@zamreal.co", Role: domain.RoleAdmin},
		{Name: "Lusungu Manager", Email: "manager@zamreal.co", Role: domain.RoleManager},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		_, err := r.FindByEmail(ctx, account.Email)
		if err == nil {
			continue
		}
		if err != domain.ErrUserNotFound {
			return err
		}
		account.Secret = string(hash)
		if _, err := r.Create(ctx, &account); err != nil && err != domain.ErrUserExists {
			return err
		}
	}
	return nil
}
