package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agroexpo/expogan-backend/internal/models"
)

// EntrySearch carries the optional filters for entry queries. Empty fields
// are ignored.
type EntrySearch struct {
	ContestID  *primitive.ObjectID
	CategoryID *primitive.ObjectID
	Species    string
	Breed      string
	Destacado  *bool
}

// ContestRepository defines the interface for contest data operations
type ContestRepository interface {
	Create(ctx context.Context, contest *models.Contest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Contest, error)
	Update(ctx context.Context, contest *models.Contest) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindByContestID(ctx context.Context, contestID primitive.ObjectID) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EntryRepository defines the interface for entry data operations
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error)
	FindByContestID(ctx context.Context, contestID primitive.ObjectID) ([]*models.Entry, error)
	FindByCategoryID(ctx context.Context, categoryID primitive.ObjectID, page, limit int) ([]*models.Entry, error)
	FindByFichaNumber(ctx context.Context, contestID primitive.ObjectID, fichaNumber int) (*models.Entry, error)
	Search(ctx context.Context, search EntrySearch, page, limit int) ([]*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByContestID(ctx context.Context, contestID primitive.ObjectID) (int64, error)
}

// AdminUserRepository defines the interface for organizer account operations
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Update(ctx context.Context, user *models.AdminUser) error
}
