package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/repositories"
)

// EntryRepository implements the repositories.EntryRepository interface
type EntryRepository struct {
	collection *mongo.Collection
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *mongo.Database) repositories.EntryRepository {
	return &EntryRepository{
		collection: db.Collection("entries"),
	}
}

// Create creates a new entry
func (r *EntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = id
	}
	return nil
}

// FindByID finds an entry by ID
func (r *EntryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error) {
	var entry models.Entry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByContestID finds all entries of a contest, the ranking engine's
// input snapshot. Not paginated: ranking needs the full set.
func (r *EntryRepository) FindByContestID(ctx context.Context, contestID primitive.ObjectID) ([]*models.Entry, error) {
	opts := options.Find().SetSort(bson.M{"fichaNumber": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"contestId": contestID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByCategoryID finds entries in a category with pagination
func (r *EntryRepository) FindByCategoryID(ctx context.Context, categoryID primitive.ObjectID, page, limit int) ([]*models.Entry, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"fichaNumber": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"categoryId": categoryID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByFichaNumber finds the entry holding a ficha number within one contest
func (r *EntryRepository) FindByFichaNumber(ctx context.Context, contestID primitive.ObjectID, fichaNumber int) (*models.Entry, error) {
	var entry models.Entry
	err := r.collection.FindOne(ctx, bson.M{"contestId": contestID, "fichaNumber": fichaNumber}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Search finds entries matching the optional filters with pagination
func (r *EntryRepository) Search(ctx context.Context, search repositories.EntrySearch, page, limit int) ([]*models.Entry, error) {
	filter := bson.M{}
	if search.ContestID != nil {
		filter["contestId"] = *search.ContestID
	}
	if search.CategoryID != nil {
		filter["categoryId"] = *search.CategoryID
	}
	if search.Species != "" {
		filter["species"] = search.Species
	}
	if search.Breed != "" {
		filter["breed"] = search.Breed
	}
	if search.Destacado != nil {
		filter["isDestacado"] = *search.Destacado
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"fichaNumber": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Update updates an entry
func (r *EntryRepository) Update(ctx context.Context, entry *models.Entry) error {
	entry.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	return err
}

// Delete deletes an entry
func (r *EntryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// CountByContestID counts the entries registered in a contest
func (r *EntryRepository) CountByContestID(ctx context.Context, contestID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"contestId": contestID})
}
