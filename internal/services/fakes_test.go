package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/repositories"
)

// In-memory repository fakes. Maps are keyed by ObjectID hex so tests can
// mutate state without a running database.

type fakeContestRepo struct {
	contests map[string]*models.Contest
}

func newFakeContestRepo() *fakeContestRepo {
	return &fakeContestRepo{contests: make(map[string]*models.Contest)}
}

func (r *fakeContestRepo) Create(_ context.Context, contest *models.Contest) error {
	if contest.ID.IsZero() {
		contest.ID = primitive.NewObjectID()
	}
	r.contests[contest.ID.Hex()] = contest
	return nil
}

func (r *fakeContestRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Contest, error) {
	contest, ok := r.contests[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return contest, nil
}

func (r *fakeContestRepo) FindAll(_ context.Context, _, _ int) ([]*models.Contest, error) {
	out := make([]*models.Contest, 0, len(r.contests))
	for _, c := range r.contests {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeContestRepo) Update(_ context.Context, contest *models.Contest) error {
	if _, ok := r.contests[contest.ID.Hex()]; !ok {
		return mongo.ErrNoDocuments
	}
	r.contests[contest.ID.Hex()] = contest
	return nil
}

func (r *fakeContestRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.contests, id.Hex())
	return nil
}

func (r *fakeContestRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.contests)), nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*models.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	r.categories[category.ID.Hex()] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, ok := r.categories[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindByContestID(_ context.Context, contestID primitive.ObjectID) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range r.categories {
		if c.ContestID == contestID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	r.categories[category.ID.Hex()] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.categories, id.Hex())
	return nil
}

type fakeEntryRepo struct {
	entries map[string]*models.Entry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]*models.Entry)}
}

func (r *fakeEntryRepo) Create(_ context.Context, entry *models.Entry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	r.entries[entry.ID.Hex()] = entry
	return nil
}

func (r *fakeEntryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Entry, error) {
	entry, ok := r.entries[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return entry, nil
}

func (r *fakeEntryRepo) FindByContestID(_ context.Context, contestID primitive.ObjectID) ([]*models.Entry, error) {
	var out []*models.Entry
	for _, e := range r.entries {
		if e.ContestID == contestID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) FindByCategoryID(_ context.Context, categoryID primitive.ObjectID, _, _ int) ([]*models.Entry, error) {
	var out []*models.Entry
	for _, e := range r.entries {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) FindByFichaNumber(_ context.Context, contestID primitive.ObjectID, fichaNumber int) (*models.Entry, error) {
	for _, e := range r.entries {
		if e.ContestID == contestID && e.FichaNumber == fichaNumber {
			return e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeEntryRepo) Search(_ context.Context, search repositories.EntrySearch, _, _ int) ([]*models.Entry, error) {
	var out []*models.Entry
	for _, e := range r.entries {
		if search.ContestID != nil && e.ContestID != *search.ContestID {
			continue
		}
		if search.CategoryID != nil && e.CategoryID != *search.CategoryID {
			continue
		}
		if search.Species != "" && e.Species != search.Species {
			continue
		}
		if search.Breed != "" && e.Breed != search.Breed {
			continue
		}
		if search.Destacado != nil && e.IsDestacado != *search.Destacado {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEntryRepo) Update(_ context.Context, entry *models.Entry) error {
	if _, ok := r.entries[entry.ID.Hex()]; !ok {
		return mongo.ErrNoDocuments
	}
	r.entries[entry.ID.Hex()] = entry
	return nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.entries, id.Hex())
	return nil
}

func (r *fakeEntryRepo) CountByContestID(_ context.Context, contestID primitive.ObjectID) (int64, error) {
	var n int64
	for _, e := range r.entries {
		if e.ContestID == contestID {
			n++
		}
	}
	return n, nil
}

type fakeAdminUserRepo struct {
	users map[string]*models.AdminUser
}

func newFakeAdminUserRepo() *fakeAdminUserRepo {
	return &fakeAdminUserRepo{users: make(map[string]*models.AdminUser)}
}

func (r *fakeAdminUserRepo) Create(_ context.Context, user *models.AdminUser) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID.Hex()] = user
	return nil
}

func (r *fakeAdminUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	user, ok := r.users[id.Hex()]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (r *fakeAdminUserRepo) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminUserRepo) Update(_ context.Context, user *models.AdminUser) error {
	r.users[user.ID.Hex()] = user
	return nil
}
