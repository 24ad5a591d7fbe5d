package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/jkalnins/daybook/internal/common"
	"github.com/jkalnins/daybook/internal/dbx"
	"github.com/jkalnins/daybook/internal/server/models"
	"github.com/jkalnins/daybook/internal/server/repositories/attachments"
	"github.com/jkalnins/daybook/internal/server/repositories/capsules"
	"github.com/jkalnins/daybook/internal/server/repositories/entries"
	"github.com/jkalnins/daybook/internal/server/repositories/goals"
	"github.com/jkalnins/daybook/internal/server/repositories/gratitude"
	"github.com/jkalnins/daybook/internal/server/repositories/habits"
	"github.com/jkalnins/daybook/internal/server/repositories/moods"
	"github.com/jkalnins/daybook/internal/server/repositories/schedules"
	"github.com/jkalnins/daybook/internal/server/repositories/tasks"
	"github.com/jkalnins/daybook/internal/server/repositories/users"
)

// fakeRepoManager hands out whatever fakes a test installed, ignoring the
// DBTX it is given.
type fakeRepoManager struct {
	users       users.Repository
	entries     entries.Repository
	attachments attachments.Repository
	tasks       tasks.Repository
	goals       goals.Repository
	habits      habits.Repository
	moods       moods.Repository
	schedules   schedules.Repository
	gratitude   gratitude.Repository
	capsules    capsules.Repository
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository                  { return f.users }
func (f *fakeRepoManager) Entries(dbx.DBTX) entries.Repository              { return f.entries }
func (f *fakeRepoManager) Attachments(dbx.DBTX) attachments.Repository      { return f.attachments }
func (f *fakeRepoManager) Tasks(dbx.DBTX) tasks.Repository                  { return f.tasks }
func (f *fakeRepoManager) Goals(dbx.DBTX) goals.Repository                  { return f.goals }
func (f *fakeRepoManager) Habits(dbx.DBTX) habits.Repository                { return f.habits }
func (f *fakeRepoManager) Moods(dbx.DBTX) moods.Repository                  { return f.moods }
func (f *fakeRepoManager) Schedules(dbx.DBTX) schedules.Repository          { return f.schedules }
func (f *fakeRepoManager) Gratitude(dbx.DBTX) gratitude.Repository          { return f.gratitude }
func (f *fakeRepoManager) Capsules(dbx.DBTX) capsules.Repository            { return f.capsules }

// fakeUsersRepo keeps users in a map keyed by username.
type fakeUsersRepo struct {
	byName    map[string]*models.User
	createErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byName[u.Username] = u
	return nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

// fakeEntriesRepo keeps entries in a map keyed by id.
type fakeEntriesRepo struct {
	byID map[string]*models.Entry
}

func newFakeEntriesRepo() *fakeEntriesRepo {
	return &fakeEntriesRepo{byID: map[string]*models.Entry{}}
}

func (f *fakeEntriesRepo) Create(ctx context.Context, e *models.Entry) error {
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEntriesRepo) ListByUser(ctx context.Context, userID models.UserID) ([]*models.EntrySummary, error) {
	var result []*models.EntrySummary
	for _, e := range f.byID {
		if e.UserID == userID {
			result = append(result, &models.EntrySummary{
				ID: e.ID, Title: e.Title, Tags: e.Tags, CreatedAt: e.CreatedAt,
			})
		}
	}
	return result, nil
}

func (f *fakeEntriesRepo) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEntriesRepo) Update(ctx context.Context, e *models.Entry) error {
	stored, ok := f.byID[e.ID]
	if !ok || stored.UserID != e.UserID {
		return common.ErrNotFound
	}
	stored.Title = e.Title
	stored.Content = e.Content
	stored.Tags = e.Tags
	return nil
}

func (f *fakeEntriesRepo) Delete(ctx context.Context, id string, userID models.UserID) error {
	stored, ok := f.byID[id]
	if !ok || stored.UserID != userID {
		return common.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeCapsulesRepo keeps capsules in a map keyed by id.
type fakeCapsulesRepo struct {
	byID map[string]*models.Capsule
}

func newFakeCapsulesRepo() *fakeCapsulesRepo {
	return &fakeCapsulesRepo{byID: map[string]*models.Capsule{}}
}

func (f *fakeCapsulesRepo) Create(ctx context.Context, c *models.Capsule) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCapsulesRepo) ListOpenByUser(ctx context.Context, userID models.UserID, now time.Time) ([]*models.Capsule, error) {
	var result []*models.Capsule
	for _, c := range f.byID {
		if c.UserID == userID && !c.OpenDate.After(now) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCapsulesRepo) GetByID(ctx context.Context, id string) (*models.Capsule, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}

func (f *fakeCapsulesRepo) Delete(ctx context.Context, id string, userID models.UserID) error {
	stored, ok := f.byID[id]
	if !ok || stored.UserID != userID {
		return common.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeAttachmentsRepo keeps attachment metadata in a map keyed by id.
type fakeAttachmentsRepo struct {
	byID map[string]*models.Attachment
}

func newFakeAttachmentsRepo() *fakeAttachmentsRepo {
	return &fakeAttachmentsRepo{byID: map[string]*models.Attachment{}}
}

func (f *fakeAttachmentsRepo) Create(ctx context.Context, a *models.Attachment) error {
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAttachmentsRepo) ListByEntry(ctx context.Context, entryID string, userID models.UserID) ([]*models.Attachment, error) {
	var result []*models.Attachment
	for _, a := range f.byID {
		if a.EntryID == entryID && a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAttachmentsRepo) GetByID(ctx context.Context, id string) (*models.Attachment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return a, nil
}

func (f *fakeAttachmentsRepo) Delete(ctx context.Context, id string, userID models.UserID) error {
	stored, ok := f.byID[id]
	if !ok || stored.UserID != userID {
		return common.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}
