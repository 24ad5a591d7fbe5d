package repomanager

import (
	"context"
	"database/sql"

	"github.com/jkalnins/daybook/internal/dbx"
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

// RepositoryManager vends repositories bound to a DBTX, so a service can run
// several repository calls inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Entries(db dbx.DBTX) entries.Repository
	Attachments(db dbx.DBTX) attachments.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Goals(db dbx.DBTX) goals.Repository
	Habits(db dbx.DBTX) habits.Repository
	Moods(db dbx.DBTX) moods.Repository
	Schedules(db dbx.DBTX) schedules.Repository
	Gratitude(db dbx.DBTX) gratitude.Repository
	Capsules(db dbx.DBTX) capsules.Repository
}
