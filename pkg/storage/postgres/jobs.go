package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and becomes visible on commit together with the rows written in
// the same transaction.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		var client *river.Client[*sql.Tx]
		if client, err = insertClient(nil); err != nil {
			return false, err
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		var client *river.Client[*sql.Tx]
		if client, err = insertClient(db); err != nil {
			return false, err
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported db handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

// insertClient returns an insert-only River client. db may be nil when the
// client is only used with InsertTx.
func insertClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}
