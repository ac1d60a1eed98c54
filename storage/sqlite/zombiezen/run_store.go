package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/segmet/annotate"
	"github.com/revelaction/segmet/storage"
)

type RunStore struct {
	pool  *sqlitex.Pool
	clock clockwork.Clock
}

var _ storage.RunRepository = (*RunStore)(nil)

func NewRunStore(pool *sqlitex.Pool) *RunStore {
	return NewRunStoreWithClock(pool, clockwork.NewRealClock())
}

// NewRunStoreWithClock is NewRunStore with a custom clock for the run
// creation time.
func NewRunStoreWithClock(pool *sqlitex.Pool, clock clockwork.Clock) *RunStore {
	return &RunStore{pool: pool, clock: clock}
}

func (h *RunStore) Write(run *storage.Run) (err error) {
	if run.Id == uuid.Nil {
		run.Id = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = h.clock.Now().UTC()
	}

	sums, err := json.Marshal(run.Sums)
	if err != nil {
		return err
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO runs (id, title, created_at, columns, sums, positive, negative, neutral) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []any{
			run.Id.String(),
			run.Title,
			run.CreatedAt.UnixMilli(),
			run.Columns,
			string(sums),
			run.Sentiment.Positive,
			run.Sentiment.Negative,
			run.Sentiment.Neutral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, r := range run.Records {
		data, marshalErr := json.Marshal(r)
		if marshalErr != nil {
			err = marshalErr
			return err
		}

		err = sqlitex.Execute(conn, "INSERT INTO records (run_id, para, sent, data) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{run.Id.String(), r.Paragraph, r.Sentence, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	return nil
}

func (h *RunStore) List() ([]storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var runs []storage.Run
	err = sqlitex.Execute(conn, "SELECT id, title, created_at, columns, sums, positive, negative, neutral FROM runs ORDER BY created_at DESC, rowid DESC", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			run, err := scanRun(stmt)
			if err != nil {
				return err
			}
			runs = append(runs, run)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return runs, nil
}

func (h *RunStore) Read(id uuid.UUID) (storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return storage.Run{}, err
	}
	defer h.pool.Put(conn)

	var run storage.Run
	found := false
	err = sqlitex.Execute(conn, "SELECT id, title, created_at, columns, sums, positive, negative, neutral FROM runs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{id.String()},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			var err error
			run, err = scanRun(stmt)
			return err
		},
	})
	if err != nil {
		return storage.Run{}, err
	}
	if !found {
		return storage.Run{}, fmt.Errorf("%w: %s", storage.ErrRunNotFound, id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM records WHERE run_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []any{id.String()},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var r annotate.Record
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &r); err != nil {
				return err
			}
			run.Records = append(run.Records, &r)
			return nil
		},
	})
	if err != nil {
		return storage.Run{}, err
	}

	return run, nil
}

func scanRun(stmt *sqlite.Stmt) (storage.Run, error) {
	id, err := uuid.Parse(stmt.ColumnText(0))
	if err != nil {
		return storage.Run{}, fmt.Errorf("bad run id: %w", err)
	}

	run := storage.Run{
		Id:        id,
		Title:     stmt.ColumnText(1),
		CreatedAt: time.UnixMilli(stmt.ColumnInt64(2)).UTC(),
		Columns:   stmt.ColumnInt(3),
	}
	run.Sentiment.Positive = stmt.ColumnInt(5)
	run.Sentiment.Negative = stmt.ColumnInt(6)
	run.Sentiment.Neutral = stmt.ColumnInt(7)

	if err := json.Unmarshal([]byte(stmt.ColumnText(4)), &run.Sums); err != nil {
		return storage.Run{}, fmt.Errorf("bad run sums: %w", err)
	}

	return run, nil
}
