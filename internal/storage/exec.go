package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"log"

	"github.com/lib/pq"

	dErrors "alta/pkg/domain-errors"
)

// Internal messages carried by classified statement errors. They are
// operation-kind constants, never built from input.
const (
	MsgConnection   = "database connection error"
	MsgBindFailed   = "parameter binding failed"
	MsgUpdateFailed = "update failed"
	MsgInsertFailed = "insert failed"
	MsgQueryFailed  = "query failed"
)

// Executor runs exactly one SQL statement per invocation and guarantees the
// statement handle is released on every exit path. SQL texts are package
// constants at call sites; positional parameters bind in the order the text
// declares them.
//
// Cleanup discipline, uniform across all operations:
//   - prepare fault: release(nil, nil), nothing acquired
//   - bind or execute fault: release(stmt, nil)
//   - update success: release(stmt, nil) after the row count is captured
//   - query success: release(stmt, rows) after the result set is consumed
type Executor struct {
	db        *sql.DB
	log       *log.Logger
	component string
}

// NewExecutor binds an executor to a database handle. component is the
// qualified name stamped on classified errors and log lines.
func NewExecutor(db *sql.DB, logger *log.Logger, component string) *Executor {
	return &Executor{db: db, log: logger, component: component}
}

// Update prepares and executes a row-count statement (insert, update via
// procedure, direct update) and returns the affected-row count. A count of
// zero is not an error; callers decide its significance.
func (e *Executor) Update(ctx context.Context, query, failMsg string, args ...any) (int64, error) {
	stmt, err := e.db.PrepareContext(ctx, query)
	if err != nil {
		e.release(nil, nil)
		return 0, e.classify(err, MsgConnection)
	}
	if err := checkBindable(args); err != nil {
		e.release(stmt, nil)
		return 0, e.classify(err, MsgBindFailed)
	}
	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		e.release(stmt, nil)
		return 0, e.classify(err, failMsg)
	}
	count, err := res.RowsAffected()
	if err != nil {
		e.release(stmt, nil)
		return 0, e.classify(err, failMsg)
	}
	e.release(stmt, nil)
	return count, nil
}

// Query prepares and executes a read statement and hands the result set to
// scan. Both the statement and the rows are released before Query returns,
// so scan must copy everything it needs.
func (e *Executor) Query(ctx context.Context, query string, scan func(*sql.Rows) error, args ...any) error {
	stmt, err := e.db.PrepareContext(ctx, query)
	if err != nil {
		e.release(nil, nil)
		return e.classify(err, MsgConnection)
	}
	if err := checkBindable(args); err != nil {
		e.release(stmt, nil)
		return e.classify(err, MsgBindFailed)
	}
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		e.release(stmt, nil)
		return e.classify(err, MsgQueryFailed)
	}
	if err := scan(rows); err != nil {
		e.release(stmt, rows)
		// scan errors from the caller keep their own classification.
		var de *dErrors.Error
		if errors.As(err, &de) {
			return err
		}
		return e.classify(err, MsgQueryFailed)
	}
	if err := rows.Err(); err != nil {
		e.release(stmt, rows)
		return e.classify(err, MsgQueryFailed)
	}
	e.release(stmt, rows)
	return nil
}

// release is the single cleanup point for a statement invocation. rows is
// nil unless the operation produced a result set.
func (e *Executor) release(stmt *sql.Stmt, rows *sql.Rows) {
	if rows != nil {
		if err := rows.Close(); err != nil {
			e.log.Printf("component=%s msg=%q cause=%v", e.component, "result set close failed", err)
		}
	}
	if stmt != nil {
		if err := stmt.Close(); err != nil {
			e.log.Printf("component=%s msg=%q cause=%v", e.component, "statement close failed", err)
		}
	}
}

// classify logs the fault and wraps it into a classified error carrying the
// component name, the internal message, and the original cause.
func (e *Executor) classify(err error, msg string) error {
	e.log.Printf("component=%s msg=%q cause=%v", e.component, msg, err)
	return dErrors.Wrap(err, dErrors.CodeInternal, msg).WithComponent(e.component)
}

// checkBindable validates positional parameters against the default driver
// converter so binding faults surface on the same path as execution faults.
func checkBindable(args []any) error {
	for _, arg := range args {
		if _, err := driver.DefaultParameterConverter.ConvertValue(arg); err != nil {
			return err
		}
	}
	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, so stores can translate duplicates into conflicts.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
