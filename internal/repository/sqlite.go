package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/agent"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

type sqliteValues struct {
	conn *sql.DB
}

// NewSQLiteValuesRepository - stores the value table as one row per visited
// state-action pair.
func NewSQLiteValuesRepository(conn *sql.DB) ValuesRepository {
	return &sqliteValues{
		conn: conn,
	}
}

func (that *sqliteValues) Load(ctx context.Context) (agent.Values, error) {
	query := `SELECT state, action, value FROM state_values`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't query values: %w", err)
	}
	defer rows.Close()

	values := agent.Values{}
	for rows.Next() {
		var state string
		var action int
		var value float64

		if err = rows.Scan(&state, &action, &value); err != nil {
			return nil, fmt.Errorf("can't scan value row: %w", err)
		}

		values.Set(entity.State(state), action, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read value rows: %w", err)
	}

	if len(values) == 0 {
		return nil, ErrValuesNotFound
	}

	return values, nil
}

// Save - replaces all stored rows with the given table in one transaction.
func (that *sqliteValues) Save(ctx context.Context, values agent.Values) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, `DELETE FROM state_values`); err != nil {
		return fmt.Errorf("can't clear values: %w", err)
	}

	insert := `INSERT INTO state_values (state, action, value) VALUES (?, ?, ?)`
	for state, actions := range values {
		for action, value := range actions {
			if _, err = tx.ExecContext(ctx, insert, string(state), action, value); err != nil {
				return fmt.Errorf("can't insert value row: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit values: %w", err)
	}

	return nil
}
