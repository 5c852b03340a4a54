// Package sqlite executes parser events against a SQLite database instead
// of emitting SQL text. The database is built in place when the writer is a
// regular file, otherwise in a temp file copied out on Close.
package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/darianmavgo/arff2sql/arff"
	"github.com/darianmavgo/arff2sql/config"
	"github.com/darianmavgo/arff2sql/formatters"
	"github.com/darianmavgo/arff2sql/formatters/common"

	_ "modernc.org/sqlite"
)

func init() {
	formatters.Register("sqlite", &sqliteDriver{})
}

// BatchSize defines the number of rows to insert before committing a
// transaction, so long streams persist progress periodically.
var BatchSize = 1000

const headerTable = `CREATE TABLE IF NOT EXISTS _arff2sql_header (line TEXT)`

type sqliteDriver struct{}

func (d *sqliteDriver) Open(w io.Writer, dialect *config.Dialect) (common.Formatter, error) {
	return NewFormatter(w, dialect)
}

// Formatter writes the dataset into a SQLite database. Comments land in a
// _arff2sql_header side table; the schema and rows go to the relation's own
// table.
type Formatter struct {
	db      *sql.DB
	w       io.Writer
	dbPath  string
	useTemp bool
	dialect *config.Dialect

	headerReady bool
	mainStmt    *sql.Stmt
	tx          *sql.Tx
	stmt        *sql.Stmt
	attrs       []*arff.Attribute
	rowCount    int
}

var _ common.Formatter = (*Formatter)(nil)

// NewFormatter creates a SQLite formatter targeting w.
func NewFormatter(w io.Writer, dialect *config.Dialect) (*Formatter, error) {
	if dialect == nil {
		dialect = config.SQLiteDialect()
	}

	var dbPath string
	useTemp := true

	// Build directly into the output when it is a regular file.
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 && stat.Mode().IsRegular() {
			dbPath = f.Name()
			useTemp = false
		}
	}

	if useTemp {
		tmpFile, err := os.CreateTemp("", "arff2sql-*.db")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp file: %w", err)
		}
		dbPath = tmpFile.Name()
		tmpFile.Close() // close it so sql.Open can use it
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection avoids locking issues and keeps tx.Stmt cheap.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA page_size = 65536; PRAGMA cache_size = -2000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set PRAGMAs: %w", err)
	}

	return &Formatter{
		db:      db,
		w:       w,
		dbPath:  dbPath,
		useTemp: useTemp,
		dialect: dialect,
	}, nil
}

func (f *Formatter) FormatComment(text string) error {
	if !f.headerReady {
		if _, err := f.db.Exec(headerTable); err != nil {
			return fmt.Errorf("failed to create header table: %w", err)
		}
		f.headerReady = true
	}
	if _, err := f.db.Exec(`INSERT INTO _arff2sql_header (line) VALUES (?)`, text); err != nil {
		return fmt.Errorf("failed to store comment: %w", err)
	}
	return nil
}

func (f *Formatter) FormatCreate(relation string, attrs []*arff.Attribute) error {
	createSQL, err := common.GenCreateTableSQL(f.dialect, relation, attrs)
	if err != nil {
		return err
	}
	if _, err := f.db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", relation, err)
	}

	insertSQL, err := common.GenInsertStmt(f.dialect, relation, attrs)
	if err != nil {
		return fmt.Errorf("failed to generate insert statement for %s: %w", relation, err)
	}
	f.mainStmt, err = f.db.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement for %s: %w", relation, err)
	}

	f.tx, err = f.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	f.stmt = f.tx.Stmt(f.mainStmt)
	f.attrs = attrs
	return nil
}

func (f *Formatter) FormatInstance(relation string, inst *arff.Instance) error {
	if f.stmt == nil {
		return fmt.Errorf("row received before schema for relation %s", relation)
	}

	args := make([]any, len(inst.Fields))
	for i, field := range inst.Fields {
		args[i] = bindValue(field)
	}
	if _, err := f.stmt.Exec(args...); err != nil {
		return fmt.Errorf("failed to insert row in %s: %w", relation, err)
	}

	f.rowCount++
	if f.rowCount%BatchSize == 0 {
		f.stmt.Close()
		if err := f.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		tx, err := f.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		f.tx = tx
		f.stmt = tx.Stmt(f.mainStmt)
	}
	return nil
}

// bindValue converts a parsed field to a database/sql argument. Missing
// values bind as NULL; dates bind as their SQL timestamp spelling.
func bindValue(field arff.Field) any {
	if field.Missing() {
		return nil
	}
	if t, ok := field.Value.(time.Time); ok {
		return t.Format(common.TimestampLayout)
	}
	return field.Value
}

// Close commits the open transaction, closes the database, and, when a temp
// file was used, copies the finished database to the writer.
func (f *Formatter) Close() error {
	if f.stmt != nil {
		f.stmt.Close()
		f.stmt = nil
	}
	if f.tx != nil {
		if err := f.tx.Commit(); err != nil {
			f.db.Close()
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		f.tx = nil
	}
	if f.mainStmt != nil {
		f.mainStmt.Close()
		f.mainStmt = nil
	}
	if err := f.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	if f.useTemp {
		defer os.Remove(f.dbPath)
		src, err := os.Open(f.dbPath)
		if err != nil {
			return fmt.Errorf("failed to open temp database for reading: %w", err)
		}
		defer src.Close()
		if _, err := io.Copy(f.w, src); err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}
	}
	return nil
}
