// /home/krylon/go/src/github.com/blicero/movierental/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 16:48:03 krylon>

// Package database is wrapper around the actual database connection.
// It stores snapshots of the Movies in the catalog. We use SQLite, because
// it is awesome, and by default it lives entirely in memory.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/movierental/common"
	"github.com/blicero/movierental/database/query"
	"github.com/blicero/movierental/logdomain"
	"github.com/blicero/movierental/objects"
	_ "github.com/mattn/go-sqlite3" // Import the database driver
)

var (
	openLock sync.Mutex
	idCnt    int64
)

// ErrTxInProgress indicates that an attempt to initiate a transaction failed
// because there is already one in progress.
var ErrTxInProgress = errors.New("A Transaction is already in progress")

// ErrNoTxInProgress indicates that an attempt was made to finish a
// transaction when none was active.
var ErrNoTxInProgress = errors.New("There is no transaction in progress")

// ErrInvalidValue indicates that one or more parameters passed to a method
// had values that are invalid for that operation.
var ErrInvalidValue = errors.New("Invalid value for parameter")

// ErrObjectNotFound indicates that an Object was not found in the database.
var ErrObjectNotFound = errors.New("object was not found in database")

// ErrInvalidSavepoint is returned when a user of the Database uses an unkown
// (or expired) savepoint name.
var ErrInvalidSavepoint = errors.New("that save point does not exist")

// If a query returns an error and the error text is matched by this regex, we
// consider the error as transient and try again after a short delay.
var retryPat = regexp.MustCompile("(?i)database is (?:locked|busy)")

// worthARetry returns true if an error returned from the database
// is matched by the retryPat regex.
func worthARetry(e error) bool {
	return retryPat.MatchString(e.Error())
} // func worthARetry(e error) bool

// retryDelay is the amount of time we wait before we repeat a database
// operation that failed due to a transient error.
const retryDelay = 25 * time.Millisecond

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// Database is the storage backend for the movie catalog.
//
// It is not safe to share a Database instance between goroutines, however
// opening multiple connections to the same Database is safe.
type Database struct {
	id            int64
	db            *sql.DB
	tx            *sql.Tx
	log           *log.Logger
	path          string
	spNameCounter int
	spNameCache   map[string]string
	queries       map[query.ID]*sql.Stmt
}

// MemoryPath is the path that makes SQLite keep the database in memory.
const MemoryPath = ":memory:"

func isMemory(path string) bool {
	return path == MemoryPath || strings.Contains(path, "mode=memory")
} // func isMemory(path string) bool

// Open opens a Database. If the database specified by the path does not exist,
// yet, it is created and initialized.
// If path is MemoryPath, the Database is created in memory and is gone once
// it is closed.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:          path,
			spNameCounter: 1,
			spNameCache:   make(map[string]string),
			queries:       make(map[query.ID]*sql.Stmt),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	} else if common.Debug {
		db.log.Printf("[DEBUG] Open database %s\n", path)
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0",
		path)

	if isMemory(path) {
		dbExists = false
	} else if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if %s already exists: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	} else if isMemory(path) {
		// Every connection to an in-memory database gets its own, empty
		// database, so there must be exactly one, and it must stay open.
		db.db.SetMaxOpenConns(1)
		db.db.SetMaxIdleConns(1)
		db.db.SetConnMaxLifetime(0)
	}

	if !dbExists {
		if err = db.initialize(); err != nil {
			var e2 error
			if e2 = db.db.Close(); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
				return nil, e2
			} else if isMemory(path) {
				return nil, err
			} else if e2 = os.Remove(path); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to remove database file %s: %s\n",
					db.path,
					e2.Error())
			}
			return nil, err
		}
		db.log.Printf("[INFO] Database at %s has been initialized\n",
			path)
	}

	// With only one connection to go around, preparing a query while a
	// transaction holds it would block forever, so we do it all up front.
	for qid := range dbQueries {
		if _, err = db.getQuery(qid); err != nil {
			db.Close() // nolint: errcheck
			return nil, err
		}
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var err error
	var tx *sql.Tx

	if common.Debug {
		db.log.Printf("[DEBUG] Initialize fresh database at %s\n",
			db.path)
	}

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range initQueries {
		db.log.Printf("[TRACE] Execute init query:\n%s\n",
			q)
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query: %s\n%s\n",
				err.Error(),
				q)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database.
// If there is a pending transaction, it is rolled back.
func (db *Database) Close() error {
	// I wonder if would make more snese to panic() if something goes wrong

	var err error

	if db.tx != nil {
		if err = db.tx.Rollback(); err != nil {
			db.log.Printf("[CRITICAL] Cannot roll back pending transaction: %s\n",
				err.Error())
			return err
		}
		db.tx = nil
	}

	for key, stmt := range db.queries {
		if err = stmt.Close(); err != nil {
			db.log.Printf("[CRITICAL] Cannot close statement handle %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(db.queries, key)
	}

	if err = db.db.Close(); err != nil {
		db.log.Printf("[CRITICAL] Cannot close database: %s\n",
			err.Error())
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt  *sql.Stmt
		found bool
		err   error
	)

	if stmt, found = db.queries[id]; found {
		return stmt, nil
	} else if _, found = dbQueries[id]; !found {
		return nil, fmt.Errorf("Unknown Query %d",
			id)
	}

	db.log.Printf("[TRACE] Prepare query %s\n", id)

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(dbQueries[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot parse query %s: %s\n%s\n",
			id,
			err.Error(),
			dbQueries[id])
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

func (db *Database) resetSPNamespace() {
	db.spNameCounter = 1
	db.spNameCache = make(map[string]string)
} // func (db *Database) resetSPNamespace()

func (db *Database) generateSPName(name string) string {
	var spname = fmt.Sprintf("Savepoint%05d",
		db.spNameCounter)

	db.spNameCache[name] = spname
	db.spNameCounter++
	return spname
} // func (db *Database) generateSPName() string

// PerformMaintenance performs some maintenance operations on the database.
// It cannot be called while a transaction is in progress and will block
// pretty much all access to the database while it is running.
func (db *Database) PerformMaintenance() error {
	var mQueries = []string{
		"PRAGMA wal_checkpoint(TRUNCATE)",
		"VACUUM",
		"REINDEX",
		"ANALYZE",
	}
	var err error

	if db.tx != nil {
		return ErrTxInProgress
	}

	for _, q := range mQueries {
		if _, err = db.db.Exec(q); err != nil {
			db.log.Printf("[ERROR] Failed to execute %s: %s\n",
				q,
				err.Error())
		}
	}

	return nil
} // func (db *Database) PerformMaintenance() error

// Begin begins an explicit database transaction.
// Only one transaction can be in progress at once, attempting to start one,
// while another transaction is already in progress will yield ErrTxInProgress.
func (db *Database) Begin() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Begin Transaction\n",
		db.id)

	if db.tx != nil {
		return ErrTxInProgress
	}

BEGIN_TX:
	for db.tx == nil {
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				continue BEGIN_TX
			} else {
				db.log.Printf("[ERROR] Failed to start transaction: %s\n",
					err.Error())
				return err
			}
		}
	}

	db.resetSPNamespace()

	return nil
} // func (db *Database) Begin() error

// SavepointCreate creates a savepoint with the given name.
//
// Savepoints only exist within a transaction that was started by Begin,
// creating one without a transaction yields ErrNoTxInProgress, even though
// SQLite would allow it. The name is only used as a key, the savepoint
// itself gets a generated name, so the caller never gets to put anything
// into the SQL statement.
//
// Releasing a savepoint also releases all savepoints created after it,
// rolling back to a savepoint discards all savepoints created after it.
// Committing or rolling back the transaction discards all of them.
func (db *Database) SavepointCreate(name string) error {
	var err error

	db.log.Printf("[DEBUG] SavepointCreate(%s)\n",
		name)

	if db.tx == nil {
		return ErrNoTxInProgress
	}

	var (
		internalName = db.generateSPName(name)
		spQuery      = "SAVEPOINT " + internalName
	)

SAVEPOINT:
	if _, err = db.tx.Exec(spQuery); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto SAVEPOINT
		}

		db.log.Printf("[ERROR] Failed to create savepoint %s: %s\n",
			name,
			err.Error())
		delete(db.spNameCache, name)
	}

	return err
} // func (db *Database) SavepointCreate(name string) error

// SavepointRelease releases the Savepoint with the given name, and all
// Savepoints created before the one being release.
func (db *Database) SavepointRelease(name string) error {
	var (
		err                   error
		internalName, spQuery string
		validName             bool
	)

	db.log.Printf("[DEBUG] SavepointRelease(%s)\n",
		name)

	if db.tx == nil {
		return ErrNoTxInProgress
	}

	if internalName, validName = db.spNameCache[name]; !validName {
		db.log.Printf("[ERROR] Attempt to release unknown Savepoint %q\n",
			name)
		return ErrInvalidSavepoint
	}

	db.log.Printf("[DEBUG] Release Savepoint %q (%q)",
		name,
		db.spNameCache[name])

	spQuery = "RELEASE SAVEPOINT " + internalName

SAVEPOINT:
	if _, err = db.tx.Exec(spQuery); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto SAVEPOINT
		}

		db.log.Printf("[ERROR] Failed to release savepoint %s: %s\n",
			name,
			err.Error())
	} else {
		delete(db.spNameCache, name)
	}

	return err
} // func (db *Database) SavepointRelease(name string) error

// SavepointRollback rolls back the running transaction to the given savepoint.
func (db *Database) SavepointRollback(name string) error {
	var (
		err                   error
		internalName, spQuery string
		validName             bool
	)

	db.log.Printf("[DEBUG] SavepointRollback(%s)\n",
		name)

	if db.tx == nil {
		return ErrNoTxInProgress
	}

	if internalName, validName = db.spNameCache[name]; !validName {
		return ErrInvalidSavepoint
	}

	spQuery = "ROLLBACK TO SAVEPOINT " + internalName

SAVEPOINT:
	if _, err = db.tx.Exec(spQuery); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto SAVEPOINT
		}

		db.log.Printf("[ERROR] Failed to roll back to savepoint %s: %s\n",
			name,
			err.Error())
	}

	delete(db.spNameCache, name)
	return err
} // func (db *Database) SavepointRollback(name string) error

// Rollback terminates a pending transaction, undoing any changes to the
// database made during that transaction.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Rollback() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Roll back Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Rollback(); err != nil {
		return fmt.Errorf("Cannot roll back database transaction: %s",
			err.Error())
	}

	db.tx = nil
	db.resetSPNamespace()

	return nil
} // func (db *Database) Rollback() error

// Commit ends the active transaction, making any changes made during that
// transaction permanent and visible to other connections.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Commit() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Commit Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Commit(); err != nil {
		return fmt.Errorf("Cannot commit transaction: %s",
			err.Error())
	}

	db.resetSPNamespace()
	db.tx = nil
	return nil
} // func (db *Database) Commit() error

// MovieAdd adds a snapshot of a Movie, including its actors, to the
// Database.
func (db *Database) MovieAdd(m *objects.Snapshot) error {
	const qid query.ID = query.MovieAdd
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		status bool
	)

	if m == nil {
		return ErrInvalidValue
	} else if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(m.ID, m.Title, m.Genre, m.Year, m.Rentals); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		err = fmt.Errorf("Cannot add Movie %q to database: %s",
			m.String(),
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	} else if err = db.actorsAdd(tx, m); err != nil {
		return err
	}

	status = true
	return nil
} // func (db *Database) MovieAdd(m *objects.Snapshot) error

// MovieUpdate stores the genre, year, and rental count of the Movie.
// Actors that were added since the Movie was stored are added, too.
// If the Movie is not in the Database, it returns ErrObjectNotFound.
func (db *Database) MovieUpdate(m *objects.Snapshot) error {
	const qid query.ID = query.MovieUpdate
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		res    sql.Result
		cnt    int64
		status bool
	)

	if m == nil {
		return ErrInvalidValue
	} else if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if res, err = stmt.Exec(m.Genre, m.Year, m.Rentals, m.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		err = fmt.Errorf("Cannot update Movie %q (%s): %s",
			m.String(),
			m.ID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	} else if cnt, err = res.RowsAffected(); err != nil {
		db.log.Printf("[ERROR] Cannot get number of affected rows: %s\n",
			err.Error())
		return err
	} else if cnt == 0 {
		db.log.Printf("[ERROR] Movie %q (%s) is not in the database\n",
			m.String(),
			m.ID)
		return ErrObjectNotFound
	} else if err = db.actorsAdd(tx, m); err != nil {
		return err
	}

	status = true
	return nil
} // func (db *Database) MovieUpdate(m *objects.Snapshot) error

// actorsAdd stores the Movie's actors in their slots. Slots that are taken
// already are left alone, the roster only ever grows.
func (db *Database) actorsAdd(tx *sql.Tx, m *objects.Snapshot) error {
	const qid query.ID = query.ActorAdd
	var (
		err  error
		stmt *sql.Stmt
	)

	if len(m.Actors) > objects.ActorSlots {
		db.log.Printf("[ERROR] Movie %q has too many actors: %d\n",
			m.String(),
			len(m.Actors))
		return ErrInvalidValue
	} else if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	}

	stmt = tx.Stmt(stmt)

	for slot, name := range m.Actors {
	EXEC_QUERY:
		if _, err = stmt.Exec(m.ID, slot, name); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto EXEC_QUERY
			}

			err = fmt.Errorf("Cannot add Actor %q to Movie %q: %s",
				name,
				m.String(),
				err.Error())
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	return nil
} // func (db *Database) actorsAdd(tx *sql.Tx, m *objects.Snapshot) error

// MovieAddAll adds a batch of Movies in one transaction. Each Movie is added
// under its own savepoint, so a Movie that cannot be added is rolled back
// and skipped, while the rest of the batch goes in. The skipped Movies are
// returned along with the reason, keyed by their ID.
//
// If a transaction is already in progress, the batch becomes part of it,
// otherwise MovieAddAll begins and commits its own.
func (db *Database) MovieAddAll(list []objects.Snapshot) (map[string]error, error) {
	var (
		err     error
		adHoc   bool
		skipped = make(map[string]error)
	)

	if db.tx == nil {
		if err = db.Begin(); err != nil {
			return nil, err
		}
		adHoc = true
	}

	for i := range list {
		var (
			m      = &list[i]
			spName = fmt.Sprintf("MovieAddAll-%d", i)
		)

		if err = db.SavepointCreate(spName); err != nil {
			break
		} else if err = db.MovieAdd(m); err != nil {
			db.log.Printf("[INFO] Skip Movie %q: %s\n",
				m.String(),
				err.Error())
			skipped[m.ID] = err
			if err = db.SavepointRollback(spName); err != nil {
				break
			}
		} else if err = db.SavepointRelease(spName); err != nil {
			break
		}
	}

	if err != nil {
		db.log.Printf("[ERROR] Cannot add batch of %d Movies: %s\n",
			len(list),
			err.Error())
		if adHoc {
			if rbErr := db.Rollback(); rbErr != nil {
				db.log.Printf("[CRITICAL] Cannot roll back transaction: %s\n",
					rbErr.Error())
			}
		}
		return nil, err
	} else if adHoc {
		if err = db.Commit(); err != nil {
			return nil, err
		}
	}

	return skipped, nil
} // func (db *Database) MovieAddAll(list []objects.Snapshot) (map[string]error, error)

// MovieRemove removes a Movie and its actors from the Database.
func (db *Database) MovieRemove(id string) error {
	const qid query.ID = query.MovieRemove
	var (
		err    error
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		res    sql.Result
		cnt    int64
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = tx.Commit(); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if res, err = stmt.Exec(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		err = fmt.Errorf("Cannot delete Movie %s from database: %s",
			id,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	} else if cnt, err = res.RowsAffected(); err != nil {
		db.log.Printf("[ERROR] Cannot get number of affected rows: %s\n",
			err.Error())
		return err
	} else if cnt == 0 {
		return ErrObjectNotFound
	}

	status = true
	return nil
} // func (db *Database) MovieRemove(id string) error

// MovieGetAll fetches all Movies from the Database, in the order they were
// added.
func (db *Database) MovieGetAll() ([]objects.Snapshot, error) {
	const qid query.ID = query.MovieGetAll
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	var list []objects.Snapshot

	if list, err = db.scanMovies(rows); err != nil {
		return nil, err
	} else if err = db.loadActors(list); err != nil {
		return nil, err
	}

	return list, nil
} // func (db *Database) MovieGetAll() ([]objects.Snapshot, error)

// MovieGetBlockbusters fetches all Movies that have been rented at least
// objects.BlockbusterThreshold times, most popular first.
func (db *Database) MovieGetBlockbusters() ([]objects.Snapshot, error) {
	const qid query.ID = query.MovieGetBlockbusters
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(objects.BlockbusterThreshold); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	var list []objects.Snapshot

	if list, err = db.scanMovies(rows); err != nil {
		return nil, err
	} else if err = db.loadActors(list); err != nil {
		return nil, err
	}

	return list, nil
} // func (db *Database) MovieGetBlockbusters() ([]objects.Snapshot, error)

// scanMovies reads all rows and closes them. The columns have to be
// id, title, genre, year, rentals.
func (db *Database) scanMovies(rows *sql.Rows) ([]objects.Snapshot, error) {
	var (
		err  error
		list = make([]objects.Snapshot, 0, 64)
	)

	defer rows.Close() // nolint: errcheck,gosec

	for rows.Next() {
		var m objects.Snapshot

		if err = rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Year, &m.Rentals); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		list = append(list, m)
	}

	return list, rows.Err()
} // func (db *Database) scanMovies(rows *sql.Rows) ([]objects.Snapshot, error)

func (db *Database) loadActors(list []objects.Snapshot) error {
	var err error

	for i := range list {
		if list[i].Actors, err = db.ActorGetByMovie(list[i].ID); err != nil {
			return err
		}
	}

	return nil
} // func (db *Database) loadActors(list []objects.Snapshot) error

// MovieGetByID looks up a Movie by its ID. If there is no such Movie, it
// returns nil and no error.
func (db *Database) MovieGetByID(id string) (*objects.Snapshot, error) {
	const qid query.ID = query.MovieGetByID
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	var (
		m     = &objects.Snapshot{ID: id}
		found bool
	)

	if rows.Next() {
		if err = rows.Scan(&m.Title, &m.Genre, &m.Year, &m.Rentals); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			rows.Close() // nolint: errcheck,gosec
			return nil, err
		}
		found = true
	}

	rows.Close() // nolint: errcheck,gosec

	if !found {
		return nil, nil
	} else if m.Actors, err = db.ActorGetByMovie(id); err != nil {
		return nil, err
	}

	return m, nil
} // func (db *Database) MovieGetByID(id string) (*objects.Snapshot, error)

// MovieGetByTitle fetches all Movies with the given title. There might be
// more than one, e.g. remakes.
func (db *Database) MovieGetByTitle(title string) ([]objects.Snapshot, error) {
	const qid query.ID = query.MovieGetByTitle
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(title); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	var list = make([]objects.Snapshot, 0, 4)

	for rows.Next() {
		var m = objects.Snapshot{Title: title}

		if err = rows.Scan(&m.ID, &m.Genre, &m.Year, &m.Rentals); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			rows.Close() // nolint: errcheck,gosec
			return nil, err
		}

		list = append(list, m)
	}

	err = rows.Err()
	rows.Close() // nolint: errcheck,gosec

	if err != nil {
		db.log.Printf("[ERROR] Error iterating over Movies titled %q: %s\n",
			title,
			err.Error())
		return nil, err
	} else if err = db.loadActors(list); err != nil {
		return nil, err
	}

	return list, nil
} // func (db *Database) MovieGetByTitle(title string) ([]objects.Snapshot, error)

// ActorGetByMovie returns the names of the actors in the Movie with the
// given ID, in roster order.
func (db *Database) ActorGetByMovie(id string) ([]string, error) {
	const qid query.ID = query.ActorGetByMovie
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec

	var names = make([]string, 0, objects.ActorSlots)

	for rows.Next() {
		var name string

		if err = rows.Scan(&name); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		db.log.Printf("[ERROR] Error iterating over actors of Movie %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	return names, nil
} // func (db *Database) ActorGetByMovie(id string) ([]string, error)
