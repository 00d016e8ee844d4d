package runner

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"

	"word_dict/common"

	_ "github.com/mattn/go-sqlite3"
)

const resultTableSql = `
CREATE TABLE result(
   id       INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
   seq      INTEGER NOT NULL,
   pattern  TEXT NOT NULL,
   kind     TEXT NOT NULL,
   matched  INTEGER NOT NULL
);
`

const insertResultSql = "insert into result (seq, pattern, kind, matched) values(?,?,?,?)"

// ResultWriter stores search results in a sqlite db and/or a text file. Both are optional.
type ResultWriter struct {
	db   *sql.DB
	file *os.File
	buf  *bufio.Writer
}

func NewResultWriter(dbFile, resultFile string) (*ResultWriter, error) {
	p := new(ResultWriter)
	if len(dbFile) != 0 {
		os.Remove(dbFile)
		db, err := sql.Open("sqlite3", dbFile)
		if err != nil {
			return nil, fmt.Errorf("open sqlite db[%v] failed[%v]", dbFile, err)
		}
		if _, err := db.Exec(resultTableSql); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec sql %s failed[%v]", resultTableSql, err)
		}
		p.db = db
	}
	if len(resultFile) != 0 {
		file, err := os.OpenFile(resultFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("open result file[%v] failed[%v]", resultFile, err)
		}
		p.file = file
		p.buf = bufio.NewWriter(file)
	}
	return p, nil
}

// WriteResults consumes results until the channel is closed. After the first
// error the remaining results are drained and dropped.
func (p *ResultWriter) WriteResults(results <-chan *common.Result) error {
	var err error
	var tx *sql.Tx
	var stmt *sql.Stmt
	count := 0
	for result := range results {
		if err != nil {
			continue
		}

		if p.db != nil {
			if count%common.CommitBatch == 0 {
				if tx, stmt, err = p.rotateTx(tx, stmt); err != nil {
					continue
				}
			}
			if _, err = stmt.Exec(result.Seq, result.Pattern, result.Kind.String(), result.Matched); err != nil {
				err = fmt.Errorf("insert result[%v] failed[%v]", result.Pattern, err)
				continue
			}
		}
		if p.buf != nil {
			if _, err = fmt.Fprintf(p.buf, "%s\t%v\n", result.Pattern, result.Matched); err != nil {
				continue
			}
		}
		count++
	}

	if tx != nil {
		stmt.Close()
		if err != nil {
			tx.Rollback()
		} else if e := tx.Commit(); e != nil {
			err = fmt.Errorf("commit result failed[%v]", e)
		}
	}
	if p.buf != nil {
		if e := p.buf.Flush(); e != nil && err == nil {
			err = e
		}
	}
	if err != nil {
		common.Logger.Error(err)
	}
	return err
}

func (p *ResultWriter) rotateTx(tx *sql.Tx, stmt *sql.Stmt) (*sql.Tx, *sql.Stmt, error) {
	if tx != nil {
		stmt.Close()
		if err := tx.Commit(); err != nil {
			return nil, nil, fmt.Errorf("commit result failed[%v]", err)
		}
	}

	tx, err := p.db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("begin transaction failed[%v]", err)
	}
	stmt, err = tx.Prepare(insertResultSql)
	if err != nil {
		tx.Rollback()
		return nil, nil, fmt.Errorf("prepare %s failed[%v]", insertResultSql, err)
	}
	return tx, stmt, nil
}

func (p *ResultWriter) Close() {
	if p.db != nil {
		p.db.Close()
		p.db = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
}
