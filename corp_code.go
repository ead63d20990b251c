package main

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

const corpCodeSchema = `
CREATE TABLE IF NOT EXISTS corp_code (
  corp_code       CHAR(8)      NOT NULL,
  corp_name       VARCHAR(255) NOT NULL,
  corp_eng_name   VARCHAR(255) NOT NULL DEFAULT '',
  stock_code      VARCHAR(6)   NOT NULL DEFAULT '',
  modify_date     CHAR(8)      NOT NULL DEFAULT '',
  create_datetime DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
  update_datetime DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (corp_code),
  KEY corp_name (corp_name)
) DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci`

// sqlCorpStore keeps the directory in the MySQL corp_code table.
type sqlCorpStore struct {
	db     *sqlx.DB
	logger *zerolog.Logger
}

func newSQLCorpStore(db *sqlx.DB, logger *zerolog.Logger) *sqlCorpStore {
	return &sqlCorpStore{db: db, logger: logger}
}

// dbConnect opens MySQL and switches the connection to utf8mb4 so Korean
// names round-trip.
func dbConnect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}
	if _, err := db.ExecContext(ctx, "SET NAMES utf8mb4 COLLATE utf8mb4_general_ci"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to switch mysql to utf8mb4: %w", err)
	}
	return db, nil
}

func (s *sqlCorpStore) LoadCorps(ctx context.Context) ([]Corp, error) {
	corps := []Corp{}
	err := s.db.SelectContext(ctx, &corps, `
	  SELECT corp_code, corp_name, corp_eng_name, stock_code, modify_date
	  FROM corp_code
	  ORDER BY corp_name`)
	if err != nil {
		s.logger.Error().Err(err).Str("table_name", "corp_code").Msg("failed on SELECT")
		return nil, err
	}
	return corps, nil
}

func (s *sqlCorpStore) SaveCorps(ctx context.Context, corps []Corp) error {
	if _, err := s.db.ExecContext(ctx, corpCodeSchema); err != nil {
		s.logger.Error().Err(err).Str("table_name", "corp_code").Msg("failed on CREATE TABLE")
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamedContext(ctx, `
	  INSERT INTO corp_code (corp_code, corp_name, corp_eng_name, stock_code, modify_date)
	  VALUES (:corp_code, :corp_name, :corp_eng_name, :stock_code, :modify_date)
	  ON DUPLICATE KEY UPDATE
	    corp_name=VALUES(corp_name), corp_eng_name=VALUES(corp_eng_name),
	    stock_code=VALUES(stock_code), modify_date=VALUES(modify_date)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range corps {
		if _, err := stmt.ExecContext(ctx, c); err != nil {
			s.logger.Error().Err(err).Str("table_name", "corp_code").Str("corp_code", c.CorpCode).Msg("failed on INSERT")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info().Int("companies", len(corps)).Str("table_name", "corp_code").Msg("saved corp directory")
	return nil
}
