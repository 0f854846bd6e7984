package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sobadon/epgd/domain/model/catalog"
	"github.com/sobadon/epgd/domain/repository"
	"github.com/sobadon/epgd/internal/errutil"
)

type seriesIdentitySqlite struct {
	SeriesName string         `db:"series_name"`
	ChannelID  string         `db:"channel_id"`
	ExternalID sql.NullString `db:"external_id"`
	CatalogID  int            `db:"catalog_id"`
}

func seriesIdentitySqliteToModel(identitySqlite seriesIdentitySqlite) catalog.SeriesIdentity {
	return catalog.SeriesIdentity{
		SeriesName: identitySqlite.SeriesName,
		ChannelID:  identitySqlite.ChannelID,
		ExternalID: identitySqlite.ExternalID.String, // 空文字になってくれればよい
		CatalogID:  identitySqlite.CatalogID,
	}
}

func modelToSeriesIdentitySqlite(identity catalog.SeriesIdentity) seriesIdentitySqlite {
	var externalID sql.NullString
	if identity.ExternalID == "" {
		externalID.Valid = false
	} else {
		externalID.Valid = true
		externalID.String = identity.ExternalID
	}

	return seriesIdentitySqlite{
		SeriesName: identity.SeriesName,
		ChannelID:  identity.ChannelID,
		ExternalID: externalID,
		CatalogID:  identity.CatalogID,
	}
}

func NewDB(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseOpen, err.Error())
	}
	return db, nil
}

// テーブル作成
func Setup(db *sqlx.DB) error {
	_, err := db.Exec(`create table if not exists series_identities (
		series_name text not null,
		channel_id text not null,
		external_id text,
		catalog_id integer not null,
		created_at timestamp not null default (datetime('now', 'localtime')),
		updated_at timestamp not null default (datetime('now', 'localtime')),
		unique (series_name, channel_id)
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	_, err = db.Exec(`CREATE TRIGGER if not exists trigger_identities_updated_at AFTER UPDATE ON series_identities
		BEGIN
			UPDATE series_identities SET updated_at = DATETIME('now', 'localtime') WHERE rowid == NEW.rowid;
		END;
		`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	return nil
}

type client struct {
	DB *sqlx.DB
}

func New(db *sqlx.DB) repository.IdentityStore {
	return &client{
		DB: db,
	}
}

func (c *client) Save(ctx context.Context, identity catalog.SeriesIdentity) error {
	identitySqlite := modelToSeriesIdentitySqlite(identity)

	// (series_name, channel_id) につきカタログ ID は高々 1 つ
	_, err := c.DB.NamedExecContext(ctx,
		`insert into series_identities (series_name, channel_id, external_id, catalog_id)
		values
		(:series_name, :channel_id, :external_id, :catalog_id)
		on conflict (series_name, channel_id) do nothing`,
		identitySqlite)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	return nil
}

func (c *client) FindByName(ctx context.Context, seriesName string, channelID string) (*catalog.SeriesIdentity, error) {
	var identitiesSqlite []seriesIdentitySqlite
	err := c.DB.SelectContext(ctx, &identitiesSqlite,
		`select series_name, channel_id, external_id, catalog_id from series_identities
		where series_name = ? and channel_id = ? limit 1`,
		seriesName, channelID)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	if len(identitiesSqlite) == 0 {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFoundIdentity, "not found identity (series_name = %s, channel_id = %s)", seriesName, channelID)
	}

	identity := seriesIdentitySqliteToModel(identitiesSqlite[0])
	return &identity, nil
}

func (c *client) FindByExternalID(ctx context.Context, externalID string) (*catalog.SeriesIdentity, error) {
	var identitiesSqlite []seriesIdentitySqlite
	err := c.DB.SelectContext(ctx, &identitiesSqlite,
		`select series_name, channel_id, external_id, catalog_id from series_identities
		where external_id = ? limit 1`,
		externalID)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	if len(identitiesSqlite) == 0 {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFoundIdentity, "not found identity (external_id = %s)", externalID)
	}

	identity := seriesIdentitySqliteToModel(identitiesSqlite[0])
	return &identity, nil
}
