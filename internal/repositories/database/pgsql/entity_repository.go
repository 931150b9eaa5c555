package pgsql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	"github.com/konskyyy/ewidencja-sprzetu/internal/models"
	"github.com/konskyyy/ewidencja-sprzetu/internal/utils/mapping"
)

// PgxEntityRepository reads entity rows owned by the inventory. It never writes.
type PgxEntityRepository struct {
	BaseRepository
}

func newPgxEntityRepository(db Querier) *PgxEntityRepository {
	return &PgxEntityRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

func (r *PgxEntityRepository) EntityExists(ctx context.Context, kind domain.EntityKind, entityID int64) (bool, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return false, err
	}

	sub, subArgs, err := sq.Select("1").From(t.entityTable).Where(sq.Eq{"id": entityID}).ToSql()
	if err != nil {
		return false, mapError(err, "build entity exists query")
	}
	query, args, err := psql.Select().Column("EXISTS ("+sub+")", subArgs...).ToSql()
	if err != nil {
		return false, mapError(err, "build entity exists query")
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, mapError(err, "check entity exists")
	}
	return exists, nil
}

func deviceSelect() sq.SelectBuilder {
	t := kindRegistry[domain.KindPoints]
	return psql.Select(
		"id",
		t.titleColumn+" AS title",
		"COALESCE(in_storage, false) AS in_storage",
		"warehouse",
		"last_calibration_at",
		"calibration_interval_years",
	).From(t.entityTable)
}

func (r *PgxEntityRepository) FindDeviceByID(ctx context.Context, deviceID int64) (*domain.Device, error) {
	query, args, err := deviceSelect().Where(sq.Eq{"id": deviceID}).ToSql()
	if err != nil {
		return nil, mapError(err, "build find device query")
	}

	var m models.Device
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.Title, &m.InStorage, &m.Warehouse, &m.LastCalibrationAt, &m.CalibrationIntervalYears,
	)
	if err != nil {
		return nil, mapError(err, "find device")
	}
	d := mapping.ToDomainDevice(m)
	return &d, nil
}

func (r *PgxEntityRepository) ListDevices(ctx context.Context) ([]domain.Device, error) {
	query, args, err := deviceSelect().OrderBy("id").ToSql()
	if err != nil {
		return nil, mapError(err, "build list devices query")
	}

	var rows []models.Device
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, mapError(err, "list devices")
	}
	return mapping.ToDomainDeviceSlice(rows), nil
}
