package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"golden_traff/internal/domain"
	"golden_traff/internal/domain/entity"
	"golden_traff/internal/domain/value"
	"golden_traff/pkg/errcodes"
)

type DealRepository struct {
	db *sqlx.DB
}

// NewDealRepository создаёт новый экземпляр репозитория.
func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *DealRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// Create сохраняет новую сделку.
func (r *DealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO deals (
				id, username, amount, date, status, mirror_message_id,
				restored, app_type, user_id, avatar, created_by
			) VALUES (
				:id, :username, :amount, :date, :status, :mirror_message_id,
				:restored, :app_type, :user_id, :avatar, :created_by
			)`

		if _, err := tx.NamedExecContext(ctx, query, fromDeal(deal)); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert deal")
		}

		return nil
	})
}

// List возвращает все сделки по убыванию даты.
func (r *DealRepository) List(ctx context.Context) ([]entity.Deal, error) {
	query := `
		SELECT id, username, amount, date, status, mirror_message_id,
		       restored, app_type, user_id, avatar, created_by
		FROM deals
		ORDER BY date DESC`

	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deals")
	}

	deals := make([]entity.Deal, 0, len(schemas))
	for _, s := range schemas {
		deals = append(deals, *s.toDomain())
	}

	return deals, nil
}

// GetByID возвращает сделку по идентификатору.
func (r *DealRepository) GetByID(ctx context.Context, id string) (*entity.Deal, error) {
	query := `
		SELECT id, username, amount, date, status, mirror_message_id,
		       restored, app_type, user_id, avatar, created_by
		FROM deals
		WHERE id = $1`

	var schema dealSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get deal")
	}

	return schema.toDomain(), nil
}

// UpdateStatus меняет статус и возвращает обновлённую сделку.
func (r *DealRepository) UpdateStatus(ctx context.Context, id string, status value.DealStatus) (*entity.Deal, error) {
	query := `
		UPDATE deals
		SET status = $1
		WHERE id = $2
		RETURNING id, username, amount, date, status, mirror_message_id,
		          restored, app_type, user_id, avatar, created_by`

	var schema dealSchema
	if err := r.db.GetContext(ctx, &schema, query, status.String(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to update deal status")
	}

	return schema.toDomain(), nil
}

// UpdateMirrorMessageID сохраняет идентификатор зеркального сообщения.
// nil снимает привязку.
func (r *DealRepository) UpdateMirrorMessageID(ctx context.Context, id string, messageID *int) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `UPDATE deals SET mirror_message_id = $1 WHERE id = $2`

		var val sql.NullInt64
		if messageID != nil {
			val = sql.NullInt64{Int64: int64(*messageID), Valid: true}
		}

		return r.execUpdateTx(ctx, tx, query, val, id)
	})
}

// Delete удаляет сделку.
func (r *DealRepository) Delete(ctx context.Context, id string) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		return r.execUpdateTx(ctx, tx, `DELETE FROM deals WHERE id = $1`, id)
	})
}

// execUpdateTx — внутренний метод обновления в рамках транзакции.
func (r *DealRepository) execUpdateTx(ctx context.Context, tx *sqlx.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to execute update")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	return nil
}
