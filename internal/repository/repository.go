package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avilov-dev/washpay/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateSession(ctx context.Context, s entity.CheckoutSession) error {
	const q = `
	INSERT INTO checkout_sessions (
		id,
		user_id,
		pos_id,
		car_wash_device_id,
		sum,
		bay_type,
		bay_number,
		name,
		free,
		discount,
		final_amount,
		promo_input,
		promo_code_id,
		promo_error,
		used_points,
		max_points,
		points_toggled,
		payment_method,
		processing_status,
		error,
		order_id,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`

	discount, err := marshalDiscount(s.Discount)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		q,
		s.ID,
		s.UserID,
		s.Order.PosID,
		s.Order.CarWashDeviceID,
		s.Order.Sum,
		s.Order.BayType,
		s.Order.BayNumber,
		s.Order.Name,
		s.Order.Free,
		discount,
		s.FinalAmount,
		s.PromoInput,
		zeronull.Int8(int64PtrValue(s.PromoCodeID)),
		s.PromoError,
		s.UsedPoints,
		s.MaxPoints,
		s.PointsToggled,
		s.PaymentMethod,
		s.Processing,
		s.Error,
		zeronull.Int8(int64PtrValue(s.OrderID)),
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *Repository) Session(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error) {
	q := selectSession + " WHERE id = $1"
	return scanSession(r.db.QueryRow(ctx, q, id))
}

// SessionsByUser returns the user's sessions, optionally narrowed to one
// processing status, newest first.
func (r *Repository) SessionsByUser(ctx context.Context, userID uuid.UUID, status *entity.ProcessingStatus, limit uint64) ([]entity.CheckoutSession, error) {
	stmt := sq.Select(
		"id",
		"user_id",
		"pos_id",
		"car_wash_device_id",
		"sum",
		"bay_type",
		"bay_number",
		"name",
		"free",
		"discount",
		"final_amount",
		"promo_input",
		"promo_code_id",
		"promo_error",
		"used_points",
		"max_points",
		"points_toggled",
		"payment_method",
		"processing_status",
		"error",
		"order_id",
		"created_at",
		"updated_at",
	).From("checkout_sessions").Where(sq.Eq{"user_id": userID}).PlaceholderFormat(sq.Dollar)

	if status != nil {
		stmt = stmt.Where(sq.Eq{"processing_status": *status})
	}

	if limit > 0 {
		stmt = stmt.Limit(limit)
	}

	stmt = stmt.OrderBy("created_at DESC")

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []entity.CheckoutSession

	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// UpdateQuote persists the pricing, promo and points fields after a
// recalculation. Lifecycle fields are untouched.
func (r *Repository) UpdateQuote(ctx context.Context, s entity.CheckoutSession) error {
	const q = `UPDATE checkout_sessions SET
		discount = $1,
		final_amount = $2,
		promo_input = $3,
		promo_code_id = $4,
		promo_error = $5,
		used_points = $6,
		max_points = $7,
		points_toggled = $8,
		error = $9,
		updated_at = $10
	WHERE id = $11`

	discount, err := marshalDiscount(s.Discount)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(
		ctx,
		q,
		discount,
		s.FinalAmount,
		s.PromoInput,
		zeronull.Int8(int64PtrValue(s.PromoCodeID)),
		s.PromoError,
		s.UsedPoints,
		s.MaxPoints,
		s.PointsToggled,
		s.Error,
		time.Now(),
		s.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// StartProcessing moves a session into the given initial phase, but only if
// no payment is in flight. This is the re-entrancy guard: a concurrent
// second submit gets ErrAlreadyProcessing. A session whose previous run
// already failed can be claimed again; the resubmit clears the error.
func (r *Repository) StartProcessing(
	ctx context.Context,
	id uuid.UUID,
	method entity.PaymentMethod,
	status entity.ProcessingStatus,
	updatedAt time.Time,
) error {
	const q = `UPDATE checkout_sessions
	SET payment_method = $1, processing_status = $2, error = '', updated_at = $3
	WHERE id = $4 AND (processing_status = '' OR error <> '')`

	result, err := r.db.Exec(ctx, q, method, status, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		_, err := r.Session(ctx, id)
		if err != nil {
			return err
		}

		return entity.ErrAlreadyProcessing
	}

	return nil
}

func (r *Repository) SetProcessing(ctx context.Context, id uuid.UUID, status entity.ProcessingStatus, updatedAt time.Time) error {
	const q = `UPDATE checkout_sessions SET processing_status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, status, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetOrderID(ctx context.Context, id uuid.UUID, orderID int64, updatedAt time.Time) error {
	const q = `UPDATE checkout_sessions SET order_id = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, orderID, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// FailProcessing records the user-facing error text. The processing status
// is left as is so the client can see which phase failed.
func (r *Repository) FailProcessing(ctx context.Context, id uuid.UUID, errText string, updatedAt time.Time) error {
	const q = `UPDATE checkout_sessions SET error = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, errText, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ClearProcessing resets the lifecycle phase after the post-payment hold.
func (r *Repository) ClearProcessing(ctx context.Context, id uuid.UUID, updatedAt time.Time) error {
	return r.SetProcessing(ctx, id, entity.ProcessingStatusNone, updatedAt)
}

// FailStaleSessions marks sessions stuck mid-payment older than the cutoff
// as failed, so clients do not poll them forever.
func (r *Repository) FailStaleSessions(ctx context.Context, cutoff time.Time, errText string) (int64, error) {
	const q = `UPDATE checkout_sessions
	SET error = $1, updated_at = $2
	WHERE error = ''
	  AND processing_status IN ($3, $4, $5, $6)
	  AND updated_at < $7`

	result, err := r.db.Exec(
		ctx,
		q,
		errText,
		time.Now(),
		entity.ProcessingStatusProcessing,
		entity.ProcessingStatusWaitingPayment,
		entity.ProcessingStatusPolling,
		entity.ProcessingStatusProcessingFree,
		cutoff,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanSession(row pgx.Row) (entity.CheckoutSession, error) {
	var (
		s           entity.CheckoutSession
		discount    []byte
		promoCodeID zeronull.Int8
		orderID     zeronull.Int8
	)

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Order.PosID,
		&s.Order.CarWashDeviceID,
		&s.Order.Sum,
		&s.Order.BayType,
		&s.Order.BayNumber,
		&s.Order.Name,
		&s.Order.Free,
		&discount,
		&s.FinalAmount,
		&s.PromoInput,
		&promoCodeID,
		&s.PromoError,
		&s.UsedPoints,
		&s.MaxPoints,
		&s.PointsToggled,
		&s.PaymentMethod,
		&s.Processing,
		&s.Error,
		&orderID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.CheckoutSession{}, entity.ErrNotFound
		}

		return entity.CheckoutSession{}, err
	}

	if len(discount) > 0 {
		var d entity.DiscountResult

		err = json.Unmarshal(discount, &d)
		if err != nil {
			return entity.CheckoutSession{}, fmt.Errorf("unmarshal discount: %w", err)
		}

		s.Discount = &d
	}

	if promoCodeID != 0 {
		v := int64(promoCodeID)
		s.PromoCodeID = &v
	}

	if orderID != 0 {
		v := int64(orderID)
		s.OrderID = &v
	}

	return s, nil
}

func marshalDiscount(d *entity.DiscountResult) ([]byte, error) {
	if d == nil {
		return nil, nil
	}

	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal discount: %w", err)
	}

	return b, nil
}

func int64PtrValue(v *int64) int64 {
	if v == nil {
		return 0
	}

	return *v
}
