package activities

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BuddyOhio/back-end-g9-final-project/internal/telemetry/tracing"
	"github.com/BuddyOhio/back-end-g9-final-project/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrOwnerNotFound    = errors.New("activity owner not found")
)

// ListParams constrains an activity query. UserID is mandatory: every query
// is scoped to exactly one owner. Status and the instant range on the
// activity date are optional.
type ListParams struct {
	UserID string
	Status Status
	From   *time.Time
	To     *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, activity Activity) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO users_activities
				(id, user_id, name, description, activity_type, activity_type_other, activity_date, duration_mins, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		activity.ID, activity.UserID,
		activity.Name, activity.Description,
		activity.Type, activity.TypeOther,
		activity.Date, activity.DurationMinutes, activity.Status,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	span.SetAttributes(attribute.String("activity.id", activity.ID))
	return &activity, nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, name, description, activity_type, activity_type_other, activity_date, duration_mins, status
			FROM users_activities
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	result, err := rows2activities(rows)
	if err != nil {
		return nil, err
	}
	if len(result) != 1 {
		return nil, ErrActivityNotFound
	}

	return &result[0], nil
}

func (r *Repo) Update(ctx context.Context, activity *Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", activity.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users_activities
			SET name = $1, description = $2, activity_type = $3, activity_type_other = $4,
				activity_date = $5, duration_mins = $6, status = $7
			WHERE id = $8 AND user_id = $9;`,
		activity.Name, activity.Description,
		activity.Type, activity.TypeOther,
		activity.Date, activity.DurationMinutes, activity.Status,
		activity.ID, activity.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}

	return nil
}

// UpdateStatus sets the activity status, used by the explicit
// mark-as-completed operation.
func (r *Repo) UpdateStatus(ctx context.Context, userID, id string, status Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.updateStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))
	span.SetAttributes(attribute.String("status", string(status)))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users_activities SET status = $1 WHERE id = $2 AND user_id = $3;`,
		status, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM users_activities WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// ListAll returns all activities matching the params, newest first.
func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", params.UserID))
	span.SetAttributes(attribute.String("status", string(params.Status)))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	if params.UserID == "" {
		return nil, errors.New("user id is mandatory")
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, name, description, activity_type, activity_type_other, activity_date, duration_mins, status
			FROM users_activities
				WHERE user_id = $1
				AND ($2::text = '' OR status = $2)
				AND ($3::timestamptz IS NULL OR activity_date >= $3)
				AND ($4::timestamptz IS NULL OR activity_date <= $4)
			ORDER BY activity_date DESC;`,
		params.UserID, params.Status, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	result, err := rows2activities(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2activities: %w", err)
	}
	return result, nil
}

func rows2activities(rows pgx.Rows) ([]Activity, error) {
	var result []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(
			&a.ID, &a.UserID,
			&a.Name, &a.Description,
			&a.Type, &a.TypeOther,
			&a.Date, &a.DurationMinutes, &a.Status,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result = append(result, a)
	}
	return result, nil
}
