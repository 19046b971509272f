package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

const (
	MinStars = 1
	MaxStars = 5
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5 stars")
	ErrQuery         = errors.New("query error")
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Rating struct {
	RatingID  uuid.UUID
	SessionID uuid.UUID
	Stars     int
	CreatedOn time.Time
}

// NewRating builds a rating for the session with a fresh id, stamped now.
func NewRating(sessionID uuid.UUID, stars int) Rating {
	return Rating{
		RatingID:  uuid.New(),
		SessionID: sessionID,
		Stars:     stars,
		CreatedOn: time.Now(),
	}
}

type RatingSummary struct {
	Count       int64
	Average     float64
	LastRatedOn time.Time
}

// String renders the summary for display, eg. "4.5 ★ from 1,024 ratings, last 3 minutes ago".
func (s RatingSummary) String() string {
	if s.Count == 0 {
		return "Be the first to rate ZoNa"
	}

	noun := "ratings"
	if s.Count == 1 {
		noun = "rating"
	}

	return fmt.Sprintf("%.1f ★ from %s %s, last %s", s.Average, humanize.Comma(s.Count), noun,
		humanize.Time(s.LastRatedOn))
}

const addRating = `INSERT INTO rating (rating_id, session_id, stars, created_on) VALUES (?, ?, ?, ?)`

func (q *Queries) AddRating(ctx context.Context, rating Rating) error {
	if rating.Stars < MinStars || rating.Stars > MaxStars {
		return ErrInvalidRating
	}

	if _, err := q.db.ExecContext(ctx, addRating,
		rating.RatingID.String(),
		rating.SessionID.String(),
		rating.Stars,
		rating.CreatedOn.Unix(),
	); err != nil {
		return errors.Join(err, ErrQuery)
	}

	return nil
}

const ratingSummary = `SELECT count(*), coalesce(avg(stars), 0), max(created_on) FROM rating`

func (q *Queries) RatingSummary(ctx context.Context) (RatingSummary, error) {
	var (
		summary RatingSummary
		last    sql.NullInt64
	)

	if err := q.db.QueryRowContext(ctx, ratingSummary).Scan(&summary.Count, &summary.Average, &last); err != nil {
		return RatingSummary{}, errors.Join(err, ErrQuery)
	}

	if last.Valid {
		summary.LastRatedOn = time.Unix(last.Int64, 0)
	}

	return summary, nil
}
