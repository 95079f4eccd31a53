package ticketlog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Ticket is one issue-desk ticket row. The generated ticket_id is a
// placeholder scheme and may collide across orders; the row id is the
// durable identifier.
type Ticket struct {
	bun.BaseModel `bun:"table:support_tickets,alias:st"`

	ID         int64     `bun:"id,pk,autoincrement"`
	TicketID   string    `bun:"ticket_id,notnull"`
	OrderID    string    `bun:"order_id,notnull"`
	IssueType  string    `bun:"issue_type,notnull"`
	Resolution string    `bun:"resolution"`
	Escalated  bool      `bun:"escalated"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Store records tickets raised by the issue-desk capability.
type Store interface {
	Record(ctx context.Context, ticket *Ticket) error
}

type Config struct {
	DSN     string        `envconfig:"DSN" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
}

// BunStore persists tickets in Postgres through bun.
type BunStore struct {
	db      *bun.DB
	timeout time.Duration
}

func NewBunStore(cfg Config) (*BunStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("ticket log dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &BunStore{db: db, timeout: timeout}, nil
}

func (s *BunStore) Record(ctx context.Context, ticket *Ticket) error {
	if ticket == nil {
		return errors.New("nil ticket")
	}
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.db.NewInsert().Model(ticket).Exec(ctx)
	return err
}

func (s *BunStore) Close() error {
	return s.db.Close()
}

// NopStore drops tickets; the default when no DSN is configured.
type NopStore struct{}

func (NopStore) Record(context.Context, *Ticket) error {
	return nil
}
