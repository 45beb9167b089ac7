package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fusionware/storefront/internal/domain"
)

// ticketIDLock serialises display-id allocation across replicas.
const ticketIDLock = 0x7469636b

const ticketColumns = `id, subject, description, status, priority, category, customer_id, customer_name,
               customer_email, assigned_to, created_at, last_update`

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository returns a Postgres-backed implementation.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	tickets := []domain.Ticket{}
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	threads, err := r.allMessages(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		tickets[i].Messages = threads[tickets[i].ID]
		if tickets[i].Messages == nil {
			tickets[i].Messages = []domain.TicketMessage{}
		}
	}
	return tickets, nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id)
	ticket, err := scanTicket(row)
	if err != nil {
		return nil, err
	}
	messages, err := r.messages(ctx, id)
	if err != nil {
		return nil, err
	}
	ticket.Messages = messages
	return ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if ticket.ID == "" {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, ticketIDLock); err != nil {
			return err
		}
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count); err != nil {
			return err
		}
		ticket.ID = domain.TicketDisplayID(count + 1)
	}

	const query = `
        INSERT INTO tickets (id, subject, description, status, priority, category, customer_id, customer_name,
                             customer_email, assigned_to, created_at, last_update)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	if _, err := tx.Exec(ctx, query,
		ticket.ID,
		ticket.Subject,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.Category,
		ticket.CustomerID,
		ticket.CustomerName,
		ticket.CustomerEmail,
		ticket.AssignedTo,
		ticket.CreatedAt,
		ticket.LastUpdate,
	); err != nil {
		return err
	}

	for i := range ticket.Messages {
		msg := &ticket.Messages[i]
		msg.ID = strconv.Itoa(i + 1)
		if err := insertMessage(ctx, tx, ticket.ID, i+1, msg); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET subject=$1, description=$2, status=$3, priority=$4, category=$5,
            assigned_to=$6, last_update=$7
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Subject,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.Category,
		ticket.AssignedTo,
		ticket.LastUpdate,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) AppendMessage(ctx context.Context, ticketID string, msg *domain.TicketMessage, status domain.TicketStatus, lastUpdate time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var locked string
	if err := tx.QueryRow(ctx, `SELECT id FROM tickets WHERE id=$1 FOR UPDATE`, ticketID).Scan(&locked); err != nil {
		return err
	}
	var position int
	if err := tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), 0) + 1 FROM ticket_messages WHERE ticket_id=$1`, ticketID,
	).Scan(&position); err != nil {
		return err
	}
	msg.ID = strconv.Itoa(position)
	if err := insertMessage(ctx, tx, ticketID, position, msg); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE tickets SET status=$1, last_update=$2 WHERE id=$3`, status, lastUpdate, ticketID,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ticketRepository) messages(ctx context.Context, ticketID string) ([]domain.TicketMessage, error) {
	const query = `
        SELECT position, sender, sender_name, message, created_at
        FROM ticket_messages WHERE ticket_id=$1 ORDER BY position ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.TicketMessage{}
	for rows.Next() {
		var (
			msg      domain.TicketMessage
			position int
		)
		if err := rows.Scan(&position, &msg.Sender, &msg.SenderName, &msg.Message, &msg.Timestamp); err != nil {
			return nil, err
		}
		msg.ID = strconv.Itoa(position)
		result = append(result, msg)
	}
	return result, rows.Err()
}

func (r *ticketRepository) allMessages(ctx context.Context) (map[string][]domain.TicketMessage, error) {
	const query = `
        SELECT ticket_id, position, sender, sender_name, message, created_at
        FROM ticket_messages ORDER BY ticket_id, position ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]domain.TicketMessage)
	for rows.Next() {
		var (
			ticketID string
			position int
			msg      domain.TicketMessage
		)
		if err := rows.Scan(&ticketID, &position, &msg.Sender, &msg.SenderName, &msg.Message, &msg.Timestamp); err != nil {
			return nil, err
		}
		msg.ID = strconv.Itoa(position)
		result[ticketID] = append(result[ticketID], msg)
	}
	return result, rows.Err()
}

func insertMessage(ctx context.Context, tx pgx.Tx, ticketID string, position int, msg *domain.TicketMessage) error {
	const query = `
        INSERT INTO ticket_messages (ticket_id, position, sender, sender_name, message, created_at)
        VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := tx.Exec(ctx, query, ticketID, position, msg.Sender, msg.SenderName, msg.Message, msg.Timestamp)
	return err
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := row.Scan(
		&ticket.ID,
		&ticket.Subject,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.Category,
		&ticket.CustomerID,
		&ticket.CustomerName,
		&ticket.CustomerEmail,
		&ticket.AssignedTo,
		&ticket.CreatedAt,
		&ticket.LastUpdate,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}
