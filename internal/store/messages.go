package store

import (
	"time"

	"github.com/google/uuid"
)

// Message is one mailbox entry.
type Message struct {
	ID        int64
	Body      string
	CreatedAt time.Time
	Read      bool
}

// Deliver appends body to the recipient's mailbox.
func (s *Store) Deliver(recipient uuid.UUID, body string) error {
	_, err := s.db.Exec(
		`INSERT INTO messages (recipient_id, body, created_at) VALUES (?, ?, ?)`,
		recipient.String(), body, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return translate(err)
}

// Inbox returns the recipient's messages, oldest first.
func (s *Store) Inbox(recipient uuid.UUID, unreadOnly bool) ([]Message, error) {
	query := `SELECT id, body, created_at, read FROM messages WHERE recipient_id = ?`
	if unreadOnly {
		query += ` AND read = 0`
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(query, recipient.String())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Message
	for rows.Next() {
		var (
			m    Message
			ts   string
			read int
		)
		if err := rows.Scan(&m.ID, &m.Body, &ts, &read); err != nil {
			return nil, err
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339Nano, ts)
		m.Read = read != 0
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkRead flags every unread message of recipient as read and returns
// how many changed.
func (s *Store) MarkRead(recipient uuid.UUID) (int64, error) {
	res, err := s.db.Exec(
		`UPDATE messages SET read = 1 WHERE recipient_id = ? AND read = 0`, recipient.String(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// TakeUnread returns the unread messages and marks them read.
func (s *Store) TakeUnread(recipient uuid.UUID) ([]Message, error) {
	msgs, err := s.Inbox(recipient, true)
	if err != nil || len(msgs) == 0 {
		return msgs, err
	}
	if _, err := s.MarkRead(recipient); err != nil {
		return nil, err
	}
	return msgs, nil
}
