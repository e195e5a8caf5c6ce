package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/natserract/advocacy/pkg/advocacy"
	httpclient "github.com/natserract/advocacy/pkg/http"
	"go.uber.org/zap"
)

// conn is the subset of *pgxpool.Pool used by DB.
type conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ advocacy.DebugSink = (*DB)(nil)

const insertRecordSQL = `
INSERT INTO advocacy_debug_records (
    request_id, method, path, url, access_token, query_params, body_fields,
    status_code, response, error, duration_ms, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const recentRecordsSQL = `
SELECT request_id, method, path, url, access_token, query_params, body_fields,
       status_code, response, error, duration_ms, created_at
FROM advocacy_debug_records
ORDER BY created_at DESC
LIMIT $1`

// StoredRecord is a debug record as read back from the database.
type StoredRecord struct {
	RequestID   uuid.UUID
	Method      string
	Path        string
	URL         string
	AccessToken string
	Query       []map[string]string
	Body        map[string]string
	StatusCode  int
	Response    json.RawMessage
	Error       string
	Duration    time.Duration
	CreatedAt   time.Time
}

// Record implements advocacy.DebugSink. Only a masked form of the access
// token is stored.
func (db *DB) Record(ctx context.Context, rec advocacy.DebugRecord) error {
	args, err := recordArgs(rec)
	if err != nil {
		return err
	}
	if _, err := db.conn.Exec(ctx, insertRecordSQL, args...); err != nil {
		return fmt.Errorf("failed to insert debug record: %w", err)
	}

	db.logger.Debug("Stored debug record",
		zap.String("request_id", rec.RequestID.String()),
		zap.String("path", rec.Path))
	return nil
}

func recordArgs(rec advocacy.DebugRecord) ([]any, error) {
	query := make([]map[string]string, 0, len(rec.Query))
	for _, p := range rec.Query {
		query = append(query, map[string]string{"key": p.Key, "value": p.Value})
	}
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query params: %w", err)
	}

	body := rec.Body
	if body == nil {
		body = advocacy.Fields{}
	}
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal body fields: %w", err)
	}

	var responseJSON []byte
	if rec.Response != nil {
		if responseJSON, err = json.Marshal(rec.Response); err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
	}

	var errText *string
	if rec.Err != nil {
		s := rec.Err.Error()
		errText = &s
	}

	return []any{
		rec.RequestID.String(),
		rec.Method,
		rec.Path,
		httpclient.RedactURL(rec.URL),
		MaskToken(rec.AccessToken),
		string(queryJSON),
		string(bodyJSON),
		rec.StatusCode,
		responseJSON,
		errText,
		rec.Duration.Milliseconds(),
		rec.At,
	}, nil
}

// Recent returns up to limit records, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]StoredRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(ctx, recentRecordsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query debug records: %w", err)
	}
	defer rows.Close()

	var out []StoredRecord
	for rows.Next() {
		var (
			r          StoredRecord
			id         string
			queryJSON  []byte
			bodyJSON   []byte
			errText    *string
			durationMs int64
		)
		if err := rows.Scan(&id, &r.Method, &r.Path, &r.URL, &r.AccessToken, &queryJSON, &bodyJSON,
			&r.StatusCode, &r.Response, &errText, &durationMs, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan debug record: %w", err)
		}
		if r.RequestID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid request id %q: %w", id, err)
		}
		if err := json.Unmarshal(queryJSON, &r.Query); err != nil {
			return nil, fmt.Errorf("failed to decode query params: %w", err)
		}
		if err := json.Unmarshal(bodyJSON, &r.Body); err != nil {
			return nil, fmt.Errorf("failed to decode body fields: %w", err)
		}
		if errText != nil {
			r.Error = *errText
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read debug records: %w", err)
	}
	return out, nil
}

// MaskToken keeps the last four characters of long tokens.
func MaskToken(token string) string {
	switch {
	case token == "":
		return ""
	case len(token) <= 8:
		return "****"
	default:
		return "****" + token[len(token)-4:]
	}
}
