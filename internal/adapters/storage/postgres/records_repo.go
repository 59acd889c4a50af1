package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"vet-clinic-admin/internal/domain/records"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
	id         BIGSERIAL PRIMARY KEY,
	resource   TEXT        NOT NULL,
	data       JSONB       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS records_resource_idx ON records (resource, id);
`

// RecordsRepo guarda cada registro como JSONB; el id vive en su propia columna.
type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

// EnsureSchema crea la tabla si no existe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres: ensure schema: %w", err)
	}
	return nil
}

func (r *RecordsRepo) List(ctx context.Context, resource string) ([]records.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, data
		FROM records
		WHERE resource = $1
		ORDER BY id
	`, resource)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.Record, 0)
	for rows.Next() {
		var (
			id  int64
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		rec, err := decode(raw, id)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) Get(ctx context.Context, resource string, id int64) (records.Record, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT data
		FROM records
		WHERE resource = $1 AND id = $2
	`, resource, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, records.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(raw, id)
}

func (r *RecordsRepo) Create(ctx context.Context, resource string, rec records.Record) (records.Record, error) {
	raw, err := encode(rec)
	if err != nil {
		return nil, err
	}
	var id int64
	if err := r.db.QueryRowContext(ctx, `
		INSERT INTO records (resource, data)
		VALUES ($1, $2)
		RETURNING id
	`, resource, raw).Scan(&id); err != nil {
		return nil, err
	}
	return decode(raw, id)
}

func (r *RecordsRepo) Update(ctx context.Context, resource string, id int64, rec records.Record) (records.Record, error) {
	raw, err := encode(rec)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE records
		SET data = $3, updated_at = now()
		WHERE resource = $1 AND id = $2
	`, resource, id, raw)
	if err != nil {
		return nil, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return nil, records.ErrNotFound
	}
	return decode(raw, id)
}

func (r *RecordsRepo) Delete(ctx context.Context, resource string, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM records
		WHERE resource = $1 AND id = $2
	`, resource, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

// encode deja "id" fuera del JSONB.
func encode(rec records.Record) ([]byte, error) {
	data := make(records.Record, len(rec))
	for k, v := range rec {
		if k != "id" {
			data[k] = v
		}
	}
	return json.Marshal(data)
}

func decode(raw []byte, id int64) (records.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rec records.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("postgres: decode record %d: %w", id, err)
	}
	if rec == nil {
		rec = records.Record{}
	}
	rec["id"] = id
	return rec, nil
}
