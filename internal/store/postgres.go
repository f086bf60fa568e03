package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is the single table backing all collections. The payload
// lives in a jsonb column; the collection name partitions the table.
type Document struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	Collection string    `gorm:"type:text;not null;index:idx_documents_collection"`
	Data       []byte    `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time `gorm:"index"`
}

// Postgres is the gorm-backed Store implementation.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Insert(ctx context.Context, collection string, doc Doc) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	row := Document{
		ID:         uuid.NewString(),
		Collection: collection,
		Data:       data,
	}
	if err := p.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

func (p *Postgres) Find(ctx context.Context, collection string, f Filter, limit int) ([]Doc, error) {
	q := p.db.WithContext(ctx).Model(&Document{}).Where("collection = ?", collection)
	for field, want := range f.Equals {
		q = q.Where("data->>? = ?", field, want)
	}
	if f.Text != nil && f.Text.Query != "" && len(f.Text.Fields) > 0 {
		pattern := "%" + escapeLike(f.Text.Query) + "%"
		or := p.db.Where("data->>? ILIKE ?", f.Text.Fields[0], pattern)
		for _, field := range f.Text.Fields[1:] {
			or = or.Or("data->>? ILIKE ?", field, pattern)
		}
		q = q.Where(or)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []Document
	if err := q.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	docs := make([]Doc, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (p *Postgres) FindOne(ctx context.Context, collection, id string) (Doc, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	var row Document
	err := p.db.WithContext(ctx).
		Where("id = ? AND collection = ?", id, collection).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeRow(row)
}

func (p *Postgres) UpdateField(ctx context.Context, collection, id, field string, value any) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode field value: %w", err)
	}
	res := p.db.WithContext(ctx).Model(&Document{}).
		Where("id = ? AND collection = ?", id, collection).
		Update("data", gorm.Expr("jsonb_set(data, ?, ?::jsonb)", "{"+field+"}", string(data)))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeRow(row Document) (Doc, error) {
	doc := Doc{}
	if err := json.Unmarshal(row.Data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", row.ID, err)
	}
	doc[IDKey] = row.ID
	return doc, nil
}

// escapeLike keeps user input meaning "substring" under ILIKE.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
