package repositories

import (
	"context"
	"errors"
	"fmt"

	"unovation-backend/models"

	"gorm.io/gorm"
)

// Table is the CRUD surface shared by every entity. Lookups that match no
// row return (nil, nil); translating absence into a 404 is the caller's job.
type Table[T any] struct {
	db      *gorm.DB
	orderBy string
}

func newTable[T any](db *gorm.DB, orderBy string) Table[T] {
	return Table[T]{db: db, orderBy: orderBy}
}

func (t Table[T]) Create(ctx context.Context, rec *T) error {
	if err := t.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func (t Table[T]) Get(ctx context.Context, id string) (*T, error) {
	return t.first(t.db.WithContext(ctx), "id = ?", id)
}

func (t Table[T]) GetByClient(ctx context.Context, clientID string) (*T, error) {
	return t.first(t.db.WithContext(ctx), "client_id = ?", clientID)
}

func (t Table[T]) List(ctx context.Context) ([]T, error) {
	rows := []T{}
	if err := t.db.WithContext(ctx).Order(t.orderBy).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return rows, nil
}

func (t Table[T]) ListByClient(ctx context.Context, clientID string) ([]T, error) {
	rows := []T{}
	if err := t.db.WithContext(ctx).Where("client_id = ?", clientID).Order(t.orderBy).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list by client: %w", err)
	}
	return rows, nil
}

// Update loads the row, lets apply patch it and saves every column back.
// Fields apply leaves alone keep their stored values.
func (t Table[T]) Update(ctx context.Context, id string, apply func(*T)) (*T, error) {
	return t.update(ctx, "id = ?", id, apply)
}

func (t Table[T]) UpdateByClient(ctx context.Context, clientID string, apply func(*T)) (*T, error) {
	return t.update(ctx, "client_id = ?", clientID, apply)
}

func (t Table[T]) update(ctx context.Context, query string, arg string, apply func(*T)) (*T, error) {
	var out *T
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := t.first(tx, query, arg)
		if err != nil || rec == nil {
			return err
		}
		apply(rec)
		if err := tx.Save(rec).Error; err != nil {
			return fmt.Errorf("save: %w", err)
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertByClient stores rec as the single row for its client. An existing
// row keeps its id and creation time and has every other column replaced.
func (t Table[T]) UpsertByClient(ctx context.Context, rec *T) error {
	owned, ok := any(rec).(interface{ Pipeline() *models.PipelineRecord })
	if !ok {
		return fmt.Errorf("upsert: %T is not a per-client record", rec)
	}
	base := owned.Pipeline()

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := t.first(tx, "client_id = ?", base.ClientID)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := tx.Create(rec).Error; err != nil {
				return fmt.Errorf("create: %w", err)
			}
			return nil
		}
		prev := any(existing).(interface{ Pipeline() *models.PipelineRecord }).Pipeline()
		base.ID = prev.ID
		base.DateCreated = prev.DateCreated
		if err := tx.Save(rec).Error; err != nil {
			return fmt.Errorf("save: %w", err)
		}
		return nil
	})
}

// Delete removes the row if present; a missing row is not an error.
func (t Table[T]) Delete(ctx context.Context, id string) error {
	var zero T
	if err := t.db.WithContext(ctx).Where("id = ?", id).Delete(&zero).Error; err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

func (t Table[T]) first(db *gorm.DB, query string, arg string) (*T, error) {
	var rec T
	if err := db.Where(query, arg).Order(t.orderBy).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get: %w", err)
	}
	return &rec, nil
}
