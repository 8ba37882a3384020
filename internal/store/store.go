// Package store is the persistence layer used by the services. Every write runs the
// schema validation pipeline inside the same transaction as the write itself.
package store

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/pagination"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/schema"
	"gorm.io/gorm"
)

// Store wraps a *gorm.DB with validated writes and paginated reads
type Store struct {
	db       *gorm.DB
	pipeline schema.Pipeline
}

// New creates a Store validating writes with the default pipeline
func New(db *gorm.DB) *Store {
	return &Store{db: db, pipeline: schema.DefaultPipeline()}
}

// WithPipeline returns a copy of the store using the given validation pipeline
func (s *Store) WithPipeline(p schema.Pipeline) *Store {
	return &Store{db: s.db, pipeline: p}
}

// DB exposes the underlying connection
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn with a store bound to a single database transaction.
// The transaction is rolled back when fn returns an error.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, pipeline: s.pipeline})
	})
}

// Create validates and inserts model. On success model carries the generated id.
func (s *Store) Create(ctx context.Context, model interface{}) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w, err := schema.WriteOf(ctx, tx, model)
		if err != nil {
			return err
		}
		if err := s.pipeline.Run(ctx, tx, w); err != nil {
			return err
		}
		return translate(w.Table, tx.Create(model).Error)
	})
}

// Update loads the row identified by id into model, applies patch to it, validates
// the result and saves it. Nothing is written when the row does not exist or the
// patched row fails validation.
func (s *Store) Update(ctx context.Context, model interface{}, id uint, patch func() error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &schema.NotFoundError{Table: tableName(tx, model), ID: id}
			}
			return err
		}
		if err := patch(); err != nil {
			return err
		}
		w, err := schema.WriteOf(ctx, tx, model)
		if err != nil {
			return err
		}
		if err := s.pipeline.Run(ctx, tx, w); err != nil {
			return err
		}
		return translate(w.Table, tx.Save(model).Error)
	})
}

// Get loads the row identified by id into model
func (s *Store) Get(ctx context.Context, model interface{}, id uint, scopes ...func(*gorm.DB) *gorm.DB) error {
	db := s.db.WithContext(ctx)
	if err := db.Scopes(scopes...).First(model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &schema.NotFoundError{Table: tableName(db, model), ID: id}
		}
		return err
	}
	return nil
}

// List counts the rows of T, then fetches one page of them in insertion order.
// Scopes apply to the page query only, e.g. preloads.
func List[T any](ctx context.Context, s *Store, params pagination.Params, scopes ...func(*gorm.DB) *gorm.DB) ([]T, pagination.Meta, error) {
	qb := s.db.WithContext(ctx).Model(new(T)).Session(&gorm.Session{})

	var count int64
	if err := qb.Count(&count).Error; err != nil {
		return nil, pagination.Meta{}, err
	}

	records := make([]T, 0)
	query, meta := pagination.Deferred(qb, params, count)
	if query == nil {
		return records, meta, nil
	}
	if err := query.Scopes(scopes...).Find(&records).Error; err != nil {
		return nil, pagination.Meta{}, err
	}
	return records, meta, nil
}

// translate maps driver level constraint errors onto the schema taxonomy.
// It relies on gorm.Config.TranslateError being enabled.
func translate(table *schema.Table, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &schema.ConflictError{Table: table.Name, Field: uniqueFieldName(table)}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &schema.ReferenceError{Table: table.Name, Field: "relation", References: "unknown"}
	default:
		return err
	}
}

func uniqueFieldName(table *schema.Table) string {
	for _, f := range table.Fields {
		if f.IsUnique() {
			return f.Name
		}
	}
	return "id"
}

func tableName(db *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return "unknown"
	}
	return stmt.Schema.Table
}
