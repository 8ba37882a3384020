package schema

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Write is a pending insert or update of one row. ID is zero for inserts.
type Write struct {
	Table  *Table
	ID     uint
	Values map[string]interface{}
}

// Value returns the value bound to the field's column, nil when absent
func (w Write) Value(f Field) interface{} {
	return w.Values[f.Column]
}

// Validator checks a pending write against the database state seen by tx
type Validator interface {
	Validate(ctx context.Context, tx *gorm.DB, w Write) error
}

// ValidatorFunc adapts a function to the Validator interface
type ValidatorFunc func(ctx context.Context, tx *gorm.DB, w Write) error

func (fn ValidatorFunc) Validate(ctx context.Context, tx *gorm.DB, w Write) error {
	return fn(ctx, tx, w)
}

// Pipeline runs validators in order and stops at the first failure
type Pipeline []Validator

// DefaultPipeline checks field-level rules before relation existence
func DefaultPipeline() Pipeline {
	return Pipeline{
		ValidatorFunc(validateMandatory),
		ValidatorFunc(validateFormat),
		ValidatorFunc(validateUnique),
		ValidatorFunc(validateReferences),
	}
}

// Run validates w with every validator of the pipeline
func (p Pipeline) Run(ctx context.Context, tx *gorm.DB, w Write) error {
	for _, v := range p {
		if err := v.Validate(ctx, tx, w); err != nil {
			return err
		}
	}
	return nil
}

// WriteOf builds the pending write for a GORM model. The model's TableName must
// match a defined table.
func WriteOf(ctx context.Context, tx *gorm.DB, model interface{}) (Write, error) {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(model); err != nil {
		return Write{}, err
	}
	table, ok := Lookup(stmt.Schema.Table)
	if !ok {
		return Write{}, fmt.Errorf("table %s is not defined", stmt.Schema.Table)
	}

	rv := reflect.Indirect(reflect.ValueOf(model))
	w := Write{Table: table, Values: make(map[string]interface{}, len(table.Fields))}
	if pk := stmt.Schema.LookUpField("id"); pk != nil {
		if id, zero := pk.ValueOf(ctx, rv); !zero {
			w.ID = id.(uint)
		}
	}
	for _, f := range table.Fields {
		field := stmt.Schema.LookUpField(f.Column)
		if field == nil {
			return Write{}, fmt.Errorf("table %s has no column %s", table.Name, f.Column)
		}
		value, _ := field.ValueOf(ctx, rv)
		w.Values[f.Column] = deref(value)
	}
	return w, nil
}

// deref turns typed nil pointers into nil and other pointers into their target
func deref(value interface{}) interface{} {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr {
		return value
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return reflect.ValueOf(value).IsZero()
}

func validateMandatory(_ context.Context, _ *gorm.DB, w Write) error {
	for _, f := range w.Table.Fields {
		if f.Has(Mandatory) && isEmpty(w.Value(f)) {
			return &ValidationError{Table: w.Table.Name, Field: f.Name, Reason: "is mandatory"}
		}
	}
	return nil
}

var hundred = decimal.NewFromInt(100)

func validateFormat(_ context.Context, _ *gorm.DB, w Write) error {
	for _, f := range w.Table.Fields {
		value := w.Value(f)
		if value == nil {
			continue
		}
		invalid := func(reason string) error {
			return &ValidationError{Table: w.Table.Name, Field: f.Name, Reason: reason}
		}
		switch f.Type {
		case URL:
			s, _ := value.(string)
			if s == "" {
				continue
			}
			u, err := url.Parse(s)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return invalid("must be an absolute URL")
			}
		case Price:
			if d, ok := value.(decimal.Decimal); ok && d.IsNegative() {
				return invalid("must not be negative")
			}
		case Percentage:
			if d, ok := value.(decimal.Decimal); ok && (d.IsNegative() || d.GreaterThan(hundred)) {
				return invalid("must be between 0 and 100")
			}
		}
	}
	return nil
}

func validateUnique(ctx context.Context, tx *gorm.DB, w Write) error {
	for _, f := range w.Table.Fields {
		value := w.Value(f)
		if !f.IsUnique() || isEmpty(value) {
			continue
		}
		query := tx.WithContext(ctx).Table(w.Table.Name).Where(fmt.Sprintf("%s = ?", f.Column), value)
		if w.ID != 0 {
			query = query.Where("id <> ?", w.ID)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &ConflictError{Table: w.Table.Name, Field: f.Name, Value: value}
		}
	}
	return nil
}

func validateReferences(ctx context.Context, tx *gorm.DB, w Write) error {
	for _, f := range w.Table.Relations() {
		value := w.Value(f)
		if value == nil {
			continue
		}
		var count int64
		if err := tx.WithContext(ctx).Table(f.References).Where("id = ?", value).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return &ReferenceError{Table: w.Table.Name, Field: f.Name, References: f.References, ID: value}
		}
	}
	return nil
}
