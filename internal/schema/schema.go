// Package schema declares the tables of the restaurant domain, their field types and
// validations, and the pipeline that enforces them before a write commits.
package schema

import "sync"

// FieldType describes how a column is stored and which format checks apply to it
type FieldType string

const (
	ShortText  FieldType = "short-text"
	LongText   FieldType = "long-text"
	URL        FieldType = "url"
	Price      FieldType = "price"
	Percentage FieldType = "percentage"
	Integer    FieldType = "integer"
	Relation   FieldType = "relation"
)

// Validation is a declarative rule attached to a field
type Validation string

const (
	Mandatory Validation = "mandatory"
	Unique    Validation = "unique"
)

// Relationship is the cardinality of a relation field
type Relationship string

const (
	ManyToOne Relationship = "many-to-one"
	OneToOne  Relationship = "one-to-one"
)

// Field describes one column of a table
type Field struct {
	Name         string
	Column       string
	Type         FieldType
	Validations  []Validation
	References   string
	Relationship Relationship
}

// Has reports whether the field declares the given validation
func (f Field) Has(v Validation) bool {
	for _, fv := range f.Validations {
		if fv == v {
			return true
		}
	}
	return false
}

// IsUnique reports whether values of the field must be unique across rows.
// One-to-one relations are unique on the referencing side.
func (f Field) IsUnique() bool {
	return f.Has(Unique) || (f.Type == Relation && f.Relationship == OneToOne)
}

// Table is a declared entity type with its fields
type Table struct {
	Name   string
	Fields []Field
}

// Relations returns the relation fields of the table in declaration order
func (t *Table) Relations() []Field {
	var relations []Field
	for _, f := range t.Fields {
		if f.Type == Relation {
			relations = append(relations, f)
		}
	}
	return relations
}

// NewField declares a plain column whose column name equals the field name
func NewField(name string, fieldType FieldType, validations ...Validation) Field {
	return Field{Name: name, Column: name, Type: fieldType, Validations: validations}
}

// NewRelation declares a foreign key column named <name>_id referencing another table
func NewRelation(name, references string, relationship Relationship, validations ...Validation) Field {
	return Field{
		Name:         name,
		Column:       name + "_id",
		Type:         Relation,
		Validations:  validations,
		References:   references,
		Relationship: relationship,
	}
}

var registry sync.Map

// Define declares a table and registers it for lookup by name
func Define(name string, fields ...Field) *Table {
	t := &Table{Name: name, Fields: fields}
	registry.Store(name, t)
	return t
}

// Lookup returns the table registered under name
func Lookup(name string) (*Table, bool) {
	t, ok := registry.Load(name)
	if !ok {
		return nil, false
	}
	return t.(*Table), true
}
