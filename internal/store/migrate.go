package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/sqlcoach/ent/schema"
)

const lessonEventsTableName = "lesson_events"

// entity is the part of an ent schema needed to lay out its table.
type entity interface {
	Mixin() []ent.Mixin
	Fields() []ent.Field
	Indexes() []ent.Index
}

// lessonEventsTable is the activity log table, laid out from the
// LessonEvent ent schema.
var lessonEventsTable = mustTable(lessonEventsTableName, "lessonevent", entschema.LessonEvent{})

func mustTable(name, prefix string, e entity) *schema.Table {
	t, err := tableFor(name, prefix, e)
	if err != nil {
		panic(fmt.Sprintf("store: %s schema: %v", name, err))
	}
	return t
}

// tableFor builds the migration table for e: an auto-increment id, then the
// mixin fields, then the entity's own fields.
func tableFor(name, prefix string, e entity) (*schema.Table, error) {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}

	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range e.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, e.Fields()...)
	indexes = append(indexes, e.Indexes()...)

	byName := map[string]*schema.Column{}
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("field %s: %w", d.Name, d.Err)
		}
		c := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
		}
		if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
			c.Default = d.Default
		}
		t.Columns = append(t.Columns, c)
		byName[d.Name] = c
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		ix := &schema.Index{
			Name:   prefix + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, name := range d.Fields {
			c, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("index on unknown field %q", name)
			}
			ix.Columns = append(ix.Columns, c)
		}
		t.Indexes = append(t.Indexes, ix)
	}
	return t, nil
}

// migrate creates or updates the event tables through ent's migrator.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	return m.Create(ctx, lessonEventsTable)
}

// sqlite returns a statement builder for the store's dialect.
func sqlite() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}
