// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ObjectsColumns holds the columns for the "objects" table.
	ObjectsColumns = []*schema.Column{
		{Name: "object_id", Type: field.TypeString, Unique: true},
		{Name: "attributes", Type: field.TypeJSON, Nullable: true},
		{Name: "methods", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ObjectsTable holds the schema information for the "objects" table.
	ObjectsTable = &schema.Table{
		Name:       "objects",
		Columns:    ObjectsColumns,
		PrimaryKey: []*schema.Column{ObjectsColumns[0]},
	}
	// ObjectPrototypesColumns holds the columns for the "object_prototypes" table.
	ObjectPrototypesColumns = []*schema.Column{
		{Name: "object_id", Type: field.TypeString},
		{Name: "child_id", Type: field.TypeString},
	}
	// ObjectPrototypesTable holds the schema information for the "object_prototypes" table.
	ObjectPrototypesTable = &schema.Table{
		Name:       "object_prototypes",
		Columns:    ObjectPrototypesColumns,
		PrimaryKey: []*schema.Column{ObjectPrototypesColumns[0], ObjectPrototypesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "object_prototypes_object_id",
				Columns:    []*schema.Column{ObjectPrototypesColumns[0]},
				RefColumns: []*schema.Column{ObjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "object_prototypes_child_id",
				Columns:    []*schema.Column{ObjectPrototypesColumns[1]},
				RefColumns: []*schema.Column{ObjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ObjectsTable,
		ObjectPrototypesTable,
	}
)

func init() {
	ObjectPrototypesTable.ForeignKeys[0].RefTable = ObjectsTable
	ObjectPrototypesTable.ForeignKeys[1].RefTable = ObjectsTable
}
