// Code generated by ent, DO NOT EDIT.

package ent

import (
	"aura/internal/gateway/ent/object"
	"aura/internal/gateway/ent/predicate"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ObjectUpdate is the builder for updating Object entities.
type ObjectUpdate struct {
	config
	hooks    []Hook
	mutation *ObjectMutation
}

// Where appends a list predicates to the ObjectUpdate builder.
func (_u *ObjectUpdate) Where(ps ...predicate.Object) *ObjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *ObjectUpdate) SetAttributes(v map[string]interface{}) *ObjectUpdate {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *ObjectUpdate) ClearAttributes() *ObjectUpdate {
	_u.mutation.ClearAttributes()
	return _u
}

// SetMethods sets the "methods" field.
func (_u *ObjectUpdate) SetMethods(v map[string]string) *ObjectUpdate {
	_u.mutation.SetMethods(v)
	return _u
}

// ClearMethods clears the value of the "methods" field.
func (_u *ObjectUpdate) ClearMethods() *ObjectUpdate {
	_u.mutation.ClearMethods()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObjectUpdate) SetUpdatedAt(v time.Time) *ObjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPrototypeIDs adds the "prototypes" edge to the Object entity by IDs.
func (_u *ObjectUpdate) AddPrototypeIDs(ids ...string) *ObjectUpdate {
	_u.mutation.AddPrototypeIDs(ids...)
	return _u
}

// AddPrototypes adds the "prototypes" edges to the Object entity.
func (_u *ObjectUpdate) AddPrototypes(v ...*Object) *ObjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrototypeIDs(ids...)
}

// AddChildIDs adds the "children" edge to the Object entity by IDs.
func (_u *ObjectUpdate) AddChildIDs(ids ...string) *ObjectUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Object entity.
func (_u *ObjectUpdate) AddChildren(v ...*Object) *ObjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// Mutation returns the ObjectMutation object of the builder.
func (_u *ObjectUpdate) Mutation() *ObjectMutation {
	return _u.mutation
}

// ClearPrototypes clears all "prototypes" edges to the Object entity.
func (_u *ObjectUpdate) ClearPrototypes() *ObjectUpdate {
	_u.mutation.ClearPrototypes()
	return _u
}

// RemovePrototypeIDs removes the "prototypes" edge to Object entities by IDs.
func (_u *ObjectUpdate) RemovePrototypeIDs(ids ...string) *ObjectUpdate {
	_u.mutation.RemovePrototypeIDs(ids...)
	return _u
}

// RemovePrototypes removes "prototypes" edges to Object entities.
func (_u *ObjectUpdate) RemovePrototypes(v ...*Object) *ObjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrototypeIDs(ids...)
}

// ClearChildren clears all "children" edges to the Object entity.
func (_u *ObjectUpdate) ClearChildren() *ObjectUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Object entities by IDs.
func (_u *ObjectUpdate) RemoveChildIDs(ids ...string) *ObjectUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Object entities.
func (_u *ObjectUpdate) RemoveChildren(v ...*Object) *ObjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := object.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ObjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(object.Table, object.Columns, sqlgraph.NewFieldSpec(object.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(object.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(object.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Methods(); ok {
		_spec.SetField(object.FieldMethods, field.TypeJSON, value)
	}
	if _u.mutation.MethodsCleared() {
		_spec.ClearField(object.FieldMethods, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(object.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PrototypesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   object.PrototypesTable,
			Columns: object.PrototypesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrototypesIDs(); len(nodes) > 0 && !_u.mutation.PrototypesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   object.PrototypesTable,
			Columns: object.PrototypesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrototypesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   object.PrototypesTable,
			Columns: object.PrototypesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   object.ChildrenTable,
			Columns: object.ChildrenPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   object.ChildrenTable,
			Columns: object.ChildrenPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   object.ChildrenTable,
			Columns: object.ChildrenPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{object.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObjectUpdateOne is the builder for updating a single Object entity.
type ObjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObjectMutation
}

// SetAttributes sets the "attributes" field.
func (_u *ObjectUpdateOne) SetAttributes(v map[string]interface{}) *ObjectUpdateOne {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *ObjectUpdateOne) ClearAttributes() *ObjectUpdateOne {
	_u.mutation.ClearAttributes()
	return _u
}

// SetMethods sets the "methods" field.
func (_u *ObjectUpdateOne) SetMethods(v map[string]string) *ObjectUpdateOne {
	_u.mutation.SetMethods(v)
	return _u
}

// ClearMethods clears the value of the "methods" field.
func (_u *ObjectUpdateOne) ClearMethods() *ObjectUpdateOne {
	_u.mutation.ClearMethods()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObjectUpdateOne) SetUpdatedAt(v time.Time) *ObjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPrototypeIDs adds the "prototypes" edge to the Object entity by IDs.
func (_u *ObjectUpdateOne) AddPrototypeIDs(ids ...string) *ObjectUpdateOne {
	_u.mutation.AddPrototypeIDs(ids...)
	return _u
}

// AddPrototypes adds the "prototypes" edges to the Object entity.
func (_u *ObjectUpdateOne) AddPrototypes(v ...*Object) *ObjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrototypeIDs(ids...)
}

// AddChildIDs adds the "children" edge to the Object entity by IDs.
func (_u *ObjectUpdateOne) AddChildIDs(ids ...string) *ObjectUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Object entity.
func (_u *ObjectUpdateOne) AddChildren(v ...*Object) *ObjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// Mutation returns the ObjectMutation object of the builder.
func (_u *ObjectUpdateOne) Mutation() *ObjectMutation {
	return _u.mutation
}

// ClearPrototypes clears all "prototypes" edges to the Object entity.
func (_u *ObjectUpdateOne) ClearPrototypes() *ObjectUpdateOne {
	_u.mutation.ClearPrototypes()
	return _u
}

// RemovePrototypeIDs removes the "prototypes" edge to Object entities by IDs.
func (_u *ObjectUpdateOne) RemovePrototypeIDs(ids ...string) *ObjectUpdateOne {
	_u.mutation.RemovePrototypeIDs(ids...)
	return _u
}

// RemovePrototypes removes "prototypes" edges to Object entities.
func (_u *ObjectUpdateOne) RemovePrototypes(v ...*Object) *ObjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrototypeIDs(ids...)
}

// ClearChildren clears all "children" edges to the Object entity.
func (_u *ObjectUpdateOne) ClearChildren() *ObjectUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Object entities by IDs.
func (_u *ObjectUpdateOne) RemoveChildIDs(ids ...string) *ObjectUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Object entities.
func (_u *ObjectUpdateOne) RemoveChildren(v ...*Object) *ObjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// Where appends a list predicates to the ObjectUpdate builder.
func (_u *ObjectUpdateOne) Where(ps ...predicate.Object) *ObjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObjectUpdateOne) Select(field string, fields ...string) *ObjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Object entity.
func (_u *ObjectUpdateOne) Save(ctx context.Context) (*Object, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObjectUpdateOne) SaveX(ctx context.Context) *Object {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := object.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ObjectUpdateOne) sqlSave(ctx context.Context) (_node *Object, err error) {
	_spec := sqlgraph.NewUpdateSpec(object.Table, object.Columns, sqlgraph.NewFieldSpec(object.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Object.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, object.FieldID)
		for _, f := range fields {
			if !object.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != object.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(object.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(object.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Methods(); ok {
		_spec.SetField(object.FieldMethods, field.TypeJSON, value)
	}
	if _u.mutation.MethodsCleared() {
		_spec.ClearField(object.FieldMethods, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(object.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PrototypesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   object.PrototypesTable,
			Columns: object.PrototypesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrototypesIDs(); len(nodes) > 0 && !_u.mutation.PrototypesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   object.PrototypesTable,
			Columns: object.PrototypesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrototypesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   object.PrototypesTable,
			Columns: object.PrototypesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   object.ChildrenTable,
			Columns: object.ChildrenPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   object.ChildrenTable,
			Columns: object.ChildrenPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   object.ChildrenTable,
			Columns: object.ChildrenPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(object.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Object{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{object.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
