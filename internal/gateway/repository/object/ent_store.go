package object

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"aura/internal/gateway/ent"
	entobject "aura/internal/gateway/ent/object"
	"aura/internal/uvm"
)

// EntStore persists objects in postgres through the ent client. Every
// write runs in a transaction so a single document update is atomic;
// concurrent dispatches against the same object can still race by design
// (last write wins on the attribute mapping).
type EntStore struct {
	db     *sql.DB
	client *ent.Client
}

func NewEntStore(dsn string) (*EntStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	drv := entsql.OpenDB(dialect.Postgres, db)
	return &EntStore{
		db:     db,
		client: ent.NewClient(ent.Driver(drv)),
	}, nil
}

// Migrate creates the schema. Called by genesis, not by the gateway.
func (s *EntStore) Migrate(ctx context.Context) error {
	return s.client.Schema.Create(ctx)
}

func (s *EntStore) Get(ctx context.Context, id string) (*uvm.Object, error) {
	row, err := s.client.Object.Query().
		Where(entobject.ID(id)).
		WithPrototypes().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%q: %w", id, uvm.ErrNotFound)
		}
		return nil, fmt.Errorf("get %q: %w", id, err)
	}
	return fromEnt(row), nil
}

func (s *EntStore) Parents(ctx context.Context, id string) ([]string, error) {
	ids, err := s.client.Object.Query().
		Where(entobject.ID(id)).
		QueryPrototypes().
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("parents of %q: %w", id, err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *EntStore) PutAttributes(ctx context.Context, id string, attrs map[string]any) error {
	if attrs == nil {
		attrs = map[string]any{}
	}
	n, err := s.client.Object.Update().
		Where(entobject.ID(id)).
		SetAttributes(attrs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("put attributes of %q: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", id, uvm.ErrNotFound)
	}
	return nil
}

// InstallMethod merges one entry into the method mapping inside a
// transaction: the mapping is read, extended, and written back as a unit.
func (s *EntStore) InstallMethod(ctx context.Context, id, name, body string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("install %q on %q: begin tx: %w", name, id, err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Object.Query().
		Where(entobject.ID(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%q: %w", id, uvm.ErrNotFound)
		}
		return fmt.Errorf("install %q on %q: %w", name, id, err)
	}

	methods := row.Methods
	if methods == nil {
		methods = map[string]string{}
	}
	methods[name] = body

	if err := tx.Object.UpdateOneID(id).SetMethods(methods).Exec(ctx); err != nil {
		return fmt.Errorf("install %q on %q: %w", name, id, err)
	}
	return tx.Commit()
}

func (s *EntStore) Create(ctx context.Context, obj *uvm.Object) error {
	attrs := obj.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	methods := obj.Methods
	if methods == nil {
		methods = map[string]string{}
	}
	err := s.client.Object.Create().
		SetID(obj.ID).
		SetAttributes(attrs).
		SetMethods(methods).
		AddPrototypeIDs(obj.Prototypes...).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create %q: %w", obj.ID, err)
	}
	return nil
}

func (s *EntStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *EntStore) Close() error {
	return s.client.Close()
}

func fromEnt(row *ent.Object) *uvm.Object {
	obj := &uvm.Object{
		ID:         row.ID,
		Attributes: row.Attributes,
		Methods:    row.Methods,
	}
	if obj.Attributes == nil {
		obj.Attributes = map[string]any{}
	}
	if obj.Methods == nil {
		obj.Methods = map[string]string{}
	}
	for _, p := range row.Edges.Prototypes {
		obj.Prototypes = append(obj.Prototypes, p.ID)
	}
	sort.Strings(obj.Prototypes)
	return obj
}
