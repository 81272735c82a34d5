package postgres

import (
	"context"
	"reflect"

	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// record is implemented by every persistence model; the generic store uses
// it to read child surrogate keys when pruning owned collections.
type record interface {
	PrimaryKey() int64
}

// ownedCollection describes a child table whose rows live and die with the
// parent. On a full update, children missing from the saved collection are
// deleted (orphan removal).
type ownedCollection struct {
	field      string // struct field on the parent model holding the children
	foreignKey string // child column referencing the parent
	child      any    // child model prototype, for table resolution
}

type storeOptions struct {
	preloads []string
	owned    []ownedCollection
}

// StoreOption configures a generic store instantiation.
type StoreOption func(*storeOptions)

// WithPreloads eagerly loads the named associations on every read.
func WithPreloads(names ...string) StoreOption {
	return func(o *storeOptions) {
		o.preloads = append(o.preloads, names...)
	}
}

// WithOwnedCollection registers an owned child collection for orphan
// removal on full updates. Cascading delete of the parent itself is handled
// by the database constraint.
func WithOwnedCollection(field, foreignKey string, child any) StoreOption {
	return func(o *storeOptions) {
		o.owned = append(o.owned, ownedCollection{field: field, foreignKey: foreignKey, child: child})
	}
}

// store is the generic GORM adapter behind repository.Store. It is bound to
// an entity/model pair through the mapper functions supplied per entity.
type store[E any, M any] struct {
	db       *gorm.DB
	toModel  func(*E) *M
	toEntity func(*M) *E
	id       func(*M) int64
	opts     storeOptions
}

// NewStore binds the generic data-access port to a GORM-backed table. One
// call per entity, configured with that entity's mappers, preloads and
// owned collections.
func NewStore[E any, M any](
	db *gorm.DB,
	toModel func(*E) *M,
	toEntity func(*M) *E,
	id func(*M) int64,
	opts ...StoreOption,
) repository.Store[E] {
	s := &store[E, M]{
		db:       db,
		toModel:  toModel,
		toEntity: toEntity,
		id:       id,
	}
	for _, opt := range opts {
		opt(&s.opts)
	}

	return s
}

// Save inserts when the surrogate key is unset and fully updates the row
// otherwise. Owned collections are saved along with the parent; on update,
// children dropped from the collection are deleted first.
func (s *store[E, M]) Save(ctx context.Context, e *E) error {
	m := s.toModel(e)

	var err error
	if s.id(m) == 0 {
		err = s.db.WithContext(ctx).Create(m).Error
	} else {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, oc := range s.opts.owned {
				if pruneErr := s.pruneOrphans(tx, m, oc); pruneErr != nil {
					return pruneErr
				}
			}

			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(m).Error
		})
	}

	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrConflict
		}
		if isForeignKeyConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid reference or missing required field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save record")
	}

	// Propagate the generated key and server-computed columns back.
	*e = *s.toEntity(m)

	return nil
}

// FindByID retrieves an entity by its surrogate key.
func (s *store[E, M]) FindByID(ctx context.Context, id int64) (*E, error) {
	m := new(M)

	tx := s.db.WithContext(ctx)
	for _, preload := range s.opts.preloads {
		tx = tx.Preload(preload)
	}

	if err := tx.First(m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find record by ID")
	}

	return s.toEntity(m), nil
}

// FindAll returns every row of the backing table.
func (s *store[E, M]) FindAll(ctx context.Context) ([]*E, error) {
	var ms []*M

	tx := s.db.WithContext(ctx)
	for _, preload := range s.opts.preloads {
		tx = tx.Preload(preload)
	}

	if err := tx.Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	out := make([]*E, 0, len(ms))
	for _, m := range ms {
		out = append(out, s.toEntity(m))
	}

	return out, nil
}

// DeleteByID removes the row; owned children go with it via the database's
// cascade constraint.
func (s *store[E, M]) DeleteByID(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(new(M), id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// pruneOrphans deletes child rows that are no longer present in the saved
// collection. Children carrying a zero key are inserts and never counted.
func (s *store[E, M]) pruneOrphans(tx *gorm.DB, m *M, oc ownedCollection) error {
	field := reflect.ValueOf(m).Elem().FieldByName(oc.field)
	if !field.IsValid() || field.Kind() != reflect.Slice {
		return errors.Errorf("owned collection field %q not found on model", oc.field)
	}

	keep := make([]int64, 0, field.Len())
	for i := 0; i < field.Len(); i++ {
		child, ok := field.Index(i).Interface().(record)
		if !ok {
			return errors.Errorf("owned collection %q element does not expose a primary key", oc.field)
		}
		if id := child.PrimaryKey(); id != 0 {
			keep = append(keep, id)
		}
	}

	del := tx.Where(oc.foreignKey+" = ?", s.id(m))
	if len(keep) > 0 {
		del = del.Where("id NOT IN ?", keep)
	}

	return errors.Wrap(del.Delete(oc.child).Error, "failed to prune orphaned children")
}
