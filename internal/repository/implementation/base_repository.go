package implementation

import (
	"context"
	"errors"

	"genai-studio-be/internal/repository/specification"

	"gorm.io/gorm"
)

// gormRepository is the query plumbing shared by every table. E is the domain
// entity, M the persisted row.
type gormRepository[E any, M any] struct {
	db       *gorm.DB
	toModel  func(*E) (*M, error)
	toEntity func(*M) *E
}

func (r *gormRepository[E, M]) scoped(ctx context.Context, specs []specification.Specification) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(M))
	for _, spec := range specs {
		q = spec.Apply(q)
	}
	return q
}

// Create inserts the row and copies generated columns back onto e.
func (r *gormRepository[E, M]) Create(ctx context.Context, e *E) error {
	row, err := r.toModel(e)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*e = *r.toEntity(row)
	return nil
}

// FindOne returns nil, nil when nothing matches.
func (r *gormRepository[E, M]) FindOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	row := new(M)
	err := r.scoped(ctx, specs).First(row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.toEntity(row), nil
}

func (r *gormRepository[E, M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var rows []*M
	if err := r.scoped(ctx, specs).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.toEntity(row))
	}
	return out, nil
}

func (r *gormRepository[E, M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	if err := r.scoped(ctx, specs).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
