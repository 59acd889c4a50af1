package records

import "context"

// Repository guarda registros por recurso. Create asigna el id; los
// registros devueltos siempre traen "id".
type Repository interface {
	List(ctx context.Context, resource string) ([]Record, error)
	Get(ctx context.Context, resource string, id int64) (Record, error)
	Create(ctx context.Context, resource string, rec Record) (Record, error)
	Update(ctx context.Context, resource string, id int64, rec Record) (Record, error)
	Delete(ctx context.Context, resource string, id int64) error
}
