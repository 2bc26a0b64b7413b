package roster

import "context"

// Repository はスタッフ永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	UpdateOrder(ctx context.Context, id string, displayOrder int) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	// List は表示順の昇順で返します。onlyActive が真なら有効なスタッフのみです。
	List(ctx context.Context, onlyActive bool) ([]*Employee, error)
	MaxDisplayOrder(ctx context.Context) (int, error)
}
