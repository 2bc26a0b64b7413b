package roster

import "time"

// Employee はスタッフエンティティです。
// DisplayOrder は有効・無効を問わず全スタッフ内で一意かつ 1 始まりの連番です。
type Employee struct {
	ID           string
	Name         string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
