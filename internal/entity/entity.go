package entity

// Entity is a record with a store-assigned numeric identity. Identity is
// zero until the first commit and immutable afterwards.
type Entity interface {
	GetID() int64
	SetID(id int64)
}

// BaseEntity carries the identity column shared by every table.
type BaseEntity struct {
	ID int64 `json:"id" db:"id"`
}

func (e *BaseEntity) GetID() int64 {
	return e.ID
}

func (e *BaseEntity) SetID(id int64) {
	e.ID = id
}
