package types

// EntityID — уникальный идентификатор сущности.
type EntityID uint64
