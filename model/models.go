package model

import (
	"time"
)

type Model struct {
	CreatedAt *time.Time `json:"createdAt" readonly:"true"`
	UpdatedAt *time.Time `json:"updatedAt" readonly:"true"`
}

type ListMeta struct {
	Total uint64 `json:"total"`
}

func PtrOf[T any](v T) *T {
	return &v
}
