package ast

import "sync"

// Slice pools for common node-list types, reducing allocations during
// parsing. Use Get* to obtain a slice and Release* to return it; callers
// must not retain the slice after releasing it.

var (
	selectItemSlicePool = sync.Pool{
		New: func() any {
			s := make([]SelectItem, 0, 8)
			return &s
		},
	}
	exprSlicePool = sync.Pool{
		New: func() any {
			s := make([]Expr, 0, 4)
			return &s
		},
	}
	orderBySlicePool = sync.Pool{
		New: func() any {
			s := make([]*OrderByItem, 0, 4)
			return &s
		},
	}
)

// GetSelectItemSlice returns a []SelectItem from the pool.
func GetSelectItemSlice() *[]SelectItem {
	return selectItemSlicePool.Get().(*[]SelectItem)
}

// ReleaseSelectItemSlice returns s to the pool.
func ReleaseSelectItemSlice(s *[]SelectItem) {
	*s = (*s)[:0]
	selectItemSlicePool.Put(s)
}

// GetExprSlice returns a []Expr from the pool.
func GetExprSlice() *[]Expr {
	return exprSlicePool.Get().(*[]Expr)
}

// ReleaseExprSlice returns s to the pool.
func ReleaseExprSlice(s *[]Expr) {
	*s = (*s)[:0]
	exprSlicePool.Put(s)
}

// GetOrderBySlice returns a []*OrderByItem from the pool.
func GetOrderBySlice() *[]*OrderByItem {
	return orderBySlicePool.Get().(*[]*OrderByItem)
}

// ReleaseOrderBySlice returns s to the pool.
func ReleaseOrderBySlice(s *[]*OrderByItem) {
	*s = (*s)[:0]
	orderBySlicePool.Put(s)
}
