package set

import (
	"errors"

	"lazysets/maths"
)

// EmptySet 空集合，笛卡尔积运算的吸收元。
// 与任意集合组合（无论左右顺序）结果仍为空集合。
// 维度在构造时记录，用于前置条件校验。
type EmptySet[T maths.Number] struct {
	dim int // 环境维度
}

// NewEmptySet 创建指定环境维度的空集合。
func NewEmptySet[T maths.Number](dim int) *EmptySet[T] {
	if dim < 0 {
		panic("emptyset: dimension cannot be negative")
	}
	return &EmptySet[T]{dim: dim}
}

// Dim 返回环境维度。
func (e *EmptySet[T]) Dim() int {
	return e.dim
}

// SupportVector 空集合没有任何点，支持向量无定义。
func (e *EmptySet[T]) SupportVector(d []T) ([]T, error) {
	if err := checkDim("emptyset support vector", e.dim, len(d)); err != nil {
		return nil, err
	}
	return nil, errors.New("emptyset: support vector of the empty set is undefined")
}

// Membership 任何点都不属于空集合。
func (e *EmptySet[T]) Membership(x []T) (bool, error) {
	if err := checkDim("emptyset membership", e.dim, len(x)); err != nil {
		return false, err
	}
	return false, nil
}

// Product 计算两个集合的笛卡尔积 x ⊗ y。
// 吸收规则优先于构造组合节点：任一操作数为空集合时直接返回该空集合，
// 不会生成 CartesianProduct 节点。两个空集合相乘返回第一个操作数。
// 标量类型不同的操作数无法传入（类型参数保证），无需运行时检查。
func Product[T maths.Number](x, y Set[T]) Set[T] {
	if e, ok := x.(*EmptySet[T]); ok {
		return e
	}
	if e, ok := y.(*EmptySet[T]); ok {
		return e
	}
	return NewCartesianProduct(x, y)
}
