package set

import "lazysets/maths"

// LinearConstraint 单个半空间约束 A·x <= B。
type LinearConstraint[T maths.Number] struct {
	A []T // 方向向量
	B T   // 标量偏移
}

// NewLinearConstraint 从方向向量与标量偏移构造半空间约束。
func NewLinearConstraint[T maths.Number](a []T, b T) LinearConstraint[T] {
	return LinearConstraint[T]{A: a, B: b}
}

// Dim 返回约束的环境维度。
func (c LinearConstraint[T]) Dim() int {
	return len(c.A)
}

// Evaluate 计算 A·x。
func (c LinearConstraint[T]) Evaluate(x []T) (T, error) {
	var sum T
	if err := checkDim("linear constraint evaluate", len(c.A), len(x)); err != nil {
		return sum, err
	}
	for i := range c.A {
		sum += c.A[i] * x[i]
	}
	return sum, nil
}

// Satisfies 判定 x 是否满足 A·x <= B（含容差）。
func (c LinearConstraint[T]) Satisfies(x []T) (bool, error) {
	v, err := c.Evaluate(x)
	if err != nil {
		return false, err
	}
	return float64(v) <= float64(c.B)+Tolerance, nil
}
