package set

import "lazysets/maths"

// Singleton 单点集合 {element}。构造后不可变。
type Singleton[T maths.Number] struct {
	element []T
}

// NewSingleton 从给定点构造单点集合。
func NewSingleton[T maths.Number](element []T) *Singleton[T] {
	s := &Singleton[T]{element: make([]T, len(element))}
	copy(s.element, element)
	return s
}

// Dim 返回环境维度。
func (s *Singleton[T]) Dim() int {
	return len(s.element)
}

// Element 返回所含点的副本。
func (s *Singleton[T]) Element() []T {
	cpy := make([]T, len(s.element))
	copy(cpy, s.element)
	return cpy
}

// SupportVector 对任意方向（含零方向）都返回所含的唯一点。
func (s *Singleton[T]) SupportVector(d []T) ([]T, error) {
	if err := checkDim("singleton support vector", s.Dim(), len(d)); err != nil {
		return nil, err
	}
	return s.Element(), nil
}

// Membership 判定 x 是否在容差范围内等于所含点。
func (s *Singleton[T]) Membership(x []T) (bool, error) {
	if err := checkDim("singleton membership", s.Dim(), len(x)); err != nil {
		return false, err
	}
	for i := range x {
		if float64(maths.Abs(x[i]-s.element[i])) > Tolerance {
			return false, nil
		}
	}
	return true, nil
}
