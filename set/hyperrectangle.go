package set

import (
	"fmt"

	"lazysets/maths"
)

// Hyperrectangle 轴对齐超矩形（盒），由中心与各轴半径表示。
// 构造后不可变。分解算法以它作为低维块的输出形状。
type Hyperrectangle[T maths.Number] struct {
	center []T // 中心
	radius []T // 各轴半径（非负）
}

// NewHyperrectangle 从中心与半径构造超矩形。
// 两者长度必须一致且半径非负，否则返回构造错误。
func NewHyperrectangle[T maths.Number](center, radius []T) (*Hyperrectangle[T], error) {
	if len(center) != len(radius) {
		return nil, fmt.Errorf("hyperrectangle: center length %d != radius length %d", len(center), len(radius))
	}
	for i, r := range radius {
		if r < 0 {
			return nil, fmt.Errorf("hyperrectangle: radius[%d] = %v is negative", i, float64(r))
		}
	}
	h := &Hyperrectangle[T]{
		center: make([]T, len(center)),
		radius: make([]T, len(radius)),
	}
	copy(h.center, center)
	copy(h.radius, radius)
	return h, nil
}

// Dim 返回环境维度。
func (h *Hyperrectangle[T]) Dim() int {
	return len(h.center)
}

// Center 返回中心的副本。
func (h *Hyperrectangle[T]) Center() []T {
	cpy := make([]T, len(h.center))
	copy(cpy, h.center)
	return cpy
}

// Radius 返回半径的副本。
func (h *Hyperrectangle[T]) Radius() []T {
	cpy := make([]T, len(h.radius))
	copy(cpy, h.radius)
	return cpy
}

// High 返回高角点 center + radius。
func (h *Hyperrectangle[T]) High() []T {
	high := make([]T, len(h.center))
	for i := range high {
		high[i] = h.center[i] + h.radius[i]
	}
	return high
}

// Low 返回低角点 center - radius。
func (h *Hyperrectangle[T]) Low() []T {
	low := make([]T, len(h.center))
	for i := range low {
		low[i] = h.center[i] - h.radius[i]
	}
	return low
}

// SupportVector 按方向分量符号逐轴选取 center ± radius。
// 零方向分量取正号（即高角点分量），因此零方向返回高角点。
func (h *Hyperrectangle[T]) SupportVector(d []T) ([]T, error) {
	if err := checkDim("hyperrectangle support vector", h.Dim(), len(d)); err != nil {
		return nil, err
	}
	sv := make([]T, len(h.center))
	for i := range sv {
		if d[i] >= 0 {
			sv[i] = h.center[i] + h.radius[i]
		} else {
			sv[i] = h.center[i] - h.radius[i]
		}
	}
	return sv, nil
}

// Membership 判定 |x_i - center_i| <= radius_i 对所有轴成立（含容差）。
func (h *Hyperrectangle[T]) Membership(x []T) (bool, error) {
	if err := checkDim("hyperrectangle membership", h.Dim(), len(x)); err != nil {
		return false, err
	}
	for i := range x {
		if float64(maths.Abs(x[i]-h.center[i])) > float64(h.radius[i])+Tolerance {
			return false, nil
		}
	}
	return true, nil
}
