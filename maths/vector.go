package maths

import "fmt"

// denseVector 稠密向量实现
// 基于 DataManager 实现 Vector 接口
type denseVector[T Number] struct {
	DataManager[T]
}

// NewDenseVector 创建新的稠密向量
func NewDenseVector[T Number](length int) Vector[T] {
	return &denseVector[T]{
		DataManager: NewDataManager[T](length),
	}
}

// NewDenseVectorWithData 从现有数据创建稠密向量（不复制底层切片）
func NewDenseVectorWithData[T Number](data []T) Vector[T] {
	return &denseVector[T]{
		DataManager: NewDataManagerWithData(data),
	}
}

// BuildFromDense 从稠密切片构建向量
func (v *denseVector[T]) BuildFromDense(dense []T) {
	if len(dense) != v.Length() {
		panic(fmt.Sprintf("vector dimension mismatch: dense length=%d, vector length=%d", len(dense), v.Length()))
	}
	for i := 0; i < v.Length(); i++ {
		v.Set(i, dense[i])
	}
}

// Zero 清空向量，重置为零向量
func (v *denseVector[T]) Zero() {
	v.DataManager.Zero()
}

// Copy 将自身值复制到 a 向量
func (v *denseVector[T]) Copy(a Vector[T]) {
	switch target := a.(type) {
	case *denseVector[T]:
		// 直接复制数据管理器
		v.DataManager.Copy(target.DataManager)
	default:
		// 对于其他类型的向量实现，逐个元素复制
		for i := 0; i < v.Length(); i++ {
			value := v.Get(i)
			if value != 0 {
				a.Set(i, value)
			}
		}
	}
}

// ToDense 转换为稠密切片（副本）
func (v *denseVector[T]) ToDense() []T {
	return v.DataManager.DataCopy()
}

// DotProduct 计算与另一个向量的点积
func (v *denseVector[T]) DotProduct(other Vector[T]) T {
	if other.Length() != v.Length() {
		panic(fmt.Sprintf("vector dimension mismatch: %d vs %d", v.Length(), other.Length()))
	}
	var result T
	for i := 0; i < v.Length(); i++ {
		result += v.Get(i) * other.Get(i)
	}
	return result
}

// Scale 向量缩放
func (v *denseVector[T]) Scale(scalar T) {
	for i := 0; i < v.Length(); i++ {
		v.Set(i, v.Get(i)*scalar)
	}
}

// Add 向量加法
func (v *denseVector[T]) Add(other Vector[T]) {
	if other.Length() != v.Length() {
		panic(fmt.Sprintf("vector dimension mismatch: %d vs %d", v.Length(), other.Length()))
	}
	for i := 0; i < v.Length(); i++ {
		v.Increment(i, other.Get(i))
	}
}

// MaxAbs 获取向量中绝对值最大的元素
func (v *denseVector[T]) MaxAbs() T {
	var max T
	for i := 0; i < v.Length(); i++ {
		if a := Abs(v.Get(i)); a > max {
			max = a
		}
	}
	return max
}
