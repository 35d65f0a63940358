package maths

import (
	"fmt"
	"strings"
)

// denseMatrix 稠密矩阵实现（基于DataManager，行优先全量存储所有元素）
type denseMatrix[T Number] struct {
	DataManager[T]
	rows, cols int // 矩阵维度
}

// NewDenseMatrix 创建指定维度的空稠密矩阵
func NewDenseMatrix[T Number](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("invalid matrix dimensions: cannot be negative")
	}
	return &denseMatrix[T]{
		DataManager: NewDataManager[T](rows * cols),
		rows:        rows,
		cols:        cols,
	}
}

// NewDenseMatrixFromDense 从稠密二维切片创建稠密矩阵
func NewDenseMatrixFromDense[T Number](dense [][]T) Matrix[T] {
	rows := len(dense)
	cols := 0
	if rows > 0 {
		cols = len(dense[0])
	}
	m := NewDenseMatrix[T](rows, cols)
	m.BuildFromDense(dense)
	return m
}

// index 计算行优先展开后的底层索引（越界panic）
func (m *denseMatrix[T]) index(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix index out of range: row=%d, col=%d (rows=%d, cols=%d)", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}

// BuildFromDense 从稠密矩阵构建（覆盖原有数据）
func (m *denseMatrix[T]) BuildFromDense(dense [][]T) {
	if len(dense) != m.rows {
		panic(fmt.Sprintf("dense matrix dimension mismatch: expected %d rows, got %d", m.rows, len(dense)))
	}
	for i, row := range dense {
		if len(row) != m.cols {
			panic(fmt.Sprintf("dense matrix dimension mismatch: row %d has %d cols, expected %d", i, len(row), m.cols))
		}
		for j, val := range row {
			m.DataManager.Set(i*m.cols+j, val)
		}
	}
}

// Zero 清空矩阵为零矩阵
func (m *denseMatrix[T]) Zero() {
	m.DataManager.Zero()
}

// Rows 返回矩阵行数
func (m *denseMatrix[T]) Rows() int {
	return m.rows
}

// Cols 返回矩阵列数
func (m *denseMatrix[T]) Cols() int {
	return m.cols
}

// IsSquare 判断是否为方阵
func (m *denseMatrix[T]) IsSquare() bool {
	return m.rows == m.cols
}

// Get 获取指定行列元素值（越界panic）
func (m *denseMatrix[T]) Get(row, col int) T {
	return m.DataManager.Get(m.index(row, col))
}

// Set 设置指定行列元素值（越界panic）
func (m *denseMatrix[T]) Set(row, col int, value T) {
	m.DataManager.Set(m.index(row, col), value)
}

// Increment 增量更新矩阵元素（value累加，越界panic）
func (m *denseMatrix[T]) Increment(row, col int, value T) {
	m.DataManager.Increment(m.index(row, col), value)
}

// RowCopy 获取指定行的稠密副本
func (m *denseMatrix[T]) RowCopy(row int) []T {
	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("row index out of range: %d (rows: %d)", row, m.rows))
	}
	cpy := make([]T, m.cols)
	copy(cpy, m.DataManager.DataPtr()[row*m.cols:(row+1)*m.cols])
	return cpy
}

// SwapRows 交换两行
func (m *denseMatrix[T]) SwapRows(row1, row2 int) {
	if row1 < 0 || row1 >= m.rows || row2 < 0 || row2 >= m.rows {
		panic(fmt.Sprintf("row index out of range: row1=%d, row2=%d (rows=%d)", row1, row2, m.rows))
	}
	if row1 == row2 {
		return
	}
	data := m.DataManager.DataPtr()
	for j := 0; j < m.cols; j++ {
		a, b := row1*m.cols+j, row2*m.cols+j
		data[a], data[b] = data[b], data[a]
	}
}

// Copy 复制自身数据到目标矩阵
func (m *denseMatrix[T]) Copy(a Matrix[T]) {
	switch target := a.(type) {
	case *denseMatrix[T]:
		// 同类型直接复制（高效）
		if target.rows != m.rows || target.cols != m.cols {
			panic(fmt.Sprintf("dimension mismatch: source %dx%d, target %dx%d", m.rows, m.cols, target.rows, target.cols))
		}
		m.DataManager.Copy(target.DataManager)
	default:
		// 异类型逐个元素复制
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				val := m.Get(i, j)
				if val != 0 { // 非零元素才复制（优化）
					target.Set(i, j, val)
				}
			}
		}
	}
}

// MatrixVectorMultiply 矩阵向量乘法（A*x，返回新向量）
func (m *denseMatrix[T]) MatrixVectorMultiply(x Vector[T]) Vector[T] {
	if x.Length() != m.cols {
		panic(fmt.Sprintf("vector dimension mismatch: x length=%d, matrix cols=%d", x.Length(), m.cols))
	}
	result := NewDenseVector[T](m.rows)
	for i := 0; i < m.rows; i++ {
		var sum T
		for j := 0; j < m.cols; j++ {
			sum += m.Get(i, j) * x.Get(j)
		}
		result.Set(i, sum)
	}
	return result
}

// NonZeroCount 统计非零元素数量
func (m *denseMatrix[T]) NonZeroCount() int {
	return m.DataManager.NonZeroCount()
}

// ToDense 转换为稠密切片（行优先展开，副本）
func (m *denseMatrix[T]) ToDense() []T {
	return m.DataManager.DataCopy()
}

// String 格式化输出矩阵
func (m *denseMatrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, "%8.4f ", float64(m.Get(i, j)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
