package maths

// 补充必要常量（浮点精度阈值）
const Epsilon = 1e-16

// Number 是一个约束，允许任何实数浮点类型。
// 集合运算（支持向量、成员判定）依赖全序比较，因此不包含复数类型。
type Number interface {
	~float32 | ~float64
}

// Abs 是一个泛型函数，返回任何支持的 Number 类型的绝对值。
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// DataManager 一维数据管理器（底层存储核心）
type DataManager[T Number] interface {
	// 基础属性方法
	Length() int    // 获取数据长度
	String() string // 返回数据的字符串表示

	// 数据访问方法
	Get(index int) T              // 获取指定索引处的元素值
	Set(index int, value T)       // 设置指定索引处的元素值
	Increment(index int, value T) // 增量更新指定索引处的元素值

	// 数据操作和转换方法
	DataCopy() []T // 返回数据的切片副本
	DataPtr() []T  // 返回数据的切片引用（直接操作底层数据）

	// 数据修改方法
	Zero()                     // 原地将所有元素设置为零
	AppendInPlace(values ...T) // 原地追加元素（不创建新对象）

	// 统计和复制方法
	NonZeroCount() int          // 统计非零元素数量
	Copy(target DataManager[T]) // 复制数据到目标管理器
}

// Vector 通用向量接口
// 定义向量的基本操作
type Vector[T Number] interface {
	// 基础属性方法
	Length() int    // 获取向量长度
	String() string // 格式化字符串输出

	// 数据访问方法
	Get(index int) T              // 获取指定索引元素值
	Set(index int, value T)       // 设置指定索引元素值
	Increment(index int, value T) // 增量更新元素（value累加）

	// 数据操作和转换方法
	ToDense() []T             // 转换为稠密切片（副本）
	BuildFromDense(dense []T) // 从稠密切片构建向量

	// 数据修改方法
	Zero()            // 清空向量为零向量
	Copy(a Vector[T]) // 复制自身数据到目标向量a

	// 数学运算方法
	DotProduct(other Vector[T]) T // 计算与另一个向量的点积
	Scale(scalar T)               // 向量缩放（所有元素乘scalar）
	Add(other Vector[T])          // 向量加法（自身 += 另一个向量）

	// 统计方法
	NonZeroCount() int // 统计非零元素数量
	MaxAbs() T         // 获取向量中绝对值最大的元素
}

// Matrix 通用矩阵接口
// 定义矩阵的基本操作
type Matrix[T Number] interface {
	// 基础属性方法
	Rows() int      // 获取矩阵行数
	Cols() int      // 获取矩阵列数
	String() string // 格式化字符串输出
	IsSquare() bool // 判断是否为方阵（行数=列数）

	// 数据访问方法
	Get(row, col int) T              // 获取指定行列元素值
	Set(row, col int, value T)       // 设置指定行列元素值
	Increment(row, col int, value T) // 增量更新元素
	RowCopy(row int) []T             // 获取指定行的稠密副本

	// 数据操作和转换方法
	ToDense() []T               // 转换为稠密切片（行优先展开）
	BuildFromDense(dense [][]T) // 从稠密矩阵构建

	// 数据修改方法
	Zero()                   // 清空矩阵为零矩阵
	Copy(a Matrix[T])        // 复制自身数据到目标矩阵a
	SwapRows(row1, row2 int) // 交换两行

	// 数学运算方法
	MatrixVectorMultiply(x Vector[T]) Vector[T] // 矩阵向量乘法（返回A*x）

	// 统计方法
	NonZeroCount() int // 统计非零元素数量
}

// LU 接口定义了 LU 分解和求解线性方程组的操作。
type LU[T Number] interface {
	// Decompose 对输入方阵执行LU分解（A=PLU）
	// 参数：
	//   matrix - 待分解的方阵
	// 返回：
	//   error - 如果矩阵奇异或接近奇异则返回错误
	Decompose(matrix Matrix[T]) error
	// SolveReuse 解线性方程组 Ax = b，重用预分配的向量
	// 参数：
	//   b - 右侧向量
	//   x - 解向量（预分配，结果将存储在此）
	// 返回：
	//   error - 如果向量维度不匹配或矩阵奇异则返回错误
	SolveReuse(b, x Vector[T]) error
}
