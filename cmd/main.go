package main

import (
	"fmt"
	"net/http"

	"lazysets"
	"lazysets/set"
)

func main() {

	// 约束表示的平行六面体：[-1,2] × [-1,3]
	p, err := set.NewHParallelotope([][]float64{
		{1, 0},
		{0, 1},
	}, []float64{2, 3, 1, 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	a := lazysets.NewAnalysis(p)

	// 生成元表示
	fmt.Println(p.BaseVertex())
	fmt.Println(p.Center())

	// 包围盒
	fmt.Println(a.BoxBounds())

	// 与盒组合后分解
	box, err := set.NewHyperrectangle([]float64{1, 0}, []float64{1, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	prod := lazysets.NewAnalysis(p, box)
	cpa, err := prod.Decompose([]int{2, 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cpa.Len(), cpa.Dim())

	// 渲染支持向量多边形
	fmt.Println(a.SavePNG(64, "./parallelotope.png"))

	// 发布调试图表
	c, err := a.Charts("HParallelotope", 64)
	if err != nil {
		fmt.Println(err)
		return
	}
	http.HandleFunc("/", c.Handler)
	fmt.Println(http.ListenAndServe(":8080", nil))
}
