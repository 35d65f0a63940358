package debug

import (
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 初始化界面
	lineS := charts.NewLine()
	lineS.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "支持函数曲线",
			Subtitle: "集合支持函数值随方向角度变化曲线",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "角度(rad)",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithAnimation(true),
	)
	scatterV := charts.NewScatter()
	scatterV.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "支持向量散点",
			Subtitle: "集合在各采样方向上的最远点",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	// 处理数据
	{
		// 支持函数信息
		lineS.SetXAxis(c.Angles)
		for i, name := range c.Names {
			items := make([]opts.LineData, len(c.Angles))
			for j, v := range c.Support[i] {
				items[j].Value = v
			}
			lineS.AddSeries(name, items)
		}
		// 支持向量信息
		for i, name := range c.Names {
			items := make([]opts.ScatterData, len(c.Angles))
			for j, v := range c.Vectors[i] {
				items[j].Value = []float64{v[0], v[1]}
			}
			scatterV.AddSeries(name, items)
		}
	}
	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		lineS,
		scatterV,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	c.Render(w)
}

func (c *Charts) Error(err error) { log.Println(err) }
