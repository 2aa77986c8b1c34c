package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bazaar-next/internal/models"
)

// renderProductTable 商品表格输出；价格与评分展示时保留两位小数
func renderProductTable(out io.Writer, products []*models.Product) {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\t名称\t分类\t单价\t库存\t评分")
	for _, product := range products {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%d\t%.2f\n",
			product.ID,
			product.Name,
			product.Category,
			product.Price.String(),
			product.Quantity,
			product.AverageRating(),
		)
	}
	_ = writer.Flush()
}
