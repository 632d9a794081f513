package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
)

// Render writes an html page holding all of the charts
func Render(w io.Writer, title string, c ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(c...)
	return page.Render(w)
}

// RenderFile renders the charts into an html file at path, replacing any existing file
func RenderFile(path, title string, c ...components.Charter) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create plot file, %w", err)
	}
	if err := Render(file, title, c...); err != nil {
		file.Close()
		return fmt.Errorf("unable to render plot, %w", err)
	}
	return file.Close()
}
