package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/domain"
)

func sourceLabel(s domain.FoodSource) string {
	switch s {
	case domain.FoodSourceAIPhoto:
		return StylePurple.Render("photo")
	case domain.FoodSourceAIText:
		return StylePurple.Render("estimate")
	default:
		return Dim("manual")
	}
}

func FormatFoodLog(f *domain.FoodLog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", Bold(f.LoggedAt.Format("2006-01-02 15:04")), sourceLabel(f.Source), Dim("id "+f.ID))
	fmt.Fprintf(&b, "%s\n", Macros(f.Total))
	if f.PhotoPath != "" {
		fmt.Fprintf(&b, "%s\n", Dim(f.PhotoPath))
	}
	if len(f.Items) > 0 {
		b.WriteString("\n")
		headers := []string{"FOOD", "QTY", "KCAL", "P", "C", "F"}
		rows := make([][]string, len(f.Items))
		for i, it := range f.Items {
			rows[i] = []string{
				it.Name,
				domain.CoalesceStr(it.Quantity, "-"),
				num(it.Calories),
				num(it.ProteinG),
				num(it.CarbsG),
				num(it.FatG),
			}
		}
		b.WriteString(RenderTable(headers, rows))
	}
	return RenderBox(f.Description, strings.TrimRight(b.String(), "\n"))
}

func FormatDailyNutrition(d *app.DailyNutrition) string {
	title := "Food · " + ShortDate(d.Date)
	if len(d.Logs) == 0 {
		return RenderBox(title, Dim("Nothing logged."))
	}
	headers := []string{"ID", "TIME", "MEAL", "KCAL", "P", "C", "F", "SOURCE"}
	rows := make([][]string, len(d.Logs))
	for i, l := range d.Logs {
		rows[i] = []string{
			TruncID(l.ID),
			l.LoggedAt.Format("15:04"),
			l.Description,
			num(l.Total.Calories),
			num(l.Total.ProteinG),
			num(l.Total.CarbsG),
			num(l.Total.FatG),
			sourceLabel(l.Source),
		}
	}
	return RenderBox(title, RenderTable(headers, rows)+"\n"+Bold("Total ")+Macros(d.Total))
}
