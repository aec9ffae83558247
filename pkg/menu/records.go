package menu

import (
	"fmt"
	"regexp"
	"strings"
)

// Meal is one dish of a day
type Meal struct {
	Name      string  `json:"name"`
	Desc      string  `json:"desc"`
	PriceStud *string `json:"priceStud,omitempty"`
	PriceBed  *string `json:"priceBed,omitempty"`
}

// Day is one column of the plan
type Day struct {
	DayName string `json:"dayName"`
	Date    string `json:"date"`
	Meals   []Meal `json:"meals"`
}

var mealPattern = regexp.MustCompile(`(?s)^(?P<desc>.*?)(?:Stud\.:\s*(?P<priceStud>.*?€)\s*Bed\.:\s*(?P<priceBed>.*?€)\s*)?$`)

// ParseMeal splits a cell's text into description and the optional student
// and staff prices. Prices keep their currency sign.
func ParseMeal(name, text string) (Meal, error) {
	m := mealPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return Meal{}, fmt.Errorf("%w: meal cell %q", ErrPatternMismatch, text)
	}

	meal := Meal{Name: name}
	group := func(name string) (string, bool) {
		i := mealPattern.SubexpIndex(name)
		if m[2*i] < 0 {
			return "", false
		}
		return text[m[2*i]:m[2*i+1]], true
	}

	desc, _ := group("desc")
	meal.Desc = strings.TrimSpace(desc)
	if stud, ok := group("priceStud"); ok {
		meal.PriceStud = &stud
	}
	if bed, ok := group("priceBed"); ok {
		meal.PriceBed = &bed
	}
	return meal, nil
}

// BuildDays turns the grid into day records. Column 0 holds the category
// labels, row 0 the day headers.
func BuildDays(grid Grid, week CalendarWeek, defaultMealName string) ([]Day, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrStructure)
	}
	categories := grid[0]

	days := make([]Day, 0, len(grid)-1)
	for _, col := range grid[1:] {
		dayName := col[0].Text()
		date, err := week.DayDate(dayName)
		if err != nil {
			return nil, err
		}

		meals := make([]Meal, 0, len(col)-1)
		for row := 1; row < len(col); row++ {
			name := categories[row].Text()
			if name == "" {
				name = defaultMealName
			}
			meal, err := ParseMeal(name, col[row].Text())
			if err != nil {
				return nil, &CellError{Day: dayName, Row: row, Err: err}
			}
			meals = append(meals, meal)
		}

		days = append(days, Day{
			DayName: dayName,
			Date:    date,
			Meals:   meals,
		})
	}
	return days, nil
}
