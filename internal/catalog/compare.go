package catalog

import (
	"fmt"

	"dc-atlas-api-server/internal/models"
)

// MaxSelection bounds the side-by-side comparison.
const MaxSelection = 3

// Selection is an ordered pick of at most MaxSelection facilities.
type Selection struct {
	items []models.DataCenter
}

// Add appends dc to the selection. Adding a duplicate id or adding past the
// cap is a no-op; the return reports whether the selection changed.
func (s *Selection) Add(dc models.DataCenter) bool {
	if len(s.items) >= MaxSelection {
		return false
	}
	for _, existing := range s.items {
		if existing.ID == dc.ID {
			return false
		}
	}
	s.items = append(s.items, dc)
	return true
}

func (s *Selection) Remove(id string) bool {
	for i, existing := range s.items {
		if existing.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Selection) Items() []models.DataCenter {
	out := make([]models.DataCenter, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Selection) Len() int { return len(s.items) }

// Value is one extracted comparison value, numeric or text.
type Value struct {
	Number   float64 `json:"number,omitempty"`
	Text     string  `json:"text,omitempty"`
	IsNumber bool    `json:"isNumber"`
}

// Extractor pulls a comparison value out of a record. Extractors over parsed
// pricing strings can fail with a *ParseError.
type Extractor func(models.DataCenter) (Value, error)

// Num adapts an infallible numeric getter.
func Num(get func(models.DataCenter) float64) Extractor {
	return func(dc models.DataCenter) (Value, error) {
		return Value{Number: get(dc), IsNumber: true}, nil
	}
}

// Text adapts a string getter. Text values carry no best/worst flags.
func Text(get func(models.DataCenter) string) Extractor {
	return func(dc models.DataCenter) (Value, error) {
		return Value{Text: get(dc)}, nil
	}
}

// Negate flips the sign of a numeric extractor. The comparison rule is
// uniformly "max wins"; callers wanting lower-is-better semantics for fields
// like price or PUE pre-negate the extractor.
func Negate(e Extractor) Extractor {
	return func(dc models.DataCenter) (Value, error) {
		v, err := e(dc)
		if err != nil {
			return Value{}, err
		}
		if v.IsNumber {
			v.Number = -v.Number
		}
		return v, nil
	}
}

// Cell is one facility's entry in a comparison row.
type Cell struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Value     Value  `json:"value"`
	Formatted string `json:"formatted"`
	Best      bool   `json:"best"`
	Worst     bool   `json:"worst"`
}

// Row is a single compared feature across the selection.
type Row struct {
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

// CompareRow extracts one feature across the selected facilities and flags
// the numeric maximum as best and, when max differs from min, the minimum as
// worst. Ties share the flag. format may be nil for a default rendering.
func CompareRow(label string, selected []models.DataCenter, extract Extractor, format func(Value) string) (Row, error) {
	row := Row{Label: label, Cells: make([]Cell, 0, len(selected))}

	values := make([]Value, len(selected))
	numeric := true
	var max, min float64
	for i, dc := range selected {
		v, err := extract(dc)
		if err != nil {
			return Row{}, err
		}
		values[i] = v
		if !v.IsNumber {
			numeric = false
			continue
		}
		if i == 0 || v.Number > max {
			max = v.Number
		}
		if i == 0 || v.Number < min {
			min = v.Number
		}
	}

	for i, dc := range selected {
		v := values[i]
		cell := Cell{ID: dc.ID, Name: dc.Name, Value: v, Formatted: formatValue(v, format)}
		if numeric && len(selected) > 0 {
			cell.Best = v.Number == max
			cell.Worst = v.Number == min && max != min
		}
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}

func formatValue(v Value, format func(Value) string) string {
	if format != nil {
		return format(v)
	}
	if v.IsNumber {
		return fmt.Sprintf("%g", v.Number)
	}
	return v.Text
}

// CompositeScore is the presentation summary score. A heuristic, not a
// certified metric; nothing bounds the result to [0,100].
func CompositeScore(dc models.DataCenter) float64 {
	return dc.Reviews.Rating/5*40 +
		(dc.RealTimeData.Uptime-99)*20 +
		(2-dc.Sustainability.PUE)*20 +
		(100-dc.Capacity.Used)/5
}

// Field is a named, formatted comparison row definition.
type Field struct {
	Key     string
	Label   string
	Extract Extractor
	Format  func(Value) string
}

// DefaultFields lists the comparison table rows in presentation order.
func DefaultFields() []Field {
	num := func(f string) func(Value) string {
		return func(v Value) string { return fmt.Sprintf(f, v.Number) }
	}
	return []Field{
		{Key: "tier", Label: "Tier Level", Extract: Text(func(dc models.DataCenter) string { return dc.Tier })},
		{Key: "totalSpace", Label: "Total Space", Extract: Text(func(dc models.DataCenter) string { return dc.Specifications.TotalSpace })},
		{Key: "power", Label: "Power Capacity", Extract: Text(func(dc models.DataCenter) string { return dc.Specifications.Power })},
		{Key: "pue", Label: "PUE Rating", Extract: Num(func(dc models.DataCenter) float64 { return dc.Sustainability.PUE }), Format: num("%.2f")},
		{Key: "renewable", Label: "Renewable Energy", Extract: Num(func(dc models.DataCenter) float64 { return dc.Sustainability.RenewableEnergy }), Format: num("%g%%")},
		{Key: "capacityUsed", Label: "Capacity Used", Extract: Num(func(dc models.DataCenter) float64 { return dc.Capacity.Used }), Format: num("%g%%")},
		{Key: "availableRacks", Label: "Available Racks", Extract: Num(func(dc models.DataCenter) float64 { return float64(dc.Capacity.AvailableRacks) })},
		{Key: "bandwidth", Label: "Bandwidth", Extract: Text(func(dc models.DataCenter) string { return dc.Connectivity.Bandwidth })},
		{Key: "carriers", Label: "Carriers", Extract: Num(func(dc models.DataCenter) float64 { return float64(len(dc.Connectivity.Carriers)) })},
		{Key: "colocation", Label: "Colocation Price", Extract: priceExtractor("pricing.colocation", func(dc models.DataCenter) string { return dc.Pricing.Colocation }), Format: num("$%g/month")},
		{Key: "setup", Label: "Setup Fee", Extract: priceExtractor("pricing.setup", func(dc models.DataCenter) string { return dc.Pricing.Setup }), Format: num("$%g")},
		{Key: "rating", Label: "Customer Rating", Extract: Num(func(dc models.DataCenter) float64 { return dc.Reviews.Rating }), Format: num("%g/5.0")},
		{Key: "totalReviews", Label: "Total Reviews", Extract: Num(func(dc models.DataCenter) float64 { return float64(dc.Reviews.TotalReviews) })},
		{Key: "uptime", Label: "Uptime", Extract: Num(func(dc models.DataCenter) float64 { return dc.RealTimeData.Uptime }), Format: num("%g%%")},
		{Key: "temperature", Label: "Temperature", Extract: Num(func(dc models.DataCenter) float64 { return dc.RealTimeData.Temperature }), Format: num("%g°C")},
		{Key: "latency", Label: "Network Latency", Extract: Num(func(dc models.DataCenter) float64 { return dc.RealTimeData.NetworkLatency }), Format: num("%gms")},
	}
}

func priceExtractor(field string, get func(models.DataCenter) string) Extractor {
	return func(dc models.DataCenter) (Value, error) {
		n, err := ParseLeadingInt(field, dc.ID, get(dc))
		if err != nil {
			return Value{}, err
		}
		return Value{Number: float64(n), IsNumber: true}, nil
	}
}
