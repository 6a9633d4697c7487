package catalog

// Catalog is the read-only registry of categories and units. It is built
// once before first use and safe for concurrent reads.
type Catalog struct {
	categories []Category
	byName     map[string]int
}

// NewCatalog constructs a catalog from an ordered category list.
func NewCatalog(categories []Category) *Catalog {
	byName := make(map[string]int, len(categories))
	for i, c := range categories {
		byName[c.Name] = i
	}
	return &Catalog{categories: categories, byName: byName}
}

// Categories returns the categories in presentation order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category resolves a category by name.
func (c *Catalog) Category(name string) (Category, error) {
	i, ok := c.byName[name]
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return c.categories[i], nil
}

// FindUnit resolves a unit by category name and symbol.
func (c *Catalog) FindUnit(category, symbol string) (Unit, error) {
	cat, err := c.Category(category)
	if err != nil {
		return Unit{}, err
	}
	return cat.Unit(symbol)
}

func linear(name, symbol string, factor float64) Unit {
	return Unit{Name: name, Symbol: symbol, Kind: KindLinear, Factor: factor}
}

func affine(name, symbol string, toBase, fromBase func(float64) float64) Unit {
	return Unit{Name: name, Symbol: symbol, Kind: KindAffine, ToBase: toBase, FromBase: fromBase}
}

func identity(v float64) float64 { return v }

// DefaultCatalog builds the standard unit catalog. Factors are the usual
// published constants to 3-6 significant digits. Month and Year keep the
// fixed 30.44-day and 365-day approximations; changing them to
// calendar-accurate lengths would alter expected outputs.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Category{
		{
			Name: "Length",
			Units: []Unit{
				linear("Meter", "m", 1),
				linear("Kilometer", "km", 1000),
				linear("Centimeter", "cm", 0.01),
				linear("Millimeter", "mm", 0.001),
				linear("Mile", "mi", 1609.34),
				linear("Yard", "yd", 0.9144),
				linear("Foot", "ft", 0.3048),
				linear("Inch", "in", 0.0254),
			},
		},
		{
			Name: "Area",
			Units: []Unit{
				linear("Square Meter", "m2", 1),
				linear("Square Kilometer", "km2", 1e6),
				linear("Square Mile", "mi2", 2.59e6),
				linear("Hectare", "ha", 10000),
				linear("Acre", "ac", 4046.86),
				linear("Square Foot", "ft2", 0.092903),
				linear("Square Inch", "in2", 0.00064516),
			},
		},
		{
			Name: "Volume",
			Units: []Unit{
				linear("Liter", "L", 1),
				linear("Milliliter", "mL", 0.001),
				linear("Cubic Meter", "m3", 1000),
				linear("Gallon", "gal", 3.78541),
				linear("Quart", "qt", 0.946353),
				linear("Pint", "pt", 0.473176),
				linear("Cup", "cup", 0.24),
				linear("Fluid Ounce", "floz", 0.0295735),
			},
		},
		{
			Name: "Mass",
			Units: []Unit{
				linear("Kilogram", "kg", 1),
				linear("Gram", "g", 0.001),
				linear("Milligram", "mg", 1e-6),
				linear("Metric Ton", "t", 1000),
				linear("Pound", "lb", 0.453592),
				linear("Ounce", "oz", 0.0283495),
			},
		},
		{
			Name: "Temperature",
			Units: []Unit{
				affine("Celsius", "C",
					func(v float64) float64 { return v + 273.15 },
					func(v float64) float64 { return v - 273.15 },
				),
				affine("Fahrenheit", "F",
					func(v float64) float64 { return (v-32)*5/9 + 273.15 },
					func(v float64) float64 { return (v-273.15)*9/5 + 32 },
				),
				affine("Kelvin", "K", identity, identity),
			},
		},
		{
			Name: "Time",
			Units: []Unit{
				linear("Second", "s", 1),
				linear("Minute", "min", 60),
				linear("Hour", "h", 3600),
				linear("Day", "d", 86400),
				linear("Week", "wk", 604800),
				linear("Month", "mo", 2630016), // 30.44 days
				linear("Year", "yr", 31536000), // 365 days
			},
		},
		{
			Name: "Speed",
			Units: []Unit{
				linear("Meter per Second", "m/s", 1),
				linear("Kilometer per Hour", "km/h", 0.277778),
				linear("Mile per Hour", "mph", 0.44704),
				linear("Knot", "kn", 0.514444),
				linear("Foot per Second", "ft/s", 0.3048),
			},
		},
		{
			Name: "Data Storage",
			Units: []Unit{
				linear("Byte", "B", 1),
				linear("Kilobyte", "KB", 1024),
				linear("Megabyte", "MB", 1048576),
				linear("Gigabyte", "GB", 1073741824),
				linear("Terabyte", "TB", 1099511627776),
				linear("Bit", "bit", 0.125),
			},
		},
		{
			Name: "Energy",
			Units: []Unit{
				linear("Joule", "J", 1),
				linear("Kilojoule", "kJ", 1000),
				linear("Calorie", "cal", 4.184),
				linear("Kilocalorie", "kcal", 4184),
				linear("Watt Hour", "Wh", 3600),
				linear("Kilowatt Hour", "kWh", 3.6e6),
				linear("British Thermal Unit", "BTU", 1055.06),
			},
		},
		{
			Name: "Power",
			Units: []Unit{
				linear("Watt", "W", 1),
				linear("Kilowatt", "kW", 1000),
				linear("Megawatt", "MW", 1e6),
				linear("Horsepower", "hp", 745.7),
				linear("BTU per Hour", "BTU/h", 0.293071),
			},
		},
	})
}
