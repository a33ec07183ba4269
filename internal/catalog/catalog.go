// Package catalog holds the fixed set of named read templates over the room table.
package catalog

import (
	"github.com/Domenick1991/hotelconcierge/internal/domain"
)

const (
	CheckAllAvailability  = "check_all_availability"
	CheckSpecificRoomType = "check_specific_room_type"
	PriceRange            = "price_range"
	CheapestAvailable     = "cheapest_available"
	RoomFeatures          = "room_features"
	AllRoomInfo           = "all_room_info"
)

const (
	ParamRoomType = "room_type"
	ParamMinPrice = "min_price"
	ParamMaxPrice = "max_price"
)

// Params carries template arguments by name.
type Params map[string]any

// Template is a parameterized read specification. The zero value is the empty
// specification: it selects nothing and every store returns no rows for it.
type Template struct {
	Name string

	// Params lists required parameter names in positional order for SQL.
	Params []string
	SQL    string

	ByType    bool
	ByPrice   bool
	Grouped   bool
	Limit     int
	Features  bool
	Occupancy bool
}

func (t Template) IsEmpty() bool {
	return t.Name == ""
}

var templates = map[string]Template{
	CheckAllAvailability: {
		Name:    CheckAllAvailability,
		Grouped: true,
		SQL: `SELECT type, price, COUNT(*) AS available_rooms
		FROM rooms
		WHERE availability = 'Available'
		GROUP BY type, price
		ORDER BY price, type`,
	},
	CheckSpecificRoomType: {
		Name:   CheckSpecificRoomType,
		Params: []string{ParamRoomType},
		ByType: true,
		SQL: `SELECT id, type, price
		FROM rooms
		WHERE type = $1 AND availability = 'Available'
		ORDER BY id`,
	},
	PriceRange: {
		Name:    PriceRange,
		Params:  []string{ParamMinPrice, ParamMaxPrice},
		ByPrice: true,
		Grouped: true,
		SQL: `SELECT type, price, COUNT(*) AS room_count
		FROM rooms
		WHERE availability = 'Available' AND price BETWEEN $1 AND $2
		GROUP BY type, price
		ORDER BY price, type`,
	},
	CheapestAvailable: {
		Name:  CheapestAvailable,
		Limit: 1,
		SQL: `SELECT id, type, price
		FROM rooms
		WHERE availability = 'Available'
		ORDER BY price, id
		LIMIT 1`,
	},
	RoomFeatures: {
		Name:     RoomFeatures,
		Grouped:  true,
		Features: true,
		SQL: `SELECT type, price, COUNT(*) AS available_rooms
		FROM rooms
		WHERE availability = 'Available'
		GROUP BY type, price
		ORDER BY price, type`,
	},
	AllRoomInfo: {
		Name:      AllRoomInfo,
		Grouped:   true,
		Features:  true,
		Occupancy: true,
		SQL: `SELECT type, price, COUNT(*) AS available_rooms
		FROM rooms
		WHERE availability = 'Available'
		GROUP BY type, price
		ORDER BY price, type`,
	},
}

// Lookup returns the named template. Unknown names yield the empty template, not an error.
func Lookup(name string) Template {
	return templates[name]
}

// Names lists every template in the catalog.
func Names() []string {
	return []string{CheckAllAvailability, CheckSpecificRoomType, PriceRange, CheapestAvailable, RoomFeatures, AllRoomInfo}
}

// Args holds validated arguments for a template.
type Args struct {
	RoomType domain.RoomType
	MinPrice float64
	MaxPrice float64
}

// Positional returns the SQL arguments in the order the template declares them.
func (a Args) Positional(t Template) []any {
	out := make([]any, 0, len(t.Params))
	for _, p := range t.Params {
		switch p {
		case ParamRoomType:
			out = append(out, string(a.RoomType))
		case ParamMinPrice:
			out = append(out, a.MinPrice)
		case ParamMaxPrice:
			out = append(out, a.MaxPrice)
		}
	}
	return out
}

// Bind checks that every required parameter is present and well typed.
func Bind(t Template, params Params) (Args, error) {
	var args Args
	for _, name := range t.Params {
		v, ok := params[name]
		if !ok {
			return Args{}, &domain.QueryError{Template: t.Name, Param: name, Reason: "is required"}
		}
		switch name {
		case ParamRoomType:
			rt, err := toRoomType(v)
			if err != nil {
				return Args{}, &domain.QueryError{Template: t.Name, Param: name, Reason: "must be Single, Double or Suite"}
			}
			args.RoomType = rt
		case ParamMinPrice, ParamMaxPrice:
			f, ok := toFloat(v)
			if !ok {
				return Args{}, &domain.QueryError{Template: t.Name, Param: name, Reason: "must be a number"}
			}
			if name == ParamMinPrice {
				args.MinPrice = f
			} else {
				args.MaxPrice = f
			}
		}
	}
	return args, nil
}

func toRoomType(v any) (domain.RoomType, error) {
	switch x := v.(type) {
	case domain.RoomType:
		return domain.ParseRoomType(string(x))
	case string:
		return domain.ParseRoomType(x)
	}
	return "", domain.ErrInvalidRoomType
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
