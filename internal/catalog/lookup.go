package catalog

import "github.com/Domenick1991/hotelconcierge/internal/domain"

var features = map[domain.RoomType]string{
	domain.RoomTypeSuite:  "King bed, living area, mini bar, workspace",
	domain.RoomTypeDouble: "Two queen beds, workspace",
	domain.RoomTypeSingle: "One queen bed, workspace",
}

var maxOccupancy = map[domain.RoomType]int{
	domain.RoomTypeSuite:  4,
	domain.RoomTypeDouble: 2,
	domain.RoomTypeSingle: 1,
}

// Features describes what a room type includes. Unknown types have no description.
func Features(t domain.RoomType) string {
	return features[t]
}

// MaxOccupancy is the number of guests a room type sleeps.
func MaxOccupancy(t domain.RoomType) int {
	return maxOccupancy[t]
}

// Annotate fills the derived columns a template asks for.
func Annotate(t Template, rows []domain.Row) []domain.Row {
	if !t.Features && !t.Occupancy {
		return rows
	}
	for i := range rows {
		if t.Features {
			rows[i].Features = Features(rows[i].Type)
		}
		if t.Occupancy {
			rows[i].MaxOccupancy = MaxOccupancy(rows[i].Type)
		}
	}
	return rows
}
