package booking

import (
	"sort"

	"hotelconcierge/internal/catalog"
)

// FindOffers filters the catalog by category and capacity and prices every
// surviving room. An empty result is a valid answer, not an error.
func FindOffers(profile *catalog.Profile, intent *Intent) []Offer {
	offers := make([]Offer, 0, len(profile.Rooms))

	for _, room := range profile.Rooms {
		if room.Category != string(intent.RoomType) {
			continue
		}

		if room.MaxCapacity < intent.Guests {
			continue
		}

		if room.AvailableCount < 1 {
			continue
		}

		offers = append(offers, priceRoom(room, intent))
	}

	sort.Slice(offers, func(i, j int) bool {
		if offers[i].TotalPrice != offers[j].TotalPrice {
			return offers[i].TotalPrice < offers[j].TotalPrice
		}

		return offers[i].Room.Name < offers[j].Room.Name
	})

	return offers
}

// priceRoom computes the per-unit and total price for one room. Hotel rooms
// surcharge every guest beyond the first per night; meeting rooms surcharge
// catering per person per day.
func priceRoom(room catalog.Room, intent *Intent) Offer {
	units := intent.Units()
	perUnit := room.BasePrice

	switch intent.RoomType {
	case RoomTypeHotel:
		if intent.Guests > 1 {
			perUnit += room.ExtraGuestPrice * float64(intent.Guests-1)
		}
	case RoomTypeMeeting:
		if intent.IncludeCatering {
			perUnit += room.CateringPricePerPerson * float64(intent.Guests)
		}
	}

	return Offer{
		Room:         room,
		PricePerUnit: perUnit,
		TotalPrice:   perUnit * float64(units),
		Units:        units,
	}
}
