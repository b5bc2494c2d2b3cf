package booking

import (
	"fmt"
	"strings"

	"hotelconcierge/internal/catalog"
)

// AssembleQuote builds the full response payload for an interpreted request.
// The shape is identical for matches and for an empty result.
func AssembleQuote(profile *catalog.Profile, intent *Intent, offers []Offer) *Quote {
	units := intent.Units()

	quote := &Quote{
		OriginalRequest:  intent.OriginalRequest,
		RoomType:         intent.RoomType,
		CheckIn:          intent.CheckIn.Format(isoDateFormat),
		CheckOut:         intent.CheckOut.Format(isoDateFormat),
		Guests:           intent.Guests,
		IncludeCatering:  intent.IncludeCatering,
		AvailableOptions: make([]QuoteOption, 0, len(offers)),
		HotelName:        profile.Hotel.Name,
		HotelAddress:     hotelAddress(profile.Hotel),
		ContactEmail:     profile.Hotel.Email,
		ContactPhone:     profile.Hotel.Phone,
		Message: fmt.Sprintf(
			"Found %d available %s room(s) for %d guest(s) over %d %s(s).",
			len(offers),
			intent.RoomType.label(),
			intent.Guests,
			units,
			intent.RoomType.unit(),
		),
	}

	if intent.RoomType == RoomTypeMeeting {
		quote.DurationDays = units
	} else {
		quote.DurationNights = units
	}

	for _, offer := range offers {
		quote.AvailableOptions = append(quote.AvailableOptions, optionFromOffer(intent.RoomType, offer))
	}

	return quote
}

func optionFromOffer(roomType RoomType, offer Offer) QuoteOption {
	features := offer.Room.Features
	if features == nil {
		features = []string{}
	}

	option := QuoteOption{
		RoomName:       offer.Room.Name,
		RoomCategory:   offer.Room.Category,
		SizeSqm:        offer.Room.SizeSqm,
		MaxCapacity:    offer.Room.MaxCapacity,
		AvailableCount: offer.Room.AvailableCount,
		TotalPrice:     offer.TotalPrice,
		Features:       features,
		Notes:          offer.Room.Notes,
	}

	if roomType == RoomTypeMeeting {
		option.PricePerDay = offer.PricePerUnit
		option.Days = offer.Units
	} else {
		option.PricePerNight = offer.PricePerUnit
		option.Nights = offer.Units
	}

	return option
}

func hotelAddress(h catalog.Hotel) string {
	locality := strings.TrimSpace(h.PostalCode + " " + h.City)
	if locality == "" {
		return h.Address
	}

	return h.Address + ", " + locality
}
