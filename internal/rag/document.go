package rag

import (
	"fmt"
	"strings"

	"hotelconcierge/internal/catalog"
)

// Retrieval categories. Every document carries exactly one, and Query maps
// matched categories back to the profile section they were built from.
const (
	CategoryBasicInfo      = "basic_info"
	CategoryContact        = "contact"
	CategoryParking        = "parking"
	CategoryTransportation = "transportation"
	CategoryRooms          = "rooms"
	CategoryBar            = "bar"
	CategoryWellness       = "fitness_wellness"
	CategoryFreeAmenities  = "free_amenities"
	CategoryMeetingRooms   = "meeting_rooms"
)

// Document is one semantic chunk of the hotel profile.
type Document struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// BuildDocuments chunks the profile into one document per topic. The output
// is deterministic for a given profile, so rebuilding an unchanged catalog
// yields an identical index.
func BuildDocuments(p *catalog.Profile) []Document {
	return []Document{
		{Category: CategoryBasicInfo, Text: basicInfoText(p)},
		{Category: CategoryContact, Text: contactText(p)},
		{Category: CategoryParking, Text: parkingText(p)},
		{Category: CategoryTransportation, Text: transportText(p)},
		{Category: CategoryRooms, Text: roomsText(p)},
		{Category: CategoryBar, Text: barText(p)},
		{Category: CategoryWellness, Text: wellnessText(p)},
		{Category: CategoryFreeAmenities, Text: amenitiesText(p)},
		{Category: CategoryMeetingRooms, Text: meetingRoomsText(p)},
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}

	return "No"
}

func basicInfoText(p *catalog.Profile) string {
	return joinLines(
		"Hotel Name: "+p.Hotel.Name,
		"Brand: "+p.Hotel.Brand,
		fmt.Sprintf("Address: %s, %s %s", p.Hotel.Address, p.Hotel.PostalCode, p.Hotel.City),
		"Country: "+p.Hotel.Country,
		"Region: "+p.Hotel.Region,
		"Description: "+p.Hotel.Description,
	)
}

func contactText(p *catalog.Profile) string {
	return joinLines(
		"Hotel Contact Information:",
		"Phone: "+p.Hotel.Phone,
		"Email: "+p.Hotel.Email,
		"Website: "+p.Hotel.Website,
	)
}

func parkingText(p *catalog.Profile) string {
	return joinLines(
		"Parking Information:",
		fmt.Sprintf("Number of parking spaces: %d", p.Parking.Spaces),
		fmt.Sprintf("Parking fee per day: %.2f EUR", p.Parking.FeePerDay),
		fmt.Sprintf("Height limit: %.2f meters", p.Parking.HeightLimitM),
		"Reservation possible: "+yesNo(p.Parking.ReservationPossible),
	)
}

func transportText(p *catalog.Profile) string {
	return joinLines(
		"Transportation and Location:",
		fmt.Sprintf("Distance to airport: %.1f km (%d minutes by car)", p.Transport.AirportKm, p.Transport.AirportMin),
		"Public transport: "+p.Transport.PublicTransport,
		"S-Bahn line: "+p.Transport.SBahnLine,
		fmt.Sprintf("Distance to city center: %d minutes", p.Transport.CityCenterMin),
		fmt.Sprintf("Distance to Messe: %.1f km (%d minutes by car, %d by public transport)",
			p.Transport.MesseKm, p.Transport.MesseCarMin, p.Transport.MessePublicMin),
		"Bus line to Messe: "+p.Transport.BusLineToMesse,
		"Motorway access: "+p.Transport.MotorwayAccess,
	)
}

func roomsText(p *catalog.Profile) string {
	lines := []string{"Hotel Room Information:"}

	for _, room := range p.RoomsByCategory(catalog.CategoryHotelRoom) {
		lines = append(lines, roomLine(room))
	}

	return joinLines(lines...)
}

func barText(p *catalog.Profile) string {
	return joinLines(
		"Bar Information:",
		"Bar name: "+p.Bar.Name,
		"Description: "+p.Bar.Description,
		"Opening hours: "+p.Bar.OpeningHours,
		"Cashless only: "+yesNo(p.Bar.CashlessOnly),
	)
}

func wellnessText(p *catalog.Profile) string {
	return joinLines(
		"Fitness and Wellness:",
		"Fitness available: "+yesNo(p.Wellness.FitnessAvailable),
		"Fitness hours: "+p.Wellness.FitnessHours,
		"Fitness equipment: "+strings.Join(p.Wellness.Equipment, ", "),
		"Sauna available: "+yesNo(p.Wellness.SaunaAvailable),
		"Sauna hours: "+p.Wellness.SaunaHours,
		"Wellness area: "+p.Wellness.Description,
	)
}

func amenitiesText(p *catalog.Profile) string {
	lines := []string{"Free Amenities and Services:"}

	for _, amenity := range p.Amenities {
		lines = append(lines, "- "+amenity)
	}

	return joinLines(lines...)
}

func meetingRoomsText(p *catalog.Profile) string {
	lines := []string{
		"Meeting Rooms and Events:",
		"Event team available: " + yesNo(p.Events.TeamAvailable),
		"Technical equipment: " + p.Events.TechnicalEquipment,
	}

	for _, room := range p.RoomsByCategory(catalog.CategoryMeetingRoom) {
		lines = append(lines, roomLine(room))
	}

	return joinLines(lines...)
}

func roomLine(room catalog.Room) string {
	var b strings.Builder

	fmt.Fprintf(&b, "- %s: up to %d people", room.Name, room.MaxCapacity)

	if room.SizeSqm > 0 {
		fmt.Fprintf(&b, ", %.0f sqm", room.SizeSqm)
	}

	fmt.Fprintf(&b, ", %.2f EUR per %s", room.BasePrice, priceUnit(room))

	if len(room.Features) > 0 {
		b.WriteString(", features: " + strings.Join(room.Features, ", "))
	}

	return b.String()
}

func priceUnit(room catalog.Room) string {
	if room.Category == catalog.CategoryMeetingRoom {
		return "day"
	}

	return "night"
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
