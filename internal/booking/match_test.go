package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelconcierge/internal/catalog"
)

func matchProfile() *catalog.Profile {
	return &catalog.Profile{
		Hotel: catalog.Hotel{
			Name:       "DORMERO Hotel Hannover",
			Address:    "Hildesheimer Straße 380",
			PostalCode: "30519",
			City:       "Hannover",
			Phone:      "+49 511 445566-0",
			Email:      "hannover@dormero.de",
		},
		Rooms: []catalog.Room{
			{
				Name:            "Panorama Suite",
				Category:        catalog.CategoryHotelRoom,
				BasePrice:       189,
				ExtraGuestPrice: 35,
				MaxCapacity:     4,
				AvailableCount:  6,
				SizeSqm:         42,
				Features:        []string{"city view", "bathtub"},
			},
			{
				Name:            "DORMERO Zimmer",
				Category:        catalog.CategoryHotelRoom,
				BasePrice:       119,
				ExtraGuestPrice: 25,
				MaxCapacity:     2,
				AvailableCount:  55,
				SizeSqm:         26,
				Features:        []string{"free wifi", "rain shower"},
			},
			{
				Name:           "Budget Single",
				Category:       catalog.CategoryHotelRoom,
				BasePrice:      89,
				MaxCapacity:    1,
				AvailableCount: 10,
				SizeSqm:        18,
			},
			{
				Name:           "Sold Out Loft",
				Category:       catalog.CategoryHotelRoom,
				BasePrice:      99,
				MaxCapacity:    2,
				AvailableCount: 0,
			},
			{
				Name:                   "Carina Cörbchen",
				Category:               catalog.CategoryMeetingRoom,
				BasePrice:              450,
				CateringPricePerPerson: 35,
				MaxCapacity:            80,
				AvailableCount:         1,
				SizeSqm:                120,
			},
			{
				Name:                   "Boardroom Linden",
				Category:               catalog.CategoryMeetingRoom,
				BasePrice:              250,
				CateringPricePerPerson: 25,
				MaxCapacity:            12,
				AvailableCount:         1,
			},
		},
	}
}

func hotelIntent(guests, nights int) *Intent {
	checkIn := time.Date(2026, time.December, 10, 0, 0, 0, 0, time.UTC)

	return &Intent{
		OriginalRequest: "hotel request",
		RoomType:        RoomTypeHotel,
		CheckIn:         checkIn,
		CheckOut:        checkIn.AddDate(0, 0, nights),
		Guests:          guests,
	}
}

func meetingIntent(guests, days int, catering bool) *Intent {
	checkIn := time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC)

	return &Intent{
		OriginalRequest: "meeting request",
		RoomType:        RoomTypeMeeting,
		CheckIn:         checkIn,
		CheckOut:        checkIn.AddDate(0, 0, days),
		Guests:          guests,
		IncludeCatering: catering,
	}
}

func TestFindOffers_HotelPricing(t *testing.T) {
	offers := FindOffers(matchProfile(), hotelIntent(2, 2))

	require.Len(t, offers, 2)

	assert.Equal(t, "DORMERO Zimmer", offers[0].Room.Name)
	assert.InDelta(t, 144, offers[0].PricePerUnit, 0.001)
	assert.InDelta(t, 288, offers[0].TotalPrice, 0.001)
	assert.Equal(t, 2, offers[0].Units)

	assert.Equal(t, "Panorama Suite", offers[1].Room.Name)
	assert.InDelta(t, 224, offers[1].PricePerUnit, 0.001)
	assert.InDelta(t, 448, offers[1].TotalPrice, 0.001)
}

func TestFindOffers_CapacityFilter(t *testing.T) {
	offers := FindOffers(matchProfile(), hotelIntent(3, 1))

	require.Len(t, offers, 1)
	assert.Equal(t, "Panorama Suite", offers[0].Room.Name)
	assert.InDelta(t, 259, offers[0].PricePerUnit, 0.001)
}

func TestFindOffers_SingleGuestNoSurcharge(t *testing.T) {
	offers := FindOffers(matchProfile(), hotelIntent(1, 1))

	require.Len(t, offers, 3)
	assert.Equal(t, "Budget Single", offers[0].Room.Name)
	assert.Equal(t, "DORMERO Zimmer", offers[1].Room.Name)
	assert.Equal(t, "Panorama Suite", offers[2].Room.Name)
	assert.InDelta(t, 89, offers[0].TotalPrice, 0.001)
}

func TestFindOffers_SoldOutRoomExcluded(t *testing.T) {
	offers := FindOffers(matchProfile(), hotelIntent(2, 1))

	for _, offer := range offers {
		assert.NotEqual(t, "Sold Out Loft", offer.Room.Name)
	}
}

func TestFindOffers_MeetingWithCatering(t *testing.T) {
	offers := FindOffers(matchProfile(), meetingIntent(30, 1, true))

	require.Len(t, offers, 1)
	assert.Equal(t, "Carina Cörbchen", offers[0].Room.Name)
	assert.InDelta(t, 1500, offers[0].PricePerUnit, 0.001)
	assert.InDelta(t, 1500, offers[0].TotalPrice, 0.001)
}

func TestFindOffers_MeetingWithoutCatering(t *testing.T) {
	offers := FindOffers(matchProfile(), meetingIntent(30, 1, false))

	require.Len(t, offers, 1)
	assert.InDelta(t, 450, offers[0].TotalPrice, 0.001)
}

func TestFindOffers_MeetingMultiDay(t *testing.T) {
	offers := FindOffers(matchProfile(), meetingIntent(10, 2, true))

	require.Len(t, offers, 2)

	assert.Equal(t, "Boardroom Linden", offers[0].Room.Name)
	assert.InDelta(t, 500, offers[0].PricePerUnit, 0.001)
	assert.InDelta(t, 1000, offers[0].TotalPrice, 0.001)

	assert.Equal(t, "Carina Cörbchen", offers[1].Room.Name)
	assert.InDelta(t, 800, offers[1].PricePerUnit, 0.001)
	assert.InDelta(t, 1600, offers[1].TotalPrice, 0.001)
}

func TestFindOffers_TieBreakByName(t *testing.T) {
	profile := &catalog.Profile{
		Rooms: []catalog.Room{
			{Name: "Beta", Category: catalog.CategoryHotelRoom, BasePrice: 100, MaxCapacity: 2, AvailableCount: 1},
			{Name: "Alpha", Category: catalog.CategoryHotelRoom, BasePrice: 100, MaxCapacity: 2, AvailableCount: 1},
		},
	}

	offers := FindOffers(profile, hotelIntent(1, 1))

	require.Len(t, offers, 2)
	assert.Equal(t, "Alpha", offers[0].Room.Name)
	assert.Equal(t, "Beta", offers[1].Room.Name)
}

func TestFindOffers_NoMatchesIsEmptyNotNil(t *testing.T) {
	offers := FindOffers(matchProfile(), hotelIntent(200, 1))

	assert.NotNil(t, offers)
	assert.Empty(t, offers)
}
