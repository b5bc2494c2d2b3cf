package booking

import (
	"time"

	"hotelconcierge/internal/catalog"
)

const isoDateFormat = "2006-01-02"

type RoomType string

const (
	RoomTypeHotel   RoomType = catalog.CategoryHotelRoom
	RoomTypeMeeting RoomType = catalog.CategoryMeetingRoom
)

func (t RoomType) label() string {
	if t == RoomTypeMeeting {
		return "meeting"
	}

	return "hotel"
}

func (t RoomType) unit() string {
	if t == RoomTypeMeeting {
		return "day"
	}

	return "night"
}

// Intent is a structured reading of one free-text booking request. CheckIn
// and CheckOut are midnight UTC dates.
type Intent struct {
	OriginalRequest string
	RoomType        RoomType
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	IncludeCatering bool
}

// Units is the stay length: nights for hotel rooms, days for meeting rooms.
func (i *Intent) Units() int {
	return int(i.CheckOut.Sub(i.CheckIn).Hours() / 24) //nolint:gomnd
}

// Offer is one matched room priced for the intent.
type Offer struct {
	Room         catalog.Room
	PricePerUnit float64
	TotalPrice   float64
	Units        int
}

type QuoteOption struct {
	RoomName       string   `json:"room_name"`
	RoomCategory   string   `json:"room_category"`
	SizeSqm        float64  `json:"size_sqm,omitempty"`
	MaxCapacity    int      `json:"max_capacity"`
	AvailableCount int      `json:"available_count"`
	PricePerNight  float64  `json:"price_per_night,omitempty"`
	PricePerDay    float64  `json:"price_per_day,omitempty"`
	TotalPrice     float64  `json:"total_price"`
	Nights         int      `json:"nights,omitempty"`
	Days           int      `json:"days,omitempty"`
	Features       []string `json:"features"`
	Notes          string   `json:"notes,omitempty"`
}

type Quote struct {
	OriginalRequest  string        `json:"original_request"`
	RoomType         RoomType      `json:"room_type"`
	CheckIn          string        `json:"check_in"`
	CheckOut         string        `json:"check_out"`
	Guests           int           `json:"guests"`
	IncludeCatering  bool          `json:"include_catering"`
	DurationNights   int           `json:"duration_nights,omitempty"`
	DurationDays     int           `json:"duration_days,omitempty"`
	AvailableOptions []QuoteOption `json:"available_options"`
	HotelName        string        `json:"hotel_name"`
	HotelAddress     string        `json:"hotel_address"`
	ContactEmail     string        `json:"contact_email"`
	ContactPhone     string        `json:"contact_phone"`
	Message          string        `json:"message"`
}
