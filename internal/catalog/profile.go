package catalog

// Room categories a guest can request.
const (
	CategoryHotelRoom   = "hotel_room"
	CategoryMeetingRoom = "meeting_room"
)

// Profile is the full dataset of one hotel, loaded from a single JSON file.
// The booking engine works on Rooms; the retrieval engine chunks the rest.
type Profile struct {
	Hotel     Hotel     `json:"hotel"`
	Parking   Parking   `json:"parking"`
	Transport Transport `json:"transport"`
	Bar       Bar       `json:"bar"`
	Wellness  Wellness  `json:"wellness"`
	Events    Events    `json:"events"`
	Amenities []string  `json:"free_amenities"`
	Rooms     []Room    `json:"rooms"`
}

type Hotel struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Address     string `json:"address"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Region      string `json:"region"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
}

type Parking struct {
	Spaces              int     `json:"spaces"`
	FeePerDay           float64 `json:"fee_per_day"`
	HeightLimitM        float64 `json:"height_limit_m"`
	ReservationPossible bool    `json:"reservation_possible"`
}

type Transport struct {
	AirportKm        float64 `json:"airport_km"`
	AirportMin       int     `json:"airport_min"`
	PublicTransport  string  `json:"public_transport"`
	SBahnLine        string  `json:"sbahn_line"`
	CityCenterMin    int     `json:"city_center_min"`
	MesseKm          float64 `json:"messe_km"`
	MesseCarMin      int     `json:"messe_car_min"`
	BusLineToMesse   string  `json:"bus_line_to_messe"`
	MessePublicMin   int     `json:"messe_public_min"`
	MotorwayAccess   string  `json:"motorway_access"`
}

type Bar struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	OpeningHours string `json:"opening_hours"`
	CashlessOnly bool   `json:"cashless_only"`
}

type Wellness struct {
	FitnessAvailable bool     `json:"fitness_available"`
	FitnessHours     string   `json:"fitness_hours"`
	Equipment        []string `json:"equipment"`
	SaunaAvailable   bool     `json:"sauna_available"`
	SaunaHours       string   `json:"sauna_hours"`
	Description      string   `json:"description"`
}

type Events struct {
	TeamAvailable      bool   `json:"team_available"`
	TechnicalEquipment string `json:"technical_equipment"`
}

// Room is one bookable unit. BasePrice is per night for hotel rooms and per
// day for meeting rooms. ExtraGuestPrice applies to hotel rooms only,
// CateringPricePerPerson to meeting rooms only.
type Room struct {
	Name                   string   `json:"name"`
	Category               string   `json:"category"`
	BasePrice              float64  `json:"base_price"`
	ExtraGuestPrice        float64  `json:"extra_guest_price,omitempty"`
	CateringPricePerPerson float64  `json:"catering_price_per_person,omitempty"`
	MaxCapacity            int      `json:"max_capacity"`
	AvailableCount         int      `json:"available_count"`
	SizeSqm                float64  `json:"size_sqm,omitempty"`
	Features               []string `json:"features,omitempty"`
	Notes                  string   `json:"notes,omitempty"`
}

func (p *Profile) RoomsByCategory(category string) []Room {
	var rooms []Room

	for _, room := range p.Rooms {
		if room.Category == category {
			rooms = append(rooms, room)
		}
	}

	return rooms
}
