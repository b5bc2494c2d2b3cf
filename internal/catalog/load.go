package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Load reads and validates the hotel profile file. Any validation failure is
// returned wrapped in ErrInvalidProfile; callers treat that as fatal because
// serving quotes from a broken catalog is worse than not starting.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hotel data file %v: %w", path, err)
	}

	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, fmt.Errorf("hotel data file %v is empty: %w", path, ErrInvalidProfile)
	}

	var profile Profile

	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("parse hotel data file %v: %w", path, err)
	}

	if err := profile.validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (p *Profile) validate() error {
	if p.Hotel.Name == "" {
		return fmt.Errorf("hotel.name is required: %w", ErrInvalidProfile)
	}

	if p.Hotel.Email == "" {
		return fmt.Errorf("hotel.email is required: %w", ErrInvalidProfile)
	}

	if p.Hotel.Phone == "" {
		return fmt.Errorf("hotel.phone is required: %w", ErrInvalidProfile)
	}

	if len(p.Rooms) == 0 {
		return fmt.Errorf("at least one room is required: %w", ErrInvalidProfile)
	}

	seen := make(map[string]struct{}, len(p.Rooms))

	for _, room := range p.Rooms {
		if room.Name == "" {
			return fmt.Errorf("room name must not be empty: %w", ErrInvalidProfile)
		}

		if _, ok := seen[room.Name]; ok {
			return fmt.Errorf("room %q: duplicate name: %w", room.Name, ErrInvalidProfile)
		}

		seen[room.Name] = struct{}{}

		switch room.Category {
		case CategoryHotelRoom:
			if room.CateringPricePerPerson != 0 {
				return fmt.Errorf("room %q: catering_price_per_person is only valid for meeting rooms: %w", room.Name, ErrInvalidProfile)
			}
		case CategoryMeetingRoom:
			if room.ExtraGuestPrice != 0 {
				return fmt.Errorf("room %q: extra_guest_price is only valid for hotel rooms: %w", room.Name, ErrInvalidProfile)
			}
		default:
			return fmt.Errorf("room %q: unknown category %q: %w", room.Name, room.Category, ErrInvalidProfile)
		}

		if room.BasePrice <= 0 {
			return fmt.Errorf("room %q: base_price must be positive: %w", room.Name, ErrInvalidProfile)
		}

		if room.ExtraGuestPrice < 0 {
			return fmt.Errorf("room %q: extra_guest_price must not be negative: %w", room.Name, ErrInvalidProfile)
		}

		if room.CateringPricePerPerson < 0 {
			return fmt.Errorf("room %q: catering_price_per_person must not be negative: %w", room.Name, ErrInvalidProfile)
		}

		if room.MaxCapacity <= 0 {
			return fmt.Errorf("room %q: max_capacity must be positive: %w", room.Name, ErrInvalidProfile)
		}

		if room.AvailableCount < 0 {
			return fmt.Errorf("room %q: available_count must not be negative: %w", room.Name, ErrInvalidProfile)
		}
	}

	return nil
}
