package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExtractor() *Extractor {
	return NewExtractor(func() time.Time {
		return time.Date(2026, time.March, 1, 10, 30, 0, 0, time.UTC)
	})
}

func TestExtract_HotelRoomRequest(t *testing.T) {
	intent, err := testExtractor().Extract("I need a hotel room for 2 people from December 10th to December 12th")
	require.NoError(t, err)

	assert.Equal(t, RoomTypeHotel, intent.RoomType)
	assert.Equal(t, "2026-12-10", intent.CheckIn.Format(isoDateFormat))
	assert.Equal(t, "2026-12-12", intent.CheckOut.Format(isoDateFormat))
	assert.Equal(t, 2, intent.Guests)
	assert.False(t, intent.IncludeCatering)
	assert.Equal(t, 2, intent.Units())
}

func TestExtract_MeetingRoomWithCatering(t *testing.T) {
	intent, err := testExtractor().Extract("Do you have a conference room for 30 people on January 15th with catering?")
	require.NoError(t, err)

	assert.Equal(t, RoomTypeMeeting, intent.RoomType)
	assert.Equal(t, 30, intent.Guests)
	assert.True(t, intent.IncludeCatering)
	assert.Equal(t, 1, intent.Units())
	assert.Equal(t, intent.CheckIn.AddDate(0, 0, 1), intent.CheckOut)
}

func TestExtract_CollectsAllFailures(t *testing.T) {
	_, err := testExtractor().Extract("I want a room")

	extErr := IsExtractionError(err)
	require.NotNil(t, extErr)

	assert.Equal(t, []string{CodeMissingOrInvalidDates, CodeMissingGuestCount}, extErr.Codes())
	assert.Equal(t, string(RoomTypeHotel), extErr.Detected()["room_type"])
}

func TestExtract_EmptyRequest(t *testing.T) {
	_, err := testExtractor().Extract("")

	extErr := IsExtractionError(err)
	require.NotNil(t, extErr)

	assert.Equal(t,
		[]string{CodeMissingRoomType, CodeMissingOrInvalidDates, CodeMissingGuestCount},
		extErr.Codes(),
	)
}

func TestExtract_AmbiguousRoomType(t *testing.T) {
	_, err := testExtractor().Extract("I need a hotel room or a conference room for 4 people next Monday")

	extErr := IsExtractionError(err)
	require.NotNil(t, extErr)

	assert.Equal(t, []string{CodeAmbiguousRoomType}, extErr.Codes())
	assert.Equal(t, 4, extErr.Detected()["guests"])
}

func TestExtract_InvalidDateRange(t *testing.T) {
	_, err := testExtractor().Extract("a hotel room for 2 people from January 7 to January 5")

	extErr := IsExtractionError(err)
	require.NotNil(t, extErr)

	assert.Equal(t, []string{CodeInvalidDateRange}, extErr.Codes())
}

func TestExtract_RoomTypeCues(t *testing.T) {
	tests := []struct {
		name string
		text string
		want RoomType
	}{
		{"accommodation", "accommodation for 2 people tomorrow", RoomTypeHotel},
		{"staying", "we are staying for 2 nights from June 1 to June 3, 2 people", RoomTypeHotel},
		{"bare room", "a room for 2 people tonight", RoomTypeHotel},
		{"meeting room", "a meeting room for 10 attendees tomorrow", RoomTypeMeeting},
		{"workshop", "space for a workshop, 12 participants, on May 4", RoomTypeMeeting},
		{"presentation room", "presentation room for 8 people next Friday", RoomTypeMeeting},
		{"meeting space", "a meeting space for six people tomorrow", RoomTypeMeeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, err := testExtractor().Extract(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.want, intent.RoomType)
		})
	}
}

func TestExtract_GuestIdioms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"wife and me", "a hotel room for my wife and me from December 10th to 12th", 2},
		{"me and my husband", "a room for me and my husband tonight", 2},
		{"single occupancy", "a hotel room, single occupancy, tomorrow", 1},
		{"just me", "a room for just me on June 5", 1},
		{"double occupancy", "double occupancy stay on June 5", 2},
		{"word number", "a hotel room for two people tonight", 2},
		{"attendees", "conference room for 30 attendees on January 15th", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, err := testExtractor().Extract(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.want, intent.Guests)
		})
	}
}

func TestExtract_Catering(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"with catering", "conference room for 20 people on May 4 with catering", true},
		{"including lunch", "meeting room for 10 people tomorrow including lunch", true},
		{"negated", "conference room for 20 people on May 4, no catering needed", false},
		{"without catering", "meeting room for 10 people tomorrow without catering", false},
		{"absent", "meeting room for 10 people tomorrow", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, err := testExtractor().Extract(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.want, intent.IncludeCatering)
		})
	}
}

func TestExtract_CateringIgnoredForHotelRooms(t *testing.T) {
	intent, err := testExtractor().Extract("hotel room for 2 people tonight with catering")
	require.NoError(t, err)

	assert.Equal(t, RoomTypeHotel, intent.RoomType)
	assert.False(t, intent.IncludeCatering)
}

func TestExtract_Idempotent(t *testing.T) {
	const text = "I need a hotel room for 2 people from December 10th to December 12th"

	first, err := testExtractor().Extract(text)
	require.NoError(t, err)

	second, err := testExtractor().Extract(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	intent, err := testExtractor().Extract("HOTEL ROOM FOR 2 PEOPLE FROM DECEMBER 10TH TO DECEMBER 12TH")
	require.NoError(t, err)

	assert.Equal(t, RoomTypeHotel, intent.RoomType)
	assert.Equal(t, 2, intent.Guests)
}

func TestExtract_KeepsOriginalRequest(t *testing.T) {
	const text = "A Hotel Room for 2 People tonight"

	intent, err := testExtractor().Extract(text)
	require.NoError(t, err)

	assert.Equal(t, text, intent.OriginalRequest)
}
