package booking

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const countPattern = `\d{1,4}|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve`

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

func parseCount(raw string) int {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}

	return wordNumbers[raw]
}

func atoi(raw string) int {
	n, _ := strconv.Atoi(raw)

	return n
}

// Meeting cues win over the bare words "room"/"rooms", so that "conference
// room" does not read as a hotel room request.
var meetingCues = []string{
	"meeting room",
	"conference room",
	"presentation room",
	"meeting space",
	"conference",
	"workshop",
}

var (
	stayRe     = regexp.MustCompile(`\bstay(?:s|ing)?\b`)
	bareRoomRe = regexp.MustCompile(`\brooms?\b`)

	guestCountRe = regexp.MustCompile(`\b(` + countPattern + `)\s+(?:people|persons?|guests?|attendees?|participants?|adults?|pax)\b`)
	pairIdiomRe  = regexp.MustCompile(`\b(?:my (?:wife|husband|partner) and (?:me|i)|me and my (?:wife|husband|partner)|double occupancy)\b`)
	soloIdiomRe  = regexp.MustCompile(`\b(?:single occupancy|just (?:me|myself)|by myself|on my own)\b`)
)

var (
	cateringNegations = []string{"no catering", "without catering", "no lunch", "without lunch"}
	cateringPositives = []string{"catering", "including lunch", "with lunch", "lunch included"}
)

func detectRoomType(text string) (RoomType, string) {
	meeting := false

	for _, cue := range meetingCues {
		if strings.Contains(text, cue) {
			meeting = true

			break
		}
	}

	hotel := strings.Contains(text, "hotel room") ||
		strings.Contains(text, "accommodation") ||
		stayRe.MatchString(text)

	if !meeting && bareRoomRe.MatchString(text) {
		hotel = true
	}

	switch {
	case meeting && hotel:
		return "", CodeAmbiguousRoomType
	case meeting:
		return RoomTypeMeeting, ""
	case hotel:
		return RoomTypeHotel, ""
	default:
		return "", CodeMissingRoomType
	}
}

func detectGuests(text string) (int, bool) {
	if m := guestCountRe.FindStringSubmatch(text); m != nil {
		if n := parseCount(m[1]); n > 0 {
			return n, true
		}
	}

	if pairIdiomRe.MatchString(text) {
		return 2, true
	}

	if soloIdiomRe.MatchString(text) {
		return 1, true
	}

	return 0, false
}

func detectCatering(text string) bool {
	for _, negation := range cateringNegations {
		if strings.Contains(text, negation) {
			return false
		}
	}

	for _, positive := range cateringPositives {
		if strings.Contains(text, positive) {
			return true
		}
	}

	return false
}

// Extractor turns free-text booking requests into Intents. The clock is
// injected so that requests without a year ("December 10th to 12th") resolve
// the same way in tests as in production.
type Extractor struct {
	now func() time.Time
}

func NewExtractor(now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}

	return &Extractor{now: now}
}

// Extract reads every intent field independently and reports all failures at
// once. The same text with the same clock always yields the same result.
func (e *Extractor) Extract(requestText string) (*Intent, error) {
	text := strings.ToLower(requestText)

	now := e.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	extErr := newExtractionError()

	roomType, failCode := detectRoomType(text)

	switch failCode {
	case CodeAmbiguousRoomType:
		extErr.addIssue("room_type", failCode, "request mentions both hotel and meeting rooms, ask for one")
	case CodeMissingRoomType:
		extErr.addIssue("room_type", failCode, "say whether a hotel room or a meeting room is needed")
	default:
		extErr.addDetected("room_type", string(roomType))
	}

	dates, err := parseDates(text, today)

	switch {
	case errors.Is(err, errReversedRange):
		extErr.addIssue("dates", CodeInvalidDateRange, "check-out must be after check-in")
	case err != nil:
		extErr.addIssue("dates", CodeMissingOrInvalidDates, "give check-in and check-out dates, like 'from December 10th to December 12th'")
	default:
		extErr.addDetected("check_in", dates.from.Format(isoDateFormat))
		extErr.addDetected("check_out", dates.to.Format(isoDateFormat))
	}

	guests, ok := detectGuests(text)
	if !ok {
		extErr.addIssue("guests", CodeMissingGuestCount, "say how many guests, like 'for 2 people'")
	} else {
		extErr.addDetected("guests", guests)
	}

	catering := false
	if roomType == RoomTypeMeeting {
		catering = detectCatering(text)
	}

	if extErr.issueCount() > 0 {
		return nil, extErr
	}

	return &Intent{
		OriginalRequest: requestText,
		RoomType:        roomType,
		CheckIn:         dates.from,
		CheckOut:        dates.to,
		Guests:          guests,
		IncludeCatering: catering,
	}, nil
}
