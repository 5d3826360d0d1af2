package optimizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	"time"
)

var (
	// ErrUnknownAction is returned when an action type has no matching Action
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidPayload is returned when an action payload cannot be read
	ErrInvalidPayload = errors.New("invalid action payload")
)

// ActionMessage is the JSON form of an Action, {"type": "SET_DAYS", "payload": "10"}
type ActionMessage struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Action returns the Action described by the message
func (m ActionMessage) Action() (Action, error) {
	return DecodeAction(m.Type, m.Payload)
}

type fieldMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DecodeAction builds the Action named by actionType from its JSON payload
func DecodeAction(actionType ActionType, payload json.RawMessage) (Action, error) {
	switch actionType {
	case SetDaysType:
		var days string
		err := decodePayload(actionType, payload, &days)
		return SetDays{Days: days}, err
	case LoadDaysType:
		var days string
		err := decodePayload(actionType, payload, &days)
		return LoadDays{Days: days}, err
	case SetStrategyType:
		strategy, err := decodeStrategy(actionType, payload)
		return SetStrategy{Strategy: strategy}, err
	case LoadStrategyType:
		strategy, err := decodeStrategy(actionType, payload)
		return LoadStrategy{Strategy: strategy}, err
	case SetSaturdayWorkingDayType:
		var working bool
		err := decodePayload(actionType, payload, &working)
		return SetSaturdayWorkingDay{Working: working}, err
	case LoadSaturdayWorkingDayType:
		var working bool
		err := decodePayload(actionType, payload, &working)
		return LoadSaturdayWorkingDay{Working: working}, err
	case SetCompanyDaysType:
		var days []CompanyDayOff
		err := decodePayload(actionType, payload, &days)
		return SetCompanyDays{Days: days}, err
	case AddCompanyDayType:
		var day CompanyDayOff
		err := decodePayload(actionType, payload, &day)
		return AddCompanyDay{Day: day}, err
	case RemoveCompanyDayType:
		var date string
		err := decodePayload(actionType, payload, &date)
		return RemoveCompanyDay{Date: date}, err
	case SetErrorType:
		var fm fieldMessage
		err := decodePayload(actionType, payload, &fm)
		return SetError{Field: fm.Field, Message: fm.Message}, err
	case ClearErrorsType:
		return ClearErrors{}, nil
	case AddHolidayType:
		var holiday Holiday
		err := decodePayload(actionType, payload, &holiday)
		return AddHoliday{Holiday: holiday}, err
	case RemoveHolidayType:
		var date string
		err := decodePayload(actionType, payload, &date)
		return RemoveHoliday{Date: date}, err
	case ToggleDateType:
		var text string
		if err := decodePayload(actionType, payload, &text); err != nil {
			return nil, err
		}
		at, err := parseToggleDate(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidPayload, actionType, err)
		}
		return ToggleDate{Date: at}, nil
	case ClearHolidaysType:
		return ClearHolidays{}, nil
	case ClearCompanyDaysType:
		return ClearCompanyDays{}, nil
	case SetDetectedHolidaysType:
		list, err := decodeHolidays(actionType, payload)
		return SetDetectedHolidays{Holidays: list}, err
	case SetHolidaysType:
		list, err := decodeHolidays(actionType, payload)
		return SetHolidays{Holidays: list}, err
	case SetSelectedYearType:
		var year int
		err := decodePayload(actionType, payload, &year)
		return SetSelectedYear{Year: year}, err
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, actionType)
}

func decodePayload(actionType ActionType, payload json.RawMessage, value interface{}) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: %s requires a payload", ErrInvalidPayload, actionType)
	}
	if err := json.Unmarshal(payload, value); err != nil {
		return fmt.Errorf("%w: %s %s", ErrInvalidPayload, actionType, err)
	}
	return nil
}

func decodeStrategy(actionType ActionType, payload json.RawMessage) (preferences.Strategy, error) {
	var name string
	if err := decodePayload(actionType, payload, &name); err != nil {
		return "", err
	}
	strategy, ok := preferences.ParseStrategy(name)
	if !ok {
		return "", fmt.Errorf("%w: %s unknown strategy %q", ErrInvalidPayload, actionType, name)
	}
	return strategy, nil
}

func decodeHolidays(actionType ActionType, payload json.RawMessage) ([]Holiday, error) {
	list := make([]Holiday, 0)
	if err := decodePayload(actionType, payload, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// parseToggleDate accepts a yyyy-MM-dd date or an RFC 3339 timestamp, the day is taken in the timestamp's own offset
func parseToggleDate(text string) (time.Time, error) {
	if at, err := time.Parse(DateLayout, text); err == nil {
		return at, nil
	}
	return time.Parse(time.RFC3339, text)
}
