package leagues

import (
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/timeutil"
)

// League is a named competition with an optional date window and its enrolled players.
type League struct {
	ID        domain.ID        `json:"id"`
	Name      string           `json:"name"`
	StartDate *timeutil.Date   `json:"startDate"`
	EndDate   *timeutil.Date   `json:"endDate"`
	Players   []players.Player `json:"players"`
}

// Validate checks that the league window is not inverted.
func (l League) Validate() error {
	return validateWindow(l.StartDate, l.EndDate)
}

// IDs returns the league ids in order.
func IDs(ls []League) []domain.ID {
	ids := make([]domain.ID, 0, len(ls))
	for _, l := range ls {
		ids = append(ids, l.ID)
	}
	return ids
}

// CreateRequest is the payload for creating a league. Dates are ISO strings as sent by the console.
type CreateRequest struct {
	Name      string      `json:"name" validate:"required,max=120"`
	StartDate string      `json:"startDate" validate:"required"`
	EndDate   string      `json:"endDate" validate:"required"`
	PlayerIDs []domain.ID `json:"playerIds" validate:"required,min=1,dive,required"`
}

// Dates parses and checks the request's date window.
func (r CreateRequest) Dates() (start, end timeutil.Date, err error) {
	start, err = timeutil.ParseDateParts(r.StartDate)
	if err != nil {
		return start, end, domain.NewValidationError("startDate", err.Error())
	}
	end, err = timeutil.ParseDateParts(r.EndDate)
	if err != nil {
		return start, end, domain.NewValidationError("endDate", err.Error())
	}
	if err := validateWindow(&start, &end); err != nil {
		return start, end, err
	}
	return start, end, nil
}

func validateWindow(start, end *timeutil.Date) error {
	if start == nil || end == nil {
		return nil
	}
	if end.Before(*start) {
		return domain.NewValidationError("endDate", "must not be before startDate")
	}
	return nil
}
