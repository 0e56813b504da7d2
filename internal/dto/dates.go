package dto

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/justinsenglish/crave.api/internal/model"
)

const dateLayout = "2006-01-02"

type DateRangeParams struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange reads startDate/endDate calendar dates from the query
// string. Validation happens here, before any vendor call.
func ParseDateRange(c *gin.Context) (DateRangeParams, error) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if startDate == "" || endDate == "" {
		return DateRangeParams{}, fmt.Errorf("%w: startDate and endDate are required", model.ErrInvalidDateRange)
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return DateRangeParams{}, fmt.Errorf("%w: startDate %q", model.ErrInvalidDateRange, startDate)
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return DateRangeParams{}, fmt.Errorf("%w: endDate %q", model.ErrInvalidDateRange, endDate)
	}

	if end.Before(start) {
		return DateRangeParams{}, fmt.Errorf("%w: endDate precedes startDate", model.ErrInvalidDateRange)
	}

	return DateRangeParams{Start: start, End: end}, nil
}
