package contracts

// DateLayout is the wire format for calendar dates in requests and query
// strings. Responses serialize time.Time values as RFC 3339.
const DateLayout = "2006-01-02"

// MonthLayout is the wire format for calendar months.
const MonthLayout = "2006-01"

type MessageResponse struct {
	Message string `json:"message"`
}
