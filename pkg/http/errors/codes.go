package errors

// Messages for standardized error envelopes. The API contract fixes the
// exact strings; clients match on them.
const (
	MsgNotFound         = "Not Found"
	MsgBadRequest       = "Bad Request"
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgInternalError    = "Internal Server Error"
)
