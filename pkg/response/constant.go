package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when the real cause must stay internal.
	DefaultErrorMessage = "Something went wrong, please try again"

	// InternalServerErrorCode is the error code for unclassified failures.
	InternalServerErrorCode = 500
)
