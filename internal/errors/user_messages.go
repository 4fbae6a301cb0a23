package errors

// User-friendly error messages
const (
	MsgUnrecognizedPayload = "The submission body could not be read as a set of form fields. Please check the webhook configuration."
	MsgListingNotFound     = "Listing not found. Please try a different id."
	MsgStorageFailure      = "We're unable to store or retrieve listings right now. Please try again in a few minutes."
	MsgUnauthorized        = "You are not authorized to access this resource."
	MsgRateLimited         = "You're sending requests too quickly! Please wait a moment and try again."
	MsgInvalidParameters   = "The provided parameters are invalid. Please check your input and try again."
	MsgInternalError       = "Something went wrong on our end. Please try again later."
)
