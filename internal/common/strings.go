package common

// UnknownStr is the display name for an unrecognized enum value.
const UnknownStr = "unknown"
