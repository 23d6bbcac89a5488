package constvars

const (
	RedisKeyStagedBookingPrefix = "booking:order:"
	RedisKeySessionPrefix       = "session:"
)
