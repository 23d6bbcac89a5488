package constvars

const (
	RegexEmail            = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateYYYYMMDD     = `^\d{4}-\d{2}-\d{2}$`
	RegexPhoneNumberE164  = `^\+[1-9]\d{9,14}$`
)
