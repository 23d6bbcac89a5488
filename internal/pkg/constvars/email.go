package constvars

const (
	EmailAppointmentConfirmedSubject = "[CLINICBOOK] Appointment Confirmed"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailBodyAppointmentConfirmed    = "Your appointment on %s has been confirmed. Join the consultation room with the link in your dashboard."
)
