package constvars

const (
	MongoCollectionSchedules    = "schedules"
	MongoCollectionAppointments = "appointments"
)

const (
	MongoIndexAppointmentOrderID = "appointment_order_id_unique"
)
