package contracts

import (
	"context"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByOrderID(ctx context.Context, orderID string) (*models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	Delete(ctx context.Context, appointmentID string) error
}

type AppointmentUsecase interface {
	BookDirect(ctx context.Context, sessionData string, request *requests.BookDirectRequest) (*responses.Appointment, error)
	FindAll(ctx context.Context, sessionData string) ([]responses.Appointment, error)
	CancelAppointment(ctx context.Context, sessionData, appointmentID string) error
}
