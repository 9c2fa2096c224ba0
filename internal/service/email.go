package service

import (
	"context"
	"fmt"

	"atlasrent-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendBookingConfirmation(ctx context.Context, to, name string, r *domain.Reservation) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received your booking for the %s %s from %s to %s (%d days",
		name, r.CarMake, r.CarModel, r.StartDate, r.EndDate, r.RentalDays)
	if r.FreeDays > 0 && r.ReturnDate != nil {
		body += fmt.Sprintf(", plus %d free days, return by %s", r.FreeDays, *r.ReturnDate)
	}
	body += fmt.Sprintf(").\n\nPickup: %s\nTotal: %d MAD\n\nWe will confirm your reservation shortly.\n\nAtlasRent",
		r.PickupLocation, r.TotalPrice)

	return s.send(to, name, "Your AtlasRent booking request", body)
}

func (s *sendGridEmailService) SendStatusUpdate(ctx context.Context, to, name string, r *domain.Reservation) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking for the %s %s (%s to %s) is now %s.\n\nAtlasRent",
		name, r.CarMake, r.CarModel, r.StartDate, r.EndDate, r.Status)
	subject := fmt.Sprintf("Booking %s", r.Status)
	return s.send(to, name, subject, body)
}
