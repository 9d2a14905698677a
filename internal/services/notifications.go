package services

import (
	"fmt"
	"strings"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/utils"
	"github.com/horizontrails/agency-backoffice/pkg/mailer"
	"github.com/horizontrails/agency-backoffice/pkg/validator"
)

// Notification events
const (
	EventBookingCreated = "booking.created"
	EventInquiryCreated = "inquiry.created"
)

// Submitter describes where a public submission came from
type Submitter struct {
	IP        string
	UserAgent string
}

func (s Submitter) lines() string {
	return fmt.Sprintf("Submitted from: %s\nDevice: %s\n", s.IP, utils.ParseUserAgent(s.UserAgent).Summary())
}

func bookingNotifications(b *models.Booking, pkg *models.Package, staffEmail string, from Submitter) []Notification {
	travelDate := b.TravelDate.Format("2 January 2006")

	customer := mailer.Message{
		To:      b.Email,
		Subject: "Booking received: " + pkg.Name,
		Body: fmt.Sprintf(
			"Dear %s,\n\nThank you for booking %s.\n\nTravel date: %s\nTravelers: %d\nTotal price: %.2f\nReference: %s\n\nOur team will confirm your booking shortly.\n",
			b.CustomerName, pkg.Name, travelDate, b.NumberOfTravelers, b.TotalPrice, b.ID,
		),
	}

	var body strings.Builder
	fmt.Fprintf(&body, "New booking %s\n\n", b.ID)
	fmt.Fprintf(&body, "Package: %s (%s)\n", pkg.Name, pkg.Destination)
	fmt.Fprintf(&body, "Customer: %s <%s>\n", b.CustomerName, b.Email)
	fmt.Fprintf(&body, "Phone: %s\n", validator.SanitizePhone(b.Phone))
	fmt.Fprintf(&body, "Travel date: %s\nTravelers: %d\nTotal price: %.2f\n", travelDate, b.NumberOfTravelers, b.TotalPrice)
	if b.SpecialRequests != nil {
		fmt.Fprintf(&body, "Special requests: %s\n", *b.SpecialRequests)
	}
	body.WriteString("\n" + from.lines())

	staff := mailer.Message{
		To:      staffEmail,
		ReplyTo: b.Email,
		Subject: fmt.Sprintf("New booking: %s for %s", pkg.Name, b.CustomerName),
		Body:    body.String(),
	}

	return []Notification{
		{Task: TaskCustomerAck, Message: customer},
		{Task: TaskStaffAlert, Message: staff},
	}
}

func inquiryNotifications(i *models.Inquiry, pkg *models.Package, staffEmail string, from Submitter) []Notification {
	subject := "We received your message"
	about := "your message"
	if pkg != nil {
		subject = "Inquiry received: " + pkg.Name
		about = "your inquiry about " + pkg.Name
	}

	customer := mailer.Message{
		To:      i.Email,
		Subject: subject,
		Body:    fmt.Sprintf("Dear %s,\n\nThank you for %s. We will get back to you soon.\n", i.Name, about),
	}

	var body strings.Builder
	if i.IsContactMessage() {
		fmt.Fprintf(&body, "New contact message %s\n\n", i.ID)
	} else {
		fmt.Fprintf(&body, "New inquiry %s\n\n", i.ID)
	}
	if pkg != nil {
		fmt.Fprintf(&body, "Package: %s (%s)\n", pkg.Name, pkg.Destination)
	}
	fmt.Fprintf(&body, "From: %s <%s>\n", i.Name, i.Email)
	if i.Phone != nil {
		fmt.Fprintf(&body, "Phone: %s\n", validator.SanitizePhone(*i.Phone))
	}
	fmt.Fprintf(&body, "\n%s\n\n", i.Message)
	body.WriteString(from.lines())

	staffSubject := "New contact message from " + i.Name
	if pkg != nil {
		staffSubject = fmt.Sprintf("New inquiry: %s from %s", pkg.Name, i.Name)
	}

	staff := mailer.Message{
		To:      staffEmail,
		ReplyTo: i.Email,
		Subject: staffSubject,
		Body:    body.String(),
	}

	return []Notification{
		{Task: TaskCustomerAck, Message: customer},
		{Task: TaskStaffAlert, Message: staff},
	}
}
