package notifications

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

const confirmationTimeFormat = "Monday, January 2, 2006 03:04 PM"
const adminTimeFormat = "Jan 2, 03:04 PM"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
    .container { max-width: 600px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; }
    h1 { color: #2563eb; }
    .details { background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #6b7280; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Booking Confirmed!</h1>
    <p>Hi {{.CustomerName}},</p>
    <p>Your appointment at Chaxx Barbershop has been confirmed!</p>
    <div class="details">
      <p><strong>Date &amp; Time:</strong> {{.FormattedTime}}</p>
      <p><strong>Phone:</strong> {{.PhoneNumber}}</p>
      <p><strong>Payment Status:</strong> {{.PaymentStatus}}</p>
      <p><strong>Booking ID:</strong> #{{.ID}}</p>
    </div>
    <p>We look forward to seeing you!</p>
    <div class="footer">
      <p><strong>Chaxx Barbershop</strong></p>
      <p>5649 Prefontaine Avenue, Regina SK</p>
      <p>+1 (306) 216-7657, +1 (306) 550-6583</p>
    </div>
  </div>
</body>
</html>
`))

var adminTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
    .container { max-width: 900px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; }
    h1 { color: #2563eb; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    th { background: #2563eb; color: white; padding: 12px; text-align: left; }
    td { padding: 12px; border-bottom: 1px solid #e5e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <h1>New Booking Alert</h1>
    <p>{{.Intro}}</p>
    <table>
      <thead>
        <tr>
          <th>Customer</th>
          <th>Phone</th>
          <th>Email</th>
          <th>Time</th>
          <th>Payment</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}<tr>
          <td><strong>{{.CustomerName}}</strong></td>
          <td>{{.PhoneNumber}}</td>
          <td>{{.Email}}</td>
          <td>{{.FormattedTime}}</td>
          <td>{{.PaymentStatus}}</td>
        </tr>{{end}}
      </tbody>
    </table>
    <p style="color: #6b7280; margin-top: 30px;">Chaxx Barbershop Booking System</p>
  </div>
</body>
</html>
`))

type confirmationData struct {
	ID            int64
	CustomerName  string
	PhoneNumber   string
	PaymentStatus domain.PaymentStatus
	FormattedTime string
}

type adminRow struct {
	CustomerName  string
	PhoneNumber   string
	Email         string
	FormattedTime string
	PaymentStatus domain.PaymentStatus
}

type adminData struct {
	Intro string
	Rows  []adminRow
}

func renderConfirmation(b *domain.Booking) (string, error) {
	var sb strings.Builder
	err := confirmationTmpl.Execute(&sb, confirmationData{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		PhoneNumber:   b.PhoneNumber,
		PaymentStatus: b.PaymentStatus,
		FormattedTime: b.AppointmentTime.Format(confirmationTimeFormat),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderAdminSummary(bookings []*domain.Booking) (subject string, html string, err error) {
	data := adminData{
		Intro: "A new appointment has been booked",
		Rows:  make([]adminRow, 0, len(bookings)),
	}

	subject = "New Booking - Chaxx Barbershop"
	if len(bookings) > 1 {
		subject = fmt.Sprintf("New Bulk Booking: %d Appointments", len(bookings))
		data.Intro = fmt.Sprintf("%d new appointments received", len(bookings))
	}

	for _, b := range bookings {
		email := "N/A"
		if b.HasEmail() {
			email = *b.Email
		}
		data.Rows = append(data.Rows, adminRow{
			CustomerName:  b.CustomerName,
			PhoneNumber:   b.PhoneNumber,
			Email:         email,
			FormattedTime: b.AppointmentTime.Format(adminTimeFormat),
			PaymentStatus: b.PaymentStatus,
		})
	}

	var sb strings.Builder
	if err := adminTmpl.Execute(&sb, data); err != nil {
		return "", "", err
	}
	return subject, sb.String(), nil
}
