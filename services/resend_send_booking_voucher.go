package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

// BookingVoucherPDFEmailData holds data for booking voucher PDF email
type BookingVoucherPDFEmailData struct {
	TravelerName      string
	TravelerEmail     string
	BookingNumber     string
	BookingDate       string
	TourName          string
	TourDate          string
	GroupSize         int
	AccommodationType string
	Participants      []VoucherParticipant
	BasePrice         float64
	Multiplier        float64
	GroupDiscount     float64
	TotalAmount       float64
	Currency          string
	PDFContent        []byte
}

// VoucherParticipant represents a traveler listed on a voucher
type VoucherParticipant struct {
	Name string
	Age  int
}

// SendBookingVoucherPDFEmail sends a booking voucher with HTML preview + PDF attachment via Resend
func (r *ResendClient) SendBookingVoucherPDFEmail(data BookingVoucherPDFEmailData) error {
	// Build participant HTML rows
	var participantRows strings.Builder
	for i, p := range data.Participants {
		participantRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #79776d;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
      </tr>
    `, i+1, p.Name, p.Age))
	}

	// Discount row
	discountRow := ""
	if data.GroupDiscount > 0 && data.GroupDiscount < 1 {
		discountRow = fmt.Sprintf(`
    <tr>
      <td style="padding: 6px 0; font-size: 14px; color: #79776d;">Group discount</td>
      <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">-%.0f%%</td>
    </tr>
    `, (1-data.GroupDiscount)*100)
	}

	// Build full HTML with inline styles
	var html strings.Builder
	html.WriteString(fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Booking Voucher - %s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5; padding: 16px;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 900px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 30px; font-weight: bold; color: #262622;">BOOKING VOUCHER</h1>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <h2 style="margin: 0; font-size: 24px; font-weight: bold; color: #262622;">PHOENIX TOURS</h2>
        <p style="margin: 4px 0; font-size: 14px; color: #79776d;">bookings@phoenixtours.et</p>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="vertical-align: top;">
              <p style="margin: 0; font-size: 14px; font-weight: bold; color: #262622;">Booked By</p>
              <p style="margin: 4px 0; font-size: 14px; color: #262622;">%s</p>
              <p style="margin: 4px 0; font-size: 14px; color: #79776d;">%s</p>
            </td>
            <td style="text-align: right; vertical-align: top;">
              <p style="margin: 0; font-size: 14px; color: #79776d;">Booking Number</p>
              <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
              <p style="margin: 8px 0 0 0; font-size: 14px; color: #79776d;">Booking Date</p>
              <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
              <p style="margin: 8px 0 0 0; font-size: 14px; color: #79776d;">Departure Date</p>
              <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="margin: 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
        <p style="margin: 4px 0; font-size: 14px; color: #79776d;">%d traveler(s) &middot; %s accommodation</p>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0; border-bottom: 1px solid #e5e5e0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <thead>
            <tr>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">#</th>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Traveler</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Age</th>
            </tr>
          </thead>
          <tbody>
            %s
          </tbody>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table align="right" width="300" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="font-size: 14px; color: #79776d;">Price per person</td>
            <td style="text-align: right; font-size: 14px; color: #262622;">%s %.2f</td>
          </tr>
          <tr>
            <td style="font-size: 14px; color: #79776d;">Accommodation</td>
            <td style="text-align: right; font-size: 14px; color: #262622;">&times;%.2f</td>
          </tr>
          %s
          <tr>
            <td style="font-size: 14px; font-weight: bold; border-top: 1px solid #e5e5e0; padding-top: 8px;">Total</td>
            <td style="text-align: right; font-size: 16px; font-weight: bold; color: #262622; border-top: 1px solid #e5e5e0; padding-top: 8px;">%s %.2f</td>
          </tr>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="font-size: 14px; font-weight: bold; color: #262622;">We look forward to traveling with you!</p>
        <p style="font-size: 14px; color: #79776d;">© 2026 Phoenix Tours. All rights reserved.</p>
      </td>
    </tr>

  </table>
</body>
</html>
`, data.BookingNumber,
		data.TravelerName, data.TravelerEmail,
		data.BookingNumber, data.BookingDate, data.TourDate,
		data.TourName, data.GroupSize, data.AccommodationType,
		participantRows.String(),
		data.Currency, data.BasePrice, data.Multiplier,
		discountRow,
		data.Currency, data.TotalAmount,
	))

	htmlBody := html.String()

	// Encode PDF to base64
	pdfBase64 := base64.StdEncoding.EncodeToString(data.PDFContent)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.TravelerEmail,
		"subject": fmt.Sprintf("Your Booking Voucher #%s from Phoenix Tours", data.BookingNumber),
		"html":    htmlBody,
		"attachments": []map[string]interface{}{
			{
				"filename": fmt.Sprintf("voucher-%s.pdf", data.BookingNumber),
				"content":  pdfBase64,
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] booking voucher email sent to %s for booking %s", data.TravelerEmail, data.BookingNumber)
	return nil
}
