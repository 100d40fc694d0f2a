package mail

import (
	"bytes"
	"html/template"
	"log"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body {
      font-family: Arial, sans-serif;
      line-height: 1.6;
      color: #333333;
      max-width: 600px;
      margin: 0 auto;
    }
    .container {
      padding: 20px;
      border: 1px solid #e1e1e1;
      border-radius: 5px;
      background-color: #f9f9f9;
    }
    .header {
      background-color: #343a40;
      color: white;
      padding: 15px;
      text-align: center;
      border-radius: 5px 5px 0 0;
    }
    .content {
      background-color: white;
      padding: 20px;
      border-radius: 0 0 5px 5px;
    }
    .appointment-details {
      margin: 20px 0;
      border-left: 3px solid #343a40;
      padding-left: 15px;
    }
    .footer {
      text-align: center;
      margin-top: 20px;
      font-size: 0.9em;
      color: #666;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>Appointment confirmed</h2>
    </div>
    <div class="content">
      <p>Hello {{.FirstName}} {{.LastName}},</p>

      <p>Thank you for booking with {{.ShopName}}. Here are your appointment details:</p>

      <div class="appointment-details">
        <p><strong>Service:</strong> {{.Service}}</p>
        <p><strong>Date:</strong> {{.Date}}</p>
        <p><strong>Time:</strong> {{.TimeFrom}} – {{.TimeTo}}</p>
        <p><strong>Stylist:</strong> {{.Employee}}</p>
      </div>

      <p>If you need to change or cancel your appointment, please contact us.</p>

      <p>We look forward to seeing you!</p>

      <p>Best regards,<br>The {{.ShopName}} team</p>
    </div>
    <div class="footer">
      <p>This is an automated message, please do not reply.</p>
    </div>
  </div>
</body>
</html>
`))

type confirmationData struct {
	Confirmation
	ShopName string
}

func confirmationHTML(conf Confirmation, shopName string) string {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, confirmationData{conf, shopName}); err != nil {
		log.Printf("confirmation template error: %v", err)
		return confirmationText(conf, shopName)
	}
	return buf.String()
}

func confirmationText(conf Confirmation, shopName string) string {
	return "Hello " + conf.FirstName + " " + conf.LastName + ",\n\n" +
		"Thank you for booking with " + shopName + ".\n\n" +
		"Service: " + conf.Service + "\n" +
		"Date: " + conf.Date + "\n" +
		"Time: " + conf.TimeFrom + " - " + conf.TimeTo + "\n" +
		"Stylist: " + conf.Employee + "\n\n" +
		"If you need to change or cancel your appointment, please contact us.\n\n" +
		"We look forward to seeing you!\n\n" +
		"Best regards,\n" +
		"The " + shopName + " team\n"
}
