// internal/application/certificate.go
package application

import (
	"bytes"
	"html/template"
	"math"
	"time"

	"github.com/helpway/helpway-core/internal/domain"
)

// AmountPerHour is the donated amount worth one certified hour.
const AmountPerHour = 20.0

type Certificate struct {
	DonationID    string  `json:"donation_id"`
	DonorName     string  `json:"donor_name"`
	CampaignTitle string  `json:"campaign_title"`
	OrganizerName string  `json:"organizer_name"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Hours         int     `json:"hours"`
}

func CertifiedHours(amount float64) int {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return int(math.Floor(amount / AmountPerHour))
}

func NewCertificate(r domain.DonationRecord, donorName string) Certificate {
	if donorName == "" {
		donorName = "Anônimo"
	}
	date, ok := CalendarDate(r.Date)
	if !ok {
		date = r.Date
	}
	return Certificate{
		DonationID:    r.ID,
		DonorName:     donorName,
		CampaignTitle: r.CampaignTitle,
		OrganizerName: r.OrganizerName,
		Date:          date,
		Amount:        r.Amount,
		Hours:         CertifiedHours(r.Amount),
	}
}

// DisplayDate renders the donation day as DD/MM/YYYY.
func (c Certificate) DisplayDate() string {
	t, err := time.Parse("2006-01-02", c.Date)
	if err != nil {
		return c.Date
	}
	return t.Format("02/01/2006")
}

var certificateTemplate = template.Must(template.New("certificate").Parse(`<html>
<body>
<div class="container">
<h1>CERTIFICADO DE ATIVIDADE COMPLEMENTAR</h1>
<p>Certificamos que</p>
<h2>{{.DonorName}}</h2>
<p>Realizou uma contribuição filantrópica para a campanha <strong>"{{.CampaignTitle}}"</strong>, organizada por <strong>{{.OrganizerName}}</strong>, na data de {{.DisplayDate}}.</p>
<div class="details">
<p><strong>ID da Transação:</strong> {{.DonationID}}</p>
<p><strong>Valor Doado:</strong> R$ {{printf "%.2f" .Amount}}</p>
<p><strong>Equivalência de Carga Horária (Regra 1h/{{printf "%.2f" .PerHour}}):</strong> {{.Hours}} horas</p>
</div>
<p class="brand">HelpWay</p>
</div>
</body>
</html>
`))

// HTML renders the printable certificate. Field values are escaped.
func (c Certificate) HTML() (string, error) {
	var buf bytes.Buffer
	err := certificateTemplate.Execute(&buf, struct {
		Certificate
		PerHour float64
	}{c, AmountPerHour})
	return buf.String(), err
}
