package services

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"venue-backend/config"
	"venue-backend/models"
)

// ErrMissingFields marks an inquiry rejected before any transport call.
var ErrMissingFields = errors.New("missing required fields")

var inquiryHTMLTmpl = template.Must(template.New("inquiry").Parse(`<h2>New Event Inquiry - {{.SiteName}}</h2>
<p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
<hr />
<p><strong>Event Type:</strong> {{.EventType}}</p>
{{if .Date}}<p><strong>Preferred Date:</strong> {{.Date}}</p>
{{end}}{{if .Guests}}<p><strong>Number of Guests:</strong> {{.Guests}}</p>
{{end}}{{if .Message}}<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
{{end}}<hr />
<p><small>Sent from {{.SiteHost}} contact form</small></p>
`))

type inquiryEmailData struct {
	SiteName  string
	SiteHost  string
	Name      string
	Email     string
	EventType string
	Date      string
	Guests    string
	Message   template.HTML
}

// InquiryService is the relay: it validates one inquiry, renders the
// operator notification in both plain text and HTML, and hands it to the
// mail transport. Nothing is kept between calls.
type InquiryService struct {
	mailer Mailer
	to     string
	site   config.SiteConfig
	log    zerolog.Logger
}

func NewInquiryService(mailer Mailer, cfg config.Config, log zerolog.Logger) *InquiryService {
	return &InquiryService{
		mailer: mailer,
		to:     cfg.SMTP.ToEmail,
		site:   cfg.Site,
		log:    log.With().Str("component", "inquiry").Logger(),
	}
}

// Send relays one inquiry to the venue operator. Validation failures return
// ErrMissingFields without touching the transport; transport failures carry
// the underlying error wrapped.
func (s *InquiryService) Send(ctx context.Context, inq *models.Inquiry) error {
	if missing := inq.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	refID := uuid.New().String()
	html, err := s.renderHTML(inq)
	if err != nil {
		return fmt.Errorf("render inquiry %s: %w", refID, err)
	}

	email := &OutboundEmail{
		To:      s.to,
		ReplyTo: inq.Email,
		Subject: fmt.Sprintf("New Event Inquiry: %s - %s", inq.EventType, inq.Name),
		Text:    s.renderText(inq),
		HTML:    html,
		RefID:   refID,
	}
	if err := s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("dispatch inquiry %s: %w", refID, err)
	}

	s.log.Info().Str("ref_id", refID).Str("event_type", inq.EventType).Msg("inquiry relayed")
	return nil
}

func (s *InquiryService) renderHTML(inq *models.Inquiry) (string, error) {
	// Message body is escaped before newlines become <br>, so the marked-safe
	// value carries no submitter markup.
	msg := template.HTMLEscapeString(inq.Message)
	msg = strings.ReplaceAll(msg, "\n", "<br>")

	var sb strings.Builder
	err := inquiryHTMLTmpl.Execute(&sb, inquiryEmailData{
		SiteName:  s.site.Name,
		SiteHost:  s.site.Host(),
		Name:      inq.Name,
		Email:     inq.Email,
		EventType: inq.EventType,
		Date:      inq.Date,
		Guests:    inq.Guests.String(),
		Message:   template.HTML(msg),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (s *InquiryService) renderText(inq *models.Inquiry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("New Event Inquiry - %s\n\n", s.site.Name))
	sb.WriteString(fmt.Sprintf("From: %s (%s)\n", inq.Name, inq.Email))
	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("Event Type: %s\n", inq.EventType))
	if inq.Date != "" {
		sb.WriteString(fmt.Sprintf("Preferred Date: %s\n", inq.Date))
	}
	if inq.Guests != "" {
		sb.WriteString(fmt.Sprintf("Number of Guests: %s\n", inq.Guests))
	}
	if inq.Message != "" {
		sb.WriteString(fmt.Sprintf("Message:\n%s\n", inq.Message))
	}
	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("Sent from %s contact form\n", s.site.Host()))
	return sb.String()
}
