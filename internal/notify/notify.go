package notify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/scoring"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/util"
)

// supported transactional email providers
const (
	ProviderMailerLite = "mailerlite"
	ProviderMailerSend = "mailersend"
)

const (
	mailerLiteEndpoint = "https://connect.mailerlite.com/api/emails"
	mailerSendEndpoint = "https://api.mailersend.com/v1/email"
)

//
// contact details captured with a submission
//
type Contact struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Organisation string `json:"organisation"`
	Role         string `json:"role"`
}

//
// everything the delivery sinks need to send a report. PDF is the
// rendered report attachment produced by the rendering
// collaborator; it may be nil, in which case the templated email
// goes out without an attachment.
//
type Report struct {
	Contact        Contact
	ThemeID        string
	ThemeName      string
	Scores         scoring.Result
	Interpretation scoring.Interpretation
	PDF            []byte
}

//
// Mailer delivers the templated report email. delivery is strictly
// best-effort: a returned error is for the caller to log, never to
// fail the submission over.
//
type Mailer struct {
	provider  string
	endpoint  string
	apiKey    string
	fromEmail string
	fromName  string
	// template id per theme id; falls back to the default theme's
	// template for unknown themes
	templates       map[string]string
	defaultTemplate string
}

func NewMailer(provider, apiKey, fromEmail, fromName string, templates map[string]string, defaultTemplate string) (*Mailer, error) {

	m := &Mailer{
		provider:        provider,
		apiKey:          apiKey,
		fromEmail:       fromEmail,
		fromName:        fromName,
		templates:       templates,
		defaultTemplate: defaultTemplate,
	}

	switch provider {
	case ProviderMailerLite:
		m.endpoint = mailerLiteEndpoint
	case ProviderMailerSend:
		m.endpoint = mailerSendEndpoint
	default:
		return nil, errors.Errorf("unknown email provider: %s", provider)
	}

	return m, nil
}

func (m *Mailer) templateFor(themeID string) string {
	if id, ok := m.templates[themeID]; ok {
		return id
	}
	return m.defaultTemplate
}

func (m *Mailer) Send(ctx context.Context, r Report) error {

	var payload []byte
	var err error

	switch m.provider {
	case ProviderMailerLite:
		payload, err = m.mailerLitePayload(r)
	case ProviderMailerSend:
		payload, err = m.mailerSendPayload(r)
	}
	if err != nil {
		return err
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + m.apiKey,
	}

	if _, err := util.Fetch(ctx, "POST", m.endpoint, headers, bytes.NewBuffer(payload)); err != nil {
		return errors.Wrap(err, "report email delivery failed")
	}

	return nil
}

func attachmentName(r Report) string {
	return strings.ReplaceAll(r.Contact.Name, " ", "-") + "-AI-Readiness-Roadmap.pdf"
}

func (m *Mailer) mailerLitePayload(r Report) ([]byte, error) {

	attachments := []map[string]string{}
	if len(r.PDF) > 0 {
		attachments = append(attachments, map[string]string{
			"filename": attachmentName(r),
			"content":  base64.StdEncoding.EncodeToString(r.PDF),
			"type":     "application/pdf",
		})
	}

	payload := map[string]interface{}{
		"to": []map[string]string{{"email": r.Contact.Email, "name": r.Contact.Name}},
		"from": map[string]string{
			"email": m.fromEmail,
			"name":  m.fromName,
		},
		"template_id": m.templateFor(r.ThemeID),
		"variables": map[string]interface{}{
			"name":                   r.Contact.Name,
			"organisation":           r.Contact.Organisation,
			"overall_score":          r.Scores.Overall,
			"interpretation_level":   r.Interpretation.LevelTag,
			"interpretation_message": r.Interpretation.Message,
			"current_date":           time.Now().Format("02/01/2006"),
		},
		"attachments": attachments,
	}

	return json.Marshal(payload)
}

func (m *Mailer) mailerSendPayload(r Report) ([]byte, error) {

	attachments := []map[string]string{}
	if len(r.PDF) > 0 {
		attachments = append(attachments, map[string]string{
			"filename":    attachmentName(r),
			"content":     base64.StdEncoding.EncodeToString(r.PDF),
			"disposition": "attachment",
		})
	}

	payload := map[string]interface{}{
		"from": map[string]string{
			"email": m.fromEmail,
			"name":  m.fromName,
		},
		"to":          []map[string]string{{"email": r.Contact.Email, "name": r.Contact.Name}},
		"template_id": m.templateFor(r.ThemeID),
		"variables": []map[string]interface{}{
			{
				"email": r.Contact.Email,
				"substitutions": []map[string]string{
					{"var": "name", "value": r.Contact.Name},
					{"var": "organisation", "value": r.Contact.Organisation},
					{"var": "overall_score", "value": strconv.Itoa(r.Scores.Overall)},
					{"var": "interpretation_level", "value": r.Interpretation.LevelTag},
					{"var": "interpretation_message", "value": r.Interpretation.Message},
					{"var": "current_date", "value": time.Now().Format("02/01/2006")},
				},
			},
		},
		"attachments": attachments,
	}

	return json.Marshal(payload)
}

//
// Webhook pushes submission summaries to the downstream crm.
// best-effort in the same way as the mailer.
//
type Webhook struct {
	url string
}

func NewWebhook(url string) *Webhook {
	return &Webhook{url: url}
}

func (w *Webhook) Enabled() bool { return w.url != "" }

//
// crm property keys are prefixed with the theme name so each
// partner's scores land in their own crm fields
//
func (w *Webhook) Send(ctx context.Context, r Report) error {

	if !w.Enabled() {
		return nil
	}

	nameParts := strings.Fields(r.Contact.Name)
	firstName := ""
	lastName := ""
	if len(nameParts) > 0 {
		firstName = nameParts[0]
		lastName = strings.Join(nameParts[1:], " ")
	}

	prefix := strings.ReplaceAll(strings.ToLower(r.ThemeName), " ", "_")

	payload, err := json.Marshal(map[string]interface{}{
		"theme": r.ThemeName,
		"email": r.Contact.Email,
		"properties": map[string]interface{}{
			"firstname":                 firstName,
			"lastname":                  lastName,
			"company":                   r.Contact.Organisation,
			"jobtitle":                  r.Contact.Role,
			prefix + "_readiness_score": r.Scores.Overall,
			prefix + "_readiness_level": r.Interpretation.LevelTag,
			"assessment_date":           time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.Wrap(err, "cannot marshal webhook payload")
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if _, err := util.Fetch(ctx, "POST", w.url, headers, bytes.NewBuffer(payload)); err != nil {
		return errors.Wrap(err, "crm webhook delivery failed")
	}

	return nil
}
