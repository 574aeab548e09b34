package readiness

import (
	"github.com/pkg/errors"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/util"
)

//
// configuration option for the readiness service
//
type Option func(*ReadinessService) error

//
// apply the given options, then fill any gaps with
// generated/discovered defaults
//
func (s *ReadinessService) setOptions(options ...Option) error {

	for _, opt := range options {
		if err := opt(s); err != nil {
			return err
		}
	}

	if s.serviceName == "" {
		s.serviceName = util.GenerateName()
	}
	if s.serviceID == "" {
		s.serviceID = util.GenerateID()
	}
	if s.serviceHost == "" {
		s.serviceHost = "localhost"
	}
	if s.servicePort == 0 {
		port, err := util.AvailablePort()
		if err != nil {
			return err
		}
		s.servicePort = port
	}

	if s.storeURL == "" {
		return errors.New("must supply a url for the aggregate store")
	}

	return nil
}

//
// the unique name of this service when running multiple instances;
// leave blank to auto-generate
//
func Name(name string) Option {
	return func(s *ReadinessService) error {
		s.serviceName = name
		return nil
	}
}

//
// the unique id of this service instance; leave blank to
// auto-generate
//
func ID(id string) Option {
	return func(s *ReadinessService) error {
		s.serviceID = id
		return nil
	}
}

//
// the host address to run this service on
//
func Host(host string) Option {
	return func(s *ReadinessService) error {
		s.serviceHost = host
		return nil
	}
}

//
// the port to run this service on; 0 assigns an available port
// automatically
//
func Port(port int) Option {
	return func(s *ReadinessService) error {
		if port < 0 {
			return errors.New("port must not be negative")
		}
		s.servicePort = port
		return nil
	}
}

//
// base url of the aggregate store used for submission persistence
// and benchmark queries
//
func StoreURL(url string) Option {
	return func(s *ReadinessService) error {
		s.storeURL = url
		return nil
	}
}

//
// api key presented to the aggregate store
//
func StoreKey(key string) Option {
	return func(s *ReadinessService) error {
		s.storeKey = key
		return nil
	}
}

//
// transactional email configuration; provider is one of
// mailerlite/mailersend. leave the api key blank to disable report
// email delivery.
//
func Mail(provider, apiKey, fromEmail, fromName string) Option {
	return func(s *ReadinessService) error {
		s.mailProvider = provider
		s.mailAPIKey = apiKey
		s.mailFromEmail = fromEmail
		s.mailFromName = fromName
		return nil
	}
}

//
// email template to use for a theme's report
//
func MailTemplate(themeID, templateID string) Option {
	return func(s *ReadinessService) error {
		if s.mailTemplates == nil {
			s.mailTemplates = map[string]string{}
		}
		s.mailTemplates[themeID] = templateID
		return nil
	}
}

//
// crm webhook to notify on each submission; empty disables
//
func WebhookURL(url string) Option {
	return func(s *ReadinessService) error {
		s.webhookURL = url
		return nil
	}
}

//
// collaborator that renders the report attachment sent with the
// email; nil sends the templated email without an attachment
//
func Renderer(r ReportRenderer) Option {
	return func(s *ReadinessService) error {
		s.renderer = r
		return nil
	}
}
