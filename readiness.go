package readiness

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/benchmark"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/catalog"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/notify"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/session"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/store"
)

//
// ReportRenderer produces the binary report attachment delivered
// with the email. the pdf layout itself is a separate collaborator;
// the engine only hands over the data and carries the bytes.
//
type ReportRenderer interface {
	Render(r notify.Report) ([]byte, error)
}

type ReadinessService struct {
	// embedded web server to handle assessment requests
	e *echo.Echo
	// the unique name of this service when running multiple instances
	serviceName string
	// the unique id of this service when running multiple instances
	serviceID string
	// the host address this service instance is running on
	serviceHost string
	// the port that this service instance is running on
	servicePort int
	// base url and api key of the aggregate store
	storeURL string
	storeKey string
	// transactional email configuration
	mailProvider  string
	mailAPIKey    string
	mailFromEmail string
	mailFromName  string
	mailTemplates map[string]string
	// crm webhook for submission notifications
	webhookURL string

	cat        *catalog.Catalog
	store      *store.Client
	aggregator *benchmark.Aggregator
	mailer     *notify.Mailer
	webhook    *notify.Webhook
	sessions   *session.Manager
	renderer   ReportRenderer
}

//
// create a new service instance. the question catalog is validated
// here: a malformed catalog is a configuration error and prevents
// startup rather than surfacing as a runtime scoring fault.
//
func New(options ...Option) (*ReadinessService, error) {

	srvc := ReadinessService{}

	if err := srvc.setOptions(options...); err != nil {
		return nil, err
	}

	srvc.cat = catalog.Default()
	if err := srvc.cat.Validate(); err != nil {
		return nil, err
	}

	srvc.store = store.NewClient(srvc.storeURL, srvc.storeKey)
	srvc.aggregator = benchmark.NewAggregator(srvc.store, srvc.cat, log.New("benchmark"))
	srvc.sessions = session.NewManager()
	srvc.webhook = notify.NewWebhook(srvc.webhookURL)

	if srvc.mailAPIKey != "" {
		mailer, err := notify.NewMailer(
			srvc.mailProvider, srvc.mailAPIKey,
			srvc.mailFromEmail, srvc.mailFromName,
			srvc.mailTemplates, srvc.mailTemplates[catalog.DefaultThemeID],
		)
		if err != nil {
			return nil, err
		}
		srvc.mailer = mailer
	}

	srvc.e = echo.New()
	srvc.e.Logger.SetLevel(log.INFO)
	// add pingable method to know we're up
	srvc.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})
	// one-shot assessment submission
	srvc.e.POST("/assess", srvc.buildAssessHandler())
	// incremental questionnaire session flow
	srvc.e.POST("/session", srvc.buildSessionStartHandler())
	srvc.e.POST("/session/resume", srvc.buildSessionResumeHandler())
	srvc.e.POST("/session/:id/answer", srvc.buildSessionAnswerHandler())
	srvc.e.POST("/session/:id/advance", srvc.buildSessionAdvanceHandler())
	srvc.e.POST("/session/:id/back", srvc.buildSessionBackHandler())
	srvc.e.GET("/session/:id/draft", srvc.buildSessionDraftHandler())
	srvc.e.POST("/session/:id/submit", srvc.buildSessionSubmitHandler())

	return &srvc, nil
}

//
// start the service running
//
func (s *ReadinessService) Start() {

	address := fmt.Sprintf("%s:%d", s.serviceHost, s.servicePort)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil {
			s.e.Logger.Info("error starting server: ", err, ", shutting down...")
			// attempt clean shutdown by raising sig int
			p, _ := os.FindProcess(os.Getpid())
			p.Signal(os.Interrupt)
		}
	}(address)

}

//
// shut the server down gracefully
//
func (s *ReadinessService) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(ctx); err != nil {
		fmt.Println("could not shut down server cleanly: ", err)
		s.e.Logger.Fatal(err)
	}

}

func (s *ReadinessService) PrintConfig() {

	fmt.Println("\n\tReadiness Assessment Service Configuration")
	fmt.Println("\t------------------------------------------")

	s.printID()
	s.printCollaborators()

}

func (s *ReadinessService) printID() {
	fmt.Println("\tservice name:\t\t", s.serviceName)
	fmt.Println("\tservice ID:\t\t", s.serviceID)
	fmt.Println("\tservice host:\t\t", s.serviceHost)
	fmt.Println("\tservice port:\t\t", s.servicePort)
}

func (s *ReadinessService) printCollaborators() {
	fmt.Println("\taggregate store:\t", s.storeURL)
	if s.mailer != nil {
		fmt.Println("\temail provider:\t\t", s.mailProvider)
	} else {
		fmt.Println("\temail provider:\t\t (disabled)")
	}
	if s.webhook.Enabled() {
		fmt.Println("\tcrm webhook:\t\t configured")
	} else {
		fmt.Println("\tcrm webhook:\t\t (disabled)")
	}
	fmt.Println("\tthemes:\t\t\t", catalog.ThemeIDs())
}
