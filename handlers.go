package readiness

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/benchmark"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/catalog"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/notify"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/scoring"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/session"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/store"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/util"
)

// overall budget for the best-effort delivery goroutine
const notifyTimeout = 30 * time.Second

//
// Query parameters sent to the web service.
// Params can be provided as json payload, via form components
// or as query params
//
type AssessRequest struct {
	// theme/branding variant the questionnaire was answered under
	Theme string `json:"theme" form:"theme" query:"theme"`
	// session id generated by the client; blank to auto-generate
	SessionID string `json:"sessionId" form:"sessionId" query:"sessionId"`
	// contact details captured after completion
	Contact notify.Contact `json:"contact"`
	// the sparse answer map, keyed by question id
	Answers scoring.AnswerSet `json:"answers"`
	// whether this submission may be included in future benchmarks
	BenchmarkConsent bool `json:"benchmarkConsent" form:"benchmarkConsent" query:"benchmarkConsent"`
}

//
// everything a report renderer needs, as returned to the caller
//
type AssessResponse struct {
	SessionID        string                      `json:"sessionId"`
	Theme            string                      `json:"theme"`
	Scores           scoring.Result              `json:"scores"`
	Interpretation   scoring.Interpretation      `json:"interpretation"`
	TimeSavings      int                         `json:"timeSavings"`
	TimeSavingsUnit  string                      `json:"timeSavingsUnit"`
	Recommendations  []scoring.Recommendation    `json:"recommendations"`
	Benchmarks       *benchmark.Snapshot         `json:"benchmarks,omitempty"`
	PerformanceLevel *benchmark.PerformanceLevel `json:"performanceLevel,omitempty"`
	ServiceID        string                      `json:"serviceID"`
	ServiceName      string                      `json:"serviceName"`
}

//
// creates the main assessment method: scores the answers, persists
// the submission, then kicks off best-effort report delivery and
// benchmark aggregation
//
func (s *ReadinessService) buildAssessHandler() echo.HandlerFunc {

	return func(c echo.Context) error {
		ar := &AssessRequest{}
		if err := c.Bind(ar); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err)
		}

		if len(ar.Answers) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "must supply answers")
		}
		if ar.Contact.Email == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "must supply contact email")
		}

		res, err := s.processSubmission(c.Request().Context(), ar)
		if err != nil {
			s.e.Logger.Error("submission failed: ", err)
			return echo.NewHTTPError(http.StatusBadGateway,
				"your submission could not be saved, please try again")
		}

		return c.JSON(http.StatusOK, res)
	}
}

//
// the submission pipeline shared by the one-shot and session
// flows.
//
// scoring and interpretation are pure and run inline before any
// network operation. persistence must succeed before anything
// downstream is attempted - the benchmark baseline depends on every
// submission being durably recorded - and is the only hard failure.
// report delivery and benchmark aggregation follow, each degrading
// silently.
//
func (s *ReadinessService) processSubmission(ctx context.Context, ar *AssessRequest) (*AssessResponse, error) {

	defer util.TimeTrack(time.Now(), "processSubmission")

	th := catalog.ThemeByID(ar.Theme)
	cat := s.cat.ForTheme(th.ID)

	scores := scoring.Score(cat, ar.Answers)
	interp := scoring.Interpret(scores.Overall, th.ID)
	savings := scoring.EstimateSavings(ar.Answers)
	recs := scoring.Recommend(cat, scores, ar.Answers, th.ID)

	sessionID := ar.SessionID
	if sessionID == "" {
		sessionID = util.GenerateID()
	}

	rec := store.Submission{
		SessionID:        sessionID,
		Theme:            th.Name,
		Email:            ar.Contact.Email,
		Name:             ar.Contact.Name,
		Organisation:     ar.Contact.Organisation,
		Role:             ar.Contact.Role,
		Answers:          ar.Answers,
		Scores:           scores,
		Interpretation:   interp.LevelTag,
		BenchmarkConsent: ar.BenchmarkConsent,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.store.InsertSubmission(ctx, rec); err != nil {
		return nil, errors.Wrap(err, "cannot persist submission")
	}

	report := notify.Report{
		Contact:        ar.Contact,
		ThemeID:        th.ID,
		ThemeName:      th.Name,
		Scores:         scores,
		Interpretation: interp,
	}

	// report delivery is best-effort and must not delay the
	// response; failures are logged and swallowed
	go s.deliverReport(report)

	res := &AssessResponse{
		SessionID:       sessionID,
		Theme:           th.ID,
		Scores:          scores,
		Interpretation:  interp,
		TimeSavings:     savings,
		TimeSavingsUnit: th.Messaging.TimeUnit,
		Recommendations: recs,
		ServiceID:       s.serviceID,
		ServiceName:     s.serviceName,
	}

	if ar.BenchmarkConsent {
		snap := s.aggregator.Aggregate(ctx, ar.Answers, scores)
		if snap.Available {
			res.Benchmarks = snap
			if snap.Percentiles.Found {
				pl := benchmark.PerformanceLevelFor(snap.Percentiles.Overall)
				res.PerformanceLevel = &pl
			}
		}
	}

	return res, nil
}

//
// render (if a renderer is configured) and deliver the report via
// email and the crm webhook
//
func (s *ReadinessService) deliverReport(report notify.Report) {

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if s.renderer != nil {
		pdf, err := s.renderer.Render(report)
		if err != nil {
			s.e.Logger.Warn("report rendering failed: ", err)
		} else {
			report.PDF = pdf
		}
	}

	if s.mailer != nil {
		if err := s.mailer.Send(ctx, report); err != nil {
			s.e.Logger.Warn("report email failed, but assessment was saved: ", err)
		}
	}

	if err := s.webhook.Send(ctx, report); err != nil {
		s.e.Logger.Warn("crm webhook failed, but assessment was saved: ", err)
	}
}

// session flow request/response shapes

type sessionRequest struct {
	Theme      string `json:"theme" form:"theme" query:"theme"`
	QuestionID string `json:"questionId" form:"questionId" query:"questionId"`
	Value      string `json:"value" form:"value" query:"value"`
}

type sessionResponse struct {
	SessionID string        `json:"sessionId"`
	Theme     string        `json:"theme"`
	State     string        `json:"state"`
	Draft     session.Draft `json:"draft"`
}

func (s *ReadinessService) sessionResponse(sess *session.Session) sessionResponse {
	return sessionResponse{
		SessionID: sess.ID(),
		Theme:     sess.ThemeID(),
		State:     sess.State().String(),
		Draft:     sess.Draft(),
	}
}

func (s *ReadinessService) buildSessionStartHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sr := &sessionRequest{}
		if err := c.Bind(sr); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err)
		}
		sess := s.sessions.Start(catalog.ThemeByID(sr.Theme).ID)
		return c.JSON(http.StatusOK, s.sessionResponse(sess))
	}
}

//
// rebuild a session from a previously saved draft snapshot so an
// interrupted questionnaire can continue where it left off
//
func (s *ReadinessService) buildSessionResumeHandler() echo.HandlerFunc {
	type resumeRequest struct {
		Theme string        `json:"theme"`
		Draft session.Draft `json:"draft"`
	}
	return func(c echo.Context) error {
		rr := &resumeRequest{}
		if err := c.Bind(rr); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err)
		}
		if rr.Draft.SessionID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "must supply a draft with a sessionId")
		}
		th := catalog.ThemeByID(rr.Theme)
		sess, err := s.sessions.Resume(th.ID, s.cat.ForTheme(th.ID), rr.Draft)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, s.sessionResponse(sess))
	}
}

func (s *ReadinessService) withSession(c echo.Context, themeID string) (*session.Session, error) {
	sess, err := s.sessions.Get(catalog.ThemeByID(themeID).ID, c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return sess, nil
}

func (s *ReadinessService) buildSessionAnswerHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sr := &sessionRequest{}
		if err := c.Bind(sr); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err)
		}
		sess, err := s.withSession(c, sr.Theme)
		if err != nil {
			return err
		}
		cat := s.cat.ForTheme(sess.ThemeID())
		if err := sess.Answer(cat, sr.QuestionID, sr.Value); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, s.sessionResponse(sess))
	}
}

func (s *ReadinessService) buildSessionAdvanceHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sr := &sessionRequest{}
		if err := c.Bind(sr); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err)
		}
		sess, err := s.withSession(c, sr.Theme)
		if err != nil {
			return err
		}
		if err := sess.Advance(s.cat.ForTheme(sess.ThemeID())); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, s.sessionResponse(sess))
	}
}

func (s *ReadinessService) buildSessionBackHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sr := &sessionRequest{}
		if err := c.Bind(sr); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err)
		}
		sess, err := s.withSession(c, sr.Theme)
		if err != nil {
			return err
		}
		if err := sess.Back(s.cat.ForTheme(sess.ThemeID())); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, s.sessionResponse(sess))
	}
}

func (s *ReadinessService) buildSessionDraftHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := s.withSession(c, c.QueryParam("theme"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, sess.Draft())
	}
}

//
// finalise a questionnaire session: contact details arrive here,
// the session's answers are scored and the shared submission
// pipeline runs. the finished session and its draft are dropped.
//
func (s *ReadinessService) buildSessionSubmitHandler() echo.HandlerFunc {
	type submitRequest struct {
		Theme            string         `json:"theme"`
		Contact          notify.Contact `json:"contact"`
		BenchmarkConsent bool           `json:"benchmarkConsent"`
	}
	return func(c echo.Context) error {
		sr := &submitRequest{}
		if err := c.Bind(sr); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err)
		}
		if sr.Contact.Email == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "must supply contact email")
		}

		sess, err := s.withSession(c, sr.Theme)
		if err != nil {
			return err
		}

		if sess.State() == session.StateSubmitted {
			return echo.NewHTTPError(http.StatusConflict, session.ErrBadTransition.Error())
		}

		res, err := s.processSubmission(c.Request().Context(), &AssessRequest{
			Theme:            sess.ThemeID(),
			SessionID:        sess.ID(),
			Contact:          sr.Contact,
			Answers:          sess.Draft().Answers,
			BenchmarkConsent: sr.BenchmarkConsent,
		})
		if err != nil {
			// session stays resumable so the user can retry
			s.e.Logger.Error("submission failed: ", err)
			return echo.NewHTTPError(http.StatusBadGateway,
				"your submission could not be saved, please try again")
		}

		// persisted: complete the state machine and drop the draft
		if _, err := sess.Submit(); err != nil {
			s.e.Logger.Warn("session finalise: ", err)
		}
		s.sessions.Remove(sess.ThemeID(), sess.ID())
		return c.JSON(http.StatusOK, res)
	}
}
