package web

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	authservice "github.com/pitchside/pitchside/auth/service"
	"github.com/pitchside/pitchside/auth/users"
	"github.com/pitchside/pitchside/internal/alerts"
	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/hub"
	"github.com/pitchside/pitchside/internal/pii"
	"github.com/pitchside/pitchside/internal/storage"
	"github.com/pitchside/pitchside/internal/web/webpath"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const userKey = "user"

const (
	listWindow = 30 * 24 * time.Hour
	listLimit  = 20
)

// JobTrigger runs a named background job on demand.
type JobTrigger interface {
	Trigger(name string) error
}

// Deps are the collaborators the server routes requests into.
type Deps struct {
	Auth     *authservice.Service
	Hub      *hub.Hub
	Alerts   *alerts.Service
	Codec    *pii.Codec
	Users    storage.UserStorage
	Prefs    storage.PreferenceStorage
	Postings storage.PostingStorage
	Activity storage.ActivityStorage
	Jobs     JobTrigger
}

type Server struct {
	d   Deps
	app *fiber.App
	cfg config.Server
	log *logrus.Entry
}

func New(l *logrus.Logger, cfg config.Server, d Deps) *Server {
	server := Server{
		d:   d,
		cfg: cfg,
		log: l.WithField("from", "web"),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: !cfg.Debug,
	})

	app.Use(server.recordPageView)

	app.Post(webpath.Signup, server.handleSignup)
	app.Post(webpath.Signin, server.handleSignin)
	app.Get(webpath.Ws, server.handleWs)

	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		user, err := d.Auth.Auth(c.Context(), server.token(c))
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
			case errors.Is(err, authservice.ErrNotAuthorized):
				c.Status(fiber.StatusUnauthorized)
			default:
				c.Status(fiber.StatusInternalServerError)
			}
			return nil
		}
		c.Context().SetUserValue(userKey, user)
		if err := d.Users.TouchLastActive(c.Context(), user.ID); err != nil {
			server.log.WithError(err).Warn("cannot touch last active")
		}
		return c.Next()
	})

	app.Get(webpath.ApiPreferences, server.handleGetPreferences)
	app.Put(webpath.ApiPreferences, server.handlePutPreferences)
	app.Get(webpath.ApiVacancies, server.handleListVacancies)
	app.Post(webpath.ApiVacancies, server.handleCreateVacancy)
	app.Get(webpath.ApiAvailabilities, server.handleListAvailabilities)
	app.Post(webpath.ApiAvailabilities, server.handleCreateAvailability)
	app.Post(webpath.ApiTrials, server.handleTrialInvitation)
	app.Post(webpath.ApiMatches, server.handleMatchCompletion)
	app.Post(webpath.ApiJobs, server.handleTriggerJob)

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// token reads the credential from the session cookie or, failing that,
// a bearer Authorization header.
func (s *Server) token(c *fiber.Ctx) string {
	if t := c.Cookies("token"); t != "" {
		return t
	}
	header := c.Get(fiber.HeaderAuthorization)
	if rest, found := strings.CutPrefix(header, "Bearer "); found {
		return rest
	}
	return ""
}

// recordPageView keeps the page-view trail the retention cleanup
// prunes. Best effort: a storage hiccup never fails the request.
func (s *Server) recordPageView(c *fiber.Ctx) error {
	if c.Path() == webpath.Ws {
		return c.Next()
	}
	var userID *uuid.UUID
	if user, err := s.d.Auth.Verify(c.Context(), s.token(c)); err == nil {
		userID = &user.ID
	}
	if err := s.d.Activity.RecordPageView(c.Context(), userID, c.Path()); err != nil {
		s.log.WithError(err).Warn("cannot record page view")
	}
	return c.Next()
}

// handleWs authenticates before upgrading. A refused handshake returns
// a bare 401; which check failed is logged, never sent to the peer.
func (s *Server) handleWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	user, err := s.d.Auth.Verify(c.Context(), s.token(c))
	if err != nil {
		s.log.WithError(err).WithField("remote", c.IP()).Info("push handshake refused")
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	if err := s.d.Activity.RecordSession(c.Context(), user.ID); err != nil {
		s.log.WithError(err).Warn("cannot record session")
	}
	if err := s.d.Users.TouchLastActive(c.Context(), user.ID); err != nil {
		s.log.WithError(err).Warn("cannot touch last active")
	}
	c.Locals(userKey, user)
	return websocket.New(func(conn *websocket.Conn) {
		u, _ := conn.Locals(userKey).(users.User)
		s.d.Hub.Serve(u, conn)
	})(c)
}

func (s *Server) handleSignup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	role := domain.Role(req.Role)
	if req.Name == "" || req.Password == "" || !role.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "name, password and a valid role are required")
	}
	var emailEnc string
	if req.Email != "" {
		enc, err := s.d.Codec.Encrypt(req.Email)
		if err != nil {
			return err
		}
		emailEnc = enc
	}
	user, err := s.d.Auth.SignUp(c.Context(), req.Name, req.Password, role, emailEnc)
	if err != nil {
		return err
	}
	return s.issueToken(c, user, fiber.StatusCreated)
}

func (s *Server) handleSignin(c *fiber.Ctx) error {
	var req signinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	user, err := s.d.Auth.Login(c.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusUnauthorized, "wrong name or password")
		}
		return err
	}
	return s.issueToken(c, user, fiber.StatusOK)
}

func (s *Server) issueToken(c *fiber.Ctx, user users.User, status int) error {
	cookie, err := s.d.Auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	c.Cookie(cookie)
	return c.Status(status).JSON(tokenResponse{
		Token:     cookie.Value,
		ExpiresAt: cookie.Expires,
	})
}

func (s *Server) handleGetPreferences(c *fiber.Ctx) error {
	user, _ := c.Context().UserValue(userKey).(users.User)
	pref, found, err := s.d.Prefs.Get(c.Context(), user.ID)
	if err != nil {
		return err
	}
	if !found {
		pref = domain.DefaultPreference(user.ID)
	}
	return c.JSON(toPreferenceDTO(pref))
}

func (s *Server) handlePutPreferences(c *fiber.Ctx) error {
	user, _ := c.Context().UserValue(userKey).(users.User)
	var req preferenceDTO
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	pref := req.toDomain(user.ID)
	if err := s.d.Prefs.Upsert(c.Context(), pref); err != nil {
		return err
	}
	return c.JSON(toPreferenceDTO(pref))
}

func (s *Server) handleListVacancies(c *fiber.Ctx) error {
	s.recordSearch(c)
	list, err := s.d.Postings.RecentVacancies(c.Context(), time.Now().Add(-listWindow), listLimit)
	if err != nil {
		return err
	}
	out := make([]vacancyDTO, 0, len(list))
	for _, v := range list {
		out = append(out, toVacancyDTO(v, 0))
	}
	return c.JSON(out)
}

func (s *Server) handleCreateVacancy(c *fiber.Ctx) error {
	var req vacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.TeamName == "" || req.Position == "" {
		return fiber.NewError(fiber.StatusBadRequest, "teamName and position are required")
	}
	v, err := s.d.Postings.CreateVacancy(c.Context(), domain.Vacancy{
		ID:          uuid.New(),
		TeamName:    req.TeamName,
		League:      req.League,
		AgeGroup:    req.AgeGroup,
		Position:    req.Position,
		Description: req.Description,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return err
	}
	notified, err := s.d.Alerts.NotifyNewTeamVacancy(c.Context(), v)
	if err != nil {
		// The posting exists either way; fan-out failure is an ops
		// problem, not the poster's.
		s.log.WithError(err).WithField("vacancy", v.ID).Error("vacancy fan-out failed")
	}
	return c.Status(fiber.StatusCreated).JSON(toVacancyDTO(v, notified))
}

func (s *Server) handleListAvailabilities(c *fiber.Ctx) error {
	s.recordSearch(c)
	list, err := s.d.Postings.RecentAvailabilities(c.Context(), time.Now().Add(-listWindow), listLimit)
	if err != nil {
		return err
	}
	out := make([]availabilityDTO, 0, len(list))
	for _, a := range list {
		out = append(out, toAvailabilityDTO(a, 0))
	}
	return c.JSON(out)
}

func (s *Server) handleCreateAvailability(c *fiber.Ctx) error {
	var req availabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.PlayerName == "" || req.Position == "" {
		return fiber.NewError(fiber.StatusBadRequest, "playerName and position are required")
	}
	a, err := s.d.Postings.CreateAvailability(c.Context(), domain.Availability{
		ID:         uuid.New(),
		PlayerName: req.PlayerName,
		League:     req.League,
		AgeGroup:   req.AgeGroup,
		Position:   req.Position,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return err
	}
	notified, err := s.d.Alerts.NotifyPlayerInterest(c.Context(), a)
	if err != nil {
		s.log.WithError(err).WithField("availability", a.ID).Error("availability fan-out failed")
	}
	return c.Status(fiber.StatusCreated).JSON(toAvailabilityDTO(a, notified))
}

func (s *Server) handleTrialInvitation(c *fiber.Ctx) error {
	var req trialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Recipient == uuid.Nil || req.TeamName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "recipient and teamName are required")
	}
	res, err := s.d.Alerts.NotifyTrialInvitation(c.Context(), domain.TrialInvitation{
		ID:        uuid.New(),
		Recipient: req.Recipient,
		TeamName:  req.TeamName,
		Venue:     req.Venue,
		Starts:    req.Starts,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "unknown recipient")
		}
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(deliveryDTO(res))
}

func (s *Server) handleMatchCompletion(c *fiber.Ctx) error {
	var req matchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Recipient == uuid.Nil || req.HomeTeam == "" || req.AwayTeam == "" {
		return fiber.NewError(fiber.StatusBadRequest, "recipient, homeTeam and awayTeam are required")
	}
	res, err := s.d.Alerts.NotifyMatchCompletion(c.Context(), domain.MatchCompletion{
		ID:        uuid.New(),
		Recipient: req.Recipient,
		HomeTeam:  req.HomeTeam,
		AwayTeam:  req.AwayTeam,
		HomeScore: req.HomeScore,
		AwayScore: req.AwayScore,
		PlayedAt:  req.PlayedAt,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "unknown recipient")
		}
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(deliveryDTO(res))
}

func (s *Server) handleTriggerJob(c *fiber.Ctx) error {
	user, _ := c.Context().UserValue(userKey).(users.User)
	if user.Role != domain.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin only")
	}
	if err := s.d.Jobs.Trigger(c.Params("name")); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return c.SendStatus(fiber.StatusAccepted)
}

func (s *Server) recordSearch(c *fiber.Ctx) {
	q := c.Query("q")
	if q == "" {
		return
	}
	user, _ := c.Context().UserValue(userKey).(users.User)
	var userID *uuid.UUID
	if user.ID != uuid.Nil {
		userID = &user.ID
	}
	if err := s.d.Activity.RecordSearch(c.Context(), userID, q); err != nil {
		s.log.WithError(err).Warn("cannot record search")
	}
}
