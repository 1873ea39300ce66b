package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/config"
	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/errs"
	"github.com/stardustenigma/portfolio-backend/models"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const rateLimitMessage = "Too many messages sent. Please wait before sending another message."

// ContactSubmission carries the raw contact-form field values plus the
// sender's network address.
type ContactSubmission struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	SenderAddr string
}

// ContactService validates contact submissions, enforces the per-sender
// rate limit, persists accepted messages, and dispatches a best-effort
// notification.
type ContactService struct {
	logger      zerolog.Logger
	messageRepo *database.ContactMessageRepo
	settings    config.ContactSettings
	notifier    *Notifier
	now         func() time.Time
}

func NewContactService(messageRepo *database.ContactMessageRepo, settings config.ContactSettings, notifier *Notifier) *ContactService {
	return &ContactService{
		logger:      log.With().Str("serviceName", "contact").Logger(),
		messageRepo: messageRepo,
		settings:    settings,
		notifier:    notifier,
		now:         time.Now,
	}
}

// Submit either persists a new message and returns it, or returns a
// ValidationErr listing every violation found. All rules are evaluated, not
// short-circuited. A store failure after valid input is reported as a
// database error, never as a false success.
func (s *ContactService) Submit(sub ContactSubmission) (*models.ContactMessage, error) {
	name := StripTags(strings.TrimSpace(sub.Name))
	email := strings.ToLower(strings.TrimSpace(sub.Email))
	subject := StripTags(strings.TrimSpace(sub.Subject))
	message := StripTags(strings.TrimSpace(sub.Message))

	var problems []string

	if len([]rune(name)) < 2 {
		problems = append(problems, "Name must be at least 2 characters long.")
	} else if len([]rune(name)) > 100 {
		problems = append(problems, "Name must be less than 100 characters.")
	}

	if email == "" || !emailPattern.MatchString(email) {
		problems = append(problems, "Please enter a valid email address.")
	}

	if len([]rune(message)) < 10 {
		problems = append(problems, "Message must be at least 10 characters long.")
	} else if len([]rune(message)) > 2000 {
		problems = append(problems, "Message must be less than 2000 characters.")
	}

	if subject != "" && len([]rune(subject)) > s.settings.SubjectMax {
		problems = append(problems, fmt.Sprintf("Subject must be less than %d characters.", s.settings.SubjectMax))
	}

	keyColumn, keyValue := s.rateLimitKey(email, sub.SenderAddr)
	since := s.now().Add(-s.settings.RateLimitWindow)

	// The exhausted limit is reported in the same pass as field problems.
	// AddRateLimited re-checks transactionally on the insert path, so this
	// read needs no lock.
	recent, err := s.messageRepo.CountRecent(keyColumn, keyValue, since)
	if err != nil {
		return nil, errs.NewDatabaseError("count recent contact messages", "contact message", err)
	}
	if recent >= int64(s.settings.RateLimitMax) {
		problems = append(problems, rateLimitMessage)
	}

	if len(problems) > 0 {
		s.logger.Info().Int("problems", len(problems)).Msg("contact submission rejected")
		return nil, errs.NewValidationError(problems)
	}

	if subject == "" {
		subject = fmt.Sprintf("Contact from %s", name)
	}

	msg := &models.ContactMessage{
		Name:       name,
		Email:      email,
		Subject:    &subject,
		Message:    message,
		SenderAddr: sub.SenderAddr,
	}

	err = s.messageRepo.AddRateLimited(msg, keyColumn, keyValue, since, s.settings.RateLimitMax)
	if errors.Is(err, errs.ErrRateLimited) {
		s.logger.Info().Str("key", keyValue).Msg("contact rate limit hit")
		return nil, errs.NewValidationError([]string{rateLimitMessage})
	}
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("contact message store failed")
		return nil, errs.NewDatabaseError("create contact message", "contact message", err)
	}

	s.logger.Info().Str("name", name).Str("email", email).Msg("new contact message stored")

	if s.notifier != nil {
		s.notifier.Dispatch(
			fmt.Sprintf("Portfolio Contact: %s", subject),
			notificationBody(msg),
		)
	}

	return msg, nil
}

func (s *ContactService) rateLimitKey(email, senderAddr string) (column, value string) {
	if s.settings.RateLimitKey == config.RateLimitByRemote {
		return "sender_addr", senderAddr
	}
	return "email", email
}

func notificationBody(msg *models.ContactMessage) string {
	subject := ""
	if msg.Subject != nil {
		subject = *msg.Subject
	}
	return fmt.Sprintf(`New contact form submission:

Name: %s
Email: %s
Subject: %s

Message:
%s

---
Submitted at: %s
Sender address: %s
`, msg.Name, msg.Email, subject, msg.Message,
		msg.CreatedAt.Format("2006-01-02 15:04:05"), msg.SenderAddr)
}
