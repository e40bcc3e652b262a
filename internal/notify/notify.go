// Package notify emails a digest of shortlisted postings that are about to
// expire, so a shortlist kept on one machine does not quietly lapse.
package notify

import (
	"fmt"
	"log"
	"sort"
	"time"

	gomail "gopkg.in/mail.v2"

	"ropboard/internal/domain"
	"ropboard/internal/expiry"
)

// EmailConfig holds SMTP configuration for sending the digest.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
	Enabled    bool
}

// DigestItem is one shortlisted posting inside the expiry window.
type DigestItem struct {
	Course        domain.Course
	DaysRemaining int
}

// RenderedMessage is a digest ready for delivery.
type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

// BuildDigest selects the shortlisted courses that are expiring soon,
// ordered by urgency (fewest days left first, then by id). Courses with
// unparseable expiry dates are skipped; the digest is advisory.
func BuildDigest(courses []domain.Course, shortlist map[string]bool, now time.Time) []DigestItem {
	var items []DigestItem
	for _, c := range courses {
		if !shortlist[c.ID] {
			continue
		}
		st, err := expiry.Classify(c.Expires, now)
		if err != nil || !st.ExpiringSoon {
			continue
		}
		items = append(items, DigestItem{Course: c, DaysRemaining: st.DaysRemaining})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DaysRemaining != items[j].DaysRemaining {
			return items[i].DaysRemaining < items[j].DaysRemaining
		}
		return items[i].Course.ID < items[j].Course.ID
	})
	return items
}

// SendDigest renders and delivers the digest. An empty digest sends nothing.
func SendDigest(cfg EmailConfig, items []DigestItem) error {
	if !cfg.Enabled || len(items) == 0 {
		return nil
	}

	msg, err := RenderDigest(items)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.FromEmail)
	m.SetHeader("To", cfg.ToEmail)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	dialer := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dialer.Timeout = 10 * time.Second

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("notify: send to %s: %w", cfg.ToEmail, err)
	}
	log.Printf("Digest sent to %s (%d postings)", cfg.ToEmail, len(items))
	return nil
}
