// Package maildraft stores messages as unsent .eml drafts that a desktop mail client opens
// for review before sending.
package maildraft

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/order_reporter/internal/domain"
	"github.com/wneessen/go-mail"
)

// HeaderUnsent makes Outlook and Thunderbird open the message in compose mode.
const HeaderUnsent mail.Header = "X-Unsent"

type Sink struct {
	dir string
	now func() time.Time
}

func New(dir string) *Sink {
	return &Sink{dir: dir, now: time.Now}
}

func (s *Sink) Draft(ctx context.Context, draft *domain.DraftMessage) (_ string, err error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		return "", fmt.Errorf("drafts directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("drafts directory %q is not a directory", s.dir)
	}

	msg, err := s.buildMessage(draft)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp(s.dir, "draft-"+s.now().Format("20060102-150405")+"-*.eml")
	if err != nil {
		return "", fmt.Errorf("failed to create draft file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			err = errors.Join(err, os.Remove(f.Name()))
		}
	}()

	if _, err := msg.WriteTo(f); err != nil {
		return "", fmt.Errorf("failed to write draft: %w", err)
	}

	return f.Name(), nil
}

// CheckAddress reports whether addr is accepted as a message address.
func (s *Sink) CheckAddress(addr string) error {
	return mail.NewMsg().To(addr)
}

func (s *Sink) buildMessage(draft *domain.DraftMessage) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if draft.From != "" {
		if err := msg.From(draft.From); err != nil {
			return nil, fmt.Errorf("invalid sender: %w", err)
		}
	}

	if err := msg.To(draft.Recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}

	if len(draft.CC) > 0 {
		if err := msg.Cc(draft.CC...); err != nil {
			return nil, fmt.Errorf("invalid cc: %w", err)
		}
	}

	if len(draft.BCC) > 0 {
		if err := msg.Bcc(draft.BCC...); err != nil {
			return nil, fmt.Errorf("invalid bcc: %w", err)
		}
	}

	msg.Subject(draft.Subject)
	msg.SetBodyString(mail.TypeTextPlain, draft.Body)
	msg.SetGenHeader(HeaderUnsent, "1")
	msg.SetDateWithValue(s.now())

	for _, path := range draft.Attachments {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve attachment %q: %w", path, err)
		}

		// AttachFile silently skips files it cannot stat
		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("attachment unavailable: %w", err)
		}

		msg.AttachFile(abs)
	}

	return msg, nil
}
