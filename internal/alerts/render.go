package alerts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pitchside/pitchside/internal/domain"
)

// Renderer turns a notification into an email subject and body.
type Renderer interface {
	Render(n domain.Notification) (subject, body string, err error)
}

// TextRenderer writes plain-text mail. Data entries are listed in key
// order so the output is stable.
type TextRenderer struct {
	BaseURL string
}

func (r TextRenderer) Render(n domain.Notification) (string, string, error) {
	if !n.Valid() {
		return "", "", fmt.Errorf("render: %w", domain.ErrInvalidNotification)
	}
	var b strings.Builder
	b.WriteString(n.Body)
	b.WriteString("\n")
	keys := make([]string, 0, len(n.Data))
	for k := range n.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n%s: %s", k, n.Data[k])
	}
	if n.Action != "" {
		fmt.Fprintf(&b, "\n\n%s%s", r.BaseURL, n.Action)
	}
	b.WriteString("\n")
	return n.Title, b.String(), nil
}
