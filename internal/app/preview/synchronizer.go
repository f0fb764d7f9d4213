package preview

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/document"
	"github.com/r3labs/diff"
	"github.com/samber/lo"
)

// Preview is the set of rendered strings the display shows for one
// memo: the header fields plus the composed body paragraph.
type Preview struct {
	Department     string `json:"department" diff:"department"`
	Date           string `json:"date" diff:"date"`
	Subject        string `json:"subject" diff:"subject"`
	IssuerName     string `json:"issuer_name" diff:"issuer_name"`
	IssuerPosition string `json:"issuer_position" diff:"issuer_position"`
	Content        string `json:"content" diff:"content"`
}

// Render computes every displayed string from a snapshot. An
// unparseable issue date renders as an empty string rather than an
// error; passive recomputation must never fail the preview.
func Render(d document.Document) Preview {
	issuerName := ""
	if d.Issuer.Name != "" {
		issuerName = "(" + d.Issuer.Name + ")"
	}
	return Preview{
		Department:     d.Department,
		Date:           document.FormatThaiDateString(d.Date),
		Subject:        d.Subject + d.Activity.Name,
		IssuerName:     issuerName,
		IssuerPosition: d.Issuer.Position,
		Content:        document.Compose(d),
	}
}

// Synchronizer keeps the last rendered preview per memo and
// recomputes it on every change event, synchronously.
type Synchronizer struct {
	mu       sync.Mutex
	previews map[string]Preview
	logger   *slog.Logger
}

func NewSynchronizer(logger *slog.Logger) *Synchronizer {
	return &Synchronizer{
		previews: make(map[string]Preview),
		logger:   logger,
	}
}

// Refresh recomputes the preview for a memo from its current
// snapshot and stores it. The changed fields against the previous
// render are reported for logging; rendering never fails.
func (s *Synchronizer) Refresh(memoID string, d document.Document) Preview {
	next := Render(d)

	s.mu.Lock()
	prev := s.previews[memoID]
	s.previews[memoID] = next
	s.mu.Unlock()

	changes, err := diff.Diff(prev, next)
	if err != nil {
		s.logger.Error("failed to diff preview", "memo_id", memoID, "err", err)
	} else if len(changes) > 0 {
		fields := lo.Map(changes, func(c diff.Change, _ int) string {
			return strings.Join(c.Path, ".")
		})
		s.logger.Debug("preview refreshed", "memo_id", memoID, "changed", fields)
	}
	return next
}

func (s *Synchronizer) Get(memoID string) (Preview, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.previews[memoID]
	return p, ok
}

func (s *Synchronizer) Drop(memoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.previews, memoID)
}
