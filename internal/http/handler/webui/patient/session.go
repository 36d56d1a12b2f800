package patient

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, err := h.sessions.Get(r, sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	session.AddFlash(message)

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// popFlash returns and consumes the pending flash messages
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := h.sessions.Get(r, sessionName)
	if err != nil {
		return "", errors.WithStack(err)
	}

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return "", nil
	}

	if err := session.Save(r, w); err != nil {
		return "", errors.WithStack(err)
	}

	messages := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if message, ok := f.(string); ok {
			messages = append(messages, message)
		}
	}

	return strings.Join(messages, " "), nil
}
