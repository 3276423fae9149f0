package web

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/verte-zerg/hundred/internal/model"
	"github.com/verte-zerg/hundred/internal/page"
	"github.com/verte-zerg/hundred/internal/render"
	"github.com/verte-zerg/hundred/internal/theme"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	m := &htmlMount{}
	status := http.StatusOK
	if err := page.Load(r.Context(), s.source, s.plan, s.now(), m); err != nil {
		slog.Error("failed to load questions", "error", err)
		status = http.StatusBadGateway
	}
	data := pageData{
		Dark:      s.currentTheme(r).IsDark(),
		Failure:   m.failure,
		Days:      m.days,
		AckDelay:  render.CopyAckDelay.Milliseconds(),
		Container: containerID,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("failed to render page", "error", err)
	}
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.source(r.Context())
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		respondError(w, http.StatusBadGateway, "LOAD_FAILED", page.FailureMessage)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDays(w http.ResponseWriter, r *http.Request) {
	doc, err := s.source(r.Context())
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		respondError(w, http.StatusBadGateway, "LOAD_FAILED", page.FailureMessage)
		return
	}
	now := s.now()
	current, ok := s.plan.CurrentDay(now)
	resp := daysResponse{Days: []dayJSON{}}
	if ok {
		resp.CurrentDay = current
	}
	for _, d := range page.Build(doc, s.plan, now) {
		resp.Days = append(resp.Days, toDayJSON(d))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if s.prefs == nil {
		respondError(w, http.StatusServiceUnavailable, "NO_PREFERENCES", "theme preference is not available")
		return
	}
	current := s.currentTheme(r)
	if _, err := theme.Toggle(r.Context(), s.prefs, current); err != nil {
		slog.Error("failed to toggle theme", "error", err)
		respondError(w, http.StatusInternalServerError, "THEME_SAVE_FAILED", "failed to save theme")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) currentTheme(r *http.Request) theme.Theme {
	if s.prefs == nil {
		return theme.Light
	}
	t, err := theme.Load(r.Context(), s.prefs)
	if err != nil {
		slog.Warn("failed to read theme", "error", err)
	}
	return t
}

const containerID = "question-container"

// htmlMount collects day blocks for the page template.
type htmlMount struct {
	days    []dayView
	failure string
}

func (m *htmlMount) Clear() {
	m.days = nil
	m.failure = ""
}

func (m *htmlMount) Append(block page.DayBlock) {
	m.days = append(m.days, toDayView(block))
}

func (m *htmlMount) Fail(message string) {
	m.days = nil
	m.failure = message
}

type pageData struct {
	Dark      bool
	Failure   string
	Days      []dayView
	AckDelay  int64
	Container string
}

type dayView struct {
	Title     string
	Questions []questionView
}

type questionView struct {
	Role  render.Role
	Style template.CSS
	Units []unitView
}

type unitView struct {
	Kind      string
	Header    *render.Header
	Icon      template.HTML
	Text      string
	TestCases *render.TestCases
	Video     *render.VideoLink
	Notes     *render.Notes
	NoteImage bool
}

func toDayView(b page.DayBlock) dayView {
	v := dayView{Title: b.Title}
	for _, q := range b.Questions {
		v.Questions = append(v.Questions, toQuestionView(q))
	}
	return v
}

func toQuestionView(b render.Block) questionView {
	qv := questionView{Role: b.Role}
	if b.Color != "" {
		// Section colours come from the trusted data source.
		qv.Style = template.CSS("background: " + b.Color)
	}
	for _, u := range b.Units {
		switch u := u.(type) {
		case *render.Header:
			qv.Units = append(qv.Units, unitView{Kind: "header", Header: u, Icon: template.HTML(u.Icon)})
		case *render.Body:
			qv.Units = append(qv.Units, unitView{Kind: "body", Text: u.Text})
		case *render.TestCases:
			qv.Units = append(qv.Units, unitView{Kind: "testcases", TestCases: u})
		case *render.VideoLink:
			qv.Units = append(qv.Units, unitView{Kind: "video", Video: u})
		case *render.Notes:
			qv.Units = append(qv.Units, unitView{Kind: "notes", Notes: u, NoteImage: u.Kind == model.NoteImage})
		}
	}
	return qv
}

type daysResponse struct {
	CurrentDay int       `json:"currentDay"`
	Days       []dayJSON `json:"days"`
}

type dayJSON struct {
	Day       int            `json:"day"`
	Today     bool           `json:"today"`
	Title     string         `json:"title"`
	Questions []questionJSON `json:"questions"`
}

type questionJSON struct {
	ID         int           `json:"id"`
	Role       render.Role   `json:"role"`
	Title      string        `json:"title"`
	Icon       string        `json:"icon,omitempty"`
	Color      string        `json:"color,omitempty"`
	Text       string        `json:"text"`
	TestCases  []render.Case `json:"testCases,omitempty"`
	Video      string        `json:"video,omitempty"`
	Notes      *model.Note   `json:"notes,omitempty"`
	Transcript string        `json:"transcript"`
}

func toDayJSON(d page.DayBlock) dayJSON {
	out := dayJSON{Day: d.Day, Today: d.Today, Title: d.Title, Questions: []questionJSON{}}
	for _, b := range d.Questions {
		q := questionJSON{ID: b.QuestionID, Role: b.Role, Color: b.Color}
		for _, u := range b.Units {
			switch u := u.(type) {
			case *render.Header:
				q.Title = u.Title
				q.Icon = u.Icon
				q.Transcript = u.Copy.Transcript
			case *render.Body:
				q.Text = u.Text
			case *render.TestCases:
				q.TestCases = u.Cases
			case *render.VideoLink:
				q.Video = u.Href
			case *render.Notes:
				q.Notes = &model.Note{Kind: u.Kind, Value: u.Value}
			}
		}
		out.Questions = append(out.Questions, q)
	}
	return out
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]apiError{"error": {Code: code, Message: message}})
}
