package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/neexbeast/fishcast/internal/fishing"
	"github.com/neexbeast/fishcast/internal/salary"
)

// maxBodyBytes caps request bodies for the calculator endpoints.
const maxBodyBytes = 64 << 10

type indexResponse struct {
	Index       fishing.IndexResult `json:"index"`
	Tier        string              `json:"tier"`
	Advice      string              `json:"advice"`
	ShortAdvice string              `json:"short_advice"`
	TimeAdvice  *fishing.TimeAdvice `json:"time_advice,omitempty"`
}

// ScoreObservation handles POST /api/v1/fishing-index.
// The body is an observation; bite windows are added when it carries both
// sunrise and sunset, using the month of its time (or of sunrise when unset).
func (h *Handlers) ScoreObservation(w http.ResponseWriter, r *http.Request) {
	var obs fishing.Observation
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&obs); err != nil {
		writeError(w, badRequest("invalid observation: %v", err))
		return
	}

	index := obs.Index()
	resp := indexResponse{
		Index:       index,
		Tier:        fishing.Tier(index.Overall),
		Advice:      fishing.Advice(index.Overall),
		ShortAdvice: fishing.ShortAdvice(index.Overall),
	}

	if !obs.Sunrise.IsZero() && !obs.Sunset.IsZero() {
		month := obs.Sunrise.Month()
		if !obs.Time.IsZero() {
			month = obs.Time.Month()
		}
		plan := fishing.PlanBiteWindows(obs.Sunrise, obs.Sunset, obs.Temperature, obs.Description, month)
		resp.TimeAdvice = &plan
	}

	writeJSON(w, http.StatusOK, resp)
}

type salaryResponse struct {
	salary.Session
	PerMinute float64 `json:"per_minute"`
	Celebrate bool    `json:"celebrate"`
}

// GetSalary handles GET /api/v1/salary?monthly=&since=.
// since is RFC 3339 and defaults to now; a future since earns nothing yet.
func (h *Handlers) GetSalary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := h.now()

	monthly, err := strconv.ParseFloat(q.Get("monthly"), 64)
	if err != nil {
		writeError(w, badRequest("invalid monthly salary %q", q.Get("monthly")))
		return
	}

	since := now
	if raw := q.Get("since"); raw != "" {
		since, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, badRequest("invalid since %q, want RFC 3339", raw))
			return
		}
	}

	session, err := salary.Start(monthly, since)
	if err != nil {
		if errors.Is(err, salary.ErrInvalidSalary) {
			writeError(w, badRequest("%v", err))
			return
		}
		writeError(w, err)
		return
	}

	session, celebrate := session.Tick(now)
	writeJSON(w, http.StatusOK, salaryResponse{
		Session:   session,
		PerMinute: salary.PerMinute(monthly),
		Celebrate: celebrate,
	})
}
