package controllers

import (
	"fmt"
	"net/http"

	"github.com/blogem/ptlog/models"
	"github.com/blogem/ptlog/services"
)

// LogEntryResponse is one row of GET /getData, keyed by column name
type LogEntryResponse struct {
	Datum    string  `json:"DATUM"`
	Typ      string  `json:"TYP"`
	Testnamn string  `json:"TESTNAMN"`
	Syfte    string  `json:"SYFTE"`
	Analys   *string `json:"ANALYS"`
	Projekt  string  `json:"PROJEKT"`
	Testare  string  `json:"TESTARE"`
}

func newLogEntryResponse(entry models.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		Datum:    models.FormatDateTime(entry.Timestamp.In(models.Stockholm)),
		Typ:      entry.Type,
		Testnamn: entry.Name,
		Syfte:    entry.Purpose,
		Analys:   entry.Analysis,
		Projekt:  entry.Project,
		Testare:  entry.Tester,
	}
}

// LogController handles test log requests
type LogController struct {
	services *services.Services
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services) *LogController {
	return &LogController{
		services: services,
	}
}

// GetData handles GET /getData?projekt=
func (c *LogController) GetData(w http.ResponseWriter, r *http.Request) {
	logs, err := c.services.Logs.ListLogs(r.Context(), r.URL.Query().Get("projekt"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]LogEntryResponse, len(logs))
	for i, entry := range logs {
		resp[i] = newLogEntryResponse(entry)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Insert handles POST /insert
func (c *LogController) Insert(w http.ResponseWriter, r *http.Request) {
	var form models.LogEntryForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	name, err := c.services.Logs.InsertLog(r.Context(), &form)
	c.respondInserted(w, r, name, err)
}

// InsertPacing handles POST /insertPacing
func (c *LogController) InsertPacing(w http.ResponseWriter, r *http.Request) {
	var form models.PacingForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	name, err := c.services.Logs.InsertPacing(r.Context(), &form)
	c.respondInserted(w, r, name, err)
}

// InsertConfig handles POST /insertConfig
func (c *LogController) InsertConfig(w http.ResponseWriter, r *http.Request) {
	var form models.ConfigForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	name, err := c.services.Logs.InsertConfig(r.Context(), &form)
	c.respondInserted(w, r, name, err)
}

func (c *LogController) respondInserted(w http.ResponseWriter, r *http.Request, name string, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message:  fmt.Sprintf("Inserted 1 row(s) with testnamn: %s", name),
		Rows:     1,
		Testnamn: name,
	})
}

// UpdateAnalys handles PUT /updateAnalys
func (c *LogController) UpdateAnalys(w http.ResponseWriter, r *http.Request) {
	var form models.AnalysisForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := c.services.Logs.UpdateAnalysis(r.Context(), &form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message:  fmt.Sprintf("Updated %d row(s) for Projekt: %s, Testnamn: %s", rows, form.Projekt, form.Testnamn),
		Rows:     rows,
		Testnamn: form.Testnamn,
	})
}

// DeleteLog handles DELETE /deleteLog
func (c *LogController) DeleteLog(w http.ResponseWriter, r *http.Request) {
	var form models.DeleteLogForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := c.services.Logs.DeleteLog(r.Context(), &form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message:  fmt.Sprintf("Deleted %d row(s) for Projekt: %s, Testnamn: %s", rows, form.Projekt, form.Testnamn),
		Rows:     rows,
		Testnamn: form.Testnamn,
	})
}
