package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"pawpal-planner/internal/domain/tasks"
	"pawpal-planner/internal/export"
	"pawpal-planner/internal/platform/datetime"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate = validator.New()
	trans    ut.Translator
)

func init() {
	// nombres de campo = tag json, así los mensajes coinciden con el payload
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	trans, _ = ut.New(enLocale, enLocale).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)
}

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc))
		or.Get("/", listOwnersHandler(svc))

		or.Route("/{owner}", func(pr chi.Router) {
			pr.Get("/", getOwnerHandler(svc))
			pr.Post("/pets", addPetHandler(svc))
			pr.Delete("/pets/{pet}", removePetHandler(svc))

			// {pet} acepta ID o nombre de la mascota
			pr.Post("/pets/{pet}/tasks", scheduleTaskHandler(svc))
			pr.Delete("/pets/{pet}/tasks/{taskID}", removeTaskHandler(svc))
			pr.Post("/pets/{pet}/tasks/{taskID}/complete", completeTaskHandler(svc))
		})
	})

	r.Get("/agenda", agendaHandler(svc))
	r.Get("/agenda/export", agendaExportHandler(svc))
	r.Get("/conflicts", conflictsHandler(svc))
}

// -------------------------
// Requests / responses
// -------------------------

type createOwnerRequest struct {
	Name string `json:"name" validate:"required"`
}

type createPetRequest struct {
	Name    string `json:"name" validate:"required"`
	Species string `json:"species"`
	Age     int    `json:"age" validate:"gte=0"`
	Notes   string `json:"notes"`
}

type recurrenceRequest struct {
	Frequency string `json:"frequency" validate:"required,oneof=daily weekly" enums:"daily,weekly"`
	Interval  int    `json:"interval" validate:"omitempty,gte=1"` // default 1
	Count     *int   `json:"count" validate:"omitempty,gte=1"`
	Until     string `json:"until"` // YYYY-MM-DD opcional
}

// createTaskRequest: fechas-hora en RFC3339 o naive YYYY-MM-DDTHH:MM.
type createTaskRequest struct {
	ID              string             `json:"id"`
	Title           string             `json:"title" validate:"required"`
	StartAt         string             `json:"start_at"`
	DueAt           string             `json:"due_at"`
	DurationMinutes int                `json:"duration_minutes" validate:"gte=0"`
	Priority        int                `json:"priority" validate:"omitempty,min=1,max=5"` // default 3
	Recurrence      *recurrenceRequest `json:"recurrence"`
}

type recurrenceResponse struct {
	Frequency tasks.Frequency `json:"frequency"`
	Interval  int             `json:"interval"`
	Count     *int            `json:"count,omitempty"`
	Until     *time.Time      `json:"until,omitempty"`
}

type taskResponse struct {
	ID              string              `json:"id"`
	PetID           string              `json:"pet_id"`
	Title           string              `json:"title"`
	StartAt         *time.Time          `json:"start_at,omitempty"`
	DueAt           *time.Time          `json:"due_at,omitempty"`
	DurationMinutes int                 `json:"duration_minutes,omitempty"`
	Priority        int                 `json:"priority"`
	Status          tasks.Status        `json:"status"`
	Recurrence      *recurrenceResponse `json:"recurrence,omitempty"`
}

type petResponse struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Species string         `json:"species"`
	Age     int            `json:"age"`
	Notes   string         `json:"notes"`
	Tasks   []taskResponse `json:"tasks"`
}

type ownerResponse struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Pets []petResponse `json:"pets"`
}

type completionResponse struct {
	Completed taskResponse  `json:"completed"`
	Next      *taskResponse `json:"next,omitempty"`
}

type agendaItem struct {
	taskResponse
	Owner string `json:"owner"`
	Pet   string `json:"pet"`
}

type agendaResponse struct {
	Date  string       `json:"date"`
	Tasks []agendaItem `json:"tasks"`
}

type conflictPairResponse struct {
	First  taskResponse `json:"first"`
	Second taskResponse `json:"second"`
}

type conflictsResponse struct {
	Date     string                 `json:"date"`
	Pairs    []conflictPairResponse `json:"pairs"`
	Warnings []string               `json:"warnings"`
}

// -------------------------
// Handlers
// -------------------------

// createOwnerHandler godoc
// @Summary Registrar owner
// @Description Registra un owner nuevo. El nombre es la clave del sistema y debe ser único.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del owner"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 409 {string} string "duplicate name"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		o, err := svc.AddOwner(req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// listOwnersHandler godoc
// @Summary Listar owners
// @Tags owners
// @Produce json
// @Success 200 {array} ownerResponse
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		items := svc.Owners()
		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getOwnerHandler godoc
// @Summary Ver owner con sus mascotas y tareas
// @Tags owners
// @Produce json
// @Param owner path string true "Nombre del owner"
// @Success 200 {object} ownerResponse
// @Failure 404 {string} string "owner not found"
// @Router /owners/{owner} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.Owner(chi.URLParam(r, "owner"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// addPetHandler godoc
// @Summary Agregar mascota
// @Description Agrega una mascota al owner. El nombre debe ser único dentro del owner.
// @Tags pets
// @Accept json
// @Produce json
// @Param owner path string true "Nombre del owner"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "owner not found"
// @Failure 409 {string} string "duplicate name"
// @Router /owners/{owner}/pets [post]
func addPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		p, err := svc.AddPet(chi.URLParam(r, "owner"), AddPetInput{
			Name:    req.Name,
			Species: req.Species,
			Age:     req.Age,
			Notes:   req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// removePetHandler godoc
// @Summary Eliminar mascota
// @Tags pets
// @Param owner path string true "Nombre del owner"
// @Param pet path string true "Nombre de la mascota"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /owners/{owner}/pets/{pet} [delete]
func removePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RemovePet(chi.URLParam(r, "owner"), chi.URLParam(r, "pet")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// scheduleTaskHandler godoc
// @Summary Agendar tarea
// @Description Agenda una tarea para la mascota (por ID o nombre). Fechas en RFC3339 o YYYY-MM-DDTHH:MM.
// @Tags tasks
// @Accept json
// @Produce json
// @Param owner path string true "Nombre del owner"
// @Param pet path string true "ID o nombre de la mascota"
// @Param payload body createTaskRequest true "Datos de la tarea"
// @Success 201 {object} taskResponse
// @Failure 400 {string} string "invalid json / fecha inválida / validación"
// @Failure 404 {string} string "owner/pet not found"
// @Failure 409 {string} string "task id duplicado en la mascota"
// @Router /owners/{owner}/pets/{pet}/tasks [post]
func scheduleTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTaskRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		t, err := svc.ScheduleTask(chi.URLParam(r, "owner"), chi.URLParam(r, "pet"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toTaskResponse(t))
	}
}

// removeTaskHandler godoc
// @Summary Eliminar tarea
// @Tags tasks
// @Param owner path string true "Nombre del owner"
// @Param pet path string true "ID o nombre de la mascota"
// @Param taskID path string true "ID de la tarea"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /owners/{owner}/pets/{pet}/tasks/{taskID} [delete]
func removeTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.RemoveTask(chi.URLParam(r, "owner"), chi.URLParam(r, "pet"), chi.URLParam(r, "taskID"))
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// completeTaskHandler godoc
// @Summary Completar tarea
// @Description Marca la tarea como done. Si es diaria/semanal crea la siguiente ocurrencia (+1 día / +1 semana).
// @Tags tasks
// @Produce json
// @Param owner path string true "Nombre del owner"
// @Param pet path string true "ID o nombre de la mascota"
// @Param taskID path string true "ID de la tarea"
// @Success 200 {object} completionResponse
// @Failure 404 {string} string "not found"
// @Router /owners/{owner}/pets/{pet}/tasks/{taskID}/complete [post]
func completeTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.CompleteTask(chi.URLParam(r, "owner"), chi.URLParam(r, "pet"), chi.URLParam(r, "taskID"))
		if err != nil {
			writeError(w, err)
			return
		}

		out := completionResponse{Completed: toTaskResponse(c.Completed)}
		if c.Next != nil {
			next := toTaskResponse(*c.Next)
			out.Next = &next
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// agendaHandler godoc
// @Summary Agenda del día
// @Description Tareas de todos los owners/mascotas que caen en la fecha, ordenadas por hora y prioridad.
// @Tags agenda
// @Produce json
// @Param date query string false "YYYY-MM-DD (default: hoy)"
// @Param status query string false "pending | done | skipped"
// @Param sort query string false "priority (default) | time"
// @Success 200 {object} agendaResponse
// @Failure 400 {string} string "date inválida"
// @Router /agenda [get]
func agendaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := datetime.ParseDate(r.URL.Query().Get("date"), svc.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		opts, err := agendaOptions(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items := svc.AgendaWith(date, opts)
		out := agendaResponse{Date: date.Format(datetime.DateLayout), Tasks: make([]agendaItem, 0, len(items))}
		for _, t := range items {
			owner, pet, _ := svc.PetName(t.PetID)
			out.Tasks = append(out.Tasks, agendaItem{taskResponse: toTaskResponse(t), Owner: owner, Pet: pet})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// agendaExportHandler godoc
// @Summary Exportar agenda del día (XLSX)
// @Description Misma agenda que /agenda más una hoja con los warnings de horario exacto.
// @Tags agenda
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date query string false "YYYY-MM-DD (default: hoy)"
// @Success 200 {file} file
// @Failure 400 {string} string "date inválida"
// @Router /agenda/export [get]
func agendaExportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := datetime.ParseDate(r.URL.Query().Get("date"), svc.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items := svc.Agenda(date)
		rows := make([]export.Row, 0, len(items))
		for _, t := range items {
			owner, pet, _ := svc.PetName(t.PetID)
			row := export.Row{
				Owner:    owner,
				Pet:      pet,
				TaskID:   t.ID,
				Title:    t.Title,
				DueAt:    t.DueAt,
				Priority: t.Priority,
				Status:   string(t.Status),
			}
			if t.Duration != nil {
				row.DurationMinutes = int(t.Duration.Minutes())
			}
			if t.Recurrence != nil {
				row.Recurrence = fmt.Sprintf("%s/%d", t.Recurrence.Frequency, t.Recurrence.Interval)
			}
			rows = append(rows, row)
		}

		buf, err := export.AgendaXLSX(date, rows, svc.Conflicts(date).Warnings)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(date)+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

// conflictsHandler godoc
// @Summary Conflictos del día
// @Description Pares de tareas con intervalos solapados y warnings por horario exacto compartido.
// @Tags agenda
// @Produce json
// @Param date query string false "YYYY-MM-DD (default: hoy)"
// @Success 200 {object} conflictsResponse
// @Failure 400 {string} string "date inválida"
// @Router /conflicts [get]
func conflictsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := datetime.ParseDate(r.URL.Query().Get("date"), svc.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		report := svc.Conflicts(date)
		out := conflictsResponse{
			Date:     date.Format(datetime.DateLayout),
			Pairs:    make([]conflictPairResponse, 0, len(report.Pairs)),
			Warnings: report.Warnings,
		}
		for _, p := range report.Pairs {
			out.Pairs = append(out.Pairs, conflictPairResponse{
				First:  toTaskResponse(p.First),
				Second: toTaskResponse(p.Second),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// -------------------------
// Helpers
// -------------------------

func (req createTaskRequest) toInput() (tasks.NewInput, error) {
	due, err := datetime.ParseOptional(req.DueAt)
	if err != nil {
		return tasks.NewInput{}, errors.New("due_at must be RFC3339 or YYYY-MM-DDTHH:MM")
	}
	start, err := datetime.ParseOptional(req.StartAt)
	if err != nil {
		return tasks.NewInput{}, errors.New("start_at must be RFC3339 or YYYY-MM-DDTHH:MM")
	}

	in := tasks.NewInput{
		ID:       req.ID,
		Title:    req.Title,
		StartAt:  start,
		DueAt:    due,
		Duration: datetime.Minutes(req.DurationMinutes),
		Priority: req.Priority,
	}

	if rr := req.Recurrence; rr != nil {
		rec := &tasks.Recurrence{
			Frequency: tasks.Frequency(strings.ToLower(rr.Frequency)),
			Interval:  rr.Interval,
			Count:     rr.Count,
		}
		if rec.Interval == 0 {
			rec.Interval = 1
		}
		if strings.TrimSpace(rr.Until) != "" {
			u, err := time.Parse(datetime.DateLayout, strings.TrimSpace(rr.Until))
			if err != nil {
				return tasks.NewInput{}, errors.New("recurrence.until must be YYYY-MM-DD")
			}
			rec.Until = &u
		}
		in.Recurrence = rec
	}
	return in, nil
}

func agendaOptions(r *http.Request) (AgendaOptions, error) {
	var opts AgendaOptions

	switch st := tasks.Status(strings.ToLower(r.URL.Query().Get("status"))); st {
	case "":
	case tasks.StatusPending, tasks.StatusDone, tasks.StatusSkipped:
		opts.Status = st
	default:
		return opts, errors.New("status must be pending, done or skipped")
	}

	switch strings.ToLower(r.URL.Query().Get("sort")) {
	case "", "priority":
	case "time":
		opts.ByTime = true
	default:
		return opts, errors.New("sort must be priority or time")
	}
	return opts, nil
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return false
	}
	return true
}

// validationMessage junta los mensajes traducidos ("name is a required field; ...").
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}
	return strings.Join(msgs, "; ")
}

// writeError traduce errores de dominio a status HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrDuplicateName):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toTaskResponse(t tasks.Task) taskResponse {
	out := taskResponse{
		ID:       t.ID,
		PetID:    t.PetID,
		Title:    t.Title,
		StartAt:  t.StartAt,
		DueAt:    t.DueAt,
		Priority: t.Priority,
		Status:   t.Status,
	}
	if t.Duration != nil {
		out.DurationMinutes = int(t.Duration.Minutes())
	}
	if t.Recurrence != nil {
		out.Recurrence = &recurrenceResponse{
			Frequency: t.Recurrence.Frequency,
			Interval:  t.Recurrence.Interval,
			Count:     t.Recurrence.Count,
			Until:     t.Recurrence.Until,
		}
	}
	return out
}

func toPetResponse(p PetSnapshot) petResponse {
	out := petResponse{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
		Age:     p.Age,
		Notes:   p.Notes,
		Tasks:   make([]taskResponse, 0, len(p.Tasks)),
	}
	for _, t := range p.Tasks {
		out.Tasks = append(out.Tasks, toTaskResponse(t))
	}
	return out
}

func toOwnerResponse(o OwnerSnapshot) ownerResponse {
	out := ownerResponse{ID: o.ID, Name: o.Name, Pets: make([]petResponse, 0, len(o.Pets))}
	for _, p := range o.Pets {
		out.Pets = append(out.Pets, toPetResponse(p))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
