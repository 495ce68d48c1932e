package handler

import (
	"net/http"

	"campus-core/internal/dto/request"
	"campus-core/internal/dto/response"
	"campus-core/internal/middleware"
	"campus-core/internal/models"
	"campus-core/internal/repository"
	"campus-core/internal/service"
	"campus-core/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TimetableHandler exposes the timetable CRUD and generation operations.
type TimetableHandler struct {
	service     *service.TimetableService
	teacherRepo *repository.TeacherRepository
}

// NewTimetableHandler creates a new timetable handler.
func NewTimetableHandler(service *service.TimetableService, teacherRepo *repository.TeacherRepository) *TimetableHandler {
	return &TimetableHandler{service: service, teacherRepo: teacherRepo}
}

// Create handles creating a single timetable entry.
func (h *TimetableHandler) Create(c *gin.Context) {
	var req request.CreateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, utils.FormatValidationErrors(err))
		return
	}

	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	resp, conflicts, err := h.service.Create(c.Request.Context(), institutionID, &req)
	if err != nil {
		if err == utils.ErrSchedulingConflict {
			utils.SchedulingConflict(c, conflicts)
			return
		}
		utils.Error(c, http.StatusBadRequest, err)
		return
	}

	utils.Created(c, "Timetable entry created successfully", resp)
}

// GetAll handles listing timetable entries, scoped to the caller's role:
// admins see everything, teachers see only their own sessions, students see
// only the group passed in student_group_id (the scheduling domain keeps no
// student-to-group membership record, so the group itself is the trust
// boundary for that role).
func (h *TimetableHandler) GetAll(c *gin.Context) {
	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	query := repository.TimetableQuery{
		Day:          models.DayOfWeek(c.Query("day_of_week")),
		Semester:     c.Query("semester"),
		AcademicYear: c.Query("academic_year"),
	}
	if v := c.Query("course_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query.CourseID = &id
		}
	}
	if v := c.Query("teacher_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query.TeacherID = &id
		}
	}
	if v := c.Query("student_group_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query.StudentGroupID = &id
		}
	}

	switch middleware.GetUserRole(c) {
	case models.RoleTeacher:
		userID, ok := middleware.GetUserID(c)
		if !ok {
			utils.Unauthorized(c, "Missing user context")
			return
		}
		teacher, err := h.teacherRepo.FindByUserID(userID)
		if err != nil {
			utils.OK(c, "", []response.TimetableEntryResponse{})
			return
		}
		query.TeacherID = &teacher.ID
	case models.RoleStudent:
		if query.StudentGroupID == nil {
			utils.OK(c, "", []response.TimetableEntryResponse{})
			return
		}
	}

	data, err := h.service.GetAll(c.Request.Context(), institutionID, query)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err)
		return
	}

	utils.OK(c, "", data)
}

// GetByID handles fetching a single timetable entry.
func (h *TimetableHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, utils.ErrInvalidUUID)
		return
	}

	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id, institutionID)
	if err != nil {
		utils.Error(c, http.StatusNotFound, err)
		return
	}

	utils.OK(c, "", resp)
}

// Update handles updating a timetable entry's whitelisted fields.
func (h *TimetableHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, utils.ErrInvalidUUID)
		return
	}

	var req request.UpdateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, utils.FormatValidationErrors(err))
		return
	}

	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	resp, conflicts, err := h.service.Update(c.Request.Context(), id, institutionID, &req)
	if err != nil {
		if err == utils.ErrSchedulingConflict {
			utils.SchedulingConflict(c, conflicts)
			return
		}
		utils.Error(c, http.StatusBadRequest, err)
		return
	}

	utils.OK(c, "Timetable entry updated successfully", resp)
}

// Delete handles removing a timetable entry.
func (h *TimetableHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, utils.ErrInvalidUUID)
		return
	}

	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, institutionID); err != nil {
		utils.Error(c, http.StatusBadRequest, err)
		return
	}

	utils.NoContent(c)
}

func (h *TimetableHandler) bindGenerateRequest(c *gin.Context) (request.GenerateTimetableRequest, error) {
	var req request.GenerateTimetableRequest
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *TimetableHandler) academicYearID(c *gin.Context, req request.GenerateTimetableRequest) uuid.UUID {
	if req.AcademicYearID == "" {
		return uuid.Nil
	}
	id, _ := uuid.Parse(req.AcademicYearID)
	return id
}

// GenerateGreedy handles GET /timetable/generate.
func (h *TimetableHandler) GenerateGreedy(c *gin.Context) {
	req, err := h.bindGenerateRequest(c)
	if err != nil {
		utils.ValidationError(c, utils.FormatValidationErrors(err))
		return
	}

	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.GenerateGreedy(c.Request.Context(), institutionID, req)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err)
		return
	}

	utils.OK(c, "", resp)
}

// GenerateGenetic handles GET /timetable/generate/genetic.
func (h *TimetableHandler) GenerateGenetic(c *gin.Context) {
	req, err := h.bindGenerateRequest(c)
	if err != nil {
		utils.ValidationError(c, utils.FormatValidationErrors(err))
		return
	}

	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.GenerateGenetic(c.Request.Context(), institutionID, req, h.academicYearID(c, req))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err)
		return
	}

	utils.OK(c, "", resp)
}

// GenerateGraphColoring handles GET /timetable/generate/graph-coloring.
func (h *TimetableHandler) GenerateGraphColoring(c *gin.Context) {
	req, err := h.bindGenerateRequest(c)
	if err != nil {
		utils.ValidationError(c, utils.FormatValidationErrors(err))
		return
	}

	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.GenerateGraphColoring(c.Request.Context(), institutionID, req, h.academicYearID(c, req))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err)
		return
	}

	utils.OK(c, "", resp)
}

// Compare handles GET /timetable/generate/compare.
func (h *TimetableHandler) Compare(c *gin.Context) {
	req, err := h.bindGenerateRequest(c)
	if err != nil {
		utils.ValidationError(c, utils.FormatValidationErrors(err))
		return
	}

	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.Compare(c.Request.Context(), institutionID, req, h.academicYearID(c, req))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err)
		return
	}

	utils.OK(c, "", resp)
}

// GenerateSave handles POST /timetable/generate/save.
func (h *TimetableHandler) GenerateSave(c *gin.Context) {
	var req request.SaveGeneratedTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, utils.FormatValidationErrors(err))
		return
	}

	institutionID, ok := tenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.GenerateSave(c.Request.Context(), institutionID, &req)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err)
		return
	}

	utils.Created(c, "Generated timetable saved successfully", resp)
}
