// file: internals/features/outpasses/outpass/controller/dashboard_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"outpass_backend/internals/constants"
	staffModel "outpass_backend/internals/features/directory/staff/model"
	"outpass_backend/internals/features/outpasses/outpass/dto"
	m "outpass_backend/internals/features/outpasses/outpass/model"
	"outpass_backend/internals/features/outpasses/outpass/service"
	helper "outpass_backend/internals/helpers"
	helperAuth "outpass_backend/internals/helpers/auth"
)

// DashboardController is the staff read surface: filtered lists, detail with
// the approval ledger, stats and period reports.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

const dashboardSelect = `
	outpasses.outpass_id, outpasses.outpass_student_id,
	TRIM(CONCAT(students.student_first_name, ' ', students.student_last_name)) AS student_name,
	students.student_roll_no, students.student_class_name, students.student_section,
	COALESCE(hostels.hostel_name, '') AS hostel_name,
	outpasses.outpass_status, outpasses.outpass_is_priority, outpasses.outpass_priority_level,
	outpasses.outpass_reason, outpasses.outpass_destination,
	outpasses.outpass_outgoing_date, outpasses.outpass_outgoing_time,
	outpasses.outpass_expected_return_date, outpasses.outpass_expected_return_time,
	outpasses.outpass_actual_return_date, outpasses.outpass_checkout_time,
	outpasses.outpass_meeting_date, outpasses.outpass_fee_due, outpasses.outpass_fee_paid,
	outpasses.outpass_created_at`

// baseQuery joins the student and hostel directory onto the outpass rows.
func (ctrl *DashboardController) baseQuery() *gorm.DB {
	return ctrl.DB.Table("outpasses").
		Select(dashboardSelect).
		Joins("JOIN students ON students.student_id = outpasses.outpass_student_id").
		Joins("LEFT JOIN hostels ON hostels.hostel_id = students.student_hostel_id")
}

// applyStatusClass maps the named list views onto status sets.
func applyStatusClass(q *gorm.DB, class string) *gorm.DB {
	switch class {
	case "pending":
		return q.Where("outpasses.outpass_status IN ?", []m.Status{m.StatusPending, m.StatusFeePending})
	case "approved":
		return q.Where("outpasses.outpass_status = ?", m.StatusApproved)
	case "meeting":
		return q.Where("outpasses.outpass_status = ?", m.StatusMeeting)
	case "returned":
		return q.Where("outpasses.outpass_status = ?", m.StatusCompleted)
	case "not_returned":
		return q.Where("outpasses.outpass_status IN ?", []m.Status{m.StatusCheckedOut, m.StatusOverdue})
	case "in_hostel":
		// Approved but not yet out of the gate.
		return q.Where("outpasses.outpass_status IN ?", []m.Status{m.StatusApproved, m.StatusReadyForExit})
	case "checked_out", "outside":
		return q.Where("outpasses.outpass_status = ?", m.StatusCheckedOut)
	default:
		return q
	}
}

// roleDefaultView narrows the list to the rows that role acts on when no
// explicit status filter was asked for.
func roleDefaultView(q *gorm.DB, role string, hostelIDs []uuid.UUID) *gorm.DB {
	today := time.Now().Format("2006-01-02")
	switch role {
	case constants.RoleAccountant, constants.RoleHM:
		return q.Where("outpasses.outpass_status IN ?", []m.Status{m.StatusPending, m.StatusFeePending})
	case constants.RoleWarden:
		q = q.Where("outpasses.outpass_status IN ? AND outpasses.outpass_outgoing_date = ?",
			[]m.Status{m.StatusApproved, m.StatusReadyForExit}, today)
		if len(hostelIDs) > 0 {
			q = q.Where("students.student_hostel_id IN ?", hostelIDs)
		}
		return q
	case constants.RoleGateStaff:
		return q.Where("outpasses.outpass_status IN ?", []m.Status{m.StatusReadyForExit, m.StatusCheckedOut})
	default:
		return q
	}
}

// wardenHostelScope resolves the warden's assigned hostels: the token claim
// when present, else the staff profile row.
func (ctrl *DashboardController) wardenHostelScope(c *fiber.Ctx, role string) []uuid.UUID {
	if role != constants.RoleWarden {
		return nil
	}
	if ids := helperAuth.GetHostelIDsFromToken(c); len(ids) > 0 {
		return ids
	}

	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return nil
	}
	var profile staffModel.StaffProfileModel
	if err := ctrl.DB.First(&profile, "staff_profile_user_id = ?", userID).Error; err != nil {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(profile.StaffProfileHostelIDs))
	for _, raw := range profile.StaffProfileHostelIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// GET /staff/outpasses: the filtered dashboard list.
func (ctrl *DashboardController) ListOutpasses(c *fiber.Ctx) error {
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.baseQuery()

	statusClass := strings.ToLower(strings.TrimSpace(c.Query("filter")))
	rawStatus := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	history := c.Query("history") == "true"

	switch {
	case rawStatus != "":
		if !m.Status(rawStatus).IsValid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown status filter")
		}
		q = q.Where("outpasses.outpass_status = ?", rawStatus)
	case statusClass != "":
		q = applyStatusClass(q, statusClass)
	case history:
		q = q.Where("outpasses.outpass_status IN ?", m.TerminalStatuses)
	default:
		q = roleDefaultView(q, role, ctrl.wardenHostelScope(c, role))
	}

	if c.Query("priority") == "true" {
		q = q.Where("outpasses.outpass_is_priority = TRUE")
	}
	if v := strings.TrimSpace(c.Query("class")); v != "" {
		q = q.Where("students.student_class_name = ?", v)
	}
	if v := strings.TrimSpace(c.Query("section")); v != "" {
		q = q.Where("students.student_section = ?", v)
	}
	if v := strings.TrimSpace(c.Query("roll_no")); v != "" {
		q = q.Where("students.student_roll_no = ?", v)
	}
	if v := strings.TrimSpace(c.Query("hostel_id")); v != "" {
		hostelID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hostel_id")
		}
		q = q.Where("students.student_hostel_id = ?", hostelID)
	}
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		q = q.Where("outpasses.outpass_outgoing_date >= ?", v)
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		q = q.Where("outpasses.outpass_outgoing_date <= ?", v)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(`(
			LOWER(CONCAT(students.student_first_name, ' ', students.student_last_name)) LIKE ?
			OR LOWER(students.student_roll_no) LIKE ?
			OR LOWER(students.student_class_name) LIKE ?
			OR LOWER(students.student_section) LIKE ?
			OR LOWER(COALESCE(hostels.hostel_name, '')) LIKE ?
		)`, like, like, like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count outpasses")
	}

	var rows []dto.DashboardOutpassResponse
	if err := q.
		Order("outpasses.outpass_is_priority DESC, outpasses.outpass_priority_level DESC, outpasses.outpass_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch outpasses")
	}

	return helper.JsonList(c, "Outpasses fetched", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /staff/outpasses/:id: full row plus the approval ledger.
func (ctrl *DashboardController) GetOutpassByID(c *fiber.Ctx) error {
	outpassID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid outpass id")
	}

	var o m.OutpassModel
	if err := ctrl.DB.First(&o, "outpass_id = ?", outpassID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Outpass not found")
	}

	approvals, err := service.ListApprovals(ctrl.DB, outpassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch approvals")
	}

	return helper.JsonOK(c, "Outpass fetched", dto.OutpassDetailResponse{
		Outpass:   &o,
		Approvals: approvals,
	})
}

// GET /staff/outpasses/stats: dashboard counters plus the 7-day trend.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	stats, err := service.BuildStats(ctrl.DB, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build stats")
	}
	return helper.JsonOK(c, "Stats fetched", stats)
}

// GET /staff/outpasses/reports: per-status counts over a period (HM view).
func (ctrl *DashboardController) Reports(c *fiber.Ctx) error {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		now := time.Now()
		from = now.AddDate(0, -1, 0).Format("2006-01-02")
		to = now.Format("2006-01-02")
	}

	type statusCount struct {
		Status m.Status `gorm:"column:outpass_status" json:"status"`
		Count  int64    `gorm:"column:count" json:"count"`
	}
	var perStatus []statusCount
	if err := ctrl.DB.Table("outpasses").
		Select("outpass_status, COUNT(*) AS count").
		Where("outpass_outgoing_date BETWEEN ? AND ?", from, to).
		Group("outpass_status").
		Scan(&perStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	var total int64
	for _, sc := range perStatus {
		total += sc.Count
	}

	return helper.JsonOK(c, "Report built", fiber.Map{
		"from":       from,
		"to":         to,
		"total":      total,
		"per_status": perStatus,
	})
}
