package access

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"campus-portal/internal/portal"
)

// ExportRoster renders a course's enrollment roster as an xlsx
// workbook. Admin or the owning faculty only.
func (r *Repository) ExportRoster(ctx context.Context, caller *portal.User, courseID string) (*excelize.File, error) {
	course, err := r.store.CourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if caller.Role != portal.RoleAdmin &&
		!(caller.Role == portal.RoleFaculty && course.InstructorID == caller.ID) {
		return nil, portal.ErrForbidden
	}

	enrollments, err := r.store.ListEnrollmentsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Student ID", "Student Name", "Enrolled At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, e := range enrollments {
		values := []any{e.StudentID, e.StudentName, e.EnrolledAt.Format("2006-01-02 15:04")}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write roster row: %w", err)
			}
		}
	}

	return f, nil
}
