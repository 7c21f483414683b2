package data

import (
	"fmt"
	"strings"
)

func buildListStudentsQuery(teacher string, parent string) (string, []any) {
	var where []string
	var args []any
	argIdx := 1

	if teacher != "" {
		where = append(where, fmt.Sprintf("teacher = $%d", argIdx))
		args = append(args, teacher)
		argIdx++
	}
	if parent != "" {
		where = append(where, fmt.Sprintf("parent = $%d", argIdx))
		args = append(args, parent)
		argIdx++
	}

	query := `
SELECT student_id, name, grade, teacher, parent, created_at
FROM students
`
	if len(where) > 0 {
		query += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	query += "ORDER BY student_id\n"

	return query, args
}

func buildListStudentProgressQuery(studentId string, completedOnly bool) (string, []any) {
	query := `
SELECT p.progress_id, p.material_id, p.completed, p.completed_at, m.title, m.competency
FROM progress p
JOIN materials m ON m.material_id = p.material_id
WHERE p.student_id = $1
`
	if completedOnly {
		query += "AND p.completed\n"
	}
	query += "ORDER BY p.completed_at DESC NULLS LAST, m.uploaded_at DESC\n"

	return query, []any{studentId}
}
