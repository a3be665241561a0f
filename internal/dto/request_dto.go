package dto

// LoginRequest selects a role and, for students, carries the access code
// handed out by staff. Students log in with their registration number.
type LoginRequest struct {
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role" binding:"required,oneof=STUDENT TEACHER"`
	AccessCode string `json:"access_code"`
}

// SubmitExamForm is the multipart form for a script submission. The file
// itself arrives as the "file" part alongside these fields.
type SubmitExamForm struct {
	AccessCode  string `form:"access_code" binding:"required"`
	StudentName string `form:"student_name" binding:"required"`
	StudentID   string `form:"student_id" binding:"required"`
}
