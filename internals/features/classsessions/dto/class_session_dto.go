// file: internals/features/classsessions/dto/class_session_dto.go
package dto

// ClassSessionResponse: satu sesi les dalam bentuk kanonis.
// Rating nil berarti murid belum menilai — bukan nilai nol, dan tidak ikut
// dirata-rata.
type ClassSessionResponse struct {
	EnrollmentID   string   `json:"enrollment_id"`
	SessionID      string   `json:"session_id"`
	SessionIndex   int      `json:"session_index"`
	TotalSessions  int      `json:"total_sessions"`
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	Status         string   `json:"status"`
	Rating         *float64 `json:"rating"`
	TeacherName    string   `json:"teacher_name"`
	InstrumentName string   `json:"instrument_name"`
	ProgramName    string   `json:"program_name"`
	ScheduleText   string   `json:"schedule_text"`
}

// EnrollmentProgress: angka progres satu pendaftaran, dihitung on-demand
// dari gabungan dua view sesi; tidak pernah di-cache melewati request.
type EnrollmentProgress struct {
	EnrollmentID         string   `json:"enrollment_id"`
	TotalSessions        int      `json:"total_sessions"`
	LatestCompletedIndex int      `json:"latest_completed_index"`
	AverageRating        *float64 `json:"average_rating"`
}
